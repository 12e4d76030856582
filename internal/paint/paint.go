// Package paint injects color into rendered diagram text. Node labels are
// colored by category and progress state, box-drawing runs take the border
// color, and arrow runs are dimmed. Labels are replaced longest-first so a
// short label never steals a match from a longer label containing it.
package paint

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/flowviz/flowviz/internal/diagram"
	"github.com/flowviz/flowviz/internal/palette"
	"github.com/flowviz/flowviz/internal/term"
)

var (
	borderPattern = regexp.MustCompile(`[┌┐└┘├┤┬┴┼─│╭╮╯╰]+`)
	arrowPattern  = regexp.MustCompile(`(?m)-->|<--|->|<-|[→←▼▲▶◀━]+|^\s*v\s*$|^\s*\^\s*$`)
)

// Colorize styles diagram text for the given node set and progress state.
// With color disabled the input is returned unchanged. Label coloring
// happens strictly before structural coloring; substituted labels are
// masked while borders and arrows are wrapped, so label text is never
// mistaken for a structural run.
func Colorize(text string, infos []diagram.NodeInfo, st diagram.RenderState, caps term.Profile) string {
	if !caps.Color {
		return text
	}

	entries := substitutable(infos)
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].Label) > len(entries[j].Label)
	})

	styled := make(map[string]string, len(entries))
	for idx, e := range entries {
		if !strings.Contains(text, e.Label) {
			continue
		}
		mask := "\x00" + strconv.Itoa(idx) + "\x00"
		text = strings.ReplaceAll(text, e.Label, mask)
		styled[mask] = styleLabel(e, st, caps)
	}

	if caps.Unicode {
		text = borderPattern.ReplaceAllStringFunc(text, func(run string) string {
			return palette.Colorize(run, palette.TokenBorder, palette.Options{Caps: caps})
		})
	}
	text = arrowPattern.ReplaceAllStringFunc(text, func(run string) string {
		return palette.Colorize(run, palette.TokenDim, palette.Options{Caps: caps})
	})

	for mask, replacement := range styled {
		text = strings.ReplaceAll(text, mask, replacement)
	}
	return text
}

// substitutable filters out subgraph pseudo-entries and unlabeled nodes;
// only real node labels participate in substitution.
func substitutable(infos []diagram.NodeInfo) []diagram.NodeInfo {
	entries := make([]diagram.NodeInfo, 0, len(infos))
	for _, info := range infos {
		if info.Label == "" || strings.HasPrefix(info.ID, "subgraph:") {
			continue
		}
		entries = append(entries, info)
	}
	return entries
}

// Legend lists each category present in the node set with a colored
// swatch, one per line, for printing under a rendered diagram. Categories
// appear in role order; uncategorized nodes are listed last as "other".
func Legend(infos []diagram.NodeInfo, caps term.Profile) string {
	present := make(map[palette.Category]bool, len(infos))
	for _, info := range infos {
		present[info.Category] = true
	}

	swatch := "●"
	if !caps.Unicode {
		swatch = "*"
	}

	var b strings.Builder
	for _, cat := range palette.Roles() {
		if !present[cat] {
			continue
		}
		b.WriteString(palette.Colorize(swatch, cat, palette.Options{Caps: caps}))
		b.WriteString(" ")
		b.WriteString(string(cat))
		b.WriteString("\n")
	}
	if present[palette.CategoryNone] {
		b.WriteString(palette.Colorize(swatch, palette.TokenDefault, palette.Options{Caps: caps}))
		b.WriteString(" other\n")
	}
	return b.String()
}

// styleLabel picks the effective color for one node. Completed nodes are
// bold green and the active node is bold in its own category. Everything
// else keeps its natural color until progress starts, after which pending
// nodes drop to dim.
func styleLabel(info diagram.NodeInfo, st diagram.RenderState, caps term.Profile) string {
	key := info.Category
	o := palette.Options{Caps: caps}

	switch {
	case st.IsCompleted(info.ID):
		key = palette.TokenGreen
		o.Bold = true
	case st.Active != "" && info.ID == st.Active:
		o.Bold = true
	case st.Started():
		key = palette.TokenDim
	}

	return palette.Colorize(info.Label, key, o)
}
