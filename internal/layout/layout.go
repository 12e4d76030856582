// Package layout renders a parsed flow graph as plain multi-line text.
// It is a deliberately minimal fallback for when no externally rendered
// diagram is supplied: nodes become boxes stacked along one axis with
// arrows between consecutive nodes, no edge-crossing avoidance, no
// branching geometry.
package layout

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/flowviz/flowviz/internal/diagram"
	"github.com/flowviz/flowviz/internal/term"
)

// glyphSet is the character vocabulary for one rendering mode.
type glyphSet struct {
	topLeft     string
	topRight    string
	bottomLeft  string
	bottomRight string
	horizontal  string
	vertical    string
	connector   string
	arrowDown   string
	joiner      string
}

var unicodeGlyphs = glyphSet{
	topLeft:     "┌",
	topRight:    "┐",
	bottomLeft:  "└",
	bottomRight: "┘",
	horizontal:  "─",
	vertical:    "│",
	connector:   "│",
	arrowDown:   "▼",
	joiner:      " ──▶ ",
}

var asciiGlyphs = glyphSet{
	topLeft:     "+",
	topRight:    "+",
	bottomLeft:  "+",
	bottomRight: "+",
	horizontal:  "-",
	vertical:    "|",
	connector:   "|",
	arrowDown:   "v",
	joiner:      " --> ",
}

// Render lays the graph out as text. LR and RL flow boxes along a row;
// every other direction stacks them in a column. The glyph set follows
// the unicode capability. An empty graph renders as an empty string and
// isolated nodes render as plain boxes, never an error.
func Render(g *diagram.Graph, caps term.Profile) string {
	order := nodeOrder(g)
	if len(order) == 0 {
		return ""
	}

	glyphs := asciiGlyphs
	if caps.Unicode {
		glyphs = unicodeGlyphs
	}

	labels := g.Labels()
	if g.Direction.Horizontal() {
		return renderRow(order, labels, glyphs)
	}
	return renderColumn(order, labels, glyphs)
}

// nodeOrder walks the edge list and records each node the first time it
// appears as source or target, then appends nodes that never touch an
// edge in declaration order.
func nodeOrder(g *diagram.Graph) []string {
	seen := make(map[string]bool, len(g.Nodes))
	order := make([]string, 0, len(g.Nodes))

	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			order = append(order, id)
		}
	}

	for _, e := range g.Edges {
		add(e.From)
		add(e.To)
	}
	for _, n := range g.Nodes {
		add(n.ID)
	}
	return order
}

// box renders the three lines of one node. Width is the label width plus
// two border characters and two padding spaces.
func box(label string, glyphs glyphSet) [3]string {
	inner := runewidth.StringWidth(label) + 2
	return [3]string{
		glyphs.topLeft + strings.Repeat(glyphs.horizontal, inner) + glyphs.topRight,
		glyphs.vertical + " " + label + " " + glyphs.vertical,
		glyphs.bottomLeft + strings.Repeat(glyphs.horizontal, inner) + glyphs.bottomRight,
	}
}

func renderColumn(order []string, labels map[string]string, glyphs glyphSet) string {
	var lines []string
	for i, id := range order {
		b := box(labels[id], glyphs)
		lines = append(lines, b[0], b[1], b[2])

		if i < len(order)-1 {
			// Drop the connector under the center of the upper box.
			indent := strings.Repeat(" ", (runewidth.StringWidth(labels[id])+4)/2)
			lines = append(lines, indent+glyphs.connector, indent+glyphs.arrowDown)
		}
	}
	return strings.Join(lines, "\n")
}

func renderRow(order []string, labels map[string]string, glyphs glyphSet) string {
	pad := strings.Repeat(" ", runewidth.StringWidth(glyphs.joiner))

	var top, mid, bottom strings.Builder
	for i, id := range order {
		b := box(labels[id], glyphs)
		if i > 0 {
			top.WriteString(pad)
			mid.WriteString(glyphs.joiner)
			bottom.WriteString(pad)
		}
		top.WriteString(b[0])
		mid.WriteString(b[1])
		bottom.WriteString(b[2])
	}
	return top.String() + "\n" + mid.String() + "\n" + bottom.String()
}
