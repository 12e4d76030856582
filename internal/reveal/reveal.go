// Package reveal turns one finished frame into an ordered sequence of
// intermediate frames implementing a reveal animation. Generation is a
// pure function of its inputs: no shared state, always finite, and the
// last frame is byte-identical to the input so the animation can never
// end on a lossy tail.
package reveal

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"

	"github.com/flowviz/flowviz/internal/errors"
	"github.com/flowviz/flowviz/internal/palette"
	"github.com/flowviz/flowviz/internal/term"
)

// Style selects the reveal strategy.
type Style string

const (
	StyleTopDown   Style = "top-down"
	StyleFadeIn    Style = "fade-in"
	StyleLeftRight Style = "left-right"
)

// ParseStyle resolves a user-supplied style name.
func ParseStyle(name string) (Style, error) {
	switch Style(name) {
	case StyleTopDown, StyleFadeIn, StyleLeftRight:
		return Style(name), nil
	}
	return "", errors.New(errors.ErrConfig,
		fmt.Sprintf("unknown reveal style %q", name),
		"Valid styles: top-down, fade-in, left-right")
}

// Generate produces the frame sequence for one reveal of finalFrame.
// stagger controls the top-down stride; values below 1 are clamped to 1.
// The unmodified final frame is always the last element, appended unless
// the natural last frame is already byte-identical.
func Generate(finalFrame string, style Style, stagger int, caps term.Profile) []string {
	if stagger < 1 {
		stagger = 1
	}

	var frames []string
	switch style {
	case StyleFadeIn:
		frames = fadeIn(finalFrame, caps)
	case StyleLeftRight:
		frames = leftRight(finalFrame, caps)
	default:
		frames = topDown(finalFrame, stagger, caps)
	}

	if len(frames) == 0 || frames[len(frames)-1] != finalFrame {
		frames = append(frames, finalFrame)
	}
	return frames
}

// topDown sweeps a reveal cursor down the frame in stagger-line steps.
// Lines above the cursor are final, the next 3*stagger lines show as a
// dimmed silhouette, and everything below is blank.
func topDown(finalFrame string, stagger int, caps term.Profile) []string {
	lines := strings.Split(finalFrame, "\n")
	total := len(lines)

	var frames []string
	for cursor := 0; cursor <= total; cursor += stagger {
		frame := make([]string, total)
		for i, line := range lines {
			switch {
			case i < cursor:
				frame[i] = line
			case i < cursor+3*stagger:
				frame[i] = silhouette(line, caps)
			default:
				frame[i] = ""
			}
		}
		frames = append(frames, strings.Join(frame, "\n"))
	}
	return frames
}

// fadeIn opens with a fully dimmed frame, then reveals at the quarter,
// half and three-quarter cutoffs.
func fadeIn(finalFrame string, caps term.Profile) []string {
	lines := strings.Split(finalFrame, "\n")
	total := len(lines)

	frames := make([]string, 0, 4)
	for _, quarter := range []int{0, 1, 2, 3} {
		cutoff := total * quarter / 4
		frame := make([]string, total)
		for i, line := range lines {
			if i < cutoff {
				frame[i] = line
			} else {
				frame[i] = silhouette(line, caps)
			}
		}
		frames = append(frames, strings.Join(frame, "\n"))
	}
	return frames
}

// leftRight reveals three character-columns at a time. The revealed
// prefix keeps its escape sequences verbatim; the remainder shows as a
// dimmed silhouette.
func leftRight(finalFrame string, caps term.Profile) []string {
	lines := strings.Split(finalFrame, "\n")

	width := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(term.Strip(line)); w > width {
			width = w
		}
	}

	var frames []string
	for col := 0; col < width; col += 3 {
		frame := make([]string, len(lines))
		for i, line := range lines {
			prefix, rest := splitVisible(line, col)
			frame[i] = prefix + silhouette(rest, caps)
		}
		frames = append(frames, strings.Join(frame, "\n"))
	}
	return frames
}

// silhouette strips a line of its colors and re-wraps it in the dim
// token. With color disabled it degrades to the plain stripped text.
func silhouette(line string, caps term.Profile) string {
	stripped := term.Strip(line)
	if stripped == "" {
		return ""
	}
	return palette.Colorize(stripped, palette.TokenDim, palette.Options{Caps: caps})
}

// splitVisible cuts line at a visible-column boundary. Escape sequences
// carry no width and are copied whole into the prefix, never cut. A wide
// rune straddling the boundary stays in the remainder.
func splitVisible(line string, cols int) (prefix, rest string) {
	if cols <= 0 {
		return "", line
	}

	var b strings.Builder
	width := 0
	i := 0
	for i < len(line) {
		if line[i] == 0x1b {
			j := i + 1
			if j < len(line) && line[j] == '[' {
				j++
				for j < len(line) {
					c := line[j]
					j++
					if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
						break
					}
				}
			}
			b.WriteString(line[i:j])
			i = j
			continue
		}

		if width >= cols {
			break
		}
		r, size := utf8.DecodeRuneInString(line[i:])
		w := runewidth.RuneWidth(r)
		if width+w > cols {
			break
		}
		b.WriteString(line[i : i+size])
		width += w
		i += size
	}
	return b.String(), line[i:]
}
