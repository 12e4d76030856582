package palette

import (
	"fmt"
	"strings"

	"github.com/flowviz/flowviz/internal/term"
)

// SGR attribute prefixes. Each is independently toggleable and always
// precedes the color sequence.
const (
	sgrBold   = "\x1b[1m"
	sgrDim    = "\x1b[2m"
	sgrItalic = "\x1b[3m"
)

// Options control how Colorize styles its text.
type Options struct {
	Bold   bool
	Dim    bool
	Italic bool
	Caps   term.Profile
}

// Colorize wraps text in the escape sequences for the given category or
// token. With color disabled it returns text unchanged, byte for byte.
// Attribute flags are emitted before the color, the color before the text,
// and a full reset after it. Text already containing escape sequences is
// nested verbatim; nothing is re-parsed.
func Colorize(text string, key Category, o Options) string {
	if !o.Caps.Color {
		return text
	}

	var b strings.Builder
	if o.Bold {
		b.WriteString(sgrBold)
	}
	if o.Dim {
		b.WriteString(sgrDim)
	}
	if o.Italic {
		b.WriteString(sgrItalic)
	}

	c := Lookup(key)
	if o.Caps.TrueColor {
		fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm", c.RGB[0], c.RGB[1], c.RGB[2])
	} else {
		fmt.Fprintf(&b, "\x1b[38;5;%dm", Quantize(c.RGB[0], c.RGB[1], c.RGB[2]))
	}

	b.WriteString(text)
	b.WriteString(term.Reset)
	return b.String()
}
