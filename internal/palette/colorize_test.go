package palette

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/flowviz/flowviz/internal/term"
)

var (
	capsTrueColor = term.Profile{Color: true, TrueColor: true, Unicode: true}
	caps256       = term.Profile{Color: true, Unicode: true}
	capsNoColor   = term.Profile{}
)

func TestColorize_NoColorIsByteIdentical(t *testing.T) {
	inputs := []string{"", "plain", "label with spaces", "✓ unicode", "\x1b[1malready styled\x1b[0m"}
	keys := []Category{CategoryAgent, CategoryTool, TokenDim, TokenGreen, "unknown"}
	flags := []Options{
		{},
		{Bold: true},
		{Dim: true},
		{Italic: true},
		{Bold: true, Dim: true, Italic: true},
	}

	for _, input := range inputs {
		for _, key := range keys {
			for _, o := range flags {
				o.Caps = capsNoColor
				assert.Equal(t, input, Colorize(input, key, o),
					"color off must bypass byte-identically (key=%s)", key)
			}
		}
	}
}

func TestColorize_TrueColorSequence(t *testing.T) {
	got := Colorize("X", TokenGreen, Options{Caps: capsTrueColor})
	assert.Equal(t, "\x1b[38;2;166;227;161mX\x1b[0m", got)
}

func TestColorize_QuantizedSequence(t *testing.T) {
	c := Lookup(TokenGreen)
	want := Quantize(c.RGB[0], c.RGB[1], c.RGB[2])

	got := Colorize("X", TokenGreen, Options{Caps: caps256})
	assert.Equal(t, "\x1b[38;5;"+strconv.Itoa(int(want))+"mX\x1b[0m", got)
	assert.NotContains(t, got, "38;2;", "256-color mode must not emit truecolor")
}

func TestColorize_FlagOrdering(t *testing.T) {
	got := Colorize("text", CategoryAgent, Options{Bold: true, Dim: true, Italic: true, Caps: capsTrueColor})

	boldAt := strings.Index(got, "\x1b[1m")
	dimAt := strings.Index(got, "\x1b[2m")
	italicAt := strings.Index(got, "\x1b[3m")
	colorAt := strings.Index(got, "\x1b[38;2;")
	textAt := strings.Index(got, "text")

	assert.GreaterOrEqual(t, boldAt, 0)
	assert.Greater(t, dimAt, boldAt, "dim follows bold")
	assert.Greater(t, italicAt, dimAt, "italic follows dim")
	assert.Greater(t, colorAt, italicAt, "color follows attributes")
	assert.Greater(t, textAt, colorAt, "text follows color")
	assert.True(t, strings.HasSuffix(got, term.Reset), "reset terminates the sequence")
}

func TestColorize_IndependentFlags(t *testing.T) {
	bold := Colorize("t", CategoryTool, Options{Bold: true, Caps: capsTrueColor})
	assert.Contains(t, bold, "\x1b[1m")
	assert.NotContains(t, bold, "\x1b[2m")
	assert.NotContains(t, bold, "\x1b[3m")

	dim := Colorize("t", CategoryTool, Options{Dim: true, Caps: capsTrueColor})
	assert.Contains(t, dim, "\x1b[2m")
	assert.NotContains(t, dim, "\x1b[1m")
}

func TestColorize_StripRoundTrip(t *testing.T) {
	keys := []Category{
		CategoryAgent, CategoryTool, CategoryHook, CategoryParam, CategoryEvent, CategoryNone,
		TokenDefault, TokenDim, TokenBright, TokenBorder, TokenSurface,
		TokenBackground, TokenGreen, TokenRed, TokenYellow,
	}
	flags := []Options{
		{},
		{Bold: true},
		{Dim: true},
		{Italic: true},
		{Bold: true, Italic: true},
		{Bold: true, Dim: true, Italic: true},
	}

	for _, caps := range []term.Profile{capsTrueColor, caps256} {
		for _, key := range keys {
			for _, o := range flags {
				o.Caps = caps
				got := Colorize("payload", key, o)
				assert.Equal(t, "payload", term.Strip(got),
					"strip(colorize(x)) must round-trip (key=%s truecolor=%v)", key, caps.TrueColor)
			}
		}
	}
}

func TestColorize_NestsWithoutReparsing(t *testing.T) {
	inner := Colorize("core", CategoryTool, Options{Caps: capsTrueColor})
	outer := Colorize(inner, TokenDim, Options{Dim: true, Caps: capsTrueColor})

	assert.Contains(t, outer, inner, "inner escapes must survive verbatim")
	assert.Equal(t, "core", term.Strip(outer))
}
