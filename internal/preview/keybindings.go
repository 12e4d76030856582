package preview

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flowviz/flowviz/internal/reveal"
)

// Key bindings as constants for consistency.
const (
	KeyQuit       = "q"
	KeyQuitAlt    = "ctrl+c"
	KeyNext       = "right"
	KeyNextL      = "l"
	KeyNextSpace  = " "
	KeyPrev       = "left"
	KeyPrevH      = "h"
	KeyFirst      = "home"
	KeyLast       = "end"
	KeyRestart    = "r"
	KeyCycleStyle = "s"
	KeyToggleHelp = "?"
	KeyCloseHelp  = "esc"
)

// keyMap groups the bindings for the help bubble.
type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	First      key.Binding
	Last       key.Binding
	Restart    key.Binding
	CycleStyle key.Binding
	ToggleHelp key.Binding
	Quit       key.Binding
}

// ShortHelp returns the bindings shown in the one-line footer hint.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.CycleStyle, k.ToggleHelp, k.Quit}
}

// FullHelp returns the binding rows for the expanded help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.First, k.Last},
		{k.Restart, k.CycleStyle},
		{k.ToggleHelp, k.Quit},
	}
}

// keys is the stepper keymap, built from the same strings HandleKeyMsg
// matches on.
var keys = keyMap{
	Next: key.NewBinding(
		key.WithKeys(KeyNext, KeyNextL, KeyNextSpace),
		key.WithHelp("→/l", "next"),
	),
	Prev: key.NewBinding(
		key.WithKeys(KeyPrev, KeyPrevH),
		key.WithHelp("←/h", "prev"),
	),
	First: key.NewBinding(
		key.WithKeys(KeyFirst),
		key.WithHelp("home", "first"),
	),
	Last: key.NewBinding(
		key.WithKeys(KeyLast),
		key.WithHelp("end", "last"),
	),
	Restart: key.NewBinding(
		key.WithKeys(KeyRestart),
		key.WithHelp("r", "restart"),
	),
	CycleStyle: key.NewBinding(
		key.WithKeys(KeyCycleStyle),
		key.WithHelp("s", "style"),
	),
	ToggleHelp: key.NewBinding(
		key.WithKeys(KeyToggleHelp),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys(KeyQuit, KeyQuitAlt),
		key.WithHelp("q", "quit"),
	),
}

// styleOrder is the cycle the s key walks through.
var styleOrder = []reveal.Style{
	reveal.StyleTopDown,
	reveal.StyleFadeIn,
	reveal.StyleLeftRight,
}

// HandleKeyMsg processes keyboard input and returns updated model state
// and command. Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	k := msg.String()

	// Help toggle takes priority
	if k == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}

	// If help is showing, Esc closes it
	if m.showHelp && k == KeyCloseHelp {
		m.showHelp = false
		return true, nil
	}

	switch k {
	case KeyQuit, KeyQuitAlt:
		m.quitting = true
		return true, tea.Quit

	case KeyNext, KeyNextL, KeyNextSpace:
		if m.index < len(m.frames)-1 {
			m.index++
		}
		return true, nil

	case KeyPrev, KeyPrevH:
		if m.index > 0 {
			m.index--
		}
		return true, nil

	case KeyFirst:
		m.index = 0
		return true, nil

	case KeyLast:
		if len(m.frames) > 0 {
			m.index = len(m.frames) - 1
		}
		return true, nil

	case KeyRestart:
		m.index = 0
		return true, nil

	case KeyCycleStyle:
		m.style = nextStyle(m.style)
		m.regenerate()
		return true, nil
	}

	return false, nil
}

// nextStyle advances through styleOrder, wrapping at the end.
func nextStyle(s reveal.Style) reveal.Style {
	for i, cur := range styleOrder {
		if cur == s {
			return styleOrder[(i+1)%len(styleOrder)]
		}
	}
	return styleOrder[0]
}
