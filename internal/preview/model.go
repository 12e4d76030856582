// Package preview implements the interactive frame stepper. It holds
// the same reveal sequence the player animates, but hands the clock to
// the keyboard: step forward and back, jump to either end, restart, and
// switch reveal styles without leaving the terminal.
package preview

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/flowviz/flowviz/internal/reveal"
	"github.com/flowviz/flowviz/internal/term"
)

// Options configures a preview session.
type Options struct {
	Style   reveal.Style // initial reveal style, StyleTopDown when empty
	Stagger int          // top-down row stride
	Caps    term.Profile // gates color and glyphs in regenerated frames
	Source  string       // diagram name shown in the footer, usually the file path
}

// Model is the Bubble Tea model for the frame stepper.
type Model struct {
	final   string // colorized complete diagram, independent of style
	frames  []string
	index   int
	style   reveal.Style
	stagger int
	caps    term.Profile
	source  string

	width    int
	height   int
	help     help.Model
	showHelp bool
	quitting bool
}

// NewModel creates a stepper over the reveal sequence of finalFrame.
func NewModel(finalFrame string, opts Options) Model {
	style := opts.Style
	if style == "" {
		style = reveal.StyleTopDown
	}

	m := Model{
		final:   finalFrame,
		style:   style,
		stagger: opts.Stagger,
		caps:    opts.Caps,
		source:  opts.Source,
		help:    newHelpModel(),
	}
	m.frames = reveal.Generate(m.final, m.style, m.stagger, m.caps)
	return m
}

// Init implements tea.Model. The stepper is clocked entirely by the
// keyboard, so there is nothing to start.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the current frame with the status footer, or the help
// overlay when it is open.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderView()
}

// currentFrame returns the frame at the cursor.
func (m Model) currentFrame() string {
	if m.index < 0 || m.index >= len(m.frames) {
		return ""
	}
	return m.frames[m.index]
}

// regenerate rebuilds the frame sequence for the active style and moves
// the cursor back to the start.
func (m *Model) regenerate() {
	m.frames = reveal.Generate(m.final, m.style, m.stagger, m.caps)
	m.index = 0
}
