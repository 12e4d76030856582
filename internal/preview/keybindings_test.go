package preview

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/flowviz/flowviz/internal/reveal"
)

func TestKeyMap_ShortHelp(t *testing.T) {
	help := keys.ShortHelp()

	// Should return the key bindings for short help view
	assert.NotEmpty(t, help)
	assert.Len(t, help, 5) // Next, Prev, CycleStyle, ToggleHelp, Quit
}

func TestKeyMap_FullHelp(t *testing.T) {
	help := keys.FullHelp()

	// Should return the key bindings for full help view
	assert.NotEmpty(t, help)
	assert.Len(t, help, 3) // Three rows of bindings
}

func TestKeys_MatchConstants(t *testing.T) {
	assert.Equal(t, []string{KeyQuit, KeyQuitAlt}, keys.Quit.Keys())
	assert.Equal(t, []string{KeyNext, KeyNextL, KeyNextSpace}, keys.Next.Keys())
	assert.Equal(t, []string{KeyPrev, KeyPrevH}, keys.Prev.Keys())
	assert.Equal(t, []string{KeyCycleStyle}, keys.CycleStyle.Keys())
	assert.Equal(t, []string{KeyToggleHelp}, keys.ToggleHelp.Keys())
}

func TestNextStyle(t *testing.T) {
	tests := []struct {
		current reveal.Style
		next    reveal.Style
	}{
		{reveal.StyleTopDown, reveal.StyleFadeIn},
		{reveal.StyleFadeIn, reveal.StyleLeftRight},
		{reveal.StyleLeftRight, reveal.StyleTopDown}, // Wraps around
		{reveal.Style("bogus"), reveal.StyleTopDown}, // Unknown resets
	}

	for _, tt := range tests {
		t.Run(string(tt.current), func(t *testing.T) {
			assert.Equal(t, tt.next, nextStyle(tt.current))
		})
	}
}

func TestHandleKeyMsg_CycleStyleRegenerates(t *testing.T) {
	m := newTestModel()

	// Step partway in so the cursor reset is observable
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, m.index)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	assert.Equal(t, reveal.StyleFadeIn, m.style)
	assert.Len(t, m.frames, 4)
	assert.Equal(t, 0, m.index)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	assert.Equal(t, reveal.StyleLeftRight, m.style)
	assert.Len(t, m.frames, 2)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	assert.Equal(t, reveal.StyleTopDown, m.style)
	assert.Len(t, m.frames, 6)
}

func TestHandleKeyMsg_UnhandledKey(t *testing.T) {
	m := newTestModel()

	handled, cmd := m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})

	assert.False(t, handled)
	assert.Nil(t, cmd)
	assert.Equal(t, 0, m.index)
}

func TestHandleKeyMsg_EscWithoutHelpIsUnhandled(t *testing.T) {
	m := newTestModel()

	handled, _ := m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, handled)
}

func TestHandleKeyMsg_QuitWhileHelpOpen(t *testing.T) {
	m := newTestModel()

	handled, _ := m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.True(t, handled)
	assert.True(t, m.showHelp)

	handled, cmd := m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.True(t, handled)
	assert.NotNil(t, cmd)
	assert.True(t, m.quitting)
}

func TestHandleKeyMsg_SteppingWorksWhileHelpOpen(t *testing.T) {
	m := newTestModel()

	m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	m.HandleKeyMsg(tea.KeyMsg{Type: tea.KeyRight})

	assert.Equal(t, 1, m.index)
	assert.True(t, m.showHelp)
}
