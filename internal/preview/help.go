package preview

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/flowviz/flowviz/internal/ui"
)

// HelpBinding represents a single keyboard shortcut entry.
type HelpBinding struct {
	Key  string
	Desc string
}

// helpBindings defines all keyboard shortcuts shown in the help overlay.
var helpBindings = []HelpBinding{
	{Key: "→ / l / space", Desc: "Next frame"},
	{Key: "← / h", Desc: "Previous frame"},
	{Key: "Home", Desc: "Jump to first frame"},
	{Key: "End", Desc: "Jump to last frame"},
	{Key: "r", Desc: "Restart the reveal"},
	{Key: "s", Desc: "Cycle reveal style"},
	{Key: "?", Desc: "Toggle this help"},
	{Key: "q / Ctrl+C", Desc: "Quit"},
}

// Help overlay styles
var (
	helpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.ColorAccentMauve).
			Padding(1, 2)

	helpTitleStyle = lipgloss.NewStyle().
			Foreground(ui.ColorAccentMauve).
			Bold(true).
			MarginBottom(1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary).
			Bold(true).
			Width(16)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSecondary)
)

// newHelpModel builds the footer help bubble with the stepper palette.
func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(ui.ColorPrimary)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(ui.ColorMuted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(ui.ColorBorder)
	return h
}

// renderHelpOverlay renders a centered help box with keyboard shortcuts.
// Before the first WindowSizeMsg the terminal size is unknown, so the
// box is appended below the base content instead of centered over it.
func (m Model) renderHelpOverlay(base string) string {
	var lines []string
	lines = append(lines, helpTitleStyle.Render("Keyboard Shortcuts"))
	lines = append(lines, "")

	for _, binding := range helpBindings {
		lines = append(lines, helpKeyStyle.Render(binding.Key)+helpDescStyle.Render(binding.Desc))
	}

	lines = append(lines, "")
	lines = append(lines, footerTextStyle.Render("Press ? to close"))

	helpBox := helpBoxStyle.Render(strings.Join(lines, "\n"))

	if m.width < 1 || m.height < 1 {
		return base + "\n" + helpBox
	}

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		helpBox,
		lipgloss.WithWhitespaceChars(" "),
	)
}
