package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/flowviz/flowviz/internal/ui"
)

// Footer styles. The frame itself carries its own escape sequences from
// the paint pass and is never restyled here.
var (
	footerTextStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)

	footerCountStyle = lipgloss.NewStyle().
				Foreground(ui.ColorPrimary).
				Bold(true)

	footerStyleStyle = lipgloss.NewStyle().
				Foreground(ui.ColorAccentMauve)
)

// renderView composes the current frame and the status footer.
func (m Model) renderView() string {
	var b strings.Builder

	frame := m.currentFrame()
	b.WriteString(frame)
	if !strings.HasSuffix(frame, "\n") {
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))

	if m.showHelp {
		return m.renderHelpOverlay(b.String())
	}
	return b.String()
}

// renderFooter renders the one-line status bar between the frame and
// the key hints.
func (m Model) renderFooter() string {
	sep := footerTextStyle.Render(" · ")

	parts := []string{
		footerTextStyle.Render("frame ") +
			footerCountStyle.Render(fmt.Sprintf("%d/%d", m.index+1, len(m.frames))),
		footerStyleStyle.Render(string(m.style)),
	}
	if m.source != "" {
		parts = append(parts, footerTextStyle.Render(m.source))
	}

	return strings.Join(parts, sep)
}
