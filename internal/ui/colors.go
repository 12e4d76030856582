package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Accent colors for branding and highlights. Same family as the diagram
// palette so CLI chrome and rendered diagrams read as one tool.
const (
	ColorAccentMauve lipgloss.Color = "#CBA6F7"
	ColorAccentBlue  lipgloss.Color = "#89B4FA"
	ColorAccentPeach lipgloss.Color = "#FAB387"
	ColorAccentTeal  lipgloss.Color = "#94E2D5"
	ColorSurface     lipgloss.Color = "#313244"
	ColorBorder      lipgloss.Color = "#45475A"
)

// Semantic colors for status indication.
const (
	ColorSuccess lipgloss.Color = "#A6E3A1"
	ColorError   lipgloss.Color = "#F38BA8"
	ColorWarning lipgloss.Color = "#F9E2AF"
	ColorInfo    lipgloss.Color = "#94E2D5"
)

// Text colors for content hierarchy.
const (
	ColorPrimary   lipgloss.Color = "#CDD6F4"
	ColorSecondary lipgloss.Color = "#89B4FA"
	ColorMuted     lipgloss.Color = "#6C7086"
)

// GradientColors runs across the header divider.
var GradientColors = []lipgloss.Color{
	ColorAccentMauve,
	ColorAccentBlue,
	ColorAccentTeal,
	ColorSuccess,
}

// SuccessStyle returns the style for success messages.
func SuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorSuccess)
}

// ErrorStyle returns the style for error messages.
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorError)
}

// WarningStyle returns the style for warnings.
func WarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorWarning)
}

// InfoStyle returns the style for informational messages.
func InfoStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorInfo)
}

// MutedStyle returns the style for secondary text.
func MutedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorMuted)
}

// PrintWarning prints a styled warning to stderr.
func PrintWarning(message string) {
	fmt.Fprintln(os.Stderr, WarningStyle().Render(SymbolWarning+" "+message))
}

// DisableColors switches lipgloss to monochrome output (for --no-color).
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
