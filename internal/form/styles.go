package form

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset, https://catppuccin.com/palette
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
)

const labelWidth = 28

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(colorPink)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(colorMauve)
	nameStyle    = lipgloss.NewStyle().Foreground(colorText)
	descStyle    = lipgloss.NewStyle().Foreground(colorOverlay1)
	markerStyle  = lipgloss.NewStyle().Foreground(colorLavender)
	valueStyle   = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface1).Padding(0, 1)
	iconStyle    = lipgloss.NewStyle().Foreground(colorLavender)
	popupStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorLavender).Padding(0, 1)
)

var iconGlyphs = map[Icon]string{
	IconEyeOff: "⊘",
	IconEye:    "◉",
}

// Glyph returns the terminal glyph for an icon state.
func Glyph(i Icon) string {
	return iconGlyphs[i]
}
