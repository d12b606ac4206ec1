package render

import "github.com/charmbracelet/lipgloss"

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorSurface0 lipgloss.Color = "#313244"
	colorSurface1 lipgloss.Color = "#45475a"
)

// DefaultStylesheets covers the style ids used by the bundled documents.
func DefaultStylesheets() Stylesheets {
	return Stylesheets{
		"tab-bar":      lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderTop(true).BorderForeground(colorSurface1),
		"tab":          lipgloss.NewStyle().Padding(0, 2).Foreground(colorSubtext0),
		"tab:selected": lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(colorPink).Background(colorSurface0),
		"title":        lipgloss.NewStyle().Bold(true),
	}
}
