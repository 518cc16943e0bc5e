package tui

import "github.com/charmbracelet/lipgloss"

var (
	mutedColor  = lipgloss.Color("245")
	accentColor = lipgloss.Color("#8fd6c9")

	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)

	itemStyle         = lipgloss.NewStyle().PaddingLeft(2)
	selectedItemStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Bold(true).
				Foreground(accentColor).
				BorderStyle(lipgloss.NormalBorder()).
				BorderLeft(true).
				BorderForeground(accentColor)

	valueStyle  = lipgloss.NewStyle().Foreground(mutedColor)
	footerStyle = lipgloss.NewStyle().Foreground(mutedColor).MarginTop(1)
	emptyStyle  = lipgloss.NewStyle().Foreground(mutedColor).Italic(true).PaddingLeft(2)
)

// swatch renders a two-cell block filled with a hex color.
func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
}
