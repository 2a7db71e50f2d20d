package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6366F1"))
	secretStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
)

// strengthColors follow the score buckets 0..4.
var strengthColors = []lipgloss.Color{
	lipgloss.Color("#EF4444"),
	lipgloss.Color("#F97316"),
	lipgloss.Color("#EAB308"),
	lipgloss.Color("#84CC16"),
	lipgloss.Color("#22C55E"),
}

func strengthStyle(score int) lipgloss.Style {
	if score < 0 || score >= len(strengthColors) {
		return helpStyle
	}
	return lipgloss.NewStyle().Foreground(strengthColors[score])
}
