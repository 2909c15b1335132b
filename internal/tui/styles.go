package tui

import "github.com/charmbracelet/lipgloss"

// Severity colors
var (
	colorCritical = lipgloss.Color("#FF0000")
	colorWarning  = lipgloss.Color("#FFFF00")
	colorPass     = lipgloss.Color("#00FF00")
	colorMuted    = lipgloss.Color("#888888")
	colorAccent   = lipgloss.Color("#7B68EE")
	colorBorder   = lipgloss.Color("#444444")
)

// Panel styles
var (
	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder)

	styleDetailPanel = lipgloss.NewStyle().
				Padding(0, 1).
				BorderStyle(lipgloss.NormalBorder()).
				BorderTop(true).
				BorderForeground(colorBorder)

	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	styleSearchPrompt = lipgloss.NewStyle().
				Foreground(colorAccent).Bold(true)
)

// severityStyle returns the lipgloss style for a severity level.
func severityStyle(severity string) lipgloss.Style {
	switch severity {
	case "critical":
		return lipgloss.NewStyle().Foreground(colorCritical).Bold(true)
	case "warning":
		return lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	case "pass":
		return lipgloss.NewStyle().Foreground(colorPass)
	default:
		return lipgloss.NewStyle()
	}
}
