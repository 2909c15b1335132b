package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/sapops/dailyaudit/internal/models"
)

var tableColumns = []table.Column{
	{Title: "Severity", Width: 10},
	{Title: "System", Width: 18},
	{Title: "Row", Width: 5},
	{Title: "Rule", Width: 24},
	{Title: "Message", Width: 44},
}

// buildRows converts findings to table rows.
func buildRows(findings []models.Finding) []table.Row {
	rows := make([]table.Row, 0, len(findings))
	for _, f := range findings {
		rows = append(rows, table.Row{
			severityLabel(f.Severity),
			truncate(f.System, tableColumns[1].Width),
			fmt.Sprintf("%d", f.Row),
			string(f.RuleID),
			truncate(f.Message, tableColumns[4].Width),
		})
	}
	return rows
}

func severityLabel(s models.Severity) string {
	switch s {
	case models.SeverityCritical:
		return "CRITICAL"
	case models.SeverityWarning:
		return "WARNING"
	case models.SeverityPass:
		return "OK"
	default:
		return string(s)
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	const ellipsis = "..."
	if maxLen <= len(ellipsis) {
		return s[:maxLen]
	}
	return s[:maxLen-len(ellipsis)] + ellipsis
}

// newTable creates a bubbles table with standard columns and styling.
func newTable(rows []table.Row, height int) table.Model {
	t := table.New(
		table.WithColumns(tableColumns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(colorAccent).
		Bold(false)
	t.SetStyles(s)

	return t
}
