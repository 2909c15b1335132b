package tui

import (
	"fmt"
	"strings"

	"github.com/sapops/dailyaudit/internal/models"
)

// detailHeight is the fixed number of lines for the detail panel.
const detailHeight = 5

// renderDetail produces the detail view for a selected finding.
func renderDetail(f *models.Finding, width int) string {
	if f == nil {
		return styleDetailPanel.Width(width).Render("No finding selected")
	}

	var b strings.Builder

	sevStyled := severityStyle(string(f.Severity)).Render(strings.ToUpper(string(f.Severity)))
	b.WriteString(fmt.Sprintf("%s  %s / %s  (row %d)\n", sevStyled, f.System, f.RuleID, f.Row))
	b.WriteString(fmt.Sprintf("Check: %s\n", f.CheckType))
	b.WriteString(fmt.Sprintf("%s\n", f.Message))

	if f.Context != "" {
		b.WriteString(fmt.Sprintf("Context: %s", f.Context))
	}

	return styleDetailPanel.Width(width).Render(b.String())
}
