package tui

import (
	"fmt"
	"strings"

	"github.com/sapops/dailyaudit/internal/models"
)

// headerHeight is the number of terminal lines the header occupies.
const headerHeight = 5

// renderHeader produces the header string from the audit summary.
func renderHeader(result *models.AuditResult, sparkline []int, width int) string {
	var b strings.Builder
	s := result.Summary

	// Line 1: title, source and customer
	b.WriteString(fmt.Sprintf("Daily Audit  %s", result.SourceFile))
	if result.Customer != "" {
		b.WriteString(fmt.Sprintf("  [%s]", result.Customer))
	}
	if result.Trend != nil {
		indicator := trendIndicator(result.Trend.Direction)
		b.WriteString(fmt.Sprintf("  %s %.1f%%", indicator, result.Trend.ChangePercent))
	}
	b.WriteString("\n")

	// Line 2: systems and total issues
	b.WriteString(fmt.Sprintf("Systems: %d  Issues: %d", s.SystemsChecked, s.TotalIssues))
	b.WriteString("\n")

	// Line 3: severity breakdown
	sevParts := make([]string, 0, 3)
	if s.CriticalCount > 0 {
		sevParts = append(sevParts, severityStyle("critical").Render(fmt.Sprintf("C:%d", s.CriticalCount)))
	}
	if s.WarningCount > 0 {
		sevParts = append(sevParts, severityStyle("warning").Render(fmt.Sprintf("W:%d", s.WarningCount)))
	}
	if s.PassCount > 0 {
		sevParts = append(sevParts, severityStyle("pass").Render(fmt.Sprintf("OK:%d", s.PassCount)))
	}
	if len(sevParts) > 0 {
		b.WriteString(strings.Join(sevParts, "  "))
	}
	b.WriteString("\n")

	// Line 4: sparkline over recent runs
	if len(sparkline) > 0 {
		b.WriteString("Trend: ")
		b.WriteString(renderSparkline(sparkline))
	}

	return styleHeader.Width(width).Render(b.String())
}

func trendIndicator(direction string) string {
	switch direction {
	case "improving":
		return "↓"
	case "degrading":
		return "↑"
	default:
		return "→"
	}
}

// renderSparkline converts an int slice to a unicode sparkline string.
func renderSparkline(values []int) string {
	if len(values) == 0 {
		return ""
	}

	bars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	var b strings.Builder
	for _, v := range values {
		if max == min {
			b.WriteRune(bars[len(bars)/2])
		} else {
			normalized := float64(v-min) / float64(max-min)
			idx := int(normalized * float64(len(bars)-1))
			b.WriteRune(bars[idx])
		}
	}

	b.WriteString(fmt.Sprintf(" [%d→%d]", values[0], values[len(values)-1]))
	return b.String()
}
