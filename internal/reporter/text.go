package reporter

import (
	"fmt"
	"io"

	"github.com/sapops/dailyaudit/internal/models"
)

// TextReporter generates human-readable terminal output.
type TextReporter struct {
	writer io.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(writer io.Writer) *TextReporter {
	return &TextReporter{
		writer: writer,
	}
}

// Generate creates a text report from the audit result.
func (r *TextReporter) Generate(result *models.AuditResult) error {
	r.printHeader()
	r.printf("Report: %s\n", result.SourceFile)
	if result.Customer != "" {
		r.printf("Customer: %s", result.Customer)
		if result.DefaultConfigApplied {
			r.printf(" (default thresholds)")
		}
		r.printf("\n")
	}
	r.printf("\n")

	r.printSummary(result)
	r.printSystems(result)

	if len(result.Notes) > 0 {
		r.printf("\nIncomplete data:\n")
		for _, n := range result.Notes {
			r.printf("  %s row %d: %s\n", n.System, n.Row, n.Message)
		}
	}

	if result.Trend != nil {
		r.printf("\nTrend: %s (%+.1f%% vs %s)\n",
			result.Trend.Direction,
			result.Trend.ChangePercent,
			result.Trend.ComparedWith.Format("2006-01-02"))
	}

	return nil
}

func (r *TextReporter) printHeader() {
	r.printf("╔════════════════════════════════════════════╗\n")
	r.printf("║         Daily Monitoring Audit             ║\n")
	r.printf("╚════════════════════════════════════════════╝\n\n")
}

func (r *TextReporter) printSummary(result *models.AuditResult) {
	s := result.Summary
	r.printf("Summary:\n")
	r.printf("--------------------------------------------------\n")
	r.printf("  Systems checked: %d\n", s.SystemsChecked)
	r.printf("  Critical: %d  Warnings: %d  Justified: %d\n",
		s.CriticalCount, s.WarningCount, s.PassCount)
	if s.TotalIssues == 0 {
		r.printf("  All checks clean.\n")
	}
	r.printf("\n")
}

func (r *TextReporter) printSystems(result *models.AuditResult) {
	for _, system := range result.SheetOrder {
		findings := models.FindingsForSystem(result.Findings, system)

		r.printf("%s\n", system)
		r.printf("--------------------------------------------------\n")
		if len(findings) == 0 {
			r.printf("  no findings\n\n")
			continue
		}
		for _, f := range findings {
			r.printf("  %-10s row %-4d %s\n", severityTag(f.Severity), f.Row, f.Message)
		}
		r.printf("\n")
	}
}

func (r *TextReporter) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.writer, format, args...)
}
