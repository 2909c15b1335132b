// Package reporter renders audit results for humans and machines.
// All reporters write to an injected io.Writer.
package reporter

import (
	"fmt"
	"io"
	"time"

	"github.com/sapops/dailyaudit/internal/models"
)

// MarkdownReporter generates the markdown audit report handed to the
// basis team each morning.
type MarkdownReporter struct {
	writer io.Writer
	now    func() time.Time
}

// NewMarkdownReporter creates a new markdown reporter.
func NewMarkdownReporter(writer io.Writer) *MarkdownReporter {
	return &MarkdownReporter{
		writer: writer,
		now:    time.Now,
	}
}

// SetClock overrides the timestamp source. Used by tests; the audit
// result itself carries no timestamps.
func (r *MarkdownReporter) SetClock(now func() time.Time) {
	r.now = now
}

// Generate renders the full markdown report.
func (r *MarkdownReporter) Generate(result *models.AuditResult) error {
	r.printf("# Audit Report - %s\n\n", result.SourceFile)
	r.printf("**Generated:** %s\n", r.now().Format("2006-01-02 15:04:05"))
	r.printCustomerLine(result)
	r.printf("\n")

	r.printExecutiveSummary(result)
	r.printMetadata(result)
	r.printFindings(result)
	r.printNotes(result)
	r.printRecommendations(result)

	return nil
}

func (r *MarkdownReporter) printCustomerLine(result *models.AuditResult) {
	if result.Customer == "" {
		r.printf("**Customer:** unknown (default thresholds)\n")
		return
	}
	if result.DefaultConfigApplied {
		r.printf("**Customer:** %s (default thresholds)\n", result.Customer)
		return
	}
	r.printf("**Customer:** %s\n", result.Customer)
}

func (r *MarkdownReporter) printExecutiveSummary(result *models.AuditResult) {
	s := result.Summary

	r.printf("## Executive Summary\n\n")
	r.printf("- Systems checked: %d\n", s.SystemsChecked)
	r.printf("- Critical findings: %d\n", s.CriticalCount)
	r.printf("- Warnings: %d\n", s.WarningCount)
	r.printf("- Justified exceptions: %d\n", s.PassCount)

	if result.Trend != nil {
		r.printf("- Trend: %s (%+.1f%% vs run of %s)\n",
			result.Trend.Direction,
			result.Trend.ChangePercent,
			result.Trend.ComparedWith.Format("2006-01-02"))
	}

	if s.TotalIssues == 0 {
		r.printf("\nAll checks clean. No action required.\n")
	}
	r.printf("\n")
}

func (r *MarkdownReporter) printMetadata(result *models.AuditResult) {
	r.printf("## Check Metadata\n\n")
	r.printf("| System | Date | Time | Performed By |\n")
	r.printf("|--------|------|------|--------------|\n")
	for _, system := range result.SheetOrder {
		meta := result.Metadata[system]
		r.printf("| %s | %s | %s | %s |\n",
			system, orDash(meta.Date), orDash(meta.Time), orDash(meta.PerformedBy))
	}
	r.printf("\n")
}

func (r *MarkdownReporter) printFindings(result *models.AuditResult) {
	r.printf("## Per-System Findings\n\n")

	for _, system := range result.SheetOrder {
		r.printf("### %s\n\n", system)

		findings := models.FindingsForSystem(result.Findings, system)
		if len(findings) == 0 {
			r.printf("No findings.\n\n")
			continue
		}

		for _, f := range findings {
			r.printf("- %s Row %d: %s\n", severityTag(f.Severity), f.Row, f.Message)
		}
		r.printf("\n")
	}
}

func (r *MarkdownReporter) printNotes(result *models.AuditResult) {
	if len(result.Notes) == 0 {
		return
	}

	r.printf("## Incomplete Data\n\n")
	for _, n := range result.Notes {
		r.printf("- %s row %d (%s): %s\n", n.System, n.Row, n.CheckType, n.Message)
	}
	r.printf("\n")
}

func (r *MarkdownReporter) printRecommendations(result *models.AuditResult) {
	recs := Recommendations(result)
	if len(recs) == 0 {
		return
	}

	r.printf("## Recommendations\n\n")
	for _, rec := range recs {
		r.printf("- %s\n", rec)
	}
	r.printf("\n")
}

func (r *MarkdownReporter) printf(format string, args ...interface{}) {
	fmt.Fprintf(r.writer, format, args...)
}

func severityTag(s models.Severity) string {
	switch s {
	case models.SeverityCritical:
		return "[CRITICAL]"
	case models.SeverityWarning:
		return "[WARNING]"
	default:
		return "[OK]"
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Recommendations derives follow-up actions from which rules fired.
// Ordering is fixed so reports diff cleanly between runs.
func Recommendations(result *models.AuditResult) []string {
	byRule := result.Summary.IssuesByRule
	var recs []string

	if byRule[models.RuleMissingJustification] > 0 {
		recs = append(recs, "Ask the monitoring team to justify every negative (N) response before sign-off.")
	}
	if byRule[models.RuleBriefJustification] > 0 {
		recs = append(recs, "Expand brief justifications so the basis team can act without follow-up questions.")
	}
	if byRule[models.RuleFailedUpdates] > 0 {
		recs = append(recs, "Process pending SM13 update records immediately; failed updates block business documents.")
	}
	if byRule[models.RuleTRFCError] > 0 {
		recs = append(recs, "Investigate SM58 tRFC errors (CPICERR/SYSFAIL) and reprocess or delete stuck entries.")
	}
	if byRule[models.RuleResponseTime] > 0 {
		recs = append(recs, "Review SMLG response times with the performance team.")
	}
	if byRule[models.RuleDumpsToday] > 0 || byRule[models.RuleDumpsYesterday] > 0 {
		recs = append(recs, "Analyze recurring ST22 dumps and open incidents for the top dump sources.")
	}
	if byRule[models.RuleFailedJobs] > 0 {
		recs = append(recs, "Check SM37 job logs for the failed jobs and reschedule where appropriate.")
	}
	if byRule[models.RuleOldLocks] > 0 {
		recs = append(recs, "Clear or document old SM12 locks; stale locks block follow-on processing.")
	}

	return recs
}
