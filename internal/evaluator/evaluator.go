// Package evaluator applies the monitoring rule table to parsed sheet
// rows, producing severity-classified findings and incomplete-data notes.
package evaluator

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sapops/dailyaudit/internal/customer"
	"github.com/sapops/dailyaudit/internal/models"
)

// briefJustificationRunes is the length below which a justification is
// flagged as too thin to act on.
const briefJustificationRunes = 10

// Result holds everything the rule table produced for one sheet.
type Result struct {
	Findings []models.Finding
	Notes    []models.Note
}

// EvaluateSheet runs every rule against the rows of one system sheet.
// Findings come out in row order; a single row can produce both a
// justification finding and a metric finding.
func EvaluateSheet(system string, rows []models.Row, cfg customer.Configuration) Result {
	var res Result

	for _, row := range rows {
		res.Findings = append(res.Findings, evaluateResponse(system, row)...)
		res.Findings = append(res.Findings, evaluateMetric(system, row, cfg)...)

		if row.ExpectsMetric && row.Metric == nil {
			res.Notes = append(res.Notes, models.Note{
				System:    system,
				Row:       row.Number,
				CheckType: row.CheckType,
				Message:   "expected a numeric reading but the cell is empty",
			})
		}
	}

	return res
}

// evaluateResponse handles the Y/N verdict column. An N must carry a
// justification; a justified N is recorded as an explicit pass so the
// report shows the exception was reviewed.
func evaluateResponse(system string, row models.Row) []models.Finding {
	if row.Response != models.ResponseNo {
		return nil
	}

	base := models.Finding{
		System:    system,
		Row:       row.Number,
		CheckType: row.CheckType,
		Context:   row.Context,
	}

	switch {
	case row.Justification == "":
		base.Severity = models.SeverityCritical
		base.RuleID = models.RuleMissingJustification
		base.Message = "Negative (N) response without justification"
	case utf8.RuneCountInString(row.Justification) < briefJustificationRunes:
		base.Severity = models.SeverityWarning
		base.RuleID = models.RuleBriefJustification
		base.Message = fmt.Sprintf("Justification too brief to act on: %q", row.Justification)
	default:
		base.Severity = models.SeverityPass
		base.RuleID = models.RuleMissingJustification
		base.Message = fmt.Sprintf("Negative response justified: %s", row.Justification)
	}

	return []models.Finding{base}
}

// evaluateMetric applies the per-check numeric rules. Threshold rules
// use strict comparison: a reading equal to the configured max passes.
// A justification suppresses threshold warnings but never the critical
// rules for failed updates and tRFC errors.
func evaluateMetric(system string, row models.Row, cfg customer.Configuration) []models.Finding {
	base := models.Finding{
		System:    system,
		Row:       row.Number,
		CheckType: row.CheckType,
		Context:   row.Context,
	}

	switch row.CheckType {
	case models.CheckFailedUpdates:
		if row.Metric != nil && *row.Metric > 0 {
			base.Severity = models.SeverityCritical
			base.RuleID = models.RuleFailedUpdates
			base.Message = fmt.Sprintf("SM13 shows %s failed update(s) pending", formatCount(*row.Metric))
			return []models.Finding{base}
		}

	case models.CheckTRFC:
		if code := trfcErrorCode(row.Text); code != "" {
			// A zero count means the queue entry cleared; anything else,
			// including an unreadable count, is treated as live.
			if row.Metric == nil || *row.Metric > 0 {
				base.Severity = models.SeverityCritical
				base.RuleID = models.RuleTRFCError
				base.Message = fmt.Sprintf("tRFC error status %s in SM58", code)
				return []models.Finding{base}
			}
		}

	case models.CheckResponseTime:
		if row.Metric != nil && *row.Metric > cfg.ResponseTimeMaxMs && row.Justification == "" {
			base.Severity = models.SeverityWarning
			base.RuleID = models.RuleResponseTime
			base.Message = fmt.Sprintf("Average response time %sms exceeds limit of %sms",
				formatCount(*row.Metric), formatCount(cfg.ResponseTimeMaxMs))
			return []models.Finding{base}
		}

	case models.CheckDumpsToday:
		if row.Metric != nil && *row.Metric > cfg.DumpsTodayMax && row.Justification == "" {
			base.Severity = models.SeverityWarning
			base.RuleID = models.RuleDumpsToday
			base.Message = fmt.Sprintf("%s ABAP dumps today exceeds limit of %s",
				formatCount(*row.Metric), formatCount(cfg.DumpsTodayMax))
			return []models.Finding{base}
		}

	case models.CheckDumpsYesterday:
		if row.Metric != nil && *row.Metric > cfg.DumpsYesterdayMax && row.Justification == "" {
			base.Severity = models.SeverityWarning
			base.RuleID = models.RuleDumpsYesterday
			base.Message = fmt.Sprintf("%s ABAP dumps yesterday exceeds limit of %s",
				formatCount(*row.Metric), formatCount(cfg.DumpsYesterdayMax))
			return []models.Finding{base}
		}

	case models.CheckFailedJobs:
		if row.Metric != nil && *row.Metric > cfg.FailedJobsMax && row.Justification == "" {
			base.Severity = models.SeverityWarning
			base.RuleID = models.RuleFailedJobs
			base.Message = fmt.Sprintf("%s failed job(s) exceeds limit of %s",
				formatCount(*row.Metric), formatCount(cfg.FailedJobsMax))
			return []models.Finding{base}
		}

	case models.CheckOldLocks:
		// Any lingering lock without an explanation needs a look; the
		// configured max is advisory context, not a gate.
		if row.Metric != nil && *row.Metric > 0 && row.Justification == "" {
			base.Severity = models.SeverityWarning
			base.RuleID = models.RuleOldLocks
			base.Message = fmt.Sprintf("%s old lock(s) without justification (configured max %s)",
				formatCount(*row.Metric), formatCount(cfg.OldLocksMax))
			return []models.Finding{base}
		}
	}

	return nil
}

// trfcErrorCode returns the SM58 error status present in the row text,
// or empty when the row shows no error code.
func trfcErrorCode(text string) string {
	upper := strings.ToUpper(text)
	for _, code := range []string{"CPICERR", "SYSFAIL"} {
		if strings.Contains(upper, code) {
			return code
		}
	}
	return ""
}

// formatCount renders a metric without a trailing .0 for whole numbers.
func formatCount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}
