// Package auditor runs the full audit over a parsed workbook: structural
// validation first, then rule evaluation sheet by sheet, then aggregation
// into a single ordered result.
package auditor

import (
	"fmt"

	"github.com/sapops/dailyaudit/internal/customer"
	"github.com/sapops/dailyaudit/internal/evaluator"
	"github.com/sapops/dailyaudit/internal/models"
)

// Auditor audits workbooks against one resolved threshold configuration.
type Auditor struct {
	cfg customer.Configuration
}

// New returns an Auditor using the given thresholds.
func New(cfg customer.Configuration) *Auditor {
	return &Auditor{cfg: cfg}
}

// Audit evaluates every sheet of the workbook and aggregates the
// findings. The operation is all-or-nothing: any malformed sheet aborts
// the whole audit so a partial report can never be mistaken for a clean
// one. Audit is deterministic and sets no timestamps; running it twice
// on the same workbook yields identical results.
func (a *Auditor) Audit(wb *models.Workbook) (*models.AuditResult, error) {
	if len(wb.Sheets) == 0 {
		return nil, &EmptyWorkbookError{Source: wb.SourceFile}
	}

	// Validate every sheet before evaluating any.
	for _, sheet := range wb.Sheets {
		if reason := validateRows(sheet.Rows); reason != "" {
			return nil, &SheetMalformedError{Sheet: sheet.Name, Reason: reason}
		}
	}

	result := &models.AuditResult{
		SourceFile: wb.SourceFile,
		Metadata:   make(map[string]models.SheetMeta, len(wb.Sheets)),
	}

	for _, sheet := range wb.Sheets {
		system := systemName(sheet)
		result.SheetOrder = append(result.SheetOrder, system)
		result.Metadata[system] = sheet.Meta

		res := evaluator.EvaluateSheet(system, sheet.Rows, a.cfg)
		result.Findings = append(result.Findings, res.Findings...)
		result.Notes = append(result.Notes, res.Notes...)
	}

	result.Summary = models.Summarize(result.Findings, len(wb.Sheets))
	return result, nil
}

// systemName prefers the metadata header over the tab name; tabs are
// often abbreviated while the header carries the full system name.
func systemName(sheet models.Sheet) string {
	if sheet.Meta.SystemName != "" {
		return sheet.Meta.SystemName
	}
	return sheet.Name
}

// validateRows checks the structural invariants of a sheet's rows:
// positive strictly ascending row numbers, known check types, and a
// valid verdict value. Returns the first violation found, or "".
func validateRows(rows []models.Row) string {
	prev := 0
	for _, row := range rows {
		if row.Number < 1 {
			return fmt.Sprintf("row number %d out of range", row.Number)
		}
		if row.Number <= prev {
			return fmt.Sprintf("row number %d not ascending after %d", row.Number, prev)
		}
		prev = row.Number

		if !models.KnownCheckTypes[row.CheckType] {
			return fmt.Sprintf("row %d has unknown check type %q", row.Number, row.CheckType)
		}

		switch row.Response {
		case models.ResponseYes, models.ResponseNo, models.ResponseBlank:
		default:
			return fmt.Sprintf("row %d has invalid response %q", row.Number, row.Response)
		}
	}
	return ""
}
