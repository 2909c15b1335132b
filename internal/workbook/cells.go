package workbook

import (
	"strconv"
	"strings"

	"github.com/sapops/dailyaudit/internal/models"
)

// Column positions within a data row (0-indexed). Sheets put the Y/N
// verdict in columns D/E, a numeric reading in D/E/F depending on layout,
// and the free-text status/justification in column G.
const (
	colResponseFirst = 3 // D
	colResponseLast  = 4 // E
	colMetricLast    = 5 // F
	colJustification = 6 // G
)

// cellAt safely reads a cell; rows from the sheet reader are ragged.
func cellAt(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

// isEmptyRow reports whether the row has no content at all.
func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// joinText concatenates non-empty cells for pattern matching.
func joinText(row []string) string {
	var parts []string
	for _, cell := range row {
		if trimmed := strings.TrimSpace(cell); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, " ")
}

// rowContext returns the first cells of a row for finding context.
func rowContext(row []string) string {
	end := 4
	if end > len(row) {
		end = len(row)
	}
	return joinText(row[:end])
}

// parseResponse reads the analyst's Y/N verdict from columns D/E.
// An N anywhere wins over a Y: a split verdict means something failed.
func parseResponse(row []string) models.Response {
	sawYes := false
	for idx := colResponseFirst; idx <= colResponseLast; idx++ {
		switch strings.ToUpper(strings.TrimSpace(cellAt(row, idx))) {
		case "N":
			return models.ResponseNo
		case "Y":
			sawYes = true
		}
	}
	if sawYes {
		return models.ResponseYes
	}
	return models.ResponseBlank
}

// parseJustification reads the status column, filtering whitespace-only
// and non-breaking-space-only content that Excel leaves behind.
func parseJustification(row []string) string {
	status := strings.TrimSpace(strings.ReplaceAll(cellAt(row, colJustification), "\u00a0", " "))
	return status
}

// parseMetric extracts the first parseable numeric value from columns
// D through F. Offshore sheets mix decimal formats, so commas are treated
// as decimal separators and embedded spaces are dropped.
func parseMetric(row []string) *float64 {
	for idx := colResponseFirst; idx <= colMetricLast; idx++ {
		val := strings.TrimSpace(cellAt(row, idx))
		if val == "" {
			continue
		}
		cleaned := strings.ReplaceAll(strings.ReplaceAll(val, " ", ""), ",", ".")
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			continue
		}
		return &f
	}
	return nil
}
