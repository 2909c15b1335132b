package workbook

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/sapops/dailyaudit/internal/models"
)

// Sheet layout constants. Rows 1-5 hold header metadata (system name,
// date, time, performed by); monitoring data starts at row 6.
const (
	metaRowCount = 5
	dataStartRow = 6
)

// Load opens an xlsx report file and parses every sheet in tab order.
func Load(path string) (*models.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	return parseFile(f, path)
}

// LoadReader parses an xlsx workbook from a reader. source is used for
// traceability in the result and in error messages.
func LoadReader(r io.Reader, source string) (*models.Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", source, err)
	}
	defer f.Close()

	return parseFile(f, source)
}

func parseFile(f *excelize.File, source string) (*models.Workbook, error) {
	wb := &models.Workbook{SourceFile: source}

	for _, name := range f.GetSheetList() {
		sheet, err := parseSheet(f, name)
		if err != nil {
			return nil, fmt.Errorf("parse sheet %q: %w", name, err)
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}

	return wb, nil
}

func parseSheet(f *excelize.File, name string) (models.Sheet, error) {
	cells, err := f.GetRows(name)
	if err != nil {
		return models.Sheet{}, err
	}

	sheet := models.Sheet{
		Name: name,
		Meta: extractMeta(cells),
	}

	// Track the current check section; header rows set it, data rows
	// below inherit it until the next section header.
	section := models.CheckUnknown

	for i := dataStartRow - 1; i < len(cells); i++ {
		row := cells[i]
		if isEmptyRow(row) {
			continue
		}

		text := joinText(row)
		if identified := IdentifyCheckType(text); identified != models.CheckUnknown {
			section = identified
		}

		check, expectsMetric := refineCheckType(section, text)

		sheet.Rows = append(sheet.Rows, models.Row{
			Number:        i + 1,
			CheckType:     check,
			Response:      parseResponse(row),
			Justification: parseJustification(row),
			Metric:        parseMetric(row),
			ExpectsMetric: expectsMetric,
			Text:          text,
			Context:       rowContext(row),
		})
	}

	return sheet, nil
}

// extractMeta pulls the informational header fields from the first rows
// of a sheet. Labels are matched loosely: sheets vary in wording and
// casing but keep label in column A, value in column B.
func extractMeta(cells [][]string) models.SheetMeta {
	var meta models.SheetMeta

	limit := metaRowCount
	if limit > len(cells) {
		limit = len(cells)
	}

	for i := 0; i < limit; i++ {
		row := cells[i]
		label := strings.ToLower(strings.TrimSpace(cellAt(row, 0)))
		value := strings.TrimSpace(cellAt(row, 1))
		if label == "" || value == "" {
			continue
		}

		switch {
		case strings.Contains(label, "system name"):
			meta.SystemName = value
		case strings.Contains(label, "performed by"):
			meta.PerformedBy = value
		case strings.Contains(label, "date"):
			meta.Date = value
		case strings.Contains(label, "time"):
			meta.Time = value
		}
	}

	return meta
}
