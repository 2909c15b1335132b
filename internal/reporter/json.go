package reporter

import (
	"encoding/json"
	"io"

	"github.com/sapops/dailyaudit/internal/models"
)

// JSONReporter generates machine-readable JSON reports.
type JSONReporter struct {
	writer io.Writer
	pretty bool
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(writer io.Writer, pretty bool) *JSONReporter {
	return &JSONReporter{
		writer: writer,
		pretty: pretty,
	}
}

// Generate writes the complete audit result as JSON.
func (r *JSONReporter) Generate(result *models.AuditResult) error {
	var data []byte
	var err error

	if r.pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}
	if err != nil {
		return err
	}

	if _, err = r.writer.Write(data); err != nil {
		return err
	}

	// Trailing newline for terminal output
	_, err = r.writer.Write([]byte("\n"))
	return err
}

// GenerateSummaryOnly writes a compact summary without per-row findings.
func (r *JSONReporter) GenerateSummaryOnly(result *models.AuditResult) error {
	summary := struct {
		SourceFile string         `json:"source_file"`
		Customer   string         `json:"customer,omitempty"`
		Summary    models.Summary `json:"summary"`
		Trend      *models.Trend  `json:"trend,omitempty"`
	}{
		SourceFile: result.SourceFile,
		Customer:   result.Customer,
		Summary:    result.Summary,
		Trend:      result.Trend,
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return err
	}

	if _, err = r.writer.Write(data); err != nil {
		return err
	}
	_, err = r.writer.Write([]byte("\n"))
	return err
}
