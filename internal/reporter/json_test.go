package reporter

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sapops/dailyaudit/internal/models"
)

func TestJSONReport(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONReporter(&buf, true).Generate(fixtureResult()); err != nil {
		t.Fatalf("generate: %v", err)
	}

	var decoded models.AuditResult
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.SourceFile != "TBS_DAILY_MONITORING_20_JAN_2026.xlsx" {
		t.Fatalf("source file = %q", decoded.SourceFile)
	}
	if len(decoded.Findings) != 3 {
		t.Fatalf("expected 3 findings, got %d", len(decoded.Findings))
	}
	if decoded.Summary.CriticalCount != 1 {
		t.Fatalf("summary = %+v", decoded.Summary)
	}
}

func TestJSONReportCompact(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONReporter(&buf, false).Generate(fixtureResult()); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if bytes.Count(bytes.TrimSpace(buf.Bytes()), []byte("\n")) != 0 {
		t.Error("compact output should be a single line")
	}
}

func TestJSONSummaryOnly(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONReporter(&buf, true).GenerateSummaryOnly(fixtureResult()); err != nil {
		t.Fatalf("generate: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, found := decoded["findings"]; found {
		t.Error("summary output must not carry per-row findings")
	}
	if _, found := decoded["summary"]; !found {
		t.Error("summary output missing summary block")
	}
}
