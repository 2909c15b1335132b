package evaluator

import (
	"strings"
	"testing"

	"github.com/sapops/dailyaudit/internal/customer"
	"github.com/sapops/dailyaudit/internal/models"
)

func fl(v float64) *float64 { return &v }

func onlyFinding(t *testing.T, res Result) models.Finding {
	t.Helper()
	if len(res.Findings) != 1 {
		t.Fatalf("expected exactly one finding, got %d: %+v", len(res.Findings), res.Findings)
	}
	return res.Findings[0]
}

func TestNegativeResponseWithoutJustification(t *testing.T) {
	rows := []models.Row{{
		Number:    77,
		CheckType: models.CheckFailedJobs,
		Response:  models.ResponseNo,
	}}

	f := onlyFinding(t, EvaluateSheet("CRP", rows, customer.DefaultConfiguration()))
	if f.Severity != models.SeverityCritical || f.RuleID != models.RuleMissingJustification {
		t.Fatalf("finding = %+v", f)
	}
	if f.System != "CRP" || f.Row != 77 {
		t.Fatalf("finding location = %s row %d", f.System, f.Row)
	}
	if f.Message != "Negative (N) response without justification" {
		t.Fatalf("message = %q", f.Message)
	}
}

func TestNegativeResponseJustifiedIsPass(t *testing.T) {
	rows := []models.Row{{
		Number:        30,
		CheckType:     models.CheckFailedJobs,
		Response:      models.ResponseNo,
		Justification: "job BI_LOAD failed on lock, rescheduled for 09:00",
	}}

	f := onlyFinding(t, EvaluateSheet("ERP", rows, customer.DefaultConfiguration()))
	if f.Severity != models.SeverityPass {
		t.Fatalf("expected pass finding, got %+v", f)
	}
	if !strings.Contains(f.Message, "rescheduled") {
		t.Fatalf("pass message should carry the justification, got %q", f.Message)
	}
}

func TestNegativeResponseBriefJustification(t *testing.T) {
	rows := []models.Row{{
		Number:        12,
		CheckType:     models.CheckSystemLog,
		Response:      models.ResponseNo,
		Justification: "known",
	}}

	f := onlyFinding(t, EvaluateSheet("ERP", rows, customer.DefaultConfiguration()))
	if f.Severity != models.SeverityWarning || f.RuleID != models.RuleBriefJustification {
		t.Fatalf("finding = %+v", f)
	}
}

func TestFailedUpdates(t *testing.T) {
	tests := []struct {
		name      string
		metric    *float64
		wantCount int
	}{
		{"nonzero is critical", fl(3), 1},
		{"zero is clean", fl(0), 0},
		{"no reading no finding", nil, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rows := []models.Row{{
				Number:    40,
				CheckType: models.CheckFailedUpdates,
				Metric:    tt.metric,
			}}
			res := EvaluateSheet("ERP", rows, customer.DefaultConfiguration())
			if len(res.Findings) != tt.wantCount {
				t.Fatalf("got %d findings: %+v", len(res.Findings), res.Findings)
			}
			if tt.wantCount == 1 {
				f := res.Findings[0]
				if f.Severity != models.SeverityCritical || f.RuleID != models.RuleFailedUpdates {
					t.Fatalf("finding = %+v", f)
				}
			}
		})
	}
}

func TestTRFCErrors(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		metric *float64
		want   int
	}{
		{"cpicerr no count", "SM58 queue status CPICERR", nil, 1},
		{"sysfail with count", "SYSFAIL entries", fl(2), 1},
		{"code but zero count", "CPICERR entries", fl(0), 0},
		{"no code", "SM58 queue reviewed, clean", fl(5), 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rows := []models.Row{{
				Number:    50,
				CheckType: models.CheckTRFC,
				Metric:    tt.metric,
				Text:      tt.text,
			}}
			res := EvaluateSheet("ERP", rows, customer.DefaultConfiguration())
			if len(res.Findings) != tt.want {
				t.Fatalf("got %d findings: %+v", len(res.Findings), res.Findings)
			}
			if tt.want == 1 {
				f := res.Findings[0]
				if f.Severity != models.SeverityCritical || f.RuleID != models.RuleTRFCError {
					t.Fatalf("finding = %+v", f)
				}
			}
		})
	}
}

func TestThresholdComparisonsAreStrict(t *testing.T) {
	cfg := customer.DefaultConfiguration()

	tests := []struct {
		name   string
		check  models.CheckType
		metric float64
		rule   models.RuleID
		want   int
	}{
		{"response at limit", models.CheckResponseTime, cfg.ResponseTimeMaxMs, models.RuleResponseTime, 0},
		{"response over limit", models.CheckResponseTime, cfg.ResponseTimeMaxMs + 1, models.RuleResponseTime, 1},
		{"dumps today at limit", models.CheckDumpsToday, cfg.DumpsTodayMax, models.RuleDumpsToday, 0},
		{"dumps today over limit", models.CheckDumpsToday, cfg.DumpsTodayMax + 1, models.RuleDumpsToday, 1},
		{"dumps yesterday over limit", models.CheckDumpsYesterday, cfg.DumpsYesterdayMax + 1, models.RuleDumpsYesterday, 1},
		{"failed jobs at limit", models.CheckFailedJobs, cfg.FailedJobsMax, models.RuleFailedJobs, 0},
		{"failed jobs over limit", models.CheckFailedJobs, cfg.FailedJobsMax + 1, models.RuleFailedJobs, 1},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rows := []models.Row{{
				Number:    20,
				CheckType: tt.check,
				Metric:    fl(tt.metric),
			}}
			res := EvaluateSheet("BI", rows, cfg)
			if len(res.Findings) != tt.want {
				t.Fatalf("got %d findings: %+v", len(res.Findings), res.Findings)
			}
			if tt.want == 1 {
				f := res.Findings[0]
				if f.Severity != models.SeverityWarning || f.RuleID != tt.rule {
					t.Fatalf("finding = %+v", f)
				}
			}
		})
	}
}

func TestThresholdWarningSuppressedByJustification(t *testing.T) {
	rows := []models.Row{{
		Number:        22,
		CheckType:     models.CheckDumpsToday,
		Metric:        fl(99),
		Justification: "load test scheduled with customer, dumps expected",
	}}
	res := EvaluateSheet("ERP", rows, customer.DefaultConfiguration())
	if len(res.Findings) != 0 {
		t.Fatalf("justified threshold breach should not warn: %+v", res.Findings)
	}
}

func TestOldLocks(t *testing.T) {
	cfg := customer.DefaultConfiguration()

	t.Run("any unexplained lock warns", func(t *testing.T) {
		// Below the configured max still warns; the max is advisory only.
		rows := []models.Row{{
			Number:    66,
			CheckType: models.CheckOldLocks,
			Metric:    fl(16),
		}}
		f := onlyFinding(t, EvaluateSheet("ERP", rows, cfg))
		if f.Severity != models.SeverityWarning || f.RuleID != models.RuleOldLocks {
			t.Fatalf("finding = %+v", f)
		}
		if !strings.Contains(f.Message, "16") {
			t.Fatalf("message should carry the lock count, got %q", f.Message)
		}
	})

	t.Run("zero locks clean", func(t *testing.T) {
		rows := []models.Row{{Number: 66, CheckType: models.CheckOldLocks, Metric: fl(0)}}
		if res := EvaluateSheet("ERP", rows, cfg); len(res.Findings) != 0 {
			t.Fatalf("got findings: %+v", res.Findings)
		}
	})

	t.Run("justified locks clean", func(t *testing.T) {
		rows := []models.Row{{
			Number:        66,
			CheckType:     models.CheckOldLocks,
			Metric:        fl(16),
			Justification: "user left session open overnight, basis informed",
		}}
		if res := EvaluateSheet("ERP", rows, cfg); len(res.Findings) != 0 {
			t.Fatalf("got findings: %+v", res.Findings)
		}
	})
}

func TestIncompleteDataNote(t *testing.T) {
	rows := []models.Row{
		{Number: 10, CheckType: models.CheckDumpsYesterday, ExpectsMetric: true},
		{Number: 11, CheckType: models.CheckSystemLog, Text: "section header"},
	}

	res := EvaluateSheet("ERP", rows, customer.DefaultConfiguration())
	if len(res.Findings) != 0 {
		t.Fatalf("incomplete data must not produce findings: %+v", res.Findings)
	}
	if len(res.Notes) != 1 {
		t.Fatalf("expected one note, got %+v", res.Notes)
	}
	n := res.Notes[0]
	if n.System != "ERP" || n.Row != 10 || n.CheckType != models.CheckDumpsYesterday {
		t.Fatalf("note = %+v", n)
	}
}

func TestRowCanProduceResponseAndMetricFindings(t *testing.T) {
	rows := []models.Row{{
		Number:    44,
		CheckType: models.CheckFailedUpdates,
		Response:  models.ResponseNo,
		Metric:    fl(2),
	}}

	res := EvaluateSheet("ERP", rows, customer.DefaultConfiguration())
	if len(res.Findings) != 2 {
		t.Fatalf("expected 2 findings, got %+v", res.Findings)
	}
	if res.Findings[0].RuleID != models.RuleMissingJustification || res.Findings[1].RuleID != models.RuleFailedUpdates {
		t.Fatalf("finding order = %s, %s", res.Findings[0].RuleID, res.Findings[1].RuleID)
	}
}
