package models

import "testing"

func TestSummarize(t *testing.T) {
	findings := []Finding{
		{Severity: SeverityCritical, System: "CRP", RuleID: RuleMissingJustification},
		{Severity: SeverityCritical, System: "CRP", RuleID: RuleFailedUpdates},
		{Severity: SeverityWarning, System: "ERP", RuleID: RuleOldLocks},
		{Severity: SeverityPass, System: "ERP", RuleID: RuleMissingJustification},
		{Severity: SeverityPass, System: "BWP", RuleID: RuleMissingJustification},
	}

	s := Summarize(findings, 3)

	if s.SystemsChecked != 3 {
		t.Fatalf("expected 3 systems checked, got %d", s.SystemsChecked)
	}
	if s.CriticalCount != 2 {
		t.Fatalf("expected 2 critical, got %d", s.CriticalCount)
	}
	if s.WarningCount != 1 {
		t.Fatalf("expected 1 warning, got %d", s.WarningCount)
	}
	if s.PassCount != 2 {
		t.Fatalf("expected 2 passes, got %d", s.PassCount)
	}
	if s.TotalIssues != 3 {
		t.Fatalf("expected 3 total issues, got %d", s.TotalIssues)
	}
	if s.IssuesBySystem["CRP"] != 2 {
		t.Fatalf("expected 2 issues for CRP, got %d", s.IssuesBySystem["CRP"])
	}
	if s.IssuesBySystem["ERP"] != 1 {
		t.Fatalf("expected 1 issue for ERP, got %d", s.IssuesBySystem["ERP"])
	}
	// Pass findings must not count as issues.
	if _, ok := s.IssuesBySystem["BWP"]; ok {
		t.Fatalf("pass-only system BWP should not appear in issue counts")
	}
	if s.IssuesByRule[RuleMissingJustification] != 1 {
		t.Fatalf("expected 1 missing_justification issue, got %d", s.IssuesByRule[RuleMissingJustification])
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, 0)
	if s.TotalIssues != 0 || s.CriticalCount != 0 || s.WarningCount != 0 || s.PassCount != 0 {
		t.Fatalf("expected zero counts, got %+v", s)
	}
}

func TestFindingsForSystem(t *testing.T) {
	findings := []Finding{
		{System: "CRP", Row: 10},
		{System: "ERP", Row: 20},
		{System: "CRP", Row: 30},
	}

	crp := FindingsForSystem(findings, "CRP")
	if len(crp) != 2 {
		t.Fatalf("expected 2 findings for CRP, got %d", len(crp))
	}
	if crp[0].Row != 10 || crp[1].Row != 30 {
		t.Fatalf("order not preserved: %+v", crp)
	}
}
