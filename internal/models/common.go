package models

import "time"

// Severity classifies an audit finding.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityPass     Severity = "pass"
)

// SeverityPriority orders severities for sorting (lower = more severe).
var SeverityPriority = map[Severity]int{
	SeverityCritical: 0,
	SeverityWarning:  1,
	SeverityPass:     2,
}

// RuleID identifies which validation rule produced a finding.
type RuleID string

const (
	RuleMissingJustification RuleID = "missing_justification"
	RuleBriefJustification   RuleID = "brief_justification"
	RuleFailedUpdates        RuleID = "failed_update_nonzero"
	RuleTRFCError            RuleID = "trfc_error"
	RuleResponseTime         RuleID = "response_time_exceeded"
	RuleDumpsToday           RuleID = "dumps_today_high"
	RuleDumpsYesterday       RuleID = "dumps_yesterday_high"
	RuleFailedJobs           RuleID = "failed_jobs_high"
	RuleOldLocks             RuleID = "old_locks_unexplained"
)

// Finding is a single audit result for one row of one system sheet.
type Finding struct {
	Severity  Severity  `json:"severity"`
	System    string    `json:"system"`
	Row       int       `json:"row"`
	RuleID    RuleID    `json:"rule_id"`
	CheckType CheckType `json:"check_type"`
	Message   string    `json:"message"`
	Context   string    `json:"context,omitempty"`
}

// Note records a row that could not be fully evaluated, typically a
// numeric check with a blank metric cell. Notes never escalate to
// critical or warning findings.
type Note struct {
	System    string    `json:"system"`
	Row       int       `json:"row"`
	CheckType CheckType `json:"check_type"`
	Message   string    `json:"message"`
}

// Summary provides aggregate statistics over a completed audit.
type Summary struct {
	SystemsChecked int            `json:"systems_checked"`
	TotalIssues    int            `json:"total_issues"` // critical + warning
	CriticalCount  int            `json:"critical_count"`
	WarningCount   int            `json:"warning_count"`
	PassCount      int            `json:"pass_count"`
	IssuesBySystem map[string]int `json:"issues_by_system"`
	IssuesByRule   map[RuleID]int `json:"issues_by_rule"`
}

// AuditResult is the complete output of auditing one workbook.
// Findings are ordered by sheet order, then row order within each sheet.
type AuditResult struct {
	SourceFile           string               `json:"source_file"`
	Customer             string               `json:"customer,omitempty"`
	DefaultConfigApplied bool                 `json:"default_config_applied"`
	Findings             []Finding            `json:"findings"`
	Notes                []Note               `json:"notes,omitempty"`
	Summary              Summary              `json:"summary"`
	SheetOrder           []string             `json:"sheet_order"`
	Metadata             map[string]SheetMeta `json:"metadata"`
	Trend                *Trend               `json:"trend,omitempty"`
}

// Trend represents change between the current audit and a previous run
// of the same report series.
type Trend struct {
	Direction      string    `json:"direction"` // "improving", "degrading", "stable"
	ChangePercent  float64   `json:"change_percent"`
	PreviousIssues int       `json:"previous_issues"`
	CurrentIssues  int       `json:"current_issues"`
	ComparedWith   time.Time `json:"compared_with"`
}

// Summarize computes severity counts and per-system/per-rule breakdowns
// from a finding list. Pass findings count toward PassCount only; they
// are not issues.
func Summarize(findings []Finding, systemsChecked int) Summary {
	s := Summary{
		SystemsChecked: systemsChecked,
		IssuesBySystem: make(map[string]int),
		IssuesByRule:   make(map[RuleID]int),
	}

	for _, f := range findings {
		switch f.Severity {
		case SeverityCritical:
			s.CriticalCount++
		case SeverityWarning:
			s.WarningCount++
		case SeverityPass:
			s.PassCount++
		}

		if f.Severity == SeverityCritical || f.Severity == SeverityWarning {
			s.IssuesBySystem[f.System]++
			s.IssuesByRule[f.RuleID]++
		}
	}

	s.TotalIssues = s.CriticalCount + s.WarningCount
	return s
}

// FindingsForSystem filters findings belonging to one sheet, preserving order.
func FindingsForSystem(findings []Finding, system string) []Finding {
	var out []Finding
	for _, f := range findings {
		if f.System == system {
			out = append(out, f)
		}
	}
	return out
}
