// Package policy enforces pass/fail gates over a completed audit, for
// use in scheduled pipelines that page on regressions.
package policy

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sapops/dailyaudit/internal/models"
)

// Policy defines enforcement rules for audit results.
type Policy struct {
	Version string `yaml:"version"`
	Rules   Rules  `yaml:"rules"`
}

// Rules contains all configurable policy rules. Nil pointers mean the
// rule is not enforced.
type Rules struct {
	MaxIssues      *int     `yaml:"max_issues,omitempty"`
	MaxCritical    *int     `yaml:"max_critical,omitempty"`
	MaxWarnings    *int     `yaml:"max_warnings,omitempty"`
	ForbidRules    []string `yaml:"forbid_rules,omitempty"`
	RequireSystems []string `yaml:"require_systems,omitempty"`
}

// Violation is a single policy failure.
type Violation struct {
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// Result holds the outcome of a policy check.
type Result struct {
	Pass       bool        `json:"pass"`
	Violations []Violation `json:"violations"`
}

// LoadFromFile reads a policy file. A missing file is not an error; it
// returns a nil policy, which passes everything.
func LoadFromFile(path string) (*Policy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read policy: %w", err)
	}

	var p Policy
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse policy: %w", err)
	}

	return &p, nil
}

// FindPolicyFile searches for a policy file in the current directory
// and parent directories up to the filesystem root.
func FindPolicyFile() string {
	names := []string{".dailyaudit-policy.yaml", ".dailyaudit-policy.yml"}

	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		for _, name := range names {
			path := dir + "/" + name
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
		parent := dir[:strings.LastIndex(dir, "/")]
		if parent == dir || parent == "" {
			break
		}
		dir = parent
	}

	return ""
}

// Evaluate checks an audit result against the policy rules.
func (p *Policy) Evaluate(result *models.AuditResult) *Result {
	if p == nil {
		return &Result{Pass: true}
	}

	var violations []Violation

	if p.Rules.MaxIssues != nil && result.Summary.TotalIssues > *p.Rules.MaxIssues {
		violations = append(violations, Violation{
			Rule:    "max_issues",
			Message: fmt.Sprintf("total issues %d exceeds limit %d", result.Summary.TotalIssues, *p.Rules.MaxIssues),
		})
	}

	if p.Rules.MaxCritical != nil && result.Summary.CriticalCount > *p.Rules.MaxCritical {
		violations = append(violations, Violation{
			Rule:    "max_critical",
			Message: fmt.Sprintf("critical findings %d exceeds limit %d", result.Summary.CriticalCount, *p.Rules.MaxCritical),
		})
	}

	if p.Rules.MaxWarnings != nil && result.Summary.WarningCount > *p.Rules.MaxWarnings {
		violations = append(violations, Violation{
			Rule:    "max_warnings",
			Message: fmt.Sprintf("warning findings %d exceeds limit %d", result.Summary.WarningCount, *p.Rules.MaxWarnings),
		})
	}

	if len(p.Rules.ForbidRules) > 0 {
		for _, rule := range p.Rules.ForbidRules {
			if count := result.Summary.IssuesByRule[models.RuleID(rule)]; count > 0 {
				violations = append(violations, Violation{
					Rule:    "forbid_rules",
					Message: fmt.Sprintf("forbidden rule %q has %d findings", rule, count),
				})
			}
		}
	}

	if len(p.Rules.RequireSystems) > 0 {
		audited := make(map[string]bool, len(result.SheetOrder))
		for _, system := range result.SheetOrder {
			audited[system] = true
		}
		for _, system := range p.Rules.RequireSystems {
			if !audited[system] {
				violations = append(violations, Violation{
					Rule:    "require_systems",
					Message: fmt.Sprintf("required system %q not found in report", system),
				})
			}
		}
	}

	return &Result{
		Pass:       len(violations) == 0,
		Violations: violations,
	}
}
