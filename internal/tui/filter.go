package tui

import (
	"sort"
	"strings"

	"github.com/sapops/dailyaudit/internal/models"
)

// filterState holds current active filters.
type filterState struct {
	System     string
	Severity   models.Severity
	SearchText string
}

// sortField enumerates columns that can be sorted.
type sortField int

const (
	sortBySeverity sortField = iota
	sortBySystem
	sortByRow
	sortByRule
)

// sortFieldCount is the total number of sortable columns.
const sortFieldCount = 4

// applyFilters returns findings matching all active filters.
func applyFilters(findings []models.Finding, f filterState) []models.Finding {
	result := make([]models.Finding, 0, len(findings))
	searchLower := strings.ToLower(f.SearchText)

	for _, finding := range findings {
		if f.System != "" && finding.System != f.System {
			continue
		}
		if f.Severity != "" && finding.Severity != f.Severity {
			continue
		}
		if searchLower != "" && !matchesSearch(finding, searchLower) {
			continue
		}
		result = append(result, finding)
	}
	return result
}

func matchesSearch(f models.Finding, searchLower string) bool {
	return strings.Contains(strings.ToLower(f.System), searchLower) ||
		strings.Contains(strings.ToLower(string(f.RuleID)), searchLower) ||
		strings.Contains(strings.ToLower(string(f.Severity)), searchLower) ||
		strings.Contains(strings.ToLower(string(f.CheckType)), searchLower) ||
		strings.Contains(strings.ToLower(f.Message), searchLower) ||
		strings.Contains(strings.ToLower(f.Context), searchLower)
}

// sortFindings sorts a slice of findings in place by the given field.
func sortFindings(findings []models.Finding, field sortField) {
	sort.SliceStable(findings, func(i, j int) bool {
		switch field {
		case sortBySeverity:
			return models.SeverityPriority[findings[i].Severity] < models.SeverityPriority[findings[j].Severity]
		case sortBySystem:
			return findings[i].System < findings[j].System
		case sortByRow:
			return findings[i].Row < findings[j].Row
		case sortByRule:
			return findings[i].RuleID < findings[j].RuleID
		default:
			return false
		}
	})
}

// uniqueSystems returns deduplicated, sorted system names from findings.
func uniqueSystems(findings []models.Finding) []string {
	seen := make(map[string]bool)
	var systems []string
	for _, f := range findings {
		if !seen[f.System] {
			seen[f.System] = true
			systems = append(systems, f.System)
		}
	}
	sort.Strings(systems)
	return systems
}

// sortFieldName returns a human-readable name for the sort field.
func sortFieldName(f sortField) string {
	switch f {
	case sortBySeverity:
		return "severity"
	case sortBySystem:
		return "system"
	case sortByRow:
		return "row"
	case sortByRule:
		return "rule"
	default:
		return "unknown"
	}
}

// nextSeverityFilter cycles the severity filter through
// all -> critical -> warning -> pass -> all.
func nextSeverityFilter(current models.Severity) models.Severity {
	switch current {
	case "":
		return models.SeverityCritical
	case models.SeverityCritical:
		return models.SeverityWarning
	case models.SeverityWarning:
		return models.SeverityPass
	default:
		return ""
	}
}
