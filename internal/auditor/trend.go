package auditor

import (
	"time"

	"github.com/sapops/dailyaudit/internal/models"
)

// ComputeTrend compares the current issue count against a previous run.
// Returns nil when there is nothing to compare against.
func ComputeTrend(currentIssues, previousIssues int, comparedWith time.Time) *models.Trend {
	if comparedWith.IsZero() {
		return nil
	}

	t := &models.Trend{
		PreviousIssues: previousIssues,
		CurrentIssues:  currentIssues,
		ComparedWith:   comparedWith,
	}

	switch {
	case currentIssues < previousIssues:
		t.Direction = "improving"
	case currentIssues > previousIssues:
		t.Direction = "degrading"
	default:
		t.Direction = "stable"
	}

	if previousIssues > 0 {
		t.ChangePercent = float64(currentIssues-previousIssues) / float64(previousIssues) * 100
	} else if currentIssues > 0 {
		t.ChangePercent = 100
	}

	return t
}
