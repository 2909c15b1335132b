package workbook

import (
	"regexp"
	"strings"

	"github.com/sapops/dailyaudit/internal/models"
)

// checkPattern pairs a check type with the regex that identifies its
// section header or label text. Patterns live in an ordered slice, not a
// map: identification must be deterministic and first-match-wins.
type checkPattern struct {
	check models.CheckType
	re    *regexp.Regexp
}

var checkPatterns = []checkPattern{
	{models.CheckAppServers, regexp.MustCompile(`(?i)SM51|application server.*running`)},
	{models.CheckWorkProcesses, regexp.MustCompile(`(?i)SM50|SM66|work process`)},
	{models.CheckResponseTime, regexp.MustCompile(`(?i)SMLG|response time`)},
	{models.CheckSystemLog, regexp.MustCompile(`(?i)SM21|system log`)},
	{models.CheckFailedJobs, regexp.MustCompile(`(?i)SM37|cancelled.*job|failed.*job`)},
	{models.CheckOldLocks, regexp.MustCompile(`(?i)SM12|old lock`)},
	{models.CheckDumps, regexp.MustCompile(`(?i)ST22|abap.*dump`)},
	{models.CheckDatabase, regexp.MustCompile(`(?i)DBACOCKPIT|database.*performance`)},
	{models.CheckFailedUpdates, regexp.MustCompile(`(?i)SM13|update.*monitoring|failed update`)},
	{models.CheckBuffers, regexp.MustCompile(`(?i)ST02|buffer`)},
	{models.CheckWorkload, regexp.MustCompile(`(?i)ST03N|workload.*monitoring`)},
	{models.CheckSpool, regexp.MustCompile(`(?i)SPAD|spool`)},
	{models.CheckTRFC, regexp.MustCompile(`(?i)SM58|trfc`)},
	{models.CheckEmail, regexp.MustCompile(`(?i)SOST|failed.*email`)},
	{models.CheckServerStatus, regexp.MustCompile(`(?i)CMC|server.*status`)},
	{models.CheckOverview, regexp.MustCompile(`(?i)NWA|system overview`)},
}

// IdentifyCheckType matches joined row text against the known check
// patterns. Returns CheckUnknown when nothing matches; the caller then
// keeps the current section's type.
func IdentifyCheckType(rowText string) models.CheckType {
	for _, p := range checkPatterns {
		if p.re.MatchString(rowText) {
			return p.check
		}
	}
	return models.CheckUnknown
}

// refineCheckType narrows a section-level check type using the row's own
// label, and marks whether the row is expected to carry a numeric metric.
// Sheets label metric rows explicitly ("Resp time avg", "Dumps today",
// "Number of old locks"), which is more reliable than position.
func refineCheckType(section models.CheckType, rowText string) (models.CheckType, bool) {
	lower := strings.ToLower(rowText)

	switch {
	case strings.Contains(lower, "dump") && strings.Contains(lower, "yesterday"):
		return models.CheckDumpsYesterday, true
	case strings.Contains(lower, "dump") && strings.Contains(lower, "today"):
		return models.CheckDumpsToday, true
	case section == models.CheckDumps && strings.Contains(lower, "yesterday"):
		return models.CheckDumpsYesterday, true
	case section == models.CheckDumps && strings.Contains(lower, "today"):
		return models.CheckDumpsToday, true
	case strings.Contains(lower, "resp time"):
		return models.CheckResponseTime, true
	case strings.Contains(lower, "failed update"):
		return models.CheckFailedUpdates, true
	case strings.Contains(lower, "old lock"):
		return models.CheckOldLocks, true
	case strings.Contains(lower, "cpicerr") || strings.Contains(lower, "sysfail"):
		return models.CheckTRFC, false
	}

	return section, false
}
