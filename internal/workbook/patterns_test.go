package workbook

import (
	"testing"

	"github.com/sapops/dailyaudit/internal/models"
)

func TestIdentifyCheckType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want models.CheckType
	}{
		{"sm51 tcode", "1 SM51 Check all application servers are running Y", models.CheckAppServers},
		{"app servers prose", "Verify application servers are running", models.CheckAppServers},
		{"work process", "SM50 Work process overview", models.CheckWorkProcesses},
		{"response time", "SMLG logon group response time", models.CheckResponseTime},
		{"system log", "SM21 Review the system log", models.CheckSystemLog},
		{"failed jobs", "SM37 Check for cancelled background jobs", models.CheckFailedJobs},
		{"old locks", "SM12 Check for old locks", models.CheckOldLocks},
		{"dumps", "ST22 Check ABAP runtime dumps", models.CheckDumps},
		{"database", "DBACOCKPIT Database performance", models.CheckDatabase},
		{"failed updates", "SM13 Update monitoring", models.CheckFailedUpdates},
		{"buffers", "ST02 Buffer quality", models.CheckBuffers},
		{"trfc", "SM58 Check tRFC errors", models.CheckTRFC},
		{"email", "SOST Check failed emails", models.CheckEmail},
		{"cmc", "Check CMC server status", models.CheckServerStatus},
		{"no match", "some unrelated comment row", models.CheckUnknown},
		{"case insensitive", "sm37 failed jobs", models.CheckFailedJobs},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := IdentifyCheckType(tt.text); got != tt.want {
				t.Fatalf("IdentifyCheckType(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestRefineCheckType(t *testing.T) {
	tests := []struct {
		name        string
		section     models.CheckType
		text        string
		wantCheck   models.CheckType
		wantExpects bool
	}{
		{"dumps today", models.CheckDumps, "Number of dumps today", models.CheckDumpsToday, true},
		{"dumps yesterday", models.CheckDumps, "Number of dumps yesterday", models.CheckDumpsYesterday, true},
		{"dump row inherits section", models.CheckDumps, "total for yesterday", models.CheckDumpsYesterday, true},
		{"response time metric", models.CheckResponseTime, "Resp time avg (ms)", models.CheckResponseTime, true},
		{"failed updates metric", models.CheckFailedUpdates, "Number of failed updates", models.CheckFailedUpdates, true},
		{"old locks metric", models.CheckOldLocks, "Number of old locks", models.CheckOldLocks, true},
		{"trfc error code", models.CheckTRFC, "CPICERR entries present", models.CheckTRFC, false},
		{"sysfail in any section", models.CheckSystemLog, "SYSFAIL seen in queue", models.CheckTRFC, false},
		{"plain row keeps section", models.CheckSystemLog, "reviewed, nothing unusual", models.CheckSystemLog, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			check, expects := refineCheckType(tt.section, tt.text)
			if check != tt.wantCheck || expects != tt.wantExpects {
				t.Fatalf("refineCheckType(%q, %q) = (%q, %v), want (%q, %v)",
					tt.section, tt.text, check, expects, tt.wantCheck, tt.wantExpects)
			}
		})
	}
}
