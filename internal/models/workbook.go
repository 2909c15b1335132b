package models

// CheckType identifies which SAP monitoring check a row belongs to.
// The set is closed: rule dispatch switches over these values, and the
// auditor rejects rows carrying anything else.
type CheckType string

const (
	CheckUnknown        CheckType = "unknown"
	CheckAppServers     CheckType = "sm51"       // application servers running
	CheckWorkProcesses  CheckType = "sm50"       // work process overview (SM50/SM66)
	CheckResponseTime   CheckType = "smlg"       // logon group response times
	CheckSystemLog      CheckType = "sm21"       // system log review
	CheckFailedJobs     CheckType = "sm37"       // cancelled/failed background jobs
	CheckOldLocks       CheckType = "sm12"       // old enqueue locks
	CheckDumps          CheckType = "st22"       // ABAP dump section header
	CheckDumpsToday     CheckType = "st22_today"
	CheckDumpsYesterday CheckType = "st22_yesterday"
	CheckDatabase       CheckType = "dbacockpit" // database performance
	CheckFailedUpdates  CheckType = "sm13"       // update queue failures
	CheckBuffers        CheckType = "st02"       // buffer quality
	CheckWorkload       CheckType = "st03n"      // workload monitoring
	CheckSpool          CheckType = "spad"       // spool administration
	CheckTRFC           CheckType = "sm58"       // transactional RFC errors
	CheckEmail          CheckType = "sost"       // failed outbound email
	CheckServerStatus   CheckType = "bop_cmc"    // BO CMC server status
	CheckOverview       CheckType = "nwa"        // NWA system overview
)

// KnownCheckTypes is the closed set of valid check types.
var KnownCheckTypes = map[CheckType]bool{
	CheckUnknown:        true,
	CheckAppServers:     true,
	CheckWorkProcesses:  true,
	CheckResponseTime:   true,
	CheckSystemLog:      true,
	CheckFailedJobs:     true,
	CheckOldLocks:       true,
	CheckDumps:          true,
	CheckDumpsToday:     true,
	CheckDumpsYesterday: true,
	CheckDatabase:       true,
	CheckFailedUpdates:  true,
	CheckBuffers:        true,
	CheckWorkload:       true,
	CheckSpool:          true,
	CheckTRFC:           true,
	CheckEmail:          true,
	CheckServerStatus:   true,
	CheckOverview:       true,
}

// Response is the Y/N verdict the offshore analyst entered for a check.
type Response string

const (
	ResponseYes   Response = "Y"
	ResponseNo    Response = "N"
	ResponseBlank Response = ""
)

// Row is one monitoring record from a system sheet, already coerced into
// typed cells by the workbook parser. Number is the 1-based sheet row,
// kept for traceability in findings.
type Row struct {
	Number        int       `json:"number"`
	CheckType     CheckType `json:"check_type"`
	Response      Response  `json:"response"`
	Justification string    `json:"justification,omitempty"`
	Metric        *float64  `json:"metric,omitempty"`
	// ExpectsMetric marks rows whose label indicates a numeric reading
	// (dump counts, response times, lock counts). A blank metric on such
	// a row surfaces as an incomplete-data note.
	ExpectsMetric bool   `json:"expects_metric,omitempty"`
	Text          string `json:"text,omitempty"`
	Context       string `json:"context,omitempty"`
}

// SheetMeta is the informational header of a system sheet. It is carried
// alongside findings, never evaluated.
type SheetMeta struct {
	SystemName  string `json:"system_name,omitempty"`
	Date        string `json:"date,omitempty"`
	Time        string `json:"time,omitempty"`
	PerformedBy string `json:"performed_by,omitempty"`
}

// Sheet is one parsed system tab.
type Sheet struct {
	Name string    `json:"name"`
	Meta SheetMeta `json:"meta"`
	Rows []Row     `json:"rows"`
}

// Workbook is an ordered collection of system sheets from one report file.
// Sheet order follows tab order and determines finding order.
type Workbook struct {
	SourceFile string  `json:"source_file"`
	Sheets     []Sheet `json:"sheets"`
}
