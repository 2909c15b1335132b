package auditor

import "fmt"

// EmptyWorkbookError reports a workbook with no sheets at all. It is a
// distinct input error: an empty report is not a clean report.
type EmptyWorkbookError struct {
	Source string
}

func (e *EmptyWorkbookError) Error() string {
	return fmt.Sprintf("workbook %s contains no sheets", e.Source)
}

// SheetMalformedError reports a sheet whose rows violate structural
// expectations. The audit aborts on the first malformed sheet rather
// than emitting a partial result.
type SheetMalformedError struct {
	Sheet  string
	Reason string
}

func (e *SheetMalformedError) Error() string {
	return fmt.Sprintf("sheet %q is malformed: %s", e.Sheet, e.Reason)
}
