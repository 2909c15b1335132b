package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sapops/dailyaudit/internal/auditor"
	"github.com/sapops/dailyaudit/internal/customer"
	"github.com/sapops/dailyaudit/internal/workbook"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file.xlsx>",
	Short: "Check a workbook's structure without auditing it",
	Long: `Validate parses a workbook and checks its structure: at least one
sheet, readable rows, known check types, valid verdict values. No rules
are evaluated and no report is produced.

Returns exit 0 if valid, exit 2 if invalid with details on stderr.

Example:
  dailyaudit validate TBS_DAILY_MONITORING_20_JAN_2026.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runValidate(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "INVALID: %v\n", err)
			os.Exit(ExitInvalidInput)
		}
		return nil
	},
}

func runValidate(path string) error {
	wb, err := workbook.Load(path)
	if err != nil {
		return err
	}

	// A full dry-run audit exercises the same structural checks the
	// audit command would fail on, thresholds do not matter here.
	if _, err := auditor.New(customer.DefaultConfiguration()).Audit(wb); err != nil {
		return err
	}

	fmt.Printf("VALID: %d sheet(s)\n", len(wb.Sheets))
	return nil
}
