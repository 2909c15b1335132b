package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sapops/dailyaudit/internal/storage"
	"github.com/sapops/dailyaudit/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the latest stored run interactively",
	Long: `Browse opens an interactive view over the findings of the most recent
stored run: filter by system or severity, search, sort, and copy
findings to the clipboard.

Requires a terminal; in pipelines use 'audit --format json' instead.

Example:
  dailyaudit audit report.xlsx --store
  dailyaudit browse`,
	RunE: runBrowse,
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("browse requires a terminal (stdout is not a TTY)")
	}

	storagePath, err := getStoragePath(cfg.StorageDir)
	if err != nil {
		return err
	}
	store := storage.NewLocal(storagePath)

	latest, err := store.GetLatestRun()
	if err != nil {
		fmt.Println("No stored runs found.")
		fmt.Println("Run 'dailyaudit audit <file.xlsx> --store' first.")
		return nil
	}

	// Sparkline over recent history, oldest first.
	var sparkline []int
	if runs, err := store.GetLastNRuns(cfg.LastRuns); err == nil {
		for _, r := range runs {
			sparkline = append(sparkline, r.Result.Summary.TotalIssues)
		}
	}

	return tui.Run(latest.Result, sparkline)
}
