package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sapops/dailyaudit/internal/storage"
)

var historyLastN int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show stored audit runs and their trend",
	Long: `History lists the last N stored runs with their issue counts and a
sparkline showing how the daily checks are trending.

Runs are stored by 'audit --store'.

Example:
  dailyaudit history
  dailyaudit history --last 14`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLastN, "last", "n", 0,
		"number of runs to show (default from config)")
}

func runHistory(cmd *cobra.Command, args []string) error {
	lastN := historyLastN
	if lastN == 0 {
		lastN = cfg.LastRuns
	}

	storagePath, err := getStoragePath(cfg.StorageDir)
	if err != nil {
		return err
	}
	store := storage.NewLocal(storagePath)

	timestamps, err := store.ListRuns()
	if err != nil {
		return err
	}
	if len(timestamps) == 0 {
		fmt.Println("No stored runs found.")
		fmt.Println("Run 'dailyaudit audit <file.xlsx> --store' to record your first run.")
		return nil
	}

	runs, err := store.GetLastNRuns(lastN)
	if err != nil {
		return err
	}

	logVerbose("Showing %d of %d stored runs", len(runs), len(timestamps))

	fmt.Printf("Last %d run(s):\n\n", len(runs))
	for _, run := range runs {
		s := run.Result.Summary
		fmt.Printf("  %s  %-40s issues: %-3d (C:%d W:%d)\n",
			run.SavedAt.Format("2006-01-02 15:04"),
			run.Result.SourceFile,
			s.TotalIssues, s.CriticalCount, s.WarningCount)
	}

	if len(runs) >= 2 {
		fmt.Print("\nIssue trend: ")
		for _, v := range issueSparkline(runs) {
			fmt.Print(string(v))
		}
		first := runs[0].Result.Summary.TotalIssues
		last := runs[len(runs)-1].Result.Summary.TotalIssues
		fmt.Printf(" [%d → %d]\n", first, last)
	}

	return nil
}

// issueSparkline maps run issue counts to sparkline runes, oldest first.
func issueSparkline(runs []*storage.Run) []rune {
	bars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	min, max := runs[0].Result.Summary.TotalIssues, runs[0].Result.Summary.TotalIssues
	for _, r := range runs {
		v := r.Result.Summary.TotalIssues
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	out := make([]rune, 0, len(runs))
	for _, r := range runs {
		v := r.Result.Summary.TotalIssues
		if max == min {
			out = append(out, bars[len(bars)/2])
			continue
		}
		normalized := float64(v-min) / float64(max-min)
		out = append(out, bars[int(normalized*float64(len(bars)-1))])
	}
	return out
}
