package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sapops/dailyaudit/internal/customer"
)

var customersConfigsDir string

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "List known customers and their threshold configs",
	Long: `Customers lists the customer codes with built-in filename detection
and shows which of them have a threshold file in the configs directory.
Customers without a file are audited with default thresholds.

Example:
  dailyaudit customers
  dailyaudit customers --configs-dir /etc/dailyaudit/configs`,
	RunE: runCustomers,
}

func init() {
	customersCmd.Flags().StringVar(&customersConfigsDir, "configs-dir", "",
		"directory with customer threshold files (default from config)")
}

func runCustomers(cmd *cobra.Command, args []string) error {
	configsDir := customersConfigsDir
	if configsDir == "" {
		configsDir = cfg.ConfigsDir
	}

	store := customer.NewStore(configsDir)
	configured, err := store.List()
	if err != nil {
		return err
	}

	hasConfig := make(map[string]bool, len(configured))
	for _, c := range configured {
		hasConfig[c] = true
	}

	fmt.Printf("Configs directory: %s\n\n", configsDir)
	for _, c := range customer.Known() {
		if hasConfig[c] {
			fmt.Printf("  %-10s %s\n", c, store.Path(c))
		} else {
			fmt.Printf("  %-10s (default thresholds)\n", c)
		}
	}

	// Config files for customers without filename detection still work
	// with --customer; list them so they are not forgotten.
	for _, c := range configured {
		known := false
		for _, k := range customer.Known() {
			if c == k {
				known = true
				break
			}
		}
		if !known {
			fmt.Printf("  %-10s %s (no filename detection, use --customer)\n", c, store.Path(c))
		}
	}

	defaults := customer.DefaultConfiguration()
	fmt.Printf("\nDefault thresholds: response %gms, dumps today %g, dumps yesterday %g, failed jobs %g, old locks %g\n",
		defaults.ResponseTimeMaxMs, defaults.DumpsTodayMax, defaults.DumpsYesterdayMax,
		defaults.FailedJobsMax, defaults.OldLocksMax)

	return nil
}
