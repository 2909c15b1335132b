// Package cli wires the commands of the dailyaudit tool.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sapops/dailyaudit/internal/config"
)

const (
	// Exit codes for CI integration
	ExitOK           = 0 // Success, no gate tripped
	ExitPolicyFail   = 1 // Critical findings or policy violations
	ExitInvalidInput = 2 // Unreadable, empty, or malformed workbook
	ExitRuntimeError = 3 // I/O, permissions, or runtime error
)

var (
	// Global config instance
	cfg *config.Config

	// Global flags
	configFile string
	verbose    bool
	debug      bool

	// buildVersion is injected by main via SetVersion
	buildVersion = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dailyaudit",
	Short: "Audit SAP daily monitoring spreadsheets",
	Long: `dailyaudit validates the daily monitoring spreadsheets the offshore team
fills in each morning, before they reach the basis team.

It checks every system sheet against a fixed rule table:
- Negative (N) responses must carry a justification
- SM13 failed updates and SM58 tRFC errors are always critical
- Response times, dump counts, and failed jobs are compared against
  per-customer thresholds
- Old SM12 locks need an explanation regardless of count

Quick start:
  dailyaudit audit TBS_DAILY_MONITORING_20_JAN_2026.xlsx
  dailyaudit audit report.xlsx --format json --store
  dailyaudit validate report.xlsx

Other commands:
  dailyaudit customers
  dailyaudit history --last 7
  dailyaudit browse`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadFromFile(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Override config with flags if provided
		if verbose {
			cfg.Verbose = true
		}
		if debug {
			cfg.Debug = true
		}

		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		os.Exit(ExitRuntimeError)
	}
}

// SetVersion records the build version injected via ldflags.
func SetVersion(v string) {
	buildVersion = v
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ~/.dailyaudit.yaml or ./dailyaudit.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"debug mode (very verbose)")

	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(customersCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dailyaudit %s\n", buildVersion)
		fmt.Println("SAP daily monitoring spreadsheet auditor")
	},
}

// HandleError determines the appropriate exit code for an error
func HandleError(err error) int {
	if err == nil {
		return ExitOK
	}

	switch err.(type) {
	case *ValidationError:
		return ExitInvalidInput
	case *ThresholdExceededError:
		return ExitPolicyFail
	default:
		return ExitRuntimeError
	}
}

// ValidationError represents an invalid input workbook or customer config
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ThresholdExceededError represents a tripped failure gate
type ThresholdExceededError struct {
	Reason string
}

func (e *ThresholdExceededError) Error() string {
	return e.Reason
}

// getStoragePath resolves the storage directory to an absolute path.
func getStoragePath(storageDir string) (string, error) {
	if len(storageDir) >= 2 && storageDir[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		storageDir = filepath.Join(home, storageDir[2:])
	}

	absPath, err := filepath.Abs(storageDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	return absPath, nil
}

// logVerbose prints a message if verbose mode is enabled
func logVerbose(format string, args ...interface{}) {
	if cfg != nil && cfg.Verbose {
		fmt.Fprintf(os.Stderr, "[INFO] "+format+"\n", args...)
	}
}

// logDebug prints a message if debug mode is enabled
func logDebug(format string, args ...interface{}) {
	if cfg != nil && cfg.Debug {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+format+"\n", args...)
	}
}

// logError prints an error message
func logError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "[ERROR] "+format+"\n", args...)
}
