package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sapops/dailyaudit/internal/auditor"
	"github.com/sapops/dailyaudit/internal/customer"
	"github.com/sapops/dailyaudit/internal/models"
	"github.com/sapops/dailyaudit/internal/policy"
	"github.com/sapops/dailyaudit/internal/reporter"
	"github.com/sapops/dailyaudit/internal/storage"
	"github.com/sapops/dailyaudit/internal/workbook"
)

var (
	// Audit command flags
	auditFormat         string
	auditOutput         string
	auditCustomer       string
	auditConfigsDir     string
	auditStore          bool
	auditFailOnCritical bool
	auditPolicyFile     string
	auditSummaryOnly    bool
)

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit <file.xlsx>",
	Short: "Audit a daily monitoring spreadsheet",
	Long: `Audit parses a daily monitoring workbook, evaluates every system sheet
against the rule table and the customer's thresholds, and renders a report.

The customer is detected from the filename prefix (TBS, BSW, COREX,
SONOCO); unknown customers get default thresholds. An audit is
all-or-nothing: a malformed sheet aborts the whole run with exit code 2.

Exit codes:
  0  audit completed, no gate tripped
  1  critical findings with --fail-on-critical, or policy violation
  2  empty, unreadable, or malformed workbook; broken customer config
  3  runtime error

Example:
  dailyaudit audit TBS_DAILY_MONITORING_20_JAN_2026.xlsx
  dailyaudit audit report.xlsx --format json --output report.json
  dailyaudit audit report.xlsx --store --fail-on-critical`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runAudit(args[0], os.Stdout); err != nil {
			logError("%v", err)
			os.Exit(HandleError(err))
		}
		return nil
	},
}

func init() {
	auditCmd.Flags().StringVarP(&auditFormat, "format", "f", "",
		"output format: markdown, text, or json (default from config)")
	auditCmd.Flags().StringVarP(&auditOutput, "output", "o", "",
		"write the report to a file instead of stdout")
	auditCmd.Flags().StringVar(&auditCustomer, "customer", "",
		"override customer detection")
	auditCmd.Flags().StringVar(&auditConfigsDir, "configs-dir", "",
		"directory with customer threshold files (default from config)")
	auditCmd.Flags().BoolVar(&auditStore, "store", false,
		"persist this run for trend analysis")
	auditCmd.Flags().BoolVar(&auditFailOnCritical, "fail-on-critical", false,
		"exit 1 when critical findings are present")
	auditCmd.Flags().StringVar(&auditPolicyFile, "policy", "",
		"policy file (default: search for .dailyaudit-policy.yaml)")
	auditCmd.Flags().BoolVar(&auditSummaryOnly, "summary-only", false,
		"with json format, emit the summary without per-row findings")
}

func runAudit(path string, out io.Writer) error {
	// Resolve customer thresholds
	customerID := auditCustomer
	if customerID == "" {
		customerID = customer.Detect(path)
	}
	if customerID == "" {
		logVerbose("No customer detected from %s, using default thresholds", path)
	} else {
		logVerbose("Customer: %s", customerID)
	}

	configsDir := auditConfigsDir
	if configsDir == "" {
		configsDir = cfg.ConfigsDir
	}

	thresholds, defaulted, err := customer.Resolve(customerID, customer.NewStore(configsDir))
	if err != nil {
		return &ValidationError{Message: err.Error()}
	}
	logDebug("Thresholds: %+v (defaulted=%v)", thresholds, defaulted)

	// Parse and audit
	wb, err := workbook.Load(path)
	if err != nil {
		return &ValidationError{Message: err.Error()}
	}

	result, err := auditor.New(thresholds).Audit(wb)
	if err != nil {
		return &ValidationError{Message: err.Error()}
	}
	result.Customer = customerID
	result.DefaultConfigApplied = defaulted

	logVerbose("Audited %d systems: %d critical, %d warnings, %d justified",
		result.Summary.SystemsChecked, result.Summary.CriticalCount,
		result.Summary.WarningCount, result.Summary.PassCount)

	// Trend against the previous stored run
	storagePath, err := getStoragePath(cfg.StorageDir)
	if err != nil {
		return err
	}
	store := storage.NewLocal(storagePath)
	if prev, err := store.GetLatestRun(); err == nil {
		result.Trend = auditor.ComputeTrend(
			result.Summary.TotalIssues, prev.Result.Summary.TotalIssues, prev.SavedAt)
	}

	if auditStore {
		if err := store.SaveRun(result, time.Now()); err != nil {
			return err
		}
		logVerbose("Run stored in %s", storagePath)
	}

	// Render
	dest := out
	if auditOutput != "" {
		f, err := os.Create(auditOutput)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		dest = f
	}
	if err := renderReport(dest, result); err != nil {
		return err
	}

	// Gates
	return checkGates(result)
}

func renderReport(out io.Writer, result *models.AuditResult) error {
	format := auditFormat
	if format == "" {
		format = cfg.Format
	}

	switch strings.ToLower(format) {
	case "markdown":
		return reporter.NewMarkdownReporter(out).Generate(result)
	case "text":
		return reporter.NewTextReporter(out).Generate(result)
	case "json":
		r := reporter.NewJSONReporter(out, true)
		if auditSummaryOnly {
			return r.GenerateSummaryOnly(result)
		}
		return r.Generate(result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func checkGates(result *models.AuditResult) error {
	policyPath := auditPolicyFile
	if policyPath == "" {
		policyPath = policy.FindPolicyFile()
	}
	if policyPath != "" {
		p, err := policy.LoadFromFile(policyPath)
		if err != nil {
			return err
		}
		if res := p.Evaluate(result); !res.Pass {
			for _, v := range res.Violations {
				logError("policy %s: %s", v.Rule, v.Message)
			}
			return &ThresholdExceededError{
				Reason: fmt.Sprintf("%d policy violation(s)", len(res.Violations)),
			}
		}
	}

	if (auditFailOnCritical || cfg.FailOnCritical) && result.Summary.CriticalCount > 0 {
		return &ThresholdExceededError{
			Reason: fmt.Sprintf("%d critical finding(s)", result.Summary.CriticalCount),
		}
	}

	if cfg.ShouldFailOnThreshold(result.Summary.TotalIssues) {
		return &ThresholdExceededError{
			Reason: fmt.Sprintf("issue count (%d) exceeds threshold (%d)",
				result.Summary.TotalIssues, cfg.FailThreshold),
		}
	}

	return nil
}
