// Package config loads tool configuration with viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for the audit tool.
type Config struct {
	// Directory holding per-customer threshold files
	ConfigsDir string `mapstructure:"configs_dir"`

	// Directory where audit runs are persisted
	StorageDir string `mapstructure:"storage_dir"`

	// Output format (markdown, text, json)
	Format string `mapstructure:"format"`

	// Exit nonzero when the audit finds critical issues
	FailOnCritical bool `mapstructure:"fail_on_critical"`

	// Exit nonzero when total issues exceed this count (0 disables)
	FailThreshold int `mapstructure:"fail_threshold"`

	// Number of last runs shown by the history command
	LastRuns int `mapstructure:"last_runs"`

	// Verbose output
	Verbose bool `mapstructure:"verbose"`

	// Debug mode
	Debug bool `mapstructure:"debug"`
}

// DefaultConfig returns configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		ConfigsDir:     "configs",
		StorageDir:     ".dailyaudit",
		Format:         "markdown",
		FailOnCritical: false,
		FailThreshold:  0, // 0 means no threshold check
		LastRuns:       7,
		Verbose:        false,
		Debug:          false,
	}
}

// Load loads configuration with the following precedence (lowest to highest):
// 1. Default values
// 2. Config file (~/.dailyaudit.yaml or ./dailyaudit.yaml)
// 3. Environment variables (DAILYAUDIT_*)
// 4. CLI flags (handled by caller)
func Load() (*Config, error) {
	return LoadFromFile("")
}

// LoadFromFile loads configuration from a specific file path.
// If path is empty, it searches for config in standard locations.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("configs_dir", defaults.ConfigsDir)
	v.SetDefault("storage_dir", defaults.StorageDir)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("fail_on_critical", defaults.FailOnCritical)
	v.SetDefault("fail_threshold", defaults.FailThreshold)
	v.SetDefault("last_runs", defaults.LastRuns)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("debug", defaults.Debug)

	v.SetConfigName("dailyaudit")
	v.SetConfigType("yaml")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			v.AddConfigPath(filepath.Join(xdgConfig, "dailyaudit"))
		}
	}

	v.SetEnvPrefix("DAILYAUDIT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is OK, we'll use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	validFormats := map[string]bool{
		"markdown": true,
		"text":     true,
		"json":     true,
	}
	if !validFormats[c.Format] {
		return fmt.Errorf("invalid format: %s (must be markdown, text, or json)", c.Format)
	}

	if c.FailThreshold < 0 {
		return fmt.Errorf("fail_threshold cannot be negative")
	}

	if c.LastRuns <= 0 {
		return fmt.Errorf("last_runs must be positive")
	}

	if c.ConfigsDir == "" {
		return fmt.Errorf("configs_dir cannot be empty")
	}

	if c.StorageDir == "" {
		return fmt.Errorf("storage_dir cannot be empty")
	}

	return nil
}

// GetStoragePath returns the absolute path to the storage directory.
func (c *Config) GetStoragePath() (string, error) {
	if len(c.StorageDir) >= 2 && c.StorageDir[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, c.StorageDir[2:]), nil
	}

	absPath, err := filepath.Abs(c.StorageDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	return absPath, nil
}

// ShouldFailOnThreshold checks if the issue count exceeds the threshold.
func (c *Config) ShouldFailOnThreshold(issueCount int) bool {
	if c.FailThreshold == 0 {
		return false
	}
	return issueCount > c.FailThreshold
}

// GenerateSampleConfig generates a sample configuration file content.
func GenerateSampleConfig() string {
	return `# Daily monitoring audit configuration
# Save this file as ~/.dailyaudit.yaml or ./dailyaudit.yaml

# Directory holding per-customer threshold files (<CUSTOMER>_config.json)
configs_dir: configs

# Directory where audit runs are persisted for trend analysis
storage_dir: .dailyaudit

# Output format: markdown, text, or json
format: markdown

# Exit with code 1 when critical findings are present
fail_on_critical: false

# Fail threshold for CI/CD (exit code 1 if issues exceed this number)
# Set to 0 to disable threshold checking
fail_threshold: 0

# Number of last runs shown by the history command
last_runs: 7

# Enable verbose output
verbose: false

# Enable debug mode
debug: false
`
}
