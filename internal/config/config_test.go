package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Format != "markdown" {
		t.Errorf("default format = %q", cfg.Format)
	}
	if cfg.ConfigsDir != "configs" || cfg.StorageDir != ".dailyaudit" {
		t.Errorf("default dirs = %q, %q", cfg.ConfigsDir, cfg.StorageDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dailyaudit.yaml")
	content := `configs_dir: /etc/dailyaudit/configs
format: json
fail_on_critical: true
fail_threshold: 5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if cfg.ConfigsDir != "/etc/dailyaudit/configs" {
		t.Errorf("configs_dir = %q", cfg.ConfigsDir)
	}
	if cfg.Format != "json" || !cfg.FailOnCritical || cfg.FailThreshold != 5 {
		t.Errorf("cfg = %+v", cfg)
	}
	// Values not in the file keep their defaults.
	if cfg.StorageDir != ".dailyaudit" || cfg.LastRuns != 7 {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadFromFileInvalidFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dailyaudit.yaml")
	if err := os.WriteFile(path, []byte("format: xml\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromFile(path); err == nil {
		t.Fatal("expected error for invalid format")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"bad format", func(c *Config) { c.Format = "xml" }, true},
		{"negative threshold", func(c *Config) { c.FailThreshold = -1 }, true},
		{"zero last runs", func(c *Config) { c.LastRuns = 0 }, true},
		{"empty configs dir", func(c *Config) { c.ConfigsDir = "" }, true},
		{"empty storage dir", func(c *Config) { c.StorageDir = "" }, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestShouldFailOnThreshold(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ShouldFailOnThreshold(100) {
		t.Error("threshold 0 must disable the check")
	}
	cfg.FailThreshold = 5
	if cfg.ShouldFailOnThreshold(5) {
		t.Error("at threshold should pass")
	}
	if !cfg.ShouldFailOnThreshold(6) {
		t.Error("over threshold should fail")
	}
}

func TestGetStoragePathAbsolute(t *testing.T) {
	cfg := DefaultConfig()
	path, err := cfg.GetStoragePath()
	if err != nil {
		t.Fatalf("GetStoragePath: %v", err)
	}
	if !filepath.IsAbs(path) {
		t.Errorf("expected absolute path, got %q", path)
	}
}

func TestGenerateSampleConfig(t *testing.T) {
	sample := GenerateSampleConfig()
	for _, want := range []string{"configs_dir:", "storage_dir:", "format:", "fail_on_critical:"} {
		if !strings.Contains(sample, want) {
			t.Errorf("sample config missing %q", want)
		}
	}
}
