// Package storage persists audit runs to the local filesystem so
// consecutive audits can be compared for trend reporting.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sapops/dailyaudit/internal/models"
)

// Run is one persisted audit. SavedAt lives here rather than on the
// result: the audit itself is timestamp-free.
type Run struct {
	SavedAt time.Time           `json:"saved_at"`
	Result  *models.AuditResult `json:"result"`
}

// LocalStorage keeps audit runs as JSON files under a base directory.
type LocalStorage struct {
	baseDir string
}

// NewLocal creates a new local storage instance.
func NewLocal(baseDir string) *LocalStorage {
	return &LocalStorage{
		baseDir: baseDir,
	}
}

// SaveRun stores an audit result to disk under the given timestamp.
func (s *LocalStorage) SaveRun(result *models.AuditResult, at time.Time) error {
	runsDir := filepath.Join(s.baseDir, "runs")
	if err := os.MkdirAll(runsDir, 0755); err != nil {
		return fmt.Errorf("failed to create runs directory: %w", err)
	}

	run := Run{SavedAt: at, Result: result}
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}

	path := filepath.Join(runsDir, s.formatTimestamp(at)+"-audit.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

// LoadRun loads the run saved at a specific timestamp.
func (s *LocalStorage) LoadRun(at time.Time) (*Run, error) {
	path := filepath.Join(s.baseDir, "runs", s.formatTimestamp(at)+"-audit.json")
	return s.loadRunFromFile(path)
}

// GetLatestRun retrieves the most recent saved run.
func (s *LocalStorage) GetLatestRun() (*Run, error) {
	timestamps, err := s.ListRuns()
	if err != nil {
		return nil, err
	}
	if len(timestamps) == 0 {
		return nil, fmt.Errorf("no runs found")
	}

	return s.LoadRun(timestamps[len(timestamps)-1])
}

// GetLastNRuns retrieves the last N runs in chronological order.
func (s *LocalStorage) GetLastNRuns(n int) ([]*Run, error) {
	timestamps, err := s.ListRuns()
	if err != nil {
		return nil, err
	}
	if len(timestamps) == 0 {
		return nil, fmt.Errorf("no runs found")
	}

	start := len(timestamps) - n
	if start < 0 {
		start = 0
	}

	selected := timestamps[start:]
	runs := make([]*Run, 0, len(selected))
	for _, at := range selected {
		run, err := s.LoadRun(at)
		if err != nil {
			// Skip runs that fail to load but continue with others
			continue
		}
		runs = append(runs, run)
	}

	return runs, nil
}

// ListRuns returns all saved run timestamps sorted chronologically.
func (s *LocalStorage) ListRuns() ([]time.Time, error) {
	runsDir := filepath.Join(s.baseDir, "runs")

	if _, err := os.Stat(runsDir); os.IsNotExist(err) {
		return []time.Time{}, nil
	}

	entries, err := os.ReadDir(runsDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read runs directory: %w", err)
	}

	var timestamps []time.Time
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.HasSuffix(entry.Name(), "-audit.json") {
			continue
		}

		// Filename format: 2006-01-02T15-04-05-audit.json
		at, err := s.parseTimestamp(strings.TrimSuffix(entry.Name(), "-audit.json"))
		if err != nil {
			// Skip files with invalid timestamp format
			continue
		}
		timestamps = append(timestamps, at)
	}

	sort.Slice(timestamps, func(i, j int) bool {
		return timestamps[i].Before(timestamps[j])
	})

	return timestamps, nil
}

func (s *LocalStorage) loadRunFromFile(path string) (*Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("run not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var run Run
	if err := json.Unmarshal(data, &run); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run: %w", err)
	}

	return &run, nil
}

func (s *LocalStorage) formatTimestamp(t time.Time) string {
	return t.Format("2006-01-02T15-04-05")
}

func (s *LocalStorage) parseTimestamp(str string) (time.Time, error) {
	return time.Parse("2006-01-02T15-04-05", str)
}

// GetStoragePath returns the full path to the storage directory.
func (s *LocalStorage) GetStoragePath() string {
	return s.baseDir
}
