package customer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Threshold keys required in every stored customer config.
const (
	keyResponseTime   = "response_time"
	keyDumpsToday     = "dumps_today"
	keyDumpsYesterday = "dumps_yesterday"
	keyFailedJobs     = "failed_jobs"
	keyOldLocks       = "old_locks"
)

var requiredThresholds = []string{
	keyResponseTime, keyDumpsToday, keyDumpsYesterday, keyFailedJobs, keyOldLocks,
}

// configFile mirrors the on-disk JSON layout:
//
//	{"customer": "TBS", "thresholds": {"response_time": {"max": 1200}, ...}}
type configFile struct {
	Customer   string `json:"customer,omitempty"`
	Thresholds map[string]struct {
		Max *float64 `json:"max"`
	} `json:"thresholds"`
}

// Store loads per-customer threshold configs from a directory of
// <CUSTOMER>_config.json files.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir. The directory does not need to
// exist; lookups against a missing directory behave as "no config".
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the config file path for a customer.
func (s *Store) Path(customerID string) string {
	return filepath.Join(s.dir, strings.ToUpper(customerID)+"_config.json")
}

// Load reads and validates one customer's config.
// Returns (nil, nil) when no config file exists for the customer.
// Returns ConfigMalformedError when a file exists but is unusable.
func (s *Store) Load(customerID string) (*Configuration, error) {
	data, err := os.ReadFile(s.Path(customerID))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config for %s: %w", customerID, err)
	}

	var file configFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, &ConfigMalformedError{
			Customer: customerID,
			Problems: []string{fmt.Sprintf("invalid JSON: %v", err)},
		}
	}

	var problems []string
	values := make(map[string]float64, len(requiredThresholds))

	for _, key := range requiredThresholds {
		entry, ok := file.Thresholds[key]
		if !ok {
			problems = append(problems, fmt.Sprintf("missing threshold %q", key))
			continue
		}
		if entry.Max == nil {
			problems = append(problems, fmt.Sprintf("threshold %q has no numeric 'max'", key))
			continue
		}
		if *entry.Max < 0 {
			problems = append(problems, fmt.Sprintf("threshold %q is negative: %v", key, *entry.Max))
			continue
		}
		values[key] = *entry.Max
	}

	if len(problems) > 0 {
		return nil, &ConfigMalformedError{Customer: customerID, Problems: problems}
	}

	return &Configuration{
		ResponseTimeMaxMs: values[keyResponseTime],
		DumpsTodayMax:     values[keyDumpsToday],
		DumpsYesterdayMax: values[keyDumpsYesterday],
		FailedJobsMax:     values[keyFailedJobs],
		OldLocksMax:       values[keyOldLocks],
	}, nil
}

// List returns the customer ids that have a config file, sorted.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read configs directory: %w", err)
	}

	var customers []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, "_config.json") {
			continue
		}
		customers = append(customers, strings.TrimSuffix(name, "_config.json"))
	}

	sort.Strings(customers)
	return customers, nil
}
