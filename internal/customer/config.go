package customer

import (
	"fmt"
	"strings"
)

// Configuration holds the validation thresholds for one customer.
// It is resolved once per audit run and immutable thereafter; rule logic
// receives it explicitly rather than looking thresholds up ambiently.
type Configuration struct {
	ResponseTimeMaxMs float64 `json:"response_time_max_ms"`
	DumpsTodayMax     float64 `json:"dumps_today_max"`
	DumpsYesterdayMax float64 `json:"dumps_yesterday_max"`
	FailedJobsMax     float64 `json:"failed_jobs_max"`
	OldLocksMax       float64 `json:"old_locks_max"`
}

// DefaultConfiguration returns the generic thresholds applied when no
// customer-specific configuration exists.
func DefaultConfiguration() Configuration {
	return Configuration{
		ResponseTimeMaxMs: 1000,
		DumpsTodayMax:     25,
		DumpsYesterdayMax: 40,
		FailedJobsMax:     5,
		OldLocksMax:       10,
	}
}

// Validate checks threshold invariants.
func (c Configuration) Validate() error {
	if c.ResponseTimeMaxMs < 0 || c.DumpsTodayMax < 0 || c.DumpsYesterdayMax < 0 ||
		c.FailedJobsMax < 0 || c.OldLocksMax < 0 {
		return fmt.Errorf("thresholds must be non-negative: %+v", c)
	}
	return nil
}

// ConfigMalformedError reports a stored customer configuration that is
// present but unusable. The resolver never substitutes defaults in this
// case: auditing against bogus thresholds silently is worse than failing.
type ConfigMalformedError struct {
	Customer string
	Problems []string
}

func (e *ConfigMalformedError) Error() string {
	return fmt.Sprintf("malformed config for customer %s:\n  - %s",
		e.Customer, strings.Join(e.Problems, "\n  - "))
}

// Resolve returns the threshold configuration for a customer.
// The boolean is true when the built-in defaults were applied, so callers
// can warn the user. An empty customer id (detection failed) or an absent
// stored config both resolve to defaults; a stored config that is present
// but broken fails with ConfigMalformedError.
func Resolve(customerID string, store *Store) (Configuration, bool, error) {
	if customerID == "" || store == nil {
		return DefaultConfiguration(), true, nil
	}

	cfg, err := store.Load(customerID)
	if err != nil {
		return Configuration{}, false, err
	}
	if cfg == nil {
		return DefaultConfiguration(), true, nil
	}

	return *cfg, false, nil
}
