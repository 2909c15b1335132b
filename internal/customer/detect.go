package customer

import (
	"path/filepath"
	"strings"
)

// knownPrefixes are the customer codes that appear as report filename
// prefixes, e.g. TBS_DAILY_MONITORING_20_JAN_2026.xlsx.
var knownPrefixes = []string{"TBS", "BSW", "COREX", "SONOCO"}

// Detect identifies the customer from a report filename.
// It uses a two-phase approach:
// 1. Direct prefix match against known customer codes
// 2. Substring aliases for renamed companies (EVIOSYS reports to SONOCO)
// Returns the empty string when no customer can be determined; callers
// fall back to the default threshold configuration.
func Detect(path string) string {
	name := filepath.Base(path)
	stem := strings.ToUpper(strings.TrimSuffix(name, filepath.Ext(name)))

	for _, prefix := range knownPrefixes {
		if strings.HasPrefix(stem, prefix) {
			return prefix
		}
	}

	// EVIOSYS files use the SONOCO config (company renamed)
	if strings.Contains(stem, "EVIOSYS") {
		return "SONOCO"
	}

	return ""
}

// Known returns the customer codes with built-in filename detection.
func Known() []string {
	out := make([]string, len(knownPrefixes))
	copy(out, knownPrefixes)
	return out
}
