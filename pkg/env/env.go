// Package env reads ad hoc process environment variables that sit outside
// the envconfig-loaded settings.
package env

import "os"

const prefix = "ROTALOG_"

// Get looks up key, preferring the ROTALOG_-prefixed form so one-off
// variables follow the same naming as the rest of the configuration.
func Get(key, fallback string) string {
	if val := os.Getenv(prefix + key); val != "" {
		return val
	}
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
