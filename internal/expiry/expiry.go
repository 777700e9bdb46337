// Package expiry classifies dated documents such as passports, visas,
// vehicle insurance and inspection certificates.
package expiry

import "time"

// Status buckets a document date relative to a reference instant.
type Status string

const (
	// StatusUnknown means no date is on file.
	StatusUnknown Status = "unknown"
	// StatusExpired means the date is strictly in the past.
	StatusExpired Status = "expired"
	// StatusWarning means the date falls within the warning window.
	StatusWarning Status = "warning"
	// StatusValid means the date is comfortably in the future.
	StatusValid Status = "valid"
)

// WarningWindow is how far ahead a document counts as expiring soon.
const WarningWindow = 30 * 24 * time.Hour

// Classify buckets the document date against now. A nil date is unknown, a
// past date is expired, a date within the warning window (inclusive) is
// warning, anything later is valid.
func Classify(date *time.Time, now time.Time) Status {
	if date == nil {
		return StatusUnknown
	}
	if date.Before(now) {
		return StatusExpired
	}
	if !date.After(now.Add(WarningWindow)) {
		return StatusWarning
	}
	return StatusValid
}

// IsExpired reports whether the date is on file and already past.
func IsExpired(date *time.Time, now time.Time) bool {
	return Classify(date, now) == StatusExpired
}
