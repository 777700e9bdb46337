package enums

import "fmt"

// RiskStatus classifies a customer's creditworthiness.
type RiskStatus string

const (
	RiskStatusLow       RiskStatus = "low"
	RiskStatusMedium    RiskStatus = "medium"
	RiskStatusHigh      RiskStatus = "high"
	RiskStatusBlacklist RiskStatus = "blacklist"
)

var validRiskStatuses = []RiskStatus{
	RiskStatusLow,
	RiskStatusMedium,
	RiskStatusHigh,
	RiskStatusBlacklist,
}

// String implements fmt.Stringer.
func (r RiskStatus) String() string {
	return string(r)
}

// IsValid reports whether the value is a known RiskStatus.
func (r RiskStatus) IsValid() bool {
	for _, candidate := range validRiskStatuses {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRiskStatus converts raw input into a RiskStatus.
func ParseRiskStatus(value string) (RiskStatus, error) {
	for _, candidate := range validRiskStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid risk status %q", value)
}

// RiskStatuses returns the full classification list for the lookup endpoint.
func RiskStatuses() []RiskStatus {
	out := make([]RiskStatus, len(validRiskStatuses))
	copy(out, validRiskStatuses)
	return out
}
