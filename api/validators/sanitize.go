package validators

import "strings"

// SanitizeString trims free-text form input (names, addresses, notes) and
// hard-caps its length before it reaches a service.
func SanitizeString(input string, maxLen int) string {
	trimmed := strings.TrimSpace(input)
	if maxLen > 0 && len(trimmed) > maxLen {
		return trimmed[:maxLen]
	}
	return trimmed
}
