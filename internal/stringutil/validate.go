// Package stringutil provides low-level string grammar checks shared by the
// validator's format predicates.
package stringutil

import "regexp"

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

	// RFC 1123 labels: alphanumeric, optional interior hyphens, 63 chars max.
	hostnameLabelRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?)*$`)
)

// maxHostnameLength is the RFC 1123 limit for a full hostname.
const maxHostnameLength = 253

// IsValidEmail checks if s is a valid email address.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsValidHostname checks if s is a valid RFC 1123 hostname: dot-separated
// alphanumeric labels of at most 63 characters, hyphens allowed in the
// interior, 253 characters total.
func IsValidHostname(s string) bool {
	if s == "" || len(s) > maxHostnameLength {
		return false
	}
	return hostnameLabelRegex.MatchString(s)
}
