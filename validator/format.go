package validator

import (
	"net/netip"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/agsn10/kelari-api-documentation-sub001/internal/stringutil"
)

// dateLayout is the RFC 3339 full-date layout. Components must be
// zero-padded; time.Parse rejects "2024-1-5".
const dateLayout = "2006-01-02"

// uuidLength is the canonical 8-4-4-4-12 textual form. uuid.Parse also
// accepts braced, URN, and undashed forms, which are not valid here.
const uuidLength = 36

// IsValidEmail checks if s is a valid email address.
func IsValidEmail(s string) bool {
	return stringutil.IsValidEmail(s)
}

// IsValidHostname checks if s is a valid RFC 1123 hostname.
func IsValidHostname(s string) bool {
	return stringutil.IsValidHostname(s)
}

// IsValidURI checks if s is an absolute URI with a scheme.
func IsValidURI(s string) bool {
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Scheme != ""
}

// IsValidUUID checks if s is a canonical RFC 4122 UUID.
func IsValidUUID(s string) bool {
	if len(s) != uuidLength {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// IsValidDate checks if s is an RFC 3339 full-date, e.g. "2024-06-15".
func IsValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// IsValidDateTime checks if s is an RFC 3339 date-time, e.g.
// "2024-06-15T10:30:00Z".
func IsValidDateTime(s string) bool {
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

// IsValidIPv4 checks if s is a dotted-quad IPv4 address.
func IsValidIPv4(s string) bool {
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Is4()
}

// IsValidIPv6 checks if s is an IPv6 address without a zone.
func IsValidIPv6(s string) bool {
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Is6() && addr.Zone() == ""
}
