package loader

import "strings"

// SourceKind tags where a document's raw bytes originate.
type SourceKind string

const (
	// KindURL fetches bytes over HTTP(S).
	KindURL SourceKind = "url"
	// KindFile reads bytes from a filesystem path.
	KindFile SourceKind = "file"
	// KindBundled looks bytes up by name in the acquirer's bundled fs.FS.
	KindBundled SourceKind = "bundled"
)

// Location identifies where raw document bytes originate. It is an
// immutable value; create a new one rather than mutating.
type Location struct {
	// Value is the kind-specific address: a URL, a filesystem path, or a
	// bundled resource name.
	Value string
	// Kind selects how Value is interpreted.
	Kind SourceKind
}

// CacheKey derives the deterministic key both cache tiers index by,
// "<kind>:<value>". Kinds are distinct namespaces, so a file named like a
// URL never collides with that URL.
func (l Location) CacheKey() string {
	return string(l.Kind) + ":" + l.Value
}

// String implements fmt.Stringer using the cache key form.
func (l Location) String() string {
	return l.CacheKey()
}

// DetectKind guesses the source kind for a bare location string: values
// with an http:// or https:// prefix are URLs, everything else a file path.
// Bundled resources cannot be detected and must be declared explicitly.
func DetectKind(value string) SourceKind {
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return KindURL
	}
	return KindFile
}
