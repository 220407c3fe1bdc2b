// Package loader acquires, parses, and caches API description documents.
//
// A Loader is the single entry point callers use to turn a location into a
// parsed *spec.Document:
//
//	l, err := loader.New()
//	if err != nil { ... }
//	doc, err := l.Load("https://example.com/api.yaml", loader.KindURL)
//
// Loads run through two cache tiers. The in-process tier is
// identity-preserving: two loads of the same location return the same
// pointer, not merely equal values, until Invalidate is called. An optional
// persistent tier (see the cache package) lets documents survive process
// restarts. Concurrent first loads of one location are coordinated so the
// document is fetched and parsed exactly once.
//
// Acquisition is handled by an Acquirer, which resolves three source kinds:
// http(s) URLs, filesystem paths, and names looked up in a bundled fs.FS.
// Failures carry the kelarierrors taxonomy: NotFoundError for an absent
// resource, IOError for transport or filesystem trouble, DecodeError for
// malformed payloads, and every Load failure is wrapped in a LoadError that
// preserves the root cause for errors.Is and errors.As.
package loader
