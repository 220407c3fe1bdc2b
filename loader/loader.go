package loader

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/agsn10/kelari-api-documentation-sub001/codec"
	"github.com/agsn10/kelari-api-documentation-sub001/kelarierrors"
	"github.com/agsn10/kelari-api-documentation-sub001/spec"
)

// Store is the persistent cache tier consumed by a Loader. *cache.FileStore
// satisfies it; tests substitute fakes.
type Store interface {
	// Load returns the cached document for key, or (nil, nil) when the key
	// was never cached.
	Load(key string) (*spec.Document, error)
	// Save persists doc under key, replacing any previous entry.
	Save(key string, doc *spec.Document) error
}

// Option is a function that configures a Loader.
type Option func(*Loader) error

// WithAcquirer sets the source acquirer.
// Default: NewAcquirer()
func WithAcquirer(a *Acquirer) Option {
	return func(l *Loader) error {
		if a == nil {
			return fmt.Errorf("loader: acquirer cannot be nil")
		}
		l.acquirer = a
		return nil
	}
}

// WithStore attaches a persistent cache tier. Documents parsed on a miss
// are written through to the store and reconstructed from it on later runs.
// Default: no persistent tier
func WithStore(s Store) Option {
	return func(l *Loader) error {
		if s == nil {
			return fmt.Errorf("loader: store cannot be nil")
		}
		l.store = s
		return nil
	}
}

// WithLogger sets the logger for load diagnostics.
// Default: NopLogger
func WithLogger(logger Logger) Option {
	return func(l *Loader) error {
		if logger == nil {
			return fmt.Errorf("loader: logger cannot be nil")
		}
		l.logger = logger
		return nil
	}
}

// Loader orchestrates acquisition, format sniffing, parsing, and the two
// cache tiers. The in-process tier is identity-preserving: every Load of
// the same (location, kind) returns the same *spec.Document until
// Invalidate. A Loader is safe for concurrent use; its in-process cache is
// explicit per-instance state, so tests create fresh Loaders instead of
// sharing ambient globals.
type Loader struct {
	acquirer *Acquirer
	store    Store
	logger   Logger

	mu   sync.RWMutex
	docs map[string]*spec.Document

	group singleflight.Group
}

// New returns a Loader with the given options applied.
func New(opts ...Option) (*Loader, error) {
	l := &Loader{
		acquirer: NewAcquirer(),
		docs:     make(map[string]*spec.Document),
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *Loader) log() Logger {
	if l.logger != nil {
		return l.logger
	}
	return NopLogger{}
}

// Load returns the document at location. Repeat loads of the same
// (location, kind) return the identical instance from the in-process tier;
// concurrent first loads are single-flight coordinated so the document is
// acquired and parsed exactly once per key. Failures come back as a
// *kelarierrors.LoadError wrapping the root cause.
func (l *Loader) Load(location string, kind SourceKind) (*spec.Document, error) {
	loc := Location{Value: location, Kind: kind}
	key := loc.CacheKey()

	l.mu.RLock()
	doc, ok := l.docs[key]
	l.mu.RUnlock()
	if ok {
		l.log().Debug("in-process cache hit", "key", key)
		return doc, nil
	}

	v, err, _ := l.group.Do(key, func() (any, error) {
		// Re-check: another caller may have populated the entry between
		// the fast path and joining this flight.
		l.mu.RLock()
		doc, ok := l.docs[key]
		l.mu.RUnlock()
		if ok {
			return doc, nil
		}

		doc, err := l.fetch(loc, key)
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		l.docs[key] = doc
		l.mu.Unlock()
		return doc, nil
	})
	if err != nil {
		l.log().Error("load failed", "key", key, "error", err)
		return nil, &kelarierrors.LoadError{Location: location, Kind: string(kind), Cause: err}
	}
	return v.(*spec.Document), nil
}

// fetch resolves a cache miss: persistent tier first when configured, then
// acquisition plus parse with write-through.
func (l *Loader) fetch(loc Location, key string) (*spec.Document, error) {
	if l.store != nil {
		doc, err := l.store.Load(key)
		if err != nil {
			return nil, err
		}
		if doc != nil {
			l.log().Debug("persistent cache hit", "key", key)
			return doc, nil
		}
	}

	stream, err := l.acquirer.Open(loc)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = stream.Close()
	}()

	data, err := io.ReadAll(stream)
	if err != nil {
		return nil, &kelarierrors.IOError{Location: loc.Value, Op: "read", Cause: err}
	}

	doc, err := l.ParseBytes(data)
	if err != nil {
		return nil, err
	}
	l.log().Debug("parsed document", "key", key, "bytes", len(data))

	if l.store != nil {
		if err := l.store.Save(key, doc); err != nil {
			return nil, err
		}
		l.log().Debug("persisted document", "key", key)
	}
	return doc, nil
}

// ParseBytes parses raw document bytes without touching either cache tier.
// The payload's format is sniffed: a first non-whitespace '{' selects JSON,
// anything else YAML.
func (l *Loader) ParseBytes(data []byte) (*spec.Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &kelarierrors.DecodeError{Message: "empty document"}
	}
	return codec.ForContent(data).Decode(data)
}

// Invalidate drops the in-process entry for (location, kind) so the next
// Load re-acquires it. The persistent tier is untouched; evict there with
// the store's own Remove.
func (l *Loader) Invalidate(location string, kind SourceKind) {
	key := Location{Value: location, Kind: kind}.CacheKey()
	l.mu.Lock()
	delete(l.docs, key)
	l.mu.Unlock()
	l.log().Debug("invalidated in-process entry", "key", key)
}
