package cache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/agsn10/kelari-api-documentation-sub001/codec"
	"github.com/agsn10/kelari-api-documentation-sub001/internal/fileutil"
	"github.com/agsn10/kelari-api-documentation-sub001/kelarierrors"
	"github.com/agsn10/kelari-api-documentation-sub001/spec"
)

// DefaultNamespace prefixes cache filenames so separate consumers (for
// example tests) can share a directory without colliding.
const DefaultNamespace = "kelari"

// cacheDirName is the subdirectory created under the user cache directory.
const cacheDirName = "kelari"

// Option configures a FileStore.
type Option func(*FileStore) error

// WithDir sets the cache directory.
// Default: os.UserCacheDir()/kelari
func WithDir(dir string) Option {
	return func(s *FileStore) error {
		if dir == "" {
			return fmt.Errorf("cache: dir cannot be empty")
		}
		s.dir = dir
		return nil
	}
}

// WithNamespace sets the filename prefix for this store's entries.
// Default: "kelari"
func WithNamespace(namespace string) Option {
	return func(s *FileStore) error {
		if namespace == "" {
			return fmt.Errorf("cache: namespace cannot be empty")
		}
		s.namespace = namespace
		return nil
	}
}

// WithCodec sets the codec used to encode and decode cached documents.
// Default: codec.JSON
func WithCodec(c codec.Codec) Option {
	return func(s *FileStore) error {
		if c == nil {
			return fmt.Errorf("cache: codec cannot be nil")
		}
		s.codec = c
		return nil
	}
}

// FileStore is the persistent cache tier: one encoded document file per
// key. Methods are safe for concurrent use; same-key writes are
// last-write-wins and a concurrent Load observes either the old or the new
// content, never a partial write.
type FileStore struct {
	dir       string
	namespace string
	codec     codec.Codec
}

// NewFileStore returns a store rooted at the configured directory. The
// directory itself is created lazily on first Save, so constructing a store
// never touches the filesystem.
func NewFileStore(opts ...Option) (*FileStore, error) {
	s := &FileStore{
		namespace: DefaultNamespace,
		codec:     codec.JSON,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if s.dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("cache: resolving user cache dir: %w", err)
		}
		s.dir = filepath.Join(base, cacheDirName)
	}
	return s, nil
}

// Dir returns the cache directory.
func (s *FileStore) Dir() string {
	return s.dir
}

// Path returns the file this store uses for key. The key is sanitized so
// reserved path characters such as ':' and '/' cannot escape the cache
// directory; distinct printable keys stay distinct in the common case of
// URL- and path-shaped keys.
func (s *FileStore) Path(key string) string {
	name := s.namespace + "-" + sanitizeKey(key) + "." + string(s.codec.Format())
	return filepath.Join(s.dir, name)
}

// Save encodes doc and writes it under key, replacing any previous entry.
// The payload lands in a temporary file first and is renamed into place, so
// readers never observe a torn file.
func (s *FileStore) Save(key string, doc *spec.Document) error {
	data, err := s.codec.Encode(doc)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(s.dir, fileutil.OwnerFullAccess); err != nil {
		return &kelarierrors.IOError{Location: s.dir, Op: "mkdir", Cause: err}
	}

	final := s.Path(key)
	tmp, err := os.CreateTemp(s.dir, filepath.Base(final)+".tmp-*")
	if err != nil {
		return &kelarierrors.IOError{Location: s.dir, Op: "create temp", Cause: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &kelarierrors.IOError{Location: tmpName, Op: "write", Cause: err}
	}
	if err := tmp.Chmod(fileutil.OwnerReadWrite); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &kelarierrors.IOError{Location: tmpName, Op: "chmod", Cause: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &kelarierrors.IOError{Location: tmpName, Op: "close", Cause: err}
	}

	if err := os.Rename(tmpName, final); err != nil {
		_ = os.Remove(tmpName)
		return &kelarierrors.IOError{Location: final, Op: "rename", Cause: err}
	}
	return nil
}

// Load returns the document cached under key, or (nil, nil) when the key
// was never cached. An unreadable file surfaces as an IOError and a payload
// that no longer decodes as a DecodeError; a corrupt entry is not silently
// treated as absent.
func (s *FileStore) Load(key string) (*spec.Document, error) {
	path := s.Path(key)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &kelarierrors.IOError{Location: path, Op: "read", Cause: err}
	}
	return s.codec.Decode(data)
}

// Remove deletes the entry for key. Removing an absent key is not an error.
func (s *FileStore) Remove(key string) error {
	path := s.Path(key)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &kelarierrors.IOError{Location: path, Op: "remove", Cause: err}
	}
	return nil
}

// sanitizeKey maps every byte outside [A-Za-z0-9._-] to '_' so keys embed
// safely in a filename within the cache directory.
func sanitizeKey(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, key)
}
