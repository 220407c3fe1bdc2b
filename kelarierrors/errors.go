package kelarierrors

import (
	"errors"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrNotFound indicates a requested resource or location is absent.
	ErrNotFound = errors.New("not found")

	// ErrIO indicates a network or filesystem failure.
	ErrIO = errors.New("io error")

	// ErrDecode indicates a malformed JSON or YAML payload.
	ErrDecode = errors.New("decode error")

	// ErrLoad indicates a document load failure.
	ErrLoad = errors.New("load error")
)

// NotFoundError reports that a resource or location does not exist.
// It is recoverable: callers typically fall back to another source.
type NotFoundError struct {
	// Location is the logical location that had no match
	Location string
	// Kind is the source kind that was probed: "url", "file", or "bundled"
	Kind string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message. The message always carries
// a "not found" marker so log scrapers and callers matching on text keep
// working alongside errors.Is.
func (e *NotFoundError) Error() string {
	msg := "resource not found"
	if e.Kind != "" {
		msg = e.Kind + " " + msg
	}
	if e.Location != "" {
		msg += ": " + e.Location
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *NotFoundError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// IOError represents a network or filesystem failure during acquisition
// or cache access.
type IOError struct {
	// Location is the logical location being accessed
	Location string
	// Op names the failing operation, e.g. "get", "read", "write"
	Op string
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *IOError) Error() string {
	msg := "io error"
	if e.Op != "" {
		msg += " during " + e.Op
	}
	if e.Location != "" {
		msg += " for " + e.Location
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *IOError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// DecodeError represents a malformed JSON or YAML payload. It covers both
// freshly acquired documents and schema-incompatible cached payloads, so
// callers can distinguish "never cached" from "cache corrupted".
type DecodeError struct {
	// Format is the wire format that failed to decode: "json" or "yaml"
	Format string
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying codec error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *DecodeError) Error() string {
	msg := "decode error"
	if e.Format != "" {
		msg += " (" + e.Format + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// LoadError is the umbrella failure returned by the document loader. It
// wraps the root cause (acquisition, decoding, or cache I/O) so callers can
// reach it with errors.Is and errors.As.
type LoadError struct {
	// Location is the logical location that failed to load
	Location string
	// Kind is the source kind: "url", "file", or "bundled"
	Kind string
	// Cause is the underlying error
	Cause error
}

// Error returns a human-readable error message.
func (e *LoadError) Error() string {
	msg := "load error"
	if e.Kind != "" || e.Location != "" {
		msg += " for " + e.Kind
		if e.Kind != "" && e.Location != "" {
			msg += ":"
		}
		msg += e.Location
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *LoadError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}
