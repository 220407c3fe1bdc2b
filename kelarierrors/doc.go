// Package kelarierrors provides structured error types for the kelari library.
//
// Import path: github.com/agsn10/kelari-api-documentation-sub001/kelarierrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides four core error types:
//
//   - [NotFoundError]: a resource or location is absent (recoverable; the caller decides the fallback)
//   - [IOError]: network or filesystem failures during acquisition or cache access
//   - [DecodeError]: malformed JSON/YAML payloads, including corrupt cached documents
//   - [LoadError]: umbrella for document loading, wrapping any of the above as its cause
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrNotFound]: Matches any [NotFoundError]
//   - [ErrIO]: Matches any [IOError]
//   - [ErrDecode]: Matches any [DecodeError]
//   - [ErrLoad]: Matches any [LoadError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	doc, err := l.Load("petstore.yaml", loader.KindBundled)
//	if errors.Is(err, kelarierrors.ErrNotFound) {
//	    // Fall back to a default document
//	}
//
// Extract error details with errors.As():
//
//	var decErr *kelarierrors.DecodeError
//	if errors.As(err, &decErr) {
//	    fmt.Printf("malformed %s payload: %v\n", decErr.Format, decErr.Cause)
//	}
//
// # Error Chaining
//
// All error types support error chaining via the Cause field and Unwrap() method,
// so the root cause stays reachable through a [LoadError]:
//
//	var loadErr *kelarierrors.LoadError
//	if errors.As(err, &loadErr) {
//	    if errors.Is(loadErr.Cause, fs.ErrNotExist) {
//	        // The document file does not exist
//	    }
//	}
package kelarierrors
