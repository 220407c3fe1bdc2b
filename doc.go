// Package kelari provides a loading, caching, schema-resolution, and
// validation engine for OpenAPI-style API description documents.
//
// # Overview
//
// The library consists of six primary packages:
//
//   - spec: the typed document model (Info, Paths, Operations, Schemas, ...)
//   - codec: JSON/YAML decoding and encoding plus content-based format sniffing
//   - loader: document acquisition from URL, file, or bundled sources with a
//     two-tier cache (in-process identity tier plus optional persistent tier)
//   - cache: the persistent tier, a per-key file store under the user cache dir
//   - resolver: response-schema resolution by path and method
//   - validator: structural validation rules and string format predicates
//
// # Quick Start
//
// Load a document and resolve the schema of an operation's response:
//
//	import (
//		"github.com/agsn10/kelari-api-documentation-sub001/loader"
//		"github.com/agsn10/kelari-api-documentation-sub001/resolver"
//	)
//
//	l, err := loader.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	doc, err := l.Load("petstore.yaml", loader.KindFile)
//	if err != nil {
//		log.Fatal(err)
//	}
//	r := resolver.New(doc)
//	if node := r.ResolveSchemaFromPath("/pets", "get"); node != nil {
//		fmt.Printf("type: %s\n", node.Type)
//	}
//
// Validate the document's parameters:
//
//	import "github.com/agsn10/kelari-api-documentation-sub001/validator"
//
//	v := validator.New()
//	result := v.ValidateDocument(doc)
//	for _, issue := range result.Issues() {
//		fmt.Println(issue)
//	}
//
// # Caching
//
// Each Loader owns an in-process cache: repeated loads of the same location
// and kind return the same *spec.Document instance, and concurrent first
// loads of one key collapse into a single parse. An optional persistent tier
// (cache.FileStore) survives process restarts:
//
//	store, err := cache.NewFileStore()
//	if err != nil {
//		log.Fatal(err)
//	}
//	l, err := loader.New(loader.WithStore(store))
//
// # Error Handling
//
// Failures carry typed causes from the kelarierrors package. Loader errors
// are always *kelarierrors.LoadError wrapping the root cause, so callers can
// pattern-match instead of string-match:
//
//	doc, err := l.Load("missing.yaml", loader.KindBundled)
//	if errors.Is(err, kelarierrors.ErrNotFound) {
//		// fall back to a default document
//	}
//
// Resolution and validation never fail for "document doesn't have this
// shape" conditions: the resolver returns nil and the validator appends
// zero issues.
//
// # Command-Line Interface
//
// The kelari command exposes the engine:
//
//	# Load a document and print a summary
//	kelari load petstore.yaml
//
//	# Resolve a response schema
//	kelari resolve -path /pets -method get petstore.yaml
//
//	# Validate a document
//	kelari validate petstore.yaml
//
//	# Serve the engine over the Model Context Protocol on stdio
//	kelari mcp
//
// Install the CLI:
//
//	go install github.com/agsn10/kelari-api-documentation-sub001/cmd/kelari@latest
package kelari
