// Package spec defines the document model for OpenAPI-style API
// descriptions: a typed object graph reachable by field name or by a
// path+method pair.
//
// Import path: github.com/agsn10/kelari-api-documentation-sub001/spec
//
// The model is deliberately compact. It carries the nodes the engine
// navigates (Info, Paths, PathItem, Operation, Parameter, RequestBody,
// Response, MediaType, Header, Schema) and preserves declaration order
// wherever order is load-bearing: response entries, media types, schema
// properties, and enum values. Order-sensitive mappings use [OrderedMap].
//
// Specification extensions ("x-" prefixed keys) are captured into each
// node's Extra map during YAML decoding. [IsExtensionName] is the predicate
// for recognizing such keys; it only accepts or rejects, logging belongs to
// the caller.
//
// # Schema variants
//
// A [Schema] carries a type/format pair and, for specialized variants, a
// cast function converting textual example values into their native
// representation. Variants are constructed through presets:
//
//	spec.NewFileSchema()     // type "string", format "binary"
//	spec.NewDateSchema()     // type "string", format "date", casts to time.Time
//	spec.NewDateTimeSchema() // type "string", format "date-time", casts to time.Time
//	spec.NewUUIDSchema()     // type "string", format "uuid", casts to uuid.UUID
//
// Example-bearing containers (Schema, Parameter, MediaType, Header) honor a
// shared contract on SetExample: the schema's cast is attempted first; if it
// fails while the original value was non-nil, the container retains the
// unconverted original and does not mark the example as explicitly set, so a
// malformed example never silently appears well-typed. Without a schema the
// value is stored as-is and always marked set.
package spec
