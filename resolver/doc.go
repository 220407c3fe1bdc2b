// Package resolver navigates a loaded document to the canonical response
// schema for a path and method, projecting it into a generic SchemaNode
// tree.
//
//	r := resolver.New(doc)
//	node := r.ResolveSchemaFromPath("/pets", "get")
//
// Resolution is read-only and absence-tolerant: probing a path, method, or
// response shape the document does not have returns nil rather than an
// error, so callers can speculate freely. A Resolver holds no mutable state
// and is safe for concurrent use as long as the document itself is not
// being mutated.
package resolver
