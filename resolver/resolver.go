package resolver

import "github.com/agsn10/kelari-api-documentation-sub001/spec"

// SchemaNode is a generic, codec-agnostic projection of a schema: the tree
// shape without the document model's ref, cast, and example machinery.
// Every resolution call produces a fresh tree owned solely by the caller.
type SchemaNode struct {
	Type        string                        `yaml:"type,omitempty" json:"type,omitempty"`
	Format      string                        `yaml:"format,omitempty" json:"format,omitempty"`
	Description string                        `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any                           `yaml:"default,omitempty" json:"default,omitempty"`
	Enum        []any                         `yaml:"enum,omitempty" json:"enum,omitempty"`
	Properties  *spec.OrderedMap[*SchemaNode] `yaml:"properties,omitempty" json:"properties,omitempty"`
	Items       *SchemaNode                   `yaml:"items,omitempty" json:"items,omitempty"`
}

// Resolver answers schema lookups over one document. The document is
// treated as read-only for the Resolver's lifetime.
type Resolver struct {
	doc *spec.Document
}

// New returns a Resolver over doc.
func New(doc *spec.Document) *Resolver {
	return &Resolver{doc: doc}
}

// ResolveSchemaFromPath returns the schema tree for the canonical response
// of (path, method), or nil when the document has no matching path item,
// operation, response, media type, or schema. Callers routinely probe
// speculative paths, so absence is never an error.
//
// The response is selected by priority: the explicit "200" entry, else the
// entry literally keyed "default", else the first response in declaration
// order. From the selected response the first declared media type wins.
func (r *Resolver) ResolveSchemaFromPath(path, method string) *SchemaNode {
	item := r.doc.PathItem(path)
	if item == nil {
		return nil
	}

	op := item.Operation(method)
	if op == nil {
		return nil
	}

	resp := selectResponse(op.Responses)
	if resp == nil {
		return nil
	}

	_, mt, ok := resp.Content.First()
	if !ok || mt == nil || mt.Schema == nil {
		return nil
	}

	return ConvertSchema(mt.Schema)
}

// selectResponse picks the response entry resolution works from: "200",
// else "default", else the first declared entry.
func selectResponse(responses *spec.OrderedMap[*spec.Response]) *spec.Response {
	if responses.Len() == 0 {
		return nil
	}
	if resp, ok := responses.Get("200"); ok {
		return resp
	}
	if resp, ok := responses.Get("default"); ok {
		return resp
	}
	_, resp, _ := responses.First()
	return resp
}

// ConvertSchema projects a document schema into a SchemaNode tree. It is
// pure and total: nil converts to nil, enum values keep their native scalar
// types and declaration order, properties recurse in insertion order, and
// an item schema recurses into Items. Schema variants it does not recognize
// degrade to whatever common fields are present rather than failing.
func ConvertSchema(s *spec.Schema) *SchemaNode {
	if s == nil {
		return nil
	}

	node := &SchemaNode{
		Type:        s.Type,
		Format:      s.Format,
		Description: s.Description,
		Default:     s.Default,
	}

	if len(s.Enum) > 0 {
		node.Enum = append([]any(nil), s.Enum...)
	}

	if s.Properties.Len() > 0 {
		node.Properties = spec.NewOrderedMap[*SchemaNode]()
		for name, prop := range s.Properties.All() {
			node.Properties.Set(name, ConvertSchema(prop))
		}
	}

	if s.Items != nil {
		node.Items = ConvertSchema(s.Items)
	}

	return node
}
