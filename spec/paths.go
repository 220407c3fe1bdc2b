package spec

import (
	"strings"

	"github.com/agsn10/kelari-api-documentation-sub001/internal/httputil"
)

// PathItem describes the operations available on a single path
type PathItem struct {
	Ref         string       `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Summary     string       `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	Get         *Operation   `yaml:"get,omitempty" json:"get,omitempty"`
	Put         *Operation   `yaml:"put,omitempty" json:"put,omitempty"`
	Post        *Operation   `yaml:"post,omitempty" json:"post,omitempty"`
	Delete      *Operation   `yaml:"delete,omitempty" json:"delete,omitempty"`
	Options     *Operation   `yaml:"options,omitempty" json:"options,omitempty"`
	Head        *Operation   `yaml:"head,omitempty" json:"head,omitempty"`
	Patch       *Operation   `yaml:"patch,omitempty" json:"patch,omitempty"`
	Trace       *Operation   `yaml:"trace,omitempty" json:"trace,omitempty"`
	Parameters  []*Parameter `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Operation returns the operation declared for the given HTTP method token.
// Matching is case-insensitive; an unrecognized token returns nil.
func (p *PathItem) Operation(method string) *Operation {
	if p == nil {
		return nil
	}
	switch strings.ToLower(method) {
	case httputil.MethodGet:
		return p.Get
	case httputil.MethodPut:
		return p.Put
	case httputil.MethodPost:
		return p.Post
	case httputil.MethodDelete:
		return p.Delete
	case httputil.MethodOptions:
		return p.Options
	case httputil.MethodHead:
		return p.Head
	case httputil.MethodPatch:
		return p.Patch
	case httputil.MethodTrace:
		return p.Trace
	default:
		return nil
	}
}

// Operation describes a single API operation on a path
type Operation struct {
	Tags         []string               `yaml:"tags,omitempty" json:"tags,omitempty"`
	Summary      string                 `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description  string                 `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs          `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	OperationID  string                 `yaml:"operationId,omitempty" json:"operationId,omitempty"`
	Parameters   []*Parameter           `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBody  *RequestBody           `yaml:"requestBody,omitempty" json:"requestBody,omitempty"`
	Responses    *OrderedMap[*Response] `yaml:"responses,omitempty" json:"responses,omitempty"`
	Deprecated   bool                   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Response describes a single response from an API Operation. Response
// entries stay in declaration order inside their operation's Responses
// mapping; the resolver's fallback selection depends on that order.
type Response struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	// Description uses omitempty because responses can be defined via $ref.
	Description string                  `yaml:"description,omitempty" json:"description,omitempty"`
	Headers     *OrderedMap[*Header]    `yaml:"headers,omitempty" json:"headers,omitempty"`
	Content     *OrderedMap[*MediaType] `yaml:"content,omitempty" json:"content,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// MediaType provides the schema and example for a single media type entry
type MediaType struct {
	Schema  *Schema `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example any     `yaml:"example,omitempty" json:"example,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`

	exampleSet bool
}

// SetExample attaches an example value honoring the schema cast contract.
func (m *MediaType) SetExample(value any) {
	m.Example, m.exampleSet = castExampleValue(m.Schema, value)
}

// ExampleSet reports whether an example was explicitly and successfully set.
func (m *MediaType) ExampleSet() bool {
	return m != nil && m.exampleSet
}
