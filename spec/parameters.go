package spec

// Parameter describes a single operation parameter
type Parameter struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	// Name and In use omitempty because parameters can be defined via $ref.
	// When a parameter uses $ref, these fields should be empty in the
	// referencing object (the actual values live in the referenced
	// parameter definition).
	Name        string                  `yaml:"name,omitempty" json:"name,omitempty"`
	In          string                  `yaml:"in,omitempty" json:"in,omitempty"` // "query", "header", "path", "cookie"
	Description string                  `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool                    `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool                    `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Schema      *Schema                 `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example     any                     `yaml:"example,omitempty" json:"example,omitempty"`
	Content     *OrderedMap[*MediaType] `yaml:"content,omitempty" json:"content,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`

	exampleSet bool
}

// IsRef reports whether the parameter is a bare reference to a definition
// elsewhere. Bare references carry no inline schema or content of their own.
func (p *Parameter) IsRef() bool {
	return p != nil && p.Ref != ""
}

// SetExample attaches an example value honoring the schema cast contract.
func (p *Parameter) SetExample(value any) {
	p.Example, p.exampleSet = castExampleValue(p.Schema, value)
}

// ExampleSet reports whether an example was explicitly and successfully set.
func (p *Parameter) ExampleSet() bool {
	return p != nil && p.exampleSet
}

// RequestBody describes a single request body
type RequestBody struct {
	Ref         string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Content uses omitempty because request bodies can be defined via $ref.
	Content  *OrderedMap[*MediaType] `yaml:"content,omitempty" json:"content,omitempty"`
	Required bool                    `yaml:"required,omitempty" json:"required,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Header represents a response header object
type Header struct {
	Ref         string                  `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                  `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool                    `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool                    `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Schema      *Schema                 `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example     any                     `yaml:"example,omitempty" json:"example,omitempty"`
	Content     *OrderedMap[*MediaType] `yaml:"content,omitempty" json:"content,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`

	exampleSet bool
}

// SetExample attaches an example value honoring the schema cast contract.
func (h *Header) SetExample(value any) {
	h.Example, h.exampleSet = castExampleValue(h.Schema, value)
}

// ExampleSet reports whether an example was explicitly and successfully set.
func (h *Header) ExampleSet() bool {
	return h != nil && h.exampleSet
}
