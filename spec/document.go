package spec

import "strings"

// Document is the root of a parsed API description.
type Document struct {
	OpenAPI      string                  `yaml:"openapi,omitempty" json:"openapi,omitempty"`
	Info         *Info                   `yaml:"info,omitempty" json:"info,omitempty"`
	Servers      []*Server               `yaml:"servers,omitempty" json:"servers,omitempty"`
	Paths        *OrderedMap[*PathItem]  `yaml:"paths,omitempty" json:"paths,omitempty"`
	Components   *Components             `yaml:"components,omitempty" json:"components,omitempty"`
	Tags         []*Tag                  `yaml:"tags,omitempty" json:"tags,omitempty"`
	ExternalDocs *ExternalDocs           `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// PathItem returns the path item declared for path, or nil when the
// document has no entry for it.
func (d *Document) PathItem(path string) *PathItem {
	if d == nil {
		return nil
	}
	item, _ := d.Paths.Get(path)
	return item
}

// Info provides metadata about the API
type Info struct {
	Title          string   `yaml:"title,omitempty" json:"title,omitempty"`
	Description    string   `yaml:"description,omitempty" json:"description,omitempty"`
	TermsOfService string   `yaml:"termsOfService,omitempty" json:"termsOfService,omitempty"`
	Contact        *Contact `yaml:"contact,omitempty" json:"contact,omitempty"`
	License        *License `yaml:"license,omitempty" json:"license,omitempty"`
	Version        string   `yaml:"version,omitempty" json:"version,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Contact information for the exposed API
type Contact struct {
	Name  string `yaml:"name,omitempty" json:"name,omitempty"`
	URL   string `yaml:"url,omitempty" json:"url,omitempty"`
	Email string `yaml:"email,omitempty" json:"email,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// License information for the exposed API
type License struct {
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
	URL  string `yaml:"url,omitempty" json:"url,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Server represents a server the API is available on
type Server struct {
	URL         string `yaml:"url,omitempty" json:"url,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Tag adds metadata to a single tag used by operations
type Tag struct {
	Name         string        `yaml:"name,omitempty" json:"name,omitempty"`
	Description  string        `yaml:"description,omitempty" json:"description,omitempty"`
	ExternalDocs *ExternalDocs `yaml:"externalDocs,omitempty" json:"externalDocs,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// ExternalDocs allows referencing external documentation
type ExternalDocs struct {
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	URL         string `yaml:"url,omitempty" json:"url,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Components holds reusable objects addressed by $ref
type Components struct {
	Schemas       *OrderedMap[*Schema]      `yaml:"schemas,omitempty" json:"schemas,omitempty"`
	Responses     *OrderedMap[*Response]    `yaml:"responses,omitempty" json:"responses,omitempty"`
	Parameters    *OrderedMap[*Parameter]   `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	RequestBodies *OrderedMap[*RequestBody] `yaml:"requestBodies,omitempty" json:"requestBodies,omitempty"`
	Headers       *OrderedMap[*Header]      `yaml:"headers,omitempty" json:"headers,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// IsExtensionName reports whether name is a specification extension key
// ("x-" prefixed). It only accepts or rejects; callers decide whether an
// unrecognized non-extension key is worth logging.
func IsExtensionName(name string) bool {
	return strings.HasPrefix(name, "x-")
}
