package spec

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// dateLayout is the calendar-date grammar (RFC 3339 full-date).
const dateLayout = "2006-01-02"

// CastFunc converts a raw example value into the native representation a
// schema variant declares. Returning an error, or a nil value for a non-nil
// input, means the value could not be represented.
type CastFunc func(value any) (any, error)

// Schema represents the subset of JSON Schema carried by API description
// documents: scalar typing, enumerations, and recursive object/array shape.
type Schema struct {
	Ref         string               `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Title       string               `yaml:"title,omitempty" json:"title,omitempty"`
	Type        string               `yaml:"type,omitempty" json:"type,omitempty"`
	Format      string               `yaml:"format,omitempty" json:"format,omitempty"` // e.g., "date-time", "email", "uuid"
	Description string               `yaml:"description,omitempty" json:"description,omitempty"`
	Default     any                  `yaml:"default,omitempty" json:"default,omitempty"`
	Enum        []any                `yaml:"enum,omitempty" json:"enum,omitempty"`
	Required    []string             `yaml:"required,omitempty" json:"required,omitempty"`
	Properties  *OrderedMap[*Schema] `yaml:"properties,omitempty" json:"properties,omitempty"`
	Items       *Schema              `yaml:"items,omitempty" json:"items,omitempty"`
	Example     any                  `yaml:"example,omitempty" json:"example,omitempty"`
	Deprecated  bool                 `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`

	cast       CastFunc
	exampleSet bool
}

// NewFileSchema returns a schema variant for binary file payloads.
func NewFileSchema() *Schema {
	return &Schema{Type: "string", Format: "binary"}
}

// NewDateSchema returns a schema variant for calendar dates. Example values
// given as "YYYY-MM-DD" strings are cast to time.Time.
func NewDateSchema() *Schema {
	return &Schema{Type: "string", Format: "date", cast: castDate}
}

// NewDateTimeSchema returns a schema variant for RFC 3339 timestamps.
// Example values given as timestamp strings are cast to time.Time.
func NewDateTimeSchema() *Schema {
	return &Schema{Type: "string", Format: "date-time", cast: castDateTime}
}

// NewUUIDSchema returns a schema variant for RFC 4122 identifiers. Example
// values given as canonical UUID strings are cast to uuid.UUID.
func NewUUIDSchema() *Schema {
	return &Schema{Type: "string", Format: "uuid", cast: castUUID}
}

// WithCast returns the schema with a custom variant cast attached.
func (s *Schema) WithCast(cast CastFunc) *Schema {
	s.cast = cast
	return s
}

// Cast converts a raw example value using the schema's variant cast. Schemas
// without a cast pass the value through unchanged. Cast never panics; all
// failures are reported through the error return.
func (s *Schema) Cast(value any) (any, error) {
	if s == nil || s.cast == nil {
		return value, nil
	}
	return s.cast(value)
}

// SetExample attaches an example value to the schema itself, applying the
// schema's own cast first.
func (s *Schema) SetExample(value any) {
	s.Example, s.exampleSet = castExampleValue(s, value)
}

// ExampleSet reports whether an example was explicitly and successfully set.
func (s *Schema) ExampleSet() bool {
	return s != nil && s.exampleSet
}

// castExampleValue applies the example-cast contract shared by every
// example-bearing container. Without a schema the value is accepted as-is.
// A cast failure on a non-nil value keeps the unconverted original and
// reports the example as not explicitly set, so a malformed example never
// masquerades as a well-typed one.
func castExampleValue(s *Schema, value any) (stored any, set bool) {
	if s == nil {
		return value, true
	}
	cast, err := s.Cast(value)
	if err != nil {
		return value, false
	}
	if cast == nil && value != nil {
		return value, false
	}
	return cast, true
}

func castDate(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return v, nil
	case string:
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", v, err)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("cannot cast %T to date", value)
	}
}

func castDateTime(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return v, nil
	case string:
		// Accept RFC3339Nano (trailing zeros optional)
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			if t2, err2 := time.Parse(time.RFC3339, v); err2 == nil {
				return t2, nil
			}
			return nil, fmt.Errorf("invalid date-time %q: %w", v, err)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("cannot cast %T to date-time", value)
	}
}

func castUUID(value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case uuid.UUID:
		return v, nil
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("invalid uuid %q: %w", v, err)
		}
		return id, nil
	default:
		return nil, fmt.Errorf("cannot cast %T to uuid", value)
	}
}
