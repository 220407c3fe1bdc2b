package codec

import (
	"bytes"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/agsn10/kelari-api-documentation-sub001/kelarierrors"
	"github.com/agsn10/kelari-api-documentation-sub001/spec"
)

// Format identifies a supported wire format.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Codec converts between raw bytes and the document model. Implementations
// are stateless and safe for concurrent use.
type Codec interface {
	// Decode parses data into a document. Malformed payloads are reported
	// as a *kelarierrors.DecodeError wrapping the parser's own error.
	Decode(data []byte) (*spec.Document, error)
	// Encode serializes doc into this codec's wire format.
	Encode(doc *spec.Document) ([]byte, error)
	// Format reports the wire format this codec handles.
	Format() Format
}

// JSON and YAML are the built-in codecs.
var (
	JSON Codec = jsonCodec{}
	YAML Codec = yamlCodec{}
)

// ForContent picks the codec for a raw payload: when the first
// non-whitespace character is '{' the payload is treated as JSON, anything
// else as YAML. This is a heuristic, not a validator; malformed JSON
// starting with '{' still decodes as JSON and surfaces the JSON parser's
// error rather than silently falling back to YAML.
func ForContent(data []byte) Codec {
	trimmed := bytes.TrimLeft(data, " \t\n\r")
	if len(trimmed) > 0 && trimmed[0] == '{' {
		return JSON
	}
	return YAML
}

type jsonCodec struct{}

func (jsonCodec) Decode(data []byte) (*spec.Document, error) {
	var doc spec.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &kelarierrors.DecodeError{Format: string(FormatJSON), Cause: err}
	}
	return &doc, nil
}

func (jsonCodec) Encode(doc *spec.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, &kelarierrors.DecodeError{Format: string(FormatJSON), Message: "encode failed", Cause: err}
	}
	return data, nil
}

func (jsonCodec) Format() Format { return FormatJSON }

type yamlCodec struct{}

func (yamlCodec) Decode(data []byte) (*spec.Document, error) {
	var doc spec.Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &kelarierrors.DecodeError{Format: string(FormatYAML), Cause: err}
	}
	return &doc, nil
}

func (yamlCodec) Encode(doc *spec.Document) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, &kelarierrors.DecodeError{Format: string(FormatYAML), Message: "encode failed", Cause: err}
	}
	return data, nil
}

func (yamlCodec) Format() Format { return FormatYAML }
