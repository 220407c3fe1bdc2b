// Package codec converts between raw document bytes and the document model.
//
// Two stateless codecs cover the supported wire formats:
//
//	codec.JSON // github.com/goccy/go-json backed
//	codec.YAML // go.yaml.in/yaml/v4 backed
//
// ForContent picks a codec for an arbitrary payload by inspecting the first
// non-whitespace byte, which is how the document loader dispatches fetched
// bytes without trusting file extensions or Content-Type headers:
//
//	doc, err := codec.ForContent(data).Decode(data)
//
// Decode failures are reported as *kelarierrors.DecodeError values carrying
// the wire format and the underlying parser error.
package codec
