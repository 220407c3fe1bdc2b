package mcpserver

import (
	"fmt"

	"github.com/agsn10/kelari-api-documentation-sub001/loader"
	"github.com/agsn10/kelari-api-documentation-sub001/spec"
)

// docInput names the document a tool operates on. Exactly one of Location or
// Content must be set. Kind narrows Location to a specific source; when
// omitted, URL-shaped locations are fetched and everything else is treated
// as a file path.
type docInput struct {
	Location string `json:"location,omitempty" jsonschema:"Path, URL, or bundled name of the document to load"`
	Kind     string `json:"kind,omitempty"     jsonschema:"Source kind: url, file, or bundled. Auto-detected when omitted."`
	Content  string `json:"content,omitempty"  jsonschema:"Inline document content (JSON or YAML)"`
}

// location validates the input and maps it to a loader.Location.
// Content-based inputs never reach this; callers check Content first.
func (d docInput) location() (loader.Location, error) {
	if d.Location == "" {
		return loader.Location{}, fmt.Errorf("exactly one of location or content must be provided")
	}
	switch d.Kind {
	case "":
		return loader.Location{Value: d.Location, Kind: loader.DetectKind(d.Location)}, nil
	case string(loader.KindURL), string(loader.KindFile), string(loader.KindBundled):
		return loader.Location{Value: d.Location, Kind: loader.SourceKind(d.Kind)}, nil
	default:
		return loader.Location{}, fmt.Errorf("unknown kind %q; valid kinds: url, file, bundled", d.Kind)
	}
}

// resolve loads the document from whichever input was provided. Location
// inputs go through the loader's caches; inline content is parsed fresh on
// every call.
func (e *engine) resolve(d docInput) (*spec.Document, error) {
	if d.Content != "" {
		if d.Location != "" {
			return nil, fmt.Errorf("exactly one of location or content must be provided (got both)")
		}
		if int64(len(d.Content)) > cfg.MaxInlineSize {
			return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use a file or URL instead, or set KELARI_MAX_INLINE_SIZE to increase",
				len(d.Content), cfg.MaxInlineSize)
		}
		return e.loader.ParseBytes([]byte(d.Content))
	}
	loc, err := d.location()
	if err != nil {
		return nil, err
	}
	return e.loader.Load(loc.Value, loc.Kind)
}
