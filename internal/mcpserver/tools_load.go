package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/agsn10/kelari-api-documentation-sub001/codec"
	"github.com/agsn10/kelari-api-documentation-sub001/internal/httputil"
	"github.com/agsn10/kelari-api-documentation-sub001/spec"
)

type loadInput struct {
	Doc  docInput `json:"doc"            jsonschema:"The document to load"`
	Full bool     `json:"full,omitempty" jsonschema:"Return the full document as JSON instead of only the summary"`
}

type loadServer struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

type loadOutput struct {
	Title          string       `json:"title"`
	Version        string       `json:"version,omitempty"`
	OpenAPI        string       `json:"openapi,omitempty"`
	Description    string       `json:"description,omitempty"`
	PathCount      int          `json:"path_count"`
	OperationCount int          `json:"operation_count"`
	Servers        []loadServer `json:"servers,omitempty"`
	Tags           []string     `json:"tags,omitempty"`
	FullDocument   string       `json:"full_document,omitempty"`
}

// methodTokens lists every operation slot a path item can carry.
var methodTokens = []string{
	httputil.MethodGet,
	httputil.MethodPut,
	httputil.MethodPost,
	httputil.MethodDelete,
	httputil.MethodOptions,
	httputil.MethodHead,
	httputil.MethodPatch,
	httputil.MethodTrace,
}

// countOperations walks every path item and counts declared operations.
func countOperations(doc *spec.Document) int {
	count := 0
	if doc == nil || doc.Paths == nil {
		return count
	}
	for _, item := range doc.Paths.All() {
		if item == nil {
			continue
		}
		for _, method := range methodTokens {
			if item.Operation(method) != nil {
				count++
			}
		}
	}
	return count
}

func (e *engine) handleLoad(_ context.Context, _ *mcp.CallToolRequest, input loadInput) (*mcp.CallToolResult, loadOutput, error) {
	doc, err := e.resolve(input.Doc)
	if err != nil {
		return errResult(err), loadOutput{}, nil
	}

	output := loadOutput{
		OpenAPI:        doc.OpenAPI,
		PathCount:      doc.Paths.Len(),
		OperationCount: countOperations(doc),
	}
	if doc.Info != nil {
		output.Title = doc.Info.Title
		output.Version = doc.Info.Version
		output.Description = doc.Info.Description
	}
	for _, s := range doc.Servers {
		if s != nil {
			output.Servers = append(output.Servers, loadServer{URL: s.URL, Description: s.Description})
		}
	}
	for _, tag := range doc.Tags {
		if tag != nil {
			output.Tags = append(output.Tags, tag.Name)
		}
	}

	if input.Full {
		data, err := codec.JSON.Encode(doc)
		if err != nil {
			return errResult(err), loadOutput{}, nil
		}
		output.FullDocument = string(data)
	}

	return nil, output, nil
}
