package mcpserver

import (
	"context"

	json "github.com/goccy/go-json"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/agsn10/kelari-api-documentation-sub001/resolver"
)

type resolveSchemaInput struct {
	Doc    docInput `json:"doc"    jsonschema:"The document to resolve against"`
	Path   string   `json:"path"   jsonschema:"Path template to look up, e.g. /pets/{petId}"`
	Method string   `json:"method" jsonschema:"HTTP method of the operation, case-insensitive"`
}

type resolveSchemaOutput struct {
	Found  bool   `json:"found"`
	Schema string `json:"schema,omitempty"`
}

func (e *engine) handleResolveSchema(_ context.Context, _ *mcp.CallToolRequest, input resolveSchemaInput) (*mcp.CallToolResult, resolveSchemaOutput, error) {
	doc, err := e.resolve(input.Doc)
	if err != nil {
		return errResult(err), resolveSchemaOutput{}, nil
	}

	node := resolver.New(doc).ResolveSchemaFromPath(input.Path, input.Method)
	if node == nil {
		return nil, resolveSchemaOutput{Found: false}, nil
	}

	data, err := json.MarshalIndent(node, "", "  ")
	if err != nil {
		return errResult(err), resolveSchemaOutput{}, nil
	}
	return nil, resolveSchemaOutput{Found: true, Schema: string(data)}, nil
}
