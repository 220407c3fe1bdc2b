package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/agsn10/kelari-api-documentation-sub001/validator"
)

type validateInput struct {
	Doc    docInput `json:"doc"              jsonschema:"The document to validate"`
	Offset int      `json:"offset,omitempty" jsonschema:"Skip the first N issues (for pagination)"`
	Limit  int      `json:"limit,omitempty"  jsonschema:"Maximum number of issues to return (default 100)"`
}

type validateIssue struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Context string `json:"context,omitempty"`
}

type validateOutput struct {
	Valid      bool            `json:"valid"`
	IssueCount int             `json:"issue_count"`
	Returned   int             `json:"returned"`
	Issues     []validateIssue `json:"issues,omitempty"`
}

func (e *engine) handleValidate(_ context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	doc, err := e.resolve(input.Doc)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	result := validator.New().ValidateDocument(doc)

	output := validateOutput{
		Valid:      result.Valid(),
		IssueCount: result.Len(),
	}
	issues := result.Issues()
	if len(issues) > 0 {
		output.Issues = make([]validateIssue, 0, len(issues))
		for _, issue := range issues {
			output.Issues = append(output.Issues, validateIssue{
				Code:    issue.Code,
				Message: issue.Message,
				Context: issue.Context,
			})
		}
	}

	output.Issues = paginate(output.Issues, input.Offset, input.Limit)
	output.Returned = len(output.Issues)

	return nil, output, nil
}
