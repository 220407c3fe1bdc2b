package validator

import (
	"fmt"
	"strings"

	"github.com/agsn10/kelari-api-documentation-sub001/internal/httputil"
	"github.com/agsn10/kelari-api-documentation-sub001/spec"
)

// Rule codes carried by the issues this package produces.
const (
	// CodeParameterMissingSchemaOrContent flags a parameter that declares
	// neither a schema nor a content map.
	CodeParameterMissingSchemaOrContent = "PARAMETER_MISSING_SCHEMA_OR_CONTENT"
	// CodeParameterSchemaTypeMissing flags a parameter schema without a type.
	CodeParameterSchemaTypeMissing = "PARAMETER_SCHEMA_TYPE_MISSING"
	// CodePathMissingLeadingSlash flags a path template that does not start
	// with "/".
	CodePathMissingLeadingSlash = "PATH_MISSING_LEADING_SLASH"
	// CodeResponseStatusCodeInvalid flags a response key that is neither a
	// valid status code, a wildcard range, "default", nor an extension.
	CodeResponseStatusCodeInvalid = "RESPONSE_STATUS_CODE_INVALID"
	// CodeResponseMediaTypeInvalid flags a response content key that is not
	// a syntactically valid media type.
	CodeResponseMediaTypeInvalid = "RESPONSE_MEDIA_TYPE_INVALID"
)

// noName substitutes for a parameter that carries no name.
const noName = "<no name>"

// Validator checks documents against structural rules. The zero value is
// ready to use; New exists for symmetry with the other packages.
type Validator struct{}

// New returns a Validator.
func New() *Validator {
	return &Validator{}
}

// ValidateParameters appends an issue for every parameter under path that
// lacks both a schema and a content map, or whose schema lacks a type.
// Parameters that are references are skipped; their targets are validated
// wherever they are defined. Nil entries are ignored.
func (v *Validator) ValidateParameters(path string, params []*spec.Parameter, result *Result) {
	for _, param := range params {
		if param == nil || param.IsRef() {
			continue
		}
		name := param.Name
		if name == "" {
			name = noName
		}
		ctx := fmt.Sprintf("path:%s,parameter:%s", path, name)
		if param.Schema == nil && param.Content.Len() == 0 {
			result.Append(Issue{
				Code:    CodeParameterMissingSchemaOrContent,
				Message: fmt.Sprintf("parameter %q must declare a schema or content", name),
				Context: ctx,
			})
			continue
		}
		if param.Schema != nil && param.Schema.Type == "" {
			result.Append(Issue{
				Code:    CodeParameterSchemaTypeMissing,
				Message: fmt.Sprintf("parameter %q has a schema without a type", name),
				Context: ctx,
			})
		}
	}
}

// ValidateDocument runs every rule over doc and returns the accumulated
// issues. A nil document yields an empty result.
func (v *Validator) ValidateDocument(doc *spec.Document) *Result {
	result := NewResult()
	if doc == nil || doc.Paths == nil {
		return result
	}
	methods := []string{
		httputil.MethodGet,
		httputil.MethodPut,
		httputil.MethodPost,
		httputil.MethodDelete,
		httputil.MethodOptions,
		httputil.MethodHead,
		httputil.MethodPatch,
		httputil.MethodTrace,
	}
	for path, item := range doc.Paths.All() {
		if !strings.HasPrefix(path, "/") {
			result.Append(Issue{
				Code:    CodePathMissingLeadingSlash,
				Message: fmt.Sprintf("path %q must start with a slash", path),
				Context: "path:" + path,
			})
		}
		if item == nil {
			continue
		}
		v.ValidateParameters(path, item.Parameters, result)
		for _, method := range methods {
			op := item.Operation(method)
			if op == nil {
				continue
			}
			v.ValidateParameters(path, op.Parameters, result)
			v.validateResponses(path, method, op.Responses, result)
		}
	}
	return result
}

// validateResponses checks each response key against the status code grammar
// and each content key against the media type grammar.
func (v *Validator) validateResponses(path, method string, responses *spec.OrderedMap[*spec.Response], result *Result) {
	for code, resp := range responses.All() {
		ctx := fmt.Sprintf("path:%s,method:%s,response:%s", path, method, code)
		if !httputil.ValidateStatusCode(code) {
			result.Append(Issue{
				Code:    CodeResponseStatusCodeInvalid,
				Message: fmt.Sprintf("response key %q is not a valid status code", code),
				Context: ctx,
			})
		}
		if resp == nil {
			continue
		}
		for mediaType := range resp.Content.All() {
			if !httputil.IsValidMediaType(mediaType) {
				result.Append(Issue{
					Code:    CodeResponseMediaTypeInvalid,
					Message: fmt.Sprintf("media type %q is not valid", mediaType),
					Context: ctx + ",mediaType:" + mediaType,
				})
			}
		}
	}
}
