package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "go.yaml.in/yaml/v4"

	"github.com/agsn10/kelari-api-documentation-sub001/spec"
)

// TestValidatorNew tests the New constructor
func TestValidatorNew(t *testing.T) {
	v := New()
	require.NotNil(t, v)
}

// TestValidateParametersMissingSchemaOrContent tests the rule for a
// parameter that declares neither a schema nor a content map
func TestValidateParametersMissingSchemaOrContent(t *testing.T) {
	v := New()
	result := NewResult()

	params := []*spec.Parameter{
		{Name: "limit", In: "query"},
	}
	v.ValidateParameters("/pets", params, result)

	require.Equal(t, 1, result.Len())
	issue := result.Issues()[0]
	assert.Equal(t, CodeParameterMissingSchemaOrContent, issue.Code)
	assert.Equal(t, "path:/pets,parameter:limit", issue.Context)
	assert.Contains(t, issue.Message, "limit")
}

// TestValidateParametersSchemaTypeMissing tests the rule for a parameter
// schema without a type
func TestValidateParametersSchemaTypeMissing(t *testing.T) {
	v := New()
	result := NewResult()

	params := []*spec.Parameter{
		{Name: "filter", In: "query", Schema: &spec.Schema{Format: "uuid"}},
	}
	v.ValidateParameters("/pets", params, result)

	require.Equal(t, 1, result.Len())
	issue := result.Issues()[0]
	assert.Equal(t, CodeParameterSchemaTypeMissing, issue.Code)
	assert.Equal(t, "path:/pets,parameter:filter", issue.Context)
}

// TestValidateParametersSkipsRefs tests that reference parameters are not
// inspected
func TestValidateParametersSkipsRefs(t *testing.T) {
	v := New()
	result := NewResult()

	params := []*spec.Parameter{
		{Ref: "#/components/parameters/limit"},
	}
	v.ValidateParameters("/pets", params, result)

	assert.Zero(t, result.Len())
	assert.True(t, result.Valid())
}

// TestValidateParametersUnnamed tests the placeholder used when a parameter
// has no name
func TestValidateParametersUnnamed(t *testing.T) {
	v := New()
	result := NewResult()

	params := []*spec.Parameter{
		{In: "query"},
	}
	v.ValidateParameters("/pets", params, result)

	require.Equal(t, 1, result.Len())
	assert.Equal(t, "path:/pets,parameter:<no name>", result.Issues()[0].Context)
}

// TestValidateParametersContentSatisfies tests that a content map without a
// schema is sufficient
func TestValidateParametersContentSatisfies(t *testing.T) {
	v := New()
	result := NewResult()

	content := spec.NewOrderedMap[*spec.MediaType]()
	content.Set("application/json", &spec.MediaType{})
	params := []*spec.Parameter{
		{Name: "filter", In: "query", Content: content},
	}
	v.ValidateParameters("/pets", params, result)

	assert.Zero(t, result.Len())
}

// TestValidateParametersSchemaWithType tests that a typed schema passes both
// rules
func TestValidateParametersSchemaWithType(t *testing.T) {
	v := New()
	result := NewResult()

	params := []*spec.Parameter{
		{Name: "limit", In: "query", Schema: &spec.Schema{Type: "integer"}},
	}
	v.ValidateParameters("/pets", params, result)

	assert.Zero(t, result.Len())
}

// TestValidateParametersAccumulates tests that issues append across calls
// and across parameters without overwriting
func TestValidateParametersAccumulates(t *testing.T) {
	v := New()
	result := NewResult()

	first := []*spec.Parameter{
		{Name: "limit", In: "query"},
		nil,
		{Name: "sort", In: "query", Schema: &spec.Schema{}},
	}
	v.ValidateParameters("/pets", first, result)

	second := []*spec.Parameter{
		{Name: "petId", In: "path"},
	}
	v.ValidateParameters("/pets/{petId}", second, result)

	require.Equal(t, 3, result.Len())
	issues := result.Issues()
	assert.Equal(t, CodeParameterMissingSchemaOrContent, issues[0].Code)
	assert.Equal(t, "path:/pets,parameter:limit", issues[0].Context)
	assert.Equal(t, CodeParameterSchemaTypeMissing, issues[1].Code)
	assert.Equal(t, "path:/pets,parameter:sort", issues[1].Context)
	assert.Equal(t, CodeParameterMissingSchemaOrContent, issues[2].Code)
	assert.Equal(t, "path:/pets/{petId},parameter:petId", issues[2].Context)
}

// TestValidateDocumentNil tests that a nil document yields an empty result
func TestValidateDocumentNil(t *testing.T) {
	result := New().ValidateDocument(nil)
	require.NotNil(t, result)
	assert.True(t, result.Valid())
	assert.Empty(t, result.Issues())
}

// decodeDocument decodes a YAML document body for rule tests.
func decodeDocument(t *testing.T, body string) *spec.Document {
	t.Helper()
	var doc spec.Document
	require.NoError(t, yaml.Unmarshal([]byte(body), &doc))
	return &doc
}

// TestValidateDocumentCleanPasses tests that a well-formed document produces
// no issues
func TestValidateDocumentCleanPasses(t *testing.T) {
	doc := decodeDocument(t, `
openapi: 3.0.3
info:
  title: Pet Store
  version: 1.0.0
paths:
  /pets:
    get:
      parameters:
        - name: limit
          in: query
          schema:
            type: integer
      responses:
        "200":
          description: list of pets
          content:
            application/json:
              schema:
                type: array
`)

	result := New().ValidateDocument(doc)
	assert.True(t, result.Valid(), "unexpected issues: %v", result.Issues())
}

// TestValidateDocumentPathMissingLeadingSlash tests the leading slash rule
func TestValidateDocumentPathMissingLeadingSlash(t *testing.T) {
	doc := decodeDocument(t, `
openapi: 3.0.3
info:
  title: Pet Store
  version: 1.0.0
paths:
  pets:
    get:
      responses:
        "200":
          description: ok
`)

	result := New().ValidateDocument(doc)
	issues := result.ByCode(CodePathMissingLeadingSlash)
	require.Len(t, issues, 1)
	assert.Equal(t, "path:pets", issues[0].Context)
}

// TestValidateDocumentResponseStatusCodes tests the status code grammar over
// response keys
func TestValidateDocumentResponseStatusCodes(t *testing.T) {
	doc := decodeDocument(t, `
openapi: 3.0.3
info:
  title: Pet Store
  version: 1.0.0
paths:
  /pets:
    get:
      responses:
        "200":
          description: ok
        "2XX":
          description: any success
        default:
          description: fallback
        "999":
          description: out of range
        ok:
          description: not a code
`)

	result := New().ValidateDocument(doc)
	issues := result.ByCode(CodeResponseStatusCodeInvalid)
	require.Len(t, issues, 2)
	assert.Equal(t, "path:/pets,method:get,response:999", issues[0].Context)
	assert.Equal(t, "path:/pets,method:get,response:ok", issues[1].Context)
}

// TestValidateDocumentResponseMediaTypes tests the media type grammar over
// response content keys
func TestValidateDocumentResponseMediaTypes(t *testing.T) {
	doc := decodeDocument(t, `
openapi: 3.0.3
info:
  title: Pet Store
  version: 1.0.0
paths:
  /pets:
    get:
      responses:
        "200":
          description: ok
          content:
            application/json: {}
            application/json/extra: {}
`)

	result := New().ValidateDocument(doc)
	issues := result.ByCode(CodeResponseMediaTypeInvalid)
	require.Len(t, issues, 1)
	assert.Equal(t, "path:/pets,method:get,response:200,mediaType:application/json/extra", issues[0].Context)
}

// TestValidateDocumentOperationParameters tests that parameters declared on
// operations and on path items are both inspected
func TestValidateDocumentOperationParameters(t *testing.T) {
	doc := decodeDocument(t, `
openapi: 3.0.3
info:
  title: Pet Store
  version: 1.0.0
paths:
  /pets/{petId}:
    parameters:
      - name: petId
        in: path
        required: true
    get:
      parameters:
        - name: verbose
          in: query
          schema:
            format: int32
      responses:
        "200":
          description: ok
`)

	result := New().ValidateDocument(doc)
	require.Equal(t, 2, result.Len())
	issues := result.Issues()
	assert.Equal(t, CodeParameterMissingSchemaOrContent, issues[0].Code)
	assert.Equal(t, "path:/pets/{petId},parameter:petId", issues[0].Context)
	assert.Equal(t, CodeParameterSchemaTypeMissing, issues[1].Code)
	assert.Equal(t, "path:/pets/{petId},parameter:verbose", issues[1].Context)
}

// TestResultByCode tests filtering while preserving append order
func TestResultByCode(t *testing.T) {
	result := NewResult()
	result.Append(Issue{Code: "A", Message: "first"})
	result.Append(Issue{Code: "B", Message: "second"})
	result.Append(Issue{Code: "A", Message: "third"})

	matched := result.ByCode("A")
	require.Len(t, matched, 2)
	assert.Equal(t, "first", matched[0].Message)
	assert.Equal(t, "third", matched[1].Message)
	assert.Empty(t, result.ByCode("C"))
}

// TestResultNilSafety tests the read accessors on a nil result
func TestResultNilSafety(t *testing.T) {
	var result *Result
	assert.Zero(t, result.Len())
	assert.Nil(t, result.Issues())
	assert.True(t, result.Valid())
	assert.Nil(t, result.ByCode("A"))
}
