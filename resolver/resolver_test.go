package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/agsn10/kelari-api-documentation-sub001/spec"
)

func decodeDocument(t *testing.T, input string) *spec.Document {
	t.Helper()
	var doc spec.Document
	require.NoError(t, yaml.Unmarshal([]byte(input), &doc))
	return &doc
}

func TestResolveSchemaFromPath(t *testing.T) {
	doc := decodeDocument(t, `
openapi: 3.0.3
info:
  title: Petstore
  version: 1.0.0
paths:
  /pets:
    get:
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                type: object
                properties:
                  id:
                    type: integer
                  name:
                    type: string
`)

	r := New(doc)
	node := r.ResolveSchemaFromPath("/pets", "get")
	require.NotNil(t, node)
	assert.Equal(t, "object", node.Type)
	assert.Equal(t, []string{"id", "name"}, node.Properties.Keys())

	id, ok := node.Properties.Get("id")
	require.True(t, ok)
	assert.Equal(t, "integer", id.Type)
}

func TestResolveSchemaFromPathMethodHandling(t *testing.T) {
	doc := decodeDocument(t, `
openapi: 3.0.3
paths:
  /pets:
    get:
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                type: object
`)

	r := New(doc)

	assert.NotNil(t, r.ResolveSchemaFromPath("/pets", "GET"), "method matching is case-insensitive")
	assert.NotNil(t, r.ResolveSchemaFromPath("/pets", "Get"))
	assert.Nil(t, r.ResolveSchemaFromPath("/pets", "post"), "undeclared operation yields nil")
	assert.Nil(t, r.ResolveSchemaFromPath("/pets", "QUERY"), "unrecognized token yields nil")
	assert.Nil(t, r.ResolveSchemaFromPath("/pets", ""))
}

func TestResolveSchemaFromPathAbsence(t *testing.T) {
	doc := decodeDocument(t, `
openapi: 3.0.3
paths:
  /no-responses:
    get:
      operationId: none
  /no-content:
    get:
      responses:
        "200":
          description: OK
  /no-schema:
    get:
      responses:
        "200":
          description: OK
          content:
            application/json:
              example: 42
`)

	r := New(doc)

	assert.Nil(t, r.ResolveSchemaFromPath("/unknown", "get"), "absent path")
	assert.Nil(t, r.ResolveSchemaFromPath("/no-responses", "get"))
	assert.Nil(t, r.ResolveSchemaFromPath("/no-content", "get"))
	assert.Nil(t, r.ResolveSchemaFromPath("/no-schema", "get"))
}

func TestResolveSchemaFromPathNilDocument(t *testing.T) {
	r := New(nil)
	assert.Nil(t, r.ResolveSchemaFromPath("/pets", "get"))
}

func TestResponseSelectionPriority(t *testing.T) {
	t.Run("200 wins even when declared last", func(t *testing.T) {
		doc := decodeDocument(t, `
openapi: 3.0.3
paths:
  /pets:
    get:
      responses:
        default:
          description: Fallback
          content:
            application/json:
              schema:
                type: string
                description: from default
        "200":
          description: OK
          content:
            application/json:
              schema:
                type: object
                description: from 200
`)
		node := New(doc).ResolveSchemaFromPath("/pets", "get")
		require.NotNil(t, node)
		assert.Equal(t, "from 200", node.Description)
	})

	t.Run("default wins over declaration order", func(t *testing.T) {
		doc := decodeDocument(t, `
openapi: 3.0.3
paths:
  /pets:
    get:
      responses:
        "404":
          description: Not Found
          content:
            application/json:
              schema:
                type: string
                description: from 404
        default:
          description: Fallback
          content:
            application/json:
              schema:
                type: object
                description: from default
`)
		node := New(doc).ResolveSchemaFromPath("/pets", "get")
		require.NotNil(t, node)
		assert.Equal(t, "from default", node.Description)
	})

	t.Run("first declared response is the last resort", func(t *testing.T) {
		doc := decodeDocument(t, `
openapi: 3.0.3
paths:
  /pets:
    get:
      responses:
        "503":
          description: Unavailable
          content:
            application/json:
              schema:
                type: string
                description: from 503
        "404":
          description: Not Found
          content:
            application/json:
              schema:
                type: object
                description: from 404
`)
		node := New(doc).ResolveSchemaFromPath("/pets", "get")
		require.NotNil(t, node)
		assert.Equal(t, "from 503", node.Description)
	})
}

func TestFirstMediaTypeWins(t *testing.T) {
	doc := decodeDocument(t, `
openapi: 3.0.3
paths:
  /pets:
    get:
      responses:
        "200":
          description: OK
          content:
            application/xml:
              schema:
                type: string
                description: xml first
            application/json:
              schema:
                type: object
                description: json second
`)

	node := New(doc).ResolveSchemaFromPath("/pets", "get")
	require.NotNil(t, node)
	assert.Equal(t, "xml first", node.Description)
}

func TestConvertSchemaNil(t *testing.T) {
	assert.Nil(t, ConvertSchema(nil))
}

func TestConvertSchemaCommonFields(t *testing.T) {
	s := &spec.Schema{
		Type:        "string",
		Format:      "date-time",
		Description: "when it happened",
		Default:     "2024-01-01T00:00:00Z",
	}

	node := ConvertSchema(s)
	require.NotNil(t, node)
	assert.Equal(t, "string", node.Type)
	assert.Equal(t, "date-time", node.Format)
	assert.Equal(t, "when it happened", node.Description)
	assert.Equal(t, "2024-01-01T00:00:00Z", node.Default)
	assert.Nil(t, node.Enum)
	assert.Nil(t, node.Items)
	assert.Equal(t, 0, node.Properties.Len())
}

func TestConvertSchemaEnumOrderAndTypes(t *testing.T) {
	s := &spec.Schema{
		Type: "string",
		Enum: []any{"A", "B", "C"},
	}

	node := ConvertSchema(s)
	require.NotNil(t, node)
	require.Len(t, node.Enum, 3)
	assert.Equal(t, "A", node.Enum[0])
	assert.Equal(t, "B", node.Enum[1])
	assert.Equal(t, "C", node.Enum[2])

	// Native scalar types carry through unstringified.
	mixed := ConvertSchema(&spec.Schema{Enum: []any{1, "two", 3.5, true}})
	require.NotNil(t, mixed)
	assert.Equal(t, []any{1, "two", 3.5, true}, mixed.Enum)
}

func TestConvertSchemaEnumIsCopied(t *testing.T) {
	s := &spec.Schema{Enum: []any{"A", "B"}}

	node := ConvertSchema(s)
	node.Enum[0] = "mutated"

	assert.Equal(t, "A", s.Enum[0], "conversion output must not alias the document")
}

func TestConvertSchemaNestedProperties(t *testing.T) {
	props := spec.NewOrderedMap[*spec.Schema]()
	props.Set("zebra", &spec.Schema{Type: "string"})
	props.Set("alpha", &spec.Schema{Type: "integer"})

	inner := spec.NewOrderedMap[*spec.Schema]()
	inner.Set("nested", &spec.Schema{Type: "boolean"})
	props.Set("deep", &spec.Schema{Type: "object", Properties: inner})

	node := ConvertSchema(&spec.Schema{Type: "object", Properties: props})
	require.NotNil(t, node)
	assert.Equal(t, []string{"zebra", "alpha", "deep"}, node.Properties.Keys())

	deep, ok := node.Properties.Get("deep")
	require.True(t, ok)
	require.NotNil(t, deep.Properties)

	nested, ok := deep.Properties.Get("nested")
	require.True(t, ok)
	assert.Equal(t, "boolean", nested.Type)
}

func TestConvertSchemaItems(t *testing.T) {
	s := &spec.Schema{
		Type: "array",
		Items: &spec.Schema{
			Type: "object",
			Items: &spec.Schema{
				Type: "string",
			},
		},
	}

	node := ConvertSchema(s)
	require.NotNil(t, node)
	require.NotNil(t, node.Items)
	assert.Equal(t, "object", node.Items.Type)
	require.NotNil(t, node.Items.Items)
	assert.Equal(t, "string", node.Items.Items.Type)
}

func TestConvertSchemaEnumFromYAMLKeepsNativeTypes(t *testing.T) {
	doc := decodeDocument(t, `
openapi: 3.0.3
paths:
  /sizes:
    get:
      responses:
        "200":
          description: OK
          content:
            application/json:
              schema:
                type: integer
                enum: [1, 2, 3]
`)

	node := New(doc).ResolveSchemaFromPath("/sizes", "get")
	require.NotNil(t, node)
	require.Len(t, node.Enum, 3)
	assert.Equal(t, 1, node.Enum[0])
}
