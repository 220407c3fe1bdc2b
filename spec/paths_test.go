package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func TestPathItemOperation(t *testing.T) {
	get := &Operation{OperationID: "getPets"}
	post := &Operation{OperationID: "createPet"}
	trace := &Operation{OperationID: "tracePets"}
	item := &PathItem{Get: get, Post: post, Trace: trace}

	tests := []struct {
		method string
		want   *Operation
	}{
		{"get", get},
		{"GET", get},
		{"Get", get},
		{"post", post},
		{"POST", post},
		{"trace", trace},
		{"put", nil},
		{"delete", nil},
		{"patch", nil},
		{"head", nil},
		{"options", nil},
		{"QUERY", nil},
		{"", nil},
		{"get ", nil},
	}

	for _, tt := range tests {
		t.Run("method "+tt.method, func(t *testing.T) {
			got := item.Operation(tt.method)
			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				assert.Same(t, tt.want, got)
			}
		})
	}
}

func TestPathItemOperationAllMethods(t *testing.T) {
	item := &PathItem{
		Get:     &Operation{OperationID: "g"},
		Put:     &Operation{OperationID: "pu"},
		Post:    &Operation{OperationID: "po"},
		Delete:  &Operation{OperationID: "d"},
		Options: &Operation{OperationID: "o"},
		Head:    &Operation{OperationID: "h"},
		Patch:   &Operation{OperationID: "pa"},
		Trace:   &Operation{OperationID: "t"},
	}

	for method, want := range map[string]*Operation{
		"get":     item.Get,
		"put":     item.Put,
		"post":    item.Post,
		"delete":  item.Delete,
		"options": item.Options,
		"head":    item.Head,
		"patch":   item.Patch,
		"trace":   item.Trace,
	} {
		assert.Same(t, want, item.Operation(method), "method %q", method)
	}
}

func TestPathItemOperationNilReceiver(t *testing.T) {
	var item *PathItem
	assert.Nil(t, item.Operation("get"))
}

func TestResponsesPreserveDeclarationOrder(t *testing.T) {
	input := `
responses:
  "404":
    description: Not Found
  "200":
    description: OK
  default:
    description: Fallback
`
	var op Operation
	require.NoError(t, yaml.Unmarshal([]byte(input), &op))
	require.Equal(t, []string{"404", "200", "default"}, op.Responses.Keys())

	key, first, ok := op.Responses.First()
	require.True(t, ok)
	assert.Equal(t, "404", key)
	assert.Equal(t, "Not Found", first.Description)
}

func TestMediaTypeSetExample(t *testing.T) {
	t.Run("no schema always sets", func(t *testing.T) {
		mt := &MediaType{}
		mt.SetExample("anything")
		assert.Equal(t, "anything", mt.Example)
		assert.True(t, mt.ExampleSet())
	})

	t.Run("cast failure keeps original and clears flag", func(t *testing.T) {
		mt := &MediaType{Schema: NewDateSchema()}
		mt.SetExample("not-a-date")
		assert.Equal(t, "not-a-date", mt.Example)
		assert.False(t, mt.ExampleSet())
	})

	t.Run("successful cast stores converted value", func(t *testing.T) {
		mt := &MediaType{Schema: NewDateSchema()}
		mt.SetExample("2024-06-15")
		assert.True(t, mt.ExampleSet())
		assert.NotEqual(t, "2024-06-15", mt.Example)
	})
}
