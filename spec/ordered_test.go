package spec

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

// assertKeyOrder verifies that keys appear in the expected order within the output string.
func assertKeyOrder(t *testing.T, output string, keys []string) {
	t.Helper()
	for i := 0; i < len(keys)-1; i++ {
		idx1 := strings.Index(output, keys[i])
		idx2 := strings.Index(output, keys[i+1])
		assert.True(t, idx1 >= 0 && idx1 < idx2, "expected %q before %q in %q", keys[i], keys[i+1], output)
	}
}

func TestOrderedMapBasics(t *testing.T) {
	m := NewOrderedMap[int]()
	assert.Equal(t, 0, m.Len())

	m.Set("zebra", 1)
	m.Set("alpha", 2)
	m.Set("middle", 3)

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []string{"zebra", "alpha", "middle"}, m.Keys())

	v, ok := m.Get("alpha")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = m.Get("missing")
	assert.False(t, ok)

	key, first, ok := m.First()
	assert.True(t, ok)
	assert.Equal(t, "zebra", key)
	assert.Equal(t, 1, first)

	// Overwriting keeps the original position.
	m.Set("zebra", 9)
	assert.Equal(t, []string{"zebra", "alpha", "middle"}, m.Keys())
	v, _ = m.Get("zebra")
	assert.Equal(t, 9, v)

	m.Delete("alpha")
	assert.Equal(t, []string{"zebra", "middle"}, m.Keys())
}

func TestOrderedMapNilSafety(t *testing.T) {
	var m *OrderedMap[string]

	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Keys())

	_, ok := m.Get("any")
	assert.False(t, ok)

	_, _, ok = m.First()
	assert.False(t, ok)

	m.Delete("any") // must not panic

	count := 0
	for range m.All() {
		count++
	}
	assert.Equal(t, 0, count)
}

func TestOrderedMapZeroValueSet(t *testing.T) {
	var m OrderedMap[string]
	m.Set("a", "1")
	m.Set("b", "2")
	assert.Equal(t, []string{"a", "b"}, m.Keys())
}

func TestOrderedMapAll(t *testing.T) {
	m := NewOrderedMap[string]()
	m.Set("one", "1")
	m.Set("two", "2")
	m.Set("three", "3")

	var keys []string
	var values []string
	for k, v := range m.All() {
		keys = append(keys, k)
		values = append(values, v)
	}
	assert.Equal(t, []string{"one", "two", "three"}, keys)
	assert.Equal(t, []string{"1", "2", "3"}, values)
}

func TestOrderedMapYAMLRoundTrip(t *testing.T) {
	input := `zebra: 1
alpha: 2
middle: 3
`
	var m OrderedMap[int]
	require.NoError(t, yaml.Unmarshal([]byte(input), &m))
	assert.Equal(t, []string{"zebra", "alpha", "middle"}, m.Keys())

	out, err := yaml.Marshal(&m)
	require.NoError(t, err)
	assertKeyOrder(t, string(out), []string{"zebra", "alpha", "middle"})
}

func TestOrderedMapYAMLNested(t *testing.T) {
	input := `
/zebra:
  summary: Z endpoint
/alpha:
  summary: A endpoint
`
	var m OrderedMap[*PathItem]
	require.NoError(t, yaml.Unmarshal([]byte(input), &m))
	require.Equal(t, []string{"/zebra", "/alpha"}, m.Keys())

	item, ok := m.Get("/zebra")
	require.True(t, ok)
	assert.Equal(t, "Z endpoint", item.Summary)
}

func TestOrderedMapYAMLRejectsNonMapping(t *testing.T) {
	var m OrderedMap[int]
	err := yaml.Unmarshal([]byte("- 1\n- 2\n"), &m)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot decode sequence into mapping")
}

func TestOrderedMapJSONRoundTrip(t *testing.T) {
	input := `{"zebra":1,"alpha":2,"middle":3}`

	var m OrderedMap[int]
	require.NoError(t, json.Unmarshal([]byte(input), &m))
	assert.Equal(t, []string{"zebra", "alpha", "middle"}, m.Keys())

	out, err := json.Marshal(&m)
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
	assertKeyOrder(t, string(out), []string{"zebra", "alpha", "middle"})
}

func TestOrderedMapJSONEmpty(t *testing.T) {
	out, err := json.Marshal(&OrderedMap[int]{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(out))
}
