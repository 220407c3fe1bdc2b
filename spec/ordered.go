package spec

import (
	"fmt"
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"go.yaml.in/yaml/v4"
)

// OrderedMap is a string-keyed mapping that preserves insertion order. The
// document model uses it wherever declaration order is significant:
// response entries, media types, schema properties.
//
// The zero value is ready to use. All read methods are safe on a nil
// receiver and report emptiness, which keeps traversal code free of nil
// checks for optional mappings.
type OrderedMap[V any] struct {
	entries *orderedmap.OrderedMap[string, V]
}

// NewOrderedMap returns an empty ordered mapping.
func NewOrderedMap[V any]() *OrderedMap[V] {
	return &OrderedMap[V]{entries: orderedmap.New[string, V]()}
}

// Len returns the number of entries.
func (m *OrderedMap[V]) Len() int {
	if m == nil || m.entries == nil {
		return 0
	}
	return m.entries.Len()
}

// Get returns the value stored under key and whether it is present.
func (m *OrderedMap[V]) Get(key string) (V, bool) {
	if m == nil || m.entries == nil {
		var zero V
		return zero, false
	}
	return m.entries.Get(key)
}

// Set stores value under key. An existing key keeps its original position;
// new keys append.
func (m *OrderedMap[V]) Set(key string, value V) {
	if m.entries == nil {
		m.entries = orderedmap.New[string, V]()
	}
	m.entries.Set(key, value)
}

// Delete removes key if present.
func (m *OrderedMap[V]) Delete(key string) {
	if m == nil || m.entries == nil {
		return
	}
	m.entries.Delete(key)
}

// Keys returns the keys in insertion order.
func (m *OrderedMap[V]) Keys() []string {
	if m.Len() == 0 {
		return nil
	}
	keys := make([]string, 0, m.entries.Len())
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// First returns the first-declared entry, or ok=false when empty.
func (m *OrderedMap[V]) First() (key string, value V, ok bool) {
	if m == nil || m.entries == nil {
		var zero V
		return "", zero, false
	}
	pair := m.entries.Oldest()
	if pair == nil {
		var zero V
		return "", zero, false
	}
	return pair.Key, pair.Value, true
}

// All returns an iterator over entries in insertion order.
func (m *OrderedMap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m == nil || m.entries == nil {
			return
		}
		for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// UnmarshalYAML decodes a YAML mapping node entry by entry, preserving the
// document's key order. The underlying ordered map unmarshals against the
// yaml.v3 node type, so the bridge to yaml/v4 lives here.
func (m *OrderedMap[V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: cannot decode %s into mapping", node.Line, nodeKindName(node.Kind))
	}
	m.entries = orderedmap.New[string, V]()
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: mapping key must be a scalar, got %s", keyNode.Line, nodeKindName(keyNode.Kind))
		}
		var value V
		if err := valueNode.Decode(&value); err != nil {
			return err
		}
		m.entries.Set(keyNode.Value, value)
	}
	return nil
}

// MarshalYAML encodes the mapping with entries in insertion order.
func (m *OrderedMap[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if m == nil || m.entries == nil {
		return node, nil
	}
	for pair := m.entries.Oldest(); pair != nil; pair = pair.Next() {
		keyNode := &yaml.Node{}
		if err := keyNode.Encode(pair.Key); err != nil {
			return nil, err
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(pair.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, keyNode, valueNode)
	}
	return node, nil
}

// MarshalJSON encodes the mapping as a JSON object with keys in insertion
// order, delegating to the underlying ordered map.
func (m *OrderedMap[V]) MarshalJSON() ([]byte, error) {
	if m == nil || m.entries == nil {
		return []byte("{}"), nil
	}
	return m.entries.MarshalJSON()
}

// UnmarshalJSON decodes a JSON object preserving its key order.
func (m *OrderedMap[V]) UnmarshalJSON(data []byte) error {
	m.entries = orderedmap.New[string, V]()
	return m.entries.UnmarshalJSON(data)
}

func nodeKindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
