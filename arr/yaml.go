package arr

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes m as a YAML sequence when it is a list and as a
// mapping otherwise, keeping key order.
func (m *Map) MarshalYAML() (any, error) {
	if m.IsList() {
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, v := range m.All() {
			item := &yaml.Node{}
			if err := item.Encode(v); err != nil {
				return nil, err
			}
			node.Content = append(node.Content, item)
		}
		return node, nil
	}

	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range m.All() {
		key := &yaml.Node{}
		if err := key.Encode(k.Value()); err != nil {
			return nil, err
		}
		val := &yaml.Node{}
		if err := val.Encode(v); err != nil {
			return nil, fmt.Errorf("arr: encode YAML value at key %s: %w", k, err)
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

// UnmarshalYAML replaces the contents of m with a YAML sequence or mapping.
// Mapping order is kept, keys are normalised with [KeyOf], and nested
// sequences and mappings become *Map values.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	v, err := decodeYAML(node)
	if err != nil {
		return err
	}
	decoded, ok := v.(*Map)
	if !ok {
		return fmt.Errorf("%w: YAML document is not a sequence or mapping", ErrTypeMismatch)
	}
	*m = *decoded
	return nil
}

func decodeYAML(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return decodeYAML(node.Content[0])
	case yaml.AliasNode:
		return decodeYAML(node.Alias)
	case yaml.SequenceNode:
		m := NewMap(len(node.Content))
		for _, item := range node.Content {
			v, err := decodeYAML(item)
			if err != nil {
				return nil, err
			}
			m.Append(v)
		}
		return m, nil
	case yaml.MappingNode:
		m := NewMap(len(node.Content) / 2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			kv, err := decodeYAML(node.Content[i])
			if err != nil {
				return nil, err
			}
			k, err := KeyOf(kv)
			if err != nil {
				return nil, fmt.Errorf("arr: YAML key at line %d: %w", node.Content[i].Line, err)
			}
			v, err := decodeYAML(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Set(k, v)
		}
		return m, nil
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
