package collections

import (
	"gopkg.in/yaml.v3"

	"github.com/romkatsu/collection/arr"
)

// MarshalJSON implements json.Marshaler. See [arr.Map.MarshalJSON].
func (c *Collection) MarshalJSON() ([]byte, error) {
	return c.data.MarshalJSON()
}

// UnmarshalJSON implements json.Unmarshaler. Nested arrays and objects
// decode as *arr.Map values.
func (c *Collection) UnmarshalJSON(data []byte) error {
	m, err := arr.DecodeJSON(data)
	if err != nil {
		return err
	}
	c.data = m
	return nil
}

// MarshalYAML implements yaml.Marshaler. See [arr.Map.MarshalYAML].
func (c *Collection) MarshalYAML() (any, error) {
	return c.data.MarshalYAML()
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Collection) UnmarshalYAML(node *yaml.Node) error {
	m := arr.NewMap(0)
	if err := m.UnmarshalYAML(node); err != nil {
		return err
	}
	c.data = m
	return nil
}
