package schema

import (
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// typeDescriptorFields is TypeDescriptor without its custom decoders.
type typeDescriptorFields TypeDescriptor

// UnmarshalYAML accepts either the shorthand string or the full mapping.
func (t *TypeDescriptor) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string

		err := node.Decode(&s)
		if err != nil {
			return err
		}

		*t = parseShorthand(s)

		return nil

	case yaml.MappingNode:
		var fields typeDescriptorFields

		err := node.Decode(&fields)
		if err != nil {
			return err
		}

		*t = TypeDescriptor(fields)

		return nil

	default:
		return fmt.Errorf("expected type name or mapping, got %v", node.Kind)
	}
}

// UnmarshalJSON accepts either the shorthand string or the full object.
func (t *TypeDescriptor) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*t = parseShorthand(s)
		return nil
	}

	var fields typeDescriptorFields

	err := json.Unmarshal(data, &fields)
	if err != nil {
		return fmt.Errorf("expected type name or object: %w", err)
	}

	*t = TypeDescriptor(fields)

	return nil
}
