package sqlbind

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// SkipTag marks the skip marker in YAML documents:
//
//	params:
//	  - 42
//	  - !skip
const SkipTag = "!skip"

// Values is a parameter list decoded from a YAML sequence.
// Unlike []Value it keeps null elements in place.
type Values []Value

// UnmarshalYAML decodes a YAML sequence into vs.
func (vs *Values) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.SequenceNode {
		return errors.Errorf("line %d: parameters must be a sequence", node.Line)
	}
	items := make(Values, len(node.Content))
	for n, child := range node.Content {
		if err := items[n].UnmarshalYAML(child); err != nil {
			return err
		}
	}
	*vs = items
	return nil
}

// Args returns vs as Render parameters.
func (vs Values) Args() []interface{} {
	args := make([]interface{}, len(vs))
	for n, v := range vs {
		args[n] = v
	}
	return args
}

// UnmarshalYAML decodes a YAML node into a Value.
// Mapping key order is preserved in associative lists.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			*v = Null()
			return nil
		}
		return v.UnmarshalYAML(node.Content[0])
	case yaml.AliasNode:
		return v.UnmarshalYAML(node.Alias)
	case yaml.ScalarNode:
		return v.unmarshalScalar(node)
	case yaml.SequenceNode:
		items := make([]Value, len(node.Content))
		for n, child := range node.Content {
			if err := items[n].UnmarshalYAML(child); err != nil {
				return err
			}
		}
		*v = Value{kind: KindList, items: items}
		return nil
	case yaml.MappingNode:
		pairs := make([]Pair, 0, len(node.Content)/2)
		for n := 0; n+1 < len(node.Content); n += 2 {
			key := node.Content[n]
			if key.Kind != yaml.ScalarNode {
				return errors.Errorf("line %d: mapping keys must be scalars", key.Line)
			}
			var item Value
			if err := item.UnmarshalYAML(node.Content[n+1]); err != nil {
				return err
			}
			pairs = append(pairs, Pair{Key: key.Value, Value: item})
		}
		*v = Assoc(pairs...)
		return nil
	}
	return errors.Errorf("line %d: unsupported YAML node", node.Line)
}

func (v *Value) unmarshalScalar(node *yaml.Node) error {
	switch node.ShortTag() {
	case SkipTag:
		*v = Skip()
	case "!!null":
		*v = Null()
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return err
		}
		*v = Bool(b)
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return err
		}
		*v = Int(i)
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return err
		}
		*v = Float(f)
	default:
		*v = Text(node.Value)
	}
	return nil
}
