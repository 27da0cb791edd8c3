package script

import (
	"fmt"

	"github.com/zeusync/vecmath/pkg/vector"
	"gopkg.in/yaml.v3"
)

// Value is a decoded script operand. In YAML it is written as a number
// (scalar), a constant name such as unit_x (vector) or a list of up to three
// numbers (vector, missing components are 0).
type Value struct {
	arg vector.Arg
}

func (v Value) Arg() vector.Arg { return v.arg }

func (v Value) IsVector() bool { return v.arg.IsVector() }

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var f float64
		if err := node.Decode(&f); err == nil {
			v.arg = vector.S(f)
			return nil
		}
		c, ok := vector.Named(node.Value)
		if !ok {
			return fmt.Errorf("line %d: %w: %q", node.Line, ErrUnknownConstant, node.Value)
		}
		v.arg = vector.V(c)
		return nil
	case yaml.SequenceNode:
		var components []float64
		if err := node.Decode(&components); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		if len(components) > 3 {
			return fmt.Errorf("line %d: %w", node.Line, ErrTooManyComponents)
		}
		v.arg = vector.V(vector.New(components...))
		return nil
	default:
		return fmt.Errorf("line %d: %w", node.Line, ErrInvalidValue)
	}
}

func (v Value) String() string {
	if v.arg.IsVector() {
		return v.arg.Vector().String()
	}
	return fmt.Sprint(v.arg.Scalar())
}
