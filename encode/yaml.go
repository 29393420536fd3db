package encode

import (
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/simplejson/ir"

	"github.com/goccy/go-yaml"
)

type yamlFrame struct {
	node *ir.Node
	obj  yaml.MapSlice
	arr  []any
}

func (f *yamlFrame) add(n *ir.Node, v any) {
	if f.node.Type == ir.ObjectType {
		f.obj = append(f.obj, yaml.MapItem{Key: ir.UnescapeString(n.Key), Value: v})
		return
	}
	f.arr = append(f.arr, v)
}

func (f *yamlFrame) value() any {
	if f.node.Type == ir.ObjectType {
		if f.obj == nil {
			return yaml.MapSlice{}
		}
		return f.obj
	}
	if f.arr == nil {
		return []any{}
	}
	return f.arr
}

// ToYAMLValue converts node to values goccy/go-yaml marshals in document
// order: objects become yaml.MapSlice.
func ToYAMLValue(node *ir.Node) (any, error) {
	var (
		res   any
		stack []*yamlFrame
	)
	err := ir.Walk(node, func(n *ir.Node, ev ir.Event) error {
		var v any
		switch ev {
		case ir.Enter:
			stack = append(stack, &yamlFrame{node: n})
			return nil
		case ir.Exit:
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			v = f.value()
			n = f.node
		default:
			v = yamlScalar(n)
		}
		if len(stack) == 0 {
			res = v
			return nil
		}
		stack[len(stack)-1].add(n, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func yamlScalar(n *ir.Node) any {
	switch n.Type {
	case ir.StringType:
		return ir.UnescapeString(n.Value)
	case ir.BoolType:
		return n.Value == "true"
	case ir.NumberType:
		if i, err := strconv.ParseInt(n.Value, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			return f
		}
		return n.Value
	default:
		return nil
	}
}

func encodeYAML(node *ir.Node, w io.Writer) error {
	v, err := ToYAMLValue(node)
	if err != nil {
		return err
	}
	d, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}
