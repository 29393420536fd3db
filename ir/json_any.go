package ir

import "strconv"

type anyFrame struct {
	node *Node
	obj  map[string]any
	arr  []any
}

func (f *anyFrame) add(n *Node, v any) {
	if f.obj != nil {
		f.obj[UnescapeString(n.Key)] = v
		return
	}
	f.arr = append(f.arr, v)
}

func (f *anyFrame) value() any {
	if f.obj != nil {
		return f.obj
	}
	return f.arr
}

// ToAny converts n to the values encoding/json produces when decoding into
// an any: map[string]any, []any, string, float64, bool and nil. Later
// duplicate keys win.
func ToAny(n *Node) any {
	var (
		res   any
		stack []*anyFrame
	)
	err := Walk(n, func(y *Node, ev Event) error {
		switch ev {
		case Enter:
			f := &anyFrame{node: y}
			if y.Type == ObjectType {
				f.obj = map[string]any{}
			} else {
				f.arr = []any{}
			}
			stack = append(stack, f)
			return nil
		case Exit:
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				res = f.value()
				return nil
			}
			stack[len(stack)-1].add(f.node, f.value())
			return nil
		}
		v := scalarAny(y)
		if len(stack) == 0 {
			res = v
			return nil
		}
		stack[len(stack)-1].add(y, v)
		return nil
	})
	if err != nil {
		panic(err)
	}
	return res
}

func scalarAny(n *Node) any {
	switch n.Type {
	case StringType:
		return UnescapeString(n.Value)
	case BoolType:
		return n.Value == "true"
	case NumberType:
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return n.Value
		}
		return f
	default:
		return nil
	}
}
