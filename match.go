package simplejson

import (
	"fmt"

	"github.com/signadot/simplejson/debug"
	"github.com/signadot/simplejson/ir"

	"github.com/expr-lang/expr"
)

// Match reports whether doc has the shape of match. An object matches when
// every member of match is matched by the member of doc with the same key.
// Arrays match element by element and must have the same length. A null
// in match matches anything.
func Match(doc, match *ir.Node) bool {
	if debug.Match() {
		debug.Logf("match %v against %v\n", doc, match)
	}
	if match.Type == ir.NullType {
		return true
	}
	if doc.Type != match.Type {
		return false
	}
	switch match.Type {
	case ir.ObjectType:
		for m := range match.Children() {
			d := doc.Field(ir.UnescapeString(m.Key))
			if d == nil || !Match(d, m) {
				return false
			}
		}
		return true
	case ir.ArrayType:
		if doc.Len() != match.Len() {
			return false
		}
		d := doc.Child
		for m := range match.Children() {
			if !Match(d, m) {
				return false
			}
			d = d.Next
		}
		return true
	case ir.NumberType:
		a, errA := doc.Float64()
		b, errB := match.Float64()
		if errA != nil || errB != nil {
			return doc.Value == match.Value
		}
		return a == b
	case ir.StringType:
		return ir.UnescapeString(doc.Value) == ir.UnescapeString(match.Value)
	default:
		return doc.Value == match.Value
	}
}

// Trim returns a copy of doc holding only what match mentions. Array
// elements are kept when they match some element of match, each element of
// doc being used at most once.
func Trim(match, doc *ir.Node) *ir.Node {
	switch match.Type {
	case ir.ObjectType:
		if doc.Type != ir.ObjectType {
			return doc.Clone()
		}
		var kvs []ir.KeyVal
		for d := range doc.Children() {
			k := ir.UnescapeString(d.Key)
			m := match.Field(k)
			if m == nil {
				continue
			}
			kvs = append(kvs, ir.KeyVal{Key: k, Val: Trim(m, d)})
		}
		return ir.FromKeyVals(kvs)
	case ir.ArrayType:
		if doc.Type != ir.ArrayType {
			return doc.Clone()
		}
		var res []*ir.Node
		used := make(map[*ir.Node]bool)
		for m := range match.Children() {
			for d := range doc.Children() {
				if used[d] || !Match(d, m) {
					continue
				}
				res = append(res, Trim(m, d))
				used[d] = true
				break
			}
		}
		return ir.FromSlice(res)
	default:
		return doc.Clone()
	}
}

// Match evaluates a boolean expr-lang expression against d. The members
// of an object root are the variables of the expression; any other root
// is available as "value".
func (d *Document) Match(expression string) (bool, error) {
	res, err := d.run(expression, expr.AsBool())
	if err != nil {
		return false, err
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: expression gave %T", ir.ErrTypeMismatch, res)
	}
	return b, nil
}

// Eval evaluates an expr-lang expression against d, see Match.
func (d *Document) Eval(expression string) (any, error) {
	return d.run(expression)
}

func (d *Document) run(expression string, opts ...expr.Option) (any, error) {
	env := d.env()
	if debug.Match() {
		debug.Logf("match %q with env ", expression)
		debug.LogAny(env)
	}
	opts = append(append([]expr.Option{expr.Env(env)}, d.exprOpts()...), opts...)
	prg, err := expr.Compile(expression, opts...)
	if err != nil {
		return nil, err
	}
	return expr.Run(prg, env)
}

func (d *Document) env() map[string]any {
	v := d.ToAny()
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{"value": v}
}

func (d *Document) exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			res, err := d.Path(params[0].(string))
			if err != nil {
				return nil, err
			}
			return res.ToAny(), nil
		},
			new(func(string) any)),
		expr.Function("haspath", func(params ...any) (any, error) {
			_, err := d.Path(params[0].(string))
			return err == nil, nil
		},
			new(func(string) bool)),
	}
}
