package encode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/simplejson/debug"
	"github.com/signadot/simplejson/format"
	"github.com/signadot/simplejson/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	format  format.Format
	compact bool
	indent  string

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node and everything beneath it to w, followed by a
// newline.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		s, err := encodeJSON(node, es)
		if err != nil {
			return err
		}
		return writeString(w, s+"\n")
	case format.YAMLFormat:
		return encodeYAML(node, w)
	default:
		return fmt.Errorf("%w: unsupported format %s", ErrEncoding, es.format)
	}
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// frame collects the rendered members of one open container.
type frame struct {
	node    *ir.Node
	members []string
}

// encodeJSON renders the members of each container as they are met in
// document order and joins them when the container closes, so no
// separator is ever written and then taken back.
func encodeJSON(node *ir.Node, es *EncState) (string, error) {
	var (
		res   string
		stack []*frame
	)
	emit := func(n *ir.Node, text string) error {
		if len(stack) == 0 {
			res = text
			return nil
		}
		prefix, err := es.keyPrefix(n)
		if err != nil {
			return err
		}
		top := stack[len(stack)-1]
		top.members = append(top.members, prefix+text)
		return nil
	}
	err := ir.Walk(node, func(n *ir.Node, ev ir.Event) error {
		switch ev {
		case ir.Enter:
			if _, err := n.OpenBracket(); err != nil {
				return err
			}
			stack = append(stack, &frame{node: n})
			return nil
		case ir.Exit:
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if debug.Encode() {
				debug.Logf("encode close %v with %d members\n", f.node, len(f.members))
			}
			return emit(f.node, es.container(f, len(stack)))
		default:
			return emit(n, es.color(n.Type, ValueColor, n.ValueText()))
		}
	})
	if err != nil {
		return "", err
	}
	return res, nil
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func (es *EncState) keySep() string {
	if es.compact {
		return ":"
	}
	return ": "
}

func (es *EncState) memberSep() string {
	if es.compact || es.indent != "" {
		return ","
	}
	return ", "
}

func (es *EncState) keyPrefix(n *ir.Node) (string, error) {
	prefix, err := n.KeyPrefixSep(es.keySep())
	if err != nil || prefix == "" || es.Color == nil {
		return prefix, err
	}
	return es.Color(ir.ObjectType, FieldColor, `"`+n.Key+`"`) +
		es.Color(ir.ObjectType, SepColor, es.keySep()), nil
}

func (es *EncState) container(f *frame, depth int) string {
	n := f.node
	open, _ := n.OpenBracket()
	open = es.color(n.Type, SepColor, open)
	end := es.color(n.Type, SepColor, n.CloseBracket())
	if len(f.members) == 0 {
		return open + end
	}
	sep := es.color(n.Type, SepColor, es.memberSep())
	if es.indent == "" {
		return open + strings.Join(f.members, sep) + end
	}
	inner := "\n" + strings.Repeat(es.indent, depth+1)
	return open + inner + strings.Join(f.members, sep+inner) +
		"\n" + strings.Repeat(es.indent, depth) + end
}
