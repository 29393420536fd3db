// Package parse provides JSON parsing support.
package parse

import (
	"fmt"

	"github.com/signadot/simplejson/debug"
	"github.com/signadot/simplejson/ir"
	"github.com/signadot/simplejson/token"
)

// Parse builds a node tree from JSON text.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	rest, pd := token.Strip(d, !pOpts.stripAll)
	p := &parser{
		opts: pOpts,
		rest: rest,
		pd:   pd,
	}
	return p.run()
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// parser is a state machine driven by the leftmost delimiter of the text
// not yet consumed. cur is the node being populated. exitingParent is set
// right after a closing bracket: cur is then a placeholder which a comma
// turns into the next member and a further closing bracket splices one
// level up.
type parser struct {
	opts *parseOpts
	rest string
	off  int
	pd   *token.PosDoc

	root          *ir.Node
	cur           *ir.Node
	keyed         bool
	exitingParent bool
	done          bool
	depth         int
}

func (p *parser) run() (*ir.Node, error) {
	if p.rest == "" {
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}
	if i, ok := p.pd.Split(); ok {
		p.off = i
		return nil, p.errorf("missing delimiter before %q", p.rest[i:min(i+8, len(p.rest))])
	}
	p.root = &ir.Node{}
	p.cur = p.root
	if _, _, ok := token.Next(p.rest, p.quoteAware()); !ok {
		// a lone scalar; anything else without a delimiter is not a document
		if err := p.root.SetValue(p.rest, ir.NullType); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParse, err)
		}
		return p.root, nil
	}
	for p.rest != "" && !p.done {
		d, pos, ok := token.Next(p.rest, p.quoteAware())
		if !ok {
			return nil, p.errorf("no delimiter in %q", p.rest)
		}
		if debug.Parse() {
			debug.Logf("parse %s at %d cur %v exiting %t\n", d, p.off+pos, p.cur, p.exitingParent)
		}
		var err error
		switch d {
		case token.Colon:
			err = p.colon(pos)
		case token.Comma:
			err = p.comma(pos)
		case token.LCurl, token.LSquare:
			err = p.open(d, pos)
		case token.RCurl, token.RSquare:
			err = p.close(d, pos)
		default:
			err = p.errorf("unexpected %q", d)
		}
		if err != nil {
			return nil, err
		}
	}
	if p.rest != "" {
		return nil, p.errorf("trailing text %q", p.rest)
	}
	if !p.done {
		return nil, p.errorf("unexpected end of input")
	}
	return p.root, nil
}

func (p *parser) quoteAware() bool {
	return !p.opts.stripAll
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s at %s", ErrParse, fmt.Sprintf(format, args...), p.pd.Pos(p.off))
}

func (p *parser) consume(pos int) {
	p.rest = p.rest[pos+1:]
	p.off += pos + 1
}

func (p *parser) setCur(n *ir.Node) {
	p.cur = n
	p.keyed = false
}

func (p *parser) inObject() bool {
	return p.cur.Parent != nil && p.cur.Parent.Type == ir.ObjectType
}

func (p *parser) colon(pos int) error {
	if !p.inObject() || p.exitingParent || p.keyed {
		return p.errorf("unexpected ':'")
	}
	raw := p.rest[:pos]
	k, ok := ir.Unquote(raw)
	if !ok {
		return p.errorf("bad key %q", raw)
	}
	p.cur.SetKey(k)
	p.keyed = true
	p.consume(pos)
	return nil
}

func (p *parser) comma(pos int) error {
	if p.cur.Parent == nil {
		return p.errorf("unexpected ','")
	}
	if p.exitingParent {
		if pos != 0 {
			return p.errorf("unexpected %q after close", p.rest[:pos])
		}
		p.consume(pos)
		p.exitingParent = false
		return nil
	}
	if err := p.value(p.rest[:pos]); err != nil {
		return err
	}
	p.consume(pos)
	p.setCur(p.addNext(p.cur))
	return nil
}

func (p *parser) open(d token.Delim, pos int) error {
	if p.exitingParent || pos != 0 {
		return p.errorf("unexpected %s", d)
	}
	if p.inObject() && !p.keyed {
		return p.errorf("missing key before %s", d)
	}
	p.depth++
	if p.opts.maxDepth > 0 && p.depth > p.opts.maxDepth {
		return p.errorf("nesting deeper than %d", p.opts.maxDepth)
	}
	typ := ir.ObjectType
	if d == token.LSquare {
		typ = ir.ArrayType
	}
	if err := p.cur.SetValue("", typ); err != nil {
		return err
	}
	p.consume(pos)
	p.setCur(p.addChild(p.cur))
	return nil
}

// close handles a closing bracket. Whether or not a placeholder is
// pending, the bracket closes the container of cur.
func (p *parser) close(d token.Delim, pos int) error {
	parent := p.cur.Parent
	if parent == nil {
		return p.errorf("unexpected %s", d)
	}
	if (d == token.RCurl) != (parent.Type == ir.ObjectType) {
		return p.errorf("%s closes %s", d, parent.Type)
	}
	p.depth--
	if p.exitingParent {
		if pos != 0 {
			return p.errorf("unexpected %q after close", p.rest[:pos])
		}
		p.consume(pos)
		p.moveNextUp()
		return nil
	}
	raw := p.rest[:pos]
	if raw == "" && !p.keyed && parent.Child == p.cur {
		// nothing was opened in the container: drop the slot
		parent.Child = nil
	} else if err := p.value(raw); err != nil {
		return err
	}
	p.consume(pos)
	if parent == p.root {
		p.done = true
		return nil
	}
	p.exitingParent = true
	p.setCur(p.addExit(p.cur))
	return nil
}

func (p *parser) value(raw string) error {
	if p.inObject() && !p.keyed {
		return p.errorf("missing key before %q", raw)
	}
	if err := p.cur.SetValue(raw, ir.NullType); err != nil {
		return fmt.Errorf("%w at %s", err, p.pd.Pos(p.off))
	}
	return nil
}

func (p *parser) addNext(n *ir.Node) *ir.Node {
	res := &ir.Node{Parent: n.Parent, Prev: n}
	n.Next = res
	return res
}

func (p *parser) addChild(n *ir.Node) *ir.Node {
	res := &ir.Node{Parent: n}
	n.Child = res
	return res
}

// addExit allocates the placeholder following the container of n, at the
// level of that container.
func (p *parser) addExit(n *ir.Node) *ir.Node {
	up := n.Parent
	res := &ir.Node{Parent: up.Parent, Prev: up}
	up.Next = res
	return res
}

// moveNextUp splices the placeholder one level up: it becomes the next
// sibling of its former parent. At the root level there is nothing to
// follow, so the placeholder is dropped and parsing ends.
func (p *parser) moveNextUp() {
	n := p.cur
	n.Prev.Next = nil
	if n.Parent == p.root {
		p.done = true
		p.setCur(n.Prev)
		return
	}
	up := n.Parent
	up.Next = n
	n.Prev = up
	n.Parent = up.Parent
	if debug.Parse() {
		debug.Logf("parse splice %v\n", n)
	}
}
