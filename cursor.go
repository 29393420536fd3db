package simplejson

import (
	"fmt"
	"strings"

	"github.com/signadot/simplejson/debug"
	"github.com/signadot/simplejson/ir"
)

// Cursor names a place in a document which may not exist yet. Cursors are
// values: Key and Index return a new cursor and leave the receiver as it
// was, so a cursor may be extended in several directions.
//
// The setters create whatever is missing along the path. Members are
// appended to objects by key, and arrays are padded with nulls up to the
// index. A null on the way is turned into the object or array the path
// needs. Any other kind of conflict is found before the document is
// touched.
type Cursor struct {
	doc  *Document
	path []ir.Segment
	err  error
}

// Key starts a cursor at the member k of the root.
func (d *Document) Key(k string) Cursor {
	return Cursor{doc: d}.Key(k)
}

// Index starts a cursor at the element i of the root.
func (d *Document) Index(i int) Cursor {
	return Cursor{doc: d}.Index(i)
}

func (c Cursor) Key(k string) Cursor {
	return c.with(ir.Segment{Field: k})
}

func (c Cursor) Index(i int) Cursor {
	return c.with(ir.Segment{Index: i, IsIndex: true})
}

func (c Cursor) with(s ir.Segment) Cursor {
	path := make([]ir.Segment, len(c.path), len(c.path)+1)
	copy(path, c.path)
	c.path = append(path, s)
	return c
}

// Err reports a problem with how the cursor was built.
func (c Cursor) Err() error {
	return c.err
}

func (c Cursor) Path() string {
	var b strings.Builder
	b.WriteByte('$')
	for _, s := range c.path {
		b.WriteString(s.String())
	}
	return b.String()
}

func (c Cursor) SetString(v string) error {
	return c.set(func(n *ir.Node) error { return n.SetString(v) })
}

func (c Cursor) SetBool(v bool) error {
	return c.set(func(n *ir.Node) error { return n.SetBool(v) })
}

func (c Cursor) SetFloat(v float32) error {
	return c.set(func(n *ir.Node) error { return n.SetFloat(v) })
}

func (c Cursor) SetFloat64(v float64) error {
	return c.set(func(n *ir.Node) error { return n.SetFloat64(v) })
}

func (c Cursor) SetNull() error {
	return c.set(func(n *ir.Node) error { return n.SetNull() })
}

// Set puts a copy of v at the cursor.
func (c Cursor) Set(v *Document) error {
	return c.set(func(n *ir.Node) error {
		cp := v.root.Clone()
		n.Type, n.Value, n.Child = cp.Type, cp.Value, cp.Child
		return nil
	})
}

// Get returns a copy of the value at the cursor without creating anything.
func (c Cursor) Get() (*Document, error) {
	if c.err != nil {
		return nil, c.err
	}
	n := c.doc.root
	for i, s := range c.path {
		next, err := c.step(n, s)
		if err != nil {
			return nil, err
		}
		if next == nil {
			return nil, fmt.Errorf("%w: %s", ir.ErrNotFound, c.prefix(i+1))
		}
		n = next
	}
	return New(n), nil
}

// Delete removes the value at the cursor. Deleting the root leaves a null
// document.
func (c Cursor) Delete() error {
	if c.err != nil {
		return c.err
	}
	if len(c.path) == 0 {
		c.doc.root = ir.Null()
		return nil
	}
	n := c.doc.root
	for i, s := range c.path {
		next, err := c.step(n, s)
		if err != nil {
			return err
		}
		if next == nil {
			return fmt.Errorf("%w: %s", ir.ErrNotFound, c.prefix(i+1))
		}
		n = next
	}
	if debug.Cursor() {
		debug.Logf("cursor delete %v\n", n)
	}
	n.Detach()
	return nil
}

// set checks the path and builds the value with f on a detached node
// before the document is touched.
func (c Cursor) set(f func(*ir.Node) error) error {
	if c.err != nil {
		return c.err
	}
	if err := c.check(); err != nil {
		return err
	}
	v := &ir.Node{}
	if err := f(v); err != nil {
		return err
	}
	n := c.doc.root
	for _, s := range c.path {
		n = c.create(n, s)
	}
	if debug.Cursor() {
		debug.Logf("cursor set at %s on %v\n", c.Path(), n)
	}
	n.Type, n.Value, n.Child = v.Type, v.Value, v.Child
	for m := range n.Children() {
		m.Parent = n
	}
	return nil
}

// check walks the existing part of the path and reports the first segment
// which cannot be applied.
func (c Cursor) check() error {
	n := c.doc.root
	for _, s := range c.path {
		if s.IsIndex && s.Index < 0 {
			return fmt.Errorf("%w: negative index %d", ir.ErrNotFound, s.Index)
		}
		if n == nil {
			continue
		}
		next, err := c.step(n, s)
		if err != nil {
			return err
		}
		n = next
	}
	return nil
}

// step finds the member of n named by s. A nil result with no error means
// the member is missing but could be created.
func (c Cursor) step(n *ir.Node, s ir.Segment) (*ir.Node, error) {
	if s.IsIndex {
		if s.Index < 0 {
			return nil, fmt.Errorf("%w: negative index %d", ir.ErrNotFound, s.Index)
		}
		switch n.Type {
		case ir.ArrayType:
			return n.ChildAt(s.Index), nil
		case ir.NullType:
			return nil, nil
		}
		return nil, fmt.Errorf("%w: index %d of %s at %s", ir.ErrTypeMismatch, s.Index, n.Type, n.Path())
	}
	switch n.Type {
	case ir.ObjectType:
		return n.Field(s.Field), nil
	case ir.NullType:
		return nil, nil
	}
	return nil, fmt.Errorf("%w: key %q of %s at %s", ir.ErrTypeMismatch, s.Field, n.Type, n.Path())
}

// create returns the member of n named by s, making it if needed. The
// path has been checked.
func (c Cursor) create(n *ir.Node, s ir.Segment) *ir.Node {
	if s.IsIndex {
		if n.Type == ir.NullType {
			_ = n.SetValue("", ir.ArrayType)
		}
		have := n.Len()
		for ; have <= s.Index; have++ {
			n.AppendChild(ir.Null())
		}
		return n.ChildAt(s.Index)
	}
	if n.Type == ir.NullType {
		_ = n.SetValue("", ir.ObjectType)
	}
	if m := n.Field(s.Field); m != nil {
		return m
	}
	m := ir.Null()
	m.Key = ir.EscapeString(s.Field)
	n.AppendChild(m)
	return m
}

func (c Cursor) prefix(i int) string {
	return Cursor{path: c.path[:i]}.Path()
}
