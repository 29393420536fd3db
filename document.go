package simplejson

import (
	"fmt"

	"github.com/signadot/simplejson/encode"
	"github.com/signadot/simplejson/ir"
	"github.com/signadot/simplejson/parse"
)

// Document owns a tree of nodes. Documents never share nodes: every
// constructor which takes an existing tree copies it.
type Document struct {
	root *ir.Node
}

func Parse(text string, opts ...parse.ParseOption) (*Document, error) {
	return ParseBytes([]byte(text), opts...)
}

func ParseBytes(d []byte, opts ...parse.ParseOption) (*Document, error) {
	root, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// New returns a document holding a copy of node and its members. A nil
// node gives a null document.
func New(node *ir.Node) *Document {
	if node == nil {
		return &Document{root: ir.Null()}
	}
	return &Document{root: node.Clone()}
}

// Root gives access to the tree of d. Changes made through it are changes
// to d.
func (d *Document) Root() *ir.Node {
	return d.root
}

// Get returns a copy of the member of the root object with key k.
func (d *Document) Get(k string) (*Document, error) {
	if d.root.Type != ir.ObjectType {
		return nil, fmt.Errorf("%w: get %q on %s", ir.ErrTypeMismatch, k, d.root.Type)
	}
	c := d.root.Field(k)
	if c == nil {
		return nil, fmt.Errorf("%w: key %q", ir.ErrNotFound, k)
	}
	return New(c), nil
}

// At returns a copy of the i'th element of the root array.
func (d *Document) At(i int) (*Document, error) {
	if d.root.Type != ir.ArrayType {
		return nil, fmt.Errorf("%w: index %d on %s", ir.ErrTypeMismatch, i, d.root.Type)
	}
	c := d.root.ChildAt(i)
	if c == nil {
		return nil, fmt.Errorf("%w: index %d of %d", ir.ErrNotFound, i, d.root.Len())
	}
	return New(c), nil
}

func (d *Document) Type() ir.Type { return d.root.Type }

func (d *Document) IsString() bool { return d.root.Type == ir.StringType }
func (d *Document) IsBool() bool   { return d.root.Type == ir.BoolType }
func (d *Document) IsFloat() bool  { return d.root.Type == ir.NumberType }
func (d *Document) IsNull() bool   { return d.root.Type == ir.NullType }
func (d *Document) IsObject() bool { return d.root.Type == ir.ObjectType }
func (d *Document) IsArray() bool  { return d.root.Type == ir.ArrayType }

func (d *Document) GetString() (string, error) {
	return d.root.StringValue()
}

func (d *Document) GetBool() (bool, error) {
	return d.root.BoolValue()
}

// GetFloat returns a number with single precision.
func (d *Document) GetFloat() (float32, error) {
	return d.root.Float()
}

func (d *Document) GetFloat64() (float64, error) {
	return d.root.Float64()
}

// Len is the number of members of an object or array root, 0 for scalars.
func (d *Document) Len() int {
	return d.root.Len()
}

// Keys lists the decoded keys of an object root in document order.
func (d *Document) Keys() []string {
	if d.root.Type != ir.ObjectType {
		return nil
	}
	res := make([]string, 0, d.root.Len())
	for c := range d.root.Children() {
		res = append(res, ir.UnescapeString(c.Key))
	}
	return res
}

// Serialize renders d as JSON text with ": " after keys and ", " between
// members. It panics if the tree is corrupt.
func (d *Document) Serialize() string {
	return encode.MustString(d.root)
}

func (d *Document) String() string {
	return d.Serialize()
}

// Equal reports whether d and o hold the same values in the same order.
func (d *Document) Equal(o *Document) bool {
	return ir.Equal(d.root, o.root)
}

func (d *Document) Clone() *Document {
	return New(d.root)
}

// ToAny converts d to the values encoding/json decodes into an any.
func (d *Document) ToAny() any {
	return ir.ToAny(d.root)
}

func (d *Document) MarshalJSON() ([]byte, error) {
	s, err := encode.String(d.root, encode.EncodeCompact(true))
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

func (d *Document) UnmarshalJSON(data []byte) error {
	root, err := parse.Parse(data)
	if err != nil {
		return err
	}
	d.root = root
	return nil
}
