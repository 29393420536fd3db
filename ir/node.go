package ir

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strconv"
	"strings"
)

const nullLit = "null"

// Node is one JSON value together with its links into the tree.
//
// Next and Child are the forward links which make up the tree. Parent and
// Prev point back and are never used to own or release nodes. The parser
// relies on Prev to splice exit placeholders; it is not kept current by
// every mutation.
type Node struct {
	Type  Type
	Key   string
	Value string

	Parent *Node
	Next   *Node
	Child  *Node
	Prev   *Node
}

func Null() *Node {
	return &Node{Type: NullType, Value: nullLit}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, Value: EscapeString(v)}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Value: strconv.FormatBool(v)}
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	for i := range kvs {
		kv := &kvs[i]
		kv.Val.Key = EscapeString(kv.Key)
		res.AppendChild(kv.Val)
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ArrayType}
	for _, v := range vs {
		res.AppendChild(v)
	}
	return res
}

// SetValue classifies raw and stores it.
//
// An empty raw takes its type from hint. Otherwise a leading quote makes a
// string, then the literals true, false and null are recognised, and
// finally anything which parses completely as a number. The order matters:
// "true" with its quotes is a string.
func (n *Node) SetValue(raw string, hint Type) error {
	switch {
	case raw == "":
		n.Type = hint
		n.Value = ""
		if hint == NullType {
			n.Value = nullLit
		}
	case raw[0] == '"':
		body, ok := Unquote(raw)
		if !ok {
			return fmt.Errorf("%w: bad string %s", ErrInvalidValue, raw)
		}
		n.Type = StringType
		n.Value = body
	case raw == "true" || raw == "false":
		n.Type = BoolType
		n.Value = raw
	case raw == nullLit:
		n.Type = NullType
		n.Value = raw
	case isNumber(raw):
		n.Type = NumberType
		n.Value = raw
	default:
		return fmt.Errorf("%w: %q", ErrInvalidValue, raw)
	}
	if n.Type.IsLeaf() {
		n.Child = nil
	}
	return nil
}

func (n *Node) SetKey(k string) {
	n.Key = k
}

func (n *Node) HasChild() bool  { return n.Child != nil }
func (n *Node) HasNext() bool   { return n.Next != nil }
func (n *Node) HasParent() bool { return n.Parent != nil }

// KeyPrefix returns the text which precedes the value of n when it is
// rendered: the quoted key and ": " inside an object, nothing otherwise.
func (n *Node) KeyPrefix() (string, error) {
	return n.KeyPrefixSep(": ")
}

func (n *Node) KeyPrefixSep(sep string) (string, error) {
	if n.Parent == nil {
		return "", nil
	}
	switch n.Parent.Type {
	case ArrayType:
		return "", nil
	case ObjectType:
		return `"` + n.Key + `"` + sep, nil
	default:
		return "", fmt.Errorf("%w: %s has %s parent", ErrCorrupt, n, n.Parent.Type)
	}
}

// ValueText is the JSON text of a scalar. Containers render as the empty
// string; their brackets come from OpenBracket and CloseBracket.
func (n *Node) ValueText() string {
	if n.Type == StringType {
		return `"` + n.Value + `"`
	}
	return n.Value
}

func (n *Node) OpenBracket() (string, error) {
	switch n.Type {
	case ObjectType:
		return "{", nil
	case ArrayType:
		return "[", nil
	default:
		return "", fmt.Errorf("%w: no bracket for %s", ErrCorrupt, n.Type)
	}
}

func (n *Node) CloseBracket() string {
	switch n.Type {
	case ObjectType:
		return "}"
	case ArrayType:
		return "]"
	default:
		return ""
	}
}

func (n *Node) SetBool(v bool) error {
	return n.SetValue(strconv.FormatBool(v), NullType)
}

func (n *Node) SetString(v string) error {
	return n.SetValue(`"`+EscapeString(v)+`"`, NullType)
}

func (n *Node) SetFloat(f float32) error {
	return n.SetValue(strconv.FormatFloat(float64(f), 'f', -1, 32), NullType)
}

// SetFloat64 stores f with full precision. NaN and infinities have no JSON
// form.
func (n *Node) SetFloat64(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidValue, f)
	}
	n.Type = NumberType
	n.Value = strconv.FormatFloat(f, 'g', -1, 64)
	n.Child = nil
	return nil
}

func (n *Node) SetNull() error {
	return n.SetValue(nullLit, NullType)
}

// StringValue returns the payload of a string node with its escape
// sequences decoded.
func (n *Node) StringValue() (string, error) {
	if n.Type != StringType {
		return "", fmt.Errorf("%w: %s is not a string", ErrTypeMismatch, n.Type)
	}
	return UnescapeString(n.Value), nil
}

func (n *Node) BoolValue() (bool, error) {
	if n.Type != BoolType {
		return false, fmt.Errorf("%w: %s is not a bool", ErrTypeMismatch, n.Type)
	}
	return n.Value == "true", nil
}

func (n *Node) Float() (float32, error) {
	if n.Type != NumberType {
		return 0, fmt.Errorf("%w: %s is not a number", ErrTypeMismatch, n.Type)
	}
	f, err := strconv.ParseFloat(n.Value, 32)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %s does not fit in float32", ErrInvalidValue, n.Value)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return float32(f), nil
}

func (n *Node) Float64() (float64, error) {
	if n.Type != NumberType {
		return 0, fmt.Errorf("%w: %s is not a number", ErrTypeMismatch, n.Type)
	}
	f, err := strconv.ParseFloat(n.Value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return f, nil
}

func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Children iterates the direct members of n in order.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for c := n.Child; c != nil; c = c.Next {
			if !yield(c) {
				return
			}
		}
	}
}

func (n *Node) Len() int {
	i := 0
	for c := n.Child; c != nil; c = c.Next {
		i++
	}
	return i
}

func (n *Node) ChildAt(i int) *Node {
	if i < 0 {
		return nil
	}
	for c := n.Child; c != nil; c = c.Next {
		if i == 0 {
			return c
		}
		i--
	}
	return nil
}

// Field returns the first member of n whose key decodes to k.
func (n *Node) Field(k string) *Node {
	for c := n.Child; c != nil; c = c.Next {
		if UnescapeString(c.Key) == k {
			return c
		}
	}
	return nil
}

func (n *Node) Last() *Node {
	c := n.Child
	if c == nil {
		return nil
	}
	for c.Next != nil {
		c = c.Next
	}
	return c
}

// AppendChild links c as the last member of n.
func (n *Node) AppendChild(c *Node) {
	c.Parent = n
	c.Next = nil
	last := n.Last()
	if last == nil {
		n.Child = c
		c.Prev = nil
		return
	}
	last.Next = c
	c.Prev = last
}

// Detach unlinks n from its parent and siblings. The members of n stay
// with it.
func (n *Node) Detach() {
	prev := n.prevSibling()
	switch {
	case prev != nil:
		prev.Next = n.Next
	case n.Parent != nil && n.Parent.Child == n:
		n.Parent.Child = n.Next
	}
	if n.Next != nil {
		n.Next.Prev = prev
	}
	n.Parent, n.Next, n.Prev = nil, nil, nil
}

// prevSibling finds the member before n by scanning from the first member,
// since Prev is not maintained by every mutation.
func (n *Node) prevSibling() *Node {
	if n.Parent == nil {
		return n.Prev
	}
	for c := n.Parent.Child; c != nil; c = c.Next {
		if c.Next == n {
			return c
		}
	}
	return nil
}

func (n *Node) String() string {
	var b strings.Builder
	b.WriteString(n.Type.String())
	if n.Key != "" {
		fmt.Fprintf(&b, " %q", n.Key)
	}
	if n.Type.IsLeaf() {
		b.WriteByte(' ')
		b.WriteString(n.ValueText())
	}
	return b.String()
}

func isNumber(raw string) bool {
	for i := 0; i < len(raw); i++ {
		switch c := raw[i]; {
		case c >= '0' && c <= '9':
		case c == '-', c == '+', c == '.', c == 'e', c == 'E':
		default:
			return false
		}
	}
	_, err := strconv.ParseFloat(raw, 64)
	return err == nil
}
