package ir

import "fmt"

// Type is the kind of JSON value a Node holds. The zero Type is Null, so a
// freshly allocated Node is a null until something is stored in it.
type Type int

const (
	NullType Type = iota
	StringType
	BoolType
	NumberType
	ObjectType
	ArrayType
)

var typeNames = [...]string{
	NullType:   "Null",
	StringType: "String",
	BoolType:   "Bool",
	NumberType: "Number",
	ObjectType: "Object",
	ArrayType:  "Array",
}

// Types lists every Type in declaration order.
func Types() []Type {
	res := make([]Type, len(typeNames))
	for i := range typeNames {
		res[i] = Type(i)
	}
	return res
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("<type %d>", int(t))
	}
	return typeNames[t]
}

// IsLeaf is false for the two container types.
func (t Type) IsLeaf() bool {
	return t != ObjectType && t != ArrayType
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for _, c := range Types() {
		if typeNames[c] == string(d) {
			*t = c
			return nil
		}
	}
	return fmt.Errorf("%w: unrecognized type %q", ErrInvalidValue, d)
}
