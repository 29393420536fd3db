package ir

import (
	"errors"
	"testing"
)

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatalf("%s: %v", d, err)
		}
		if back != typ {
			t.Errorf("%s came back as %s", typ, back)
		}
		if typ.IsLeaf() == (typ == ObjectType || typ == ArrayType) {
			t.Errorf("%s: IsLeaf %t", typ, typ.IsLeaf())
		}
	}
	if len(Types()) != 6 {
		t.Errorf("got %d types", len(Types()))
	}
	var typ Type
	if err := typ.UnmarshalText([]byte("Comment")); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected invalid, got %v", err)
	}
	if s := Type(9).String(); s != "<type 9>" {
		t.Errorf("got %s", s)
	}
}
