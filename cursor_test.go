package simplejson

import (
	"errors"
	"math"
	"testing"

	"github.com/signadot/simplejson/ir"
)

func TestCursorSet(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		set  func(d *Document) error
		want string
	}{
		{
			name: "replace member",
			doc:  personDoc,
			set:  func(d *Document) error { return d.Key("person").Key("skills").SetString("coding") },
			want: `{"person": {"name": "charlie", "skills": "coding", "age": 27}}`,
		},
		{
			name: "append member",
			doc:  `{"a": 1}`,
			set:  func(d *Document) error { return d.Key("b").SetBool(false) },
			want: `{"a": 1, "b": false}`,
		},
		{
			name: "create nested",
			doc:  `{}`,
			set:  func(d *Document) error { return d.Key("x").Key("y").SetString("z") },
			want: `{"x": {"y": "z"}}`,
		},
		{
			name: "pad array",
			doc:  `[]`,
			set:  func(d *Document) error { return d.Index(2).SetFloat(1.5) },
			want: `[null, null, 1.5]`,
		},
		{
			name: "null becomes array",
			doc:  `{"a": null}`,
			set:  func(d *Document) error { return d.Key("a").Index(1).SetBool(true) },
			want: `{"a": [null, true]}`,
		},
		{
			name: "null becomes object",
			doc:  `[null]`,
			set:  func(d *Document) error { return d.Index(0).Key("k").SetNull() },
			want: `[{"k": null}]`,
		},
		{
			name: "padded slot becomes object",
			doc:  `{"a": [1]}`,
			set:  func(d *Document) error { return d.Key("a").Index(2).Key("k").SetFloat64(0.25) },
			want: `{"a": [1, null, {"k": 0.25}]}`,
		},
		{
			name: "double precision",
			doc:  `{"a": 1}`,
			set:  func(d *Document) error { return d.Key("big").SetFloat64(1e39) },
			want: `{"a": 1, "big": 1e+39}`,
		},
		{
			name: "container replaced by scalar",
			doc:  `{"a": {"b": [1, 2]}}`,
			set:  func(d *Document) error { return d.Key("a").SetNull() },
			want: `{"a": null}`,
		},
		{
			name: "escaped key",
			doc:  `{}`,
			set:  func(d *Document) error { return d.Key(`q"k`).SetString("a\tb") },
			want: `{"q\"k": "a\tb"}`,
		},
		{
			name: "root",
			doc:  `[1, 2]`,
			set:  func(d *Document) error { return d.SetPath("$").SetString("x") },
			want: `"x"`,
		},
		{
			name: "document",
			doc:  `{"a": 1}`,
			set: func(d *Document) error {
				v, err := Parse(`[1, {"c": 2}]`)
				if err != nil {
					return err
				}
				return d.Key("b").Set(v)
			},
			want: `{"a": 1, "b": [1, {"c": 2}]}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := mustParse(t, tc.doc)
			if err := tc.set(d); err != nil {
				t.Fatal(err)
			}
			if got := d.Serialize(); got != tc.want {
				t.Errorf("got %s want %s", got, tc.want)
			}
			// the result must survive a round trip through text
			if got := mustParse(t, d.Serialize()).Serialize(); got != tc.want {
				t.Errorf("reparsed %s", got)
			}
		})
	}
}

func TestCursorSetErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		set  func(d *Document) error
		err  error
	}{
		{
			name: "key of array",
			doc:  `[1]`,
			set:  func(d *Document) error { return d.Key("a").SetBool(true) },
			err:  ir.ErrTypeMismatch,
		},
		{
			name: "index of object",
			doc:  `{"a": 1}`,
			set:  func(d *Document) error { return d.Index(0).SetBool(true) },
			err:  ir.ErrTypeMismatch,
		},
		{
			name: "key of scalar",
			doc:  `{"a": {"b": "x"}}`,
			set:  func(d *Document) error { return d.Key("a").Key("b").Key("c").SetNull() },
			err:  ir.ErrTypeMismatch,
		},
		{
			name: "negative index",
			doc:  `[1]`,
			set:  func(d *Document) error { return d.Index(-1).SetNull() },
			err:  ir.ErrNotFound,
		},
		{
			name: "negative index after missing",
			doc:  `[1]`,
			set:  func(d *Document) error { return d.Index(3).Index(-1).SetNull() },
			err:  ir.ErrNotFound,
		},
		{
			name: "nan after padding",
			doc:  `[1]`,
			set:  func(d *Document) error { return d.Index(3).SetFloat(float32(math.NaN())) },
			err:  ir.ErrInvalidValue,
		},
		{
			name: "infinity in new member",
			doc:  `{"a": 1}`,
			set:  func(d *Document) error { return d.Key("b").Key("c").SetFloat64(math.Inf(1)) },
			err:  ir.ErrInvalidValue,
		},
		{
			name: "nan replacing a value",
			doc:  `{"a": [1, 2]}`,
			set:  func(d *Document) error { return d.Key("a").SetFloat64(math.NaN()) },
			err:  ir.ErrInvalidValue,
		},
		{
			name: "bad path",
			doc:  `{}`,
			set:  func(d *Document) error { return d.SetPath("a[x]").SetNull() },
			err:  ir.ErrMalformed,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := mustParse(t, tc.doc)
			before := d.Serialize()
			err := tc.set(d)
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
			if got := d.Serialize(); got != before {
				t.Errorf("document changed on error: %s", got)
			}
		})
	}
}

func TestCursorGet(t *testing.T) {
	d := mustParse(t, `{"a": [1, {"b": true}]}`)
	v, err := d.Key("a").Index(1).Key("b").Get()
	if err != nil {
		t.Fatal(err)
	}
	if b, err := v.GetBool(); err != nil || !b {
		t.Errorf("got %v, %v", b, err)
	}
	_, err = d.Key("a").Index(5).Key("b").Get()
	if !errors.Is(err, ir.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if want := "not found: $.a[5]"; err.Error() != want {
		t.Errorf("got %q want %q", err, want)
	}
	if _, err := d.Key("a").Key("b").Get(); !errors.Is(err, ir.ErrTypeMismatch) {
		t.Errorf("expected mismatch, got %v", err)
	}
	// Get never creates
	if _, err := d.Key("zz").Get(); !errors.Is(err, ir.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
	if d.Serialize() != `{"a": [1, {"b": true}]}` {
		t.Errorf("Get changed the document: %s", d.Serialize())
	}
}

func TestCursorDelete(t *testing.T) {
	tests := []struct {
		doc  string
		path string
		want string
		err  error
	}{
		{doc: `{"a": 1, "b": 2, "c": 3}`, path: "b", want: `{"a": 1, "c": 3}`},
		{doc: `{"a": 1, "b": 2}`, path: "a", want: `{"b": 2}`},
		{doc: `[1, 2, 3]`, path: "[2]", want: `[1, 2]`},
		{doc: `[1]`, path: "[0]", want: `[]`},
		{doc: `{"a": {"b": [1, 2]}}`, path: "a.b[0]", want: `{"a": {"b": [2]}}`},
		{doc: `{"a": 1}`, path: "$", want: `null`},
		{doc: `{"a": 1}`, path: "b", want: `{"a": 1}`, err: ir.ErrNotFound},
		{doc: `{"a": 1}`, path: "a.b", want: `{"a": 1}`, err: ir.ErrTypeMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.doc+" "+tc.path, func(t *testing.T) {
			d := mustParse(t, tc.doc)
			err := d.SetPath(tc.path).Delete()
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected %v, got %v", tc.err, err)
			}
			if got := d.Serialize(); got != tc.want {
				t.Errorf("got %s want %s", got, tc.want)
			}
		})
	}
}

func TestCursorIsValue(t *testing.T) {
	d := mustParse(t, `{}`)
	base := d.Key("a")
	x := base.Key("x")
	y := base.Index(1)
	if base.Path() != "$.a" || x.Path() != "$.a.x" || y.Path() != "$.a[1]" {
		t.Errorf("paths %s %s %s", base.Path(), x.Path(), y.Path())
	}
	if err := x.SetString("1"); err != nil {
		t.Fatal(err)
	}
	if err := y.SetString("2"); !errors.Is(err, ir.ErrTypeMismatch) {
		t.Errorf("expected mismatch, got %v", err)
	}
	if err := base.Key("z").SetBool(true); err != nil {
		t.Fatal(err)
	}
	if got := d.Serialize(); got != `{"a": {"x": "1", "z": true}}` {
		t.Errorf("got %s", got)
	}
	if d.SetPath("a.x").Err() != nil {
		t.Errorf("unexpected error")
	}
}

func TestCursorSetFloat64ReadBack(t *testing.T) {
	d := mustParse(t, `{"a": 1}`)
	if err := d.Key("big").SetFloat64(1e39); err != nil {
		t.Fatal(err)
	}
	big, err := d.Get("big")
	if err != nil {
		t.Fatal(err)
	}
	f, err := big.GetFloat64()
	if err != nil || f != 1e39 {
		t.Errorf("got %v, %v", f, err)
	}
	if _, err := big.GetFloat(); !errors.Is(err, ir.ErrInvalidValue) {
		t.Errorf("expected float32 overflow, got %v", err)
	}
	back, err := Parse(d.Serialize())
	if err != nil {
		t.Fatal(err)
	}
	if !back.Equal(d) {
		t.Errorf("got %s", back)
	}
}
