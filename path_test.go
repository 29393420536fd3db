package simplejson

import (
	"errors"
	"testing"

	"github.com/signadot/simplejson/ir"
)

type pathTest struct {
	Path string
	Doc  string
	Res  string
	Err  error
}

var pathTests = []pathTest{
	{Path: "$", Doc: "null", Res: "null"},
	{Path: "$.f", Doc: `{"f": 1}`, Res: "1"},
	{Path: "f", Doc: `{"f": 1}`, Res: "1"},
	{Path: "$[0]", Doc: "[1, 2, 3]", Res: "1"},
	{Path: "$", Doc: "[1, 2, 3]", Res: "[1, 2, 3]"},
	{Path: "$[1].f", Doc: `[0, {"f": 2, "g": 3}]`, Res: "2"},
	{Path: "$.f[3]", Doc: `{"a": [1, 2], "f": [0, 1, 2, "three"]}`, Res: `"three"`},
	{Path: "$.'f[3]'[2]", Doc: `{"a": [1, 2], "f[3]": [0, 1, 2, "three"]}`, Res: "2"},
	{Path: `$.'$f[\'3]'[2]`, Doc: `{"a": [1, 2], "$f['3]": [0, 1, 2, "three"]}`, Res: "2"},
	{Path: "person.name", Doc: personDoc, Res: `"charlie"`},
	{Path: "person.nope", Doc: personDoc, Err: ir.ErrNotFound},
	{Path: "person[0]", Doc: personDoc, Err: ir.ErrTypeMismatch},
	{Path: "$[7]", Doc: "[1]", Err: ir.ErrNotFound},
	{Path: "$.", Doc: "{}", Err: ir.ErrMalformed},
	{Path: "$[1", Doc: "[1]", Err: ir.ErrMalformed},
	{Path: "$.'a", Doc: "{}", Err: ir.ErrMalformed},
}

func TestPath(t *testing.T) {
	for _, pt := range pathTests {
		t.Run(pt.Path, func(t *testing.T) {
			d := mustParse(t, pt.Doc)
			res, err := d.Path(pt.Path)
			if pt.Err != nil {
				if !errors.Is(err, pt.Err) {
					t.Fatalf("expected %v, got %v", pt.Err, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := res.Serialize(); got != pt.Res {
				t.Errorf("got %s want %s", got, pt.Res)
			}
		})
	}
}

func TestSetPath(t *testing.T) {
	d := mustParse(t, personDoc)
	if err := d.SetPath("$.person.'home town'").SetString("paris"); err != nil {
		t.Fatal(err)
	}
	if err := d.SetPath("person.pets[1]").SetString("cat"); err != nil {
		t.Fatal(err)
	}
	want := `{"person": {"name": "charlie", "skills": true, "age": 27, "home town": "paris", "pets": [null, "cat"]}}`
	if got := d.Serialize(); got != want {
		t.Errorf("got %s", got)
	}
	// the path of a node in the tree reads back through Path
	town := d.Root().Child.Field("home town")
	if town.Path() != "$.person.'home town'" {
		t.Fatalf("got path %s", town.Path())
	}
	res, err := d.Path(town.Path())
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := res.GetString(); s != "paris" {
		t.Errorf("got %q", s)
	}
}
