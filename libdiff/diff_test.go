package libdiff

import (
	"testing"

	"github.com/signadot/simplejson/ir"

	"github.com/google/go-cmp/cmp"
)

func TestDiff(t *testing.T) {
	from := ir.FromKeyVals([]ir.KeyVal{
		{Key: "name", Val: ir.FromString("charlie")},
		{Key: "skills", Val: ir.FromBool(true)},
	})
	to := ir.FromKeyVals([]ir.KeyVal{
		{Key: "name", Val: ir.FromString("charlie")},
		{Key: "skills", Val: ir.FromString("coding")},
	})
	res, err := Diff(from, to)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Changed() {
		t.Fatal("expected a change")
	}
	want := []Line{
		{Op: Equal, Text: "{"},
		{Op: Equal, Text: `  "name": "charlie",`},
		{Op: Delete, Text: `  "skills": true`},
		{Op: Insert, Text: `  "skills": "coding"`},
		{Op: Equal, Text: "}"},
	}
	if diff := cmp.Diff(want, res.Lines); diff != "" {
		t.Errorf("diff mismatch (-want +got):\n%s", diff)
	}
	want = []Line{
		{Op: Equal, Text: "{"},
		{Op: Equal, Text: `  "name": "charlie",`},
		{Op: Insert, Text: `  "skills": true`},
		{Op: Delete, Text: `  "skills": "coding"`},
		{Op: Equal, Text: "}"},
	}
	if diff := cmp.Diff(want, res.Reverse().Lines); diff != "" {
		t.Errorf("reverse mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffSame(t *testing.T) {
	a := ir.FromSlice([]*ir.Node{ir.FromBool(true), ir.Null()})
	res, err := Diff(a, a.Clone())
	if err != nil {
		t.Fatal(err)
	}
	if res.Changed() {
		t.Errorf("unexpected change:\n%s", res)
	}
}

func TestResultString(t *testing.T) {
	res := DiffText("a\nb\n", "a\nc\n")
	want := "  a\n- b\n+ c\n"
	if got := res.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
