package ir

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNodePath(t *testing.T) {
	skills := FromSlice([]*Node{FromString("coding"), FromString("drawing")})
	doc := FromKeyVals([]KeyVal{
		{Key: "person", Val: FromKeyVals([]KeyVal{
			{Key: "skills", Val: skills},
			{Key: "a.b", Val: Null()},
		})},
	})
	tests := []struct {
		node *Node
		want string
	}{
		{doc, "$"},
		{doc.Child, "$.person"},
		{skills, "$.person.skills"},
		{skills.Child.Next, "$.person.skills[1]"},
		{doc.Child.Field("a.b"), "$.person.'a.b'"},
	}
	for _, tc := range tests {
		if got := tc.node.Path(); got != tc.want {
			t.Errorf("got %s, want %s", got, tc.want)
		}
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		in   string
		want []Segment
		err  error
	}{
		{in: "$", want: nil},
		{in: "person", want: []Segment{{Field: "person"}}},
		{in: "$.person.skills[1]", want: []Segment{
			{Field: "person"},
			{Field: "skills"},
			{Index: 1, IsIndex: true},
		}},
		{in: "[2][0]", want: []Segment{
			{Index: 2, IsIndex: true},
			{Index: 0, IsIndex: true},
		}},
		{in: "$.a.'b.c'[0]", want: []Segment{
			{Field: "a"},
			{Field: "b.c"},
			{Index: 0, IsIndex: true},
		}},
		{in: "$.a[x]", err: ErrMalformed},
		{in: "$.a[1", err: ErrMalformed},
		{in: "$.a..b", err: ErrMalformed},
		{in: "$.'open", err: ErrMalformed},
	}
	for _, tc := range tests {
		got, err := ParsePath(tc.in)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("%s: expected %v, got %v", tc.in, tc.err, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}
