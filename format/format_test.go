package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		err  error
	}{
		{in: "j", want: JSONFormat},
		{in: "json", want: JSONFormat},
		{in: "y", want: YAMLFormat},
		{in: "yaml", want: YAMLFormat},
		{in: "YML", want: YAMLFormat},
		{in: "tony", err: ErrBadFormat},
		{in: "", err: ErrBadFormat},
	}
	for _, tc := range tests {
		got, err := ParseFormat(tc.in)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("%q: expected %v, got %v", tc.in, tc.err, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("%q: got %s, %v", tc.in, got, err)
		}
	}
}

func TestFormatText(t *testing.T) {
	for _, f := range Formats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("%s came back as %s", f, g)
		}
		if f.Suffix() != "."+f.String() {
			t.Errorf("%s suffix %s", f, f.Suffix())
		}
	}
	if _, err := Format(7).MarshalText(); err == nil {
		t.Errorf("expected error for unknown format")
	}
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		ok   bool
	}{
		{path: "a/b.json", want: JSONFormat, ok: true},
		{path: "b.yaml", want: YAMLFormat, ok: true},
		{path: "b.yml", want: YAMLFormat, ok: true},
		{path: "b.y", ok: false},
		{path: "b.txt", ok: false},
		{path: "b", ok: false},
	}
	for _, tc := range tests {
		got, ok := FromPath(tc.path)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("%s: got %s, %t", tc.path, got, ok)
		}
	}
	if Format(7).Suffix() != "" {
		t.Errorf("unknown format has a suffix")
	}
}
