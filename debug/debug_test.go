package debug

import "testing"

func TestBoolEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"1", true},
		{"true", true},
		{"false", false},
		{"yes", false},
	}
	for _, tc := range tests {
		t.Setenv("SJSON_DEBUG_TEST", tc.val)
		if got := boolEnv("SJSON_DEBUG_TEST"); got != tc.want {
			t.Errorf("%q: got %t", tc.val, got)
		}
	}
}
