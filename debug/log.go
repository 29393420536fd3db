package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/simplejson/ir"
)

// Logf writes a debug line to stderr. Nodes are shown with their path,
// decoded JSON values are indented.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			if x == nil {
				args[i] = "<nil>"
				continue
			}
			args[i] = x.Path() + " " + x.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
