package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Encode bool
	Cursor bool
	Match  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("SJSON_DEBUG_PARSE")
	d.Encode = boolEnv("SJSON_DEBUG_ENCODE")
	d.Cursor = boolEnv("SJSON_DEBUG_CURSOR")
	d.Match = boolEnv("SJSON_DEBUG_MATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Cursor() bool {
	return d.Cursor
}
func Match() bool {
	return d.Match
}

// LogAny writes v to stderr as one line of JSON.
func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(append(d, '\n'))
}
