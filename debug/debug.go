package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens bool
	Parse  bool
	Encode bool
	Patch  bool
	Diff   bool
	Query  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("EON_DEBUG_TOKENS")
	d.Parse = boolEnv("EON_DEBUG_PARSE")
	d.Encode = boolEnv("EON_DEBUG_ENCODE")
	d.Patch = boolEnv("EON_DEBUG_PATCH")
	d.Diff = boolEnv("EON_DEBUG_DIFF")
	d.Query = boolEnv("EON_DEBUG_QUERY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Tokens() bool {
	return d.Tokens
}
func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}
func Query() bool {
	return d.Query
}

// Logf writes a debug line to stderr.
func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "eon: "+format+"\n", args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(append(d, '\n'))
}
