// Package debug provides environment-gated debug logging.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tokens  bool
	Lenient bool
	LSP     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tokens = boolEnv("BBCODE_DEBUG_TOKENS")
	d.Lenient = boolEnv("BBCODE_DEBUG_LENIENT")
	d.LSP = boolEnv("BBCODE_DEBUG_LSP")
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
func Lenient() bool {
	return d.Lenient
}
func LSP() bool {
	return d.LSP
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
