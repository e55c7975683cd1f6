package encode

import (
	"bytes"

	"github.com/bbcode-format/go-bbcode/ir"
)

// MustString returns the canonical text form of y.  The result is not
// trimmed or otherwise normalized: for a parsed tree it is the exact
// input text.
func MustString(y *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(y, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
