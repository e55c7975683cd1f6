package bbcode

import (
	"github.com/bbcode-format/go-bbcode/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff compares the canonical forms of two trees.  It returns a
// terminal-friendly character diff and whether the forms differ.
func Diff(from, to *ir.Node) (string, bool) {
	return DiffStrings(from.String(), to.String())
}

// DiffStrings is Diff on raw text.
func DiffStrings(from, to string) (string, bool) {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, false)
	changed := false
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			changed = true
			break
		}
	}
	return diffCfg.DiffPrettyText(diffs), changed
}
