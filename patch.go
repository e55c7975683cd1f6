package bbcode

import (
	"encoding/json"
	"fmt"

	"github.com/bbcode-format/go-bbcode/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch applies an RFC 6902 JSON patch to the JSON form of the tree
// and decodes the result back into a tree.  The document is not
// modified; the patched tree is returned.
func Patch(doc *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	d, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	res := &ir.Node{}
	if err := json.Unmarshal(out, res); err != nil {
		return nil, fmt.Errorf("decoding patched tree: %w", err)
	}
	return res, nil
}
