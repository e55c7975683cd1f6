// Package query selects nodes from a document tree with expr
// expressions.
//
// An expression is evaluated once per node against an environment
// describing it:
//
//	kind     node kind: "Root", "Tag", "ListItem" or "Text"
//	name     tag name ("#text", "#document" and "*" for the others)
//	value    the =value of the tag, or ""
//	text     the text of a text leaf, or ""
//	attrs    map of the tag's attributes
//	children number of children
//
// For example `kind == "Tag" && name == "img" && attrs["src"] != ""`
// selects img tags carrying a src attribute.
package query

import (
	"fmt"

	"github.com/bbcode-format/go-bbcode/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

type Query struct {
	src string
	prg *vm.Program
}

func Compile(src string) (*Query, error) {
	prg, err := expr.Compile(src, expr.Env(env(nil)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrQuery, src, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string {
	return q.src
}

// Match evaluates the query against a single node.
func (q *Query) Match(n *ir.Node) (bool, error) {
	out, err := expr.Run(q.prg, env(n))
	if err != nil {
		return false, fmt.Errorf("%w: %q: %w", ErrQuery, q.src, err)
	}
	return out.(bool), nil
}

// Select walks the tree in document order and returns the nodes the
// query matches.
func (q *Query) Select(root *ir.Node) ([]*ir.Node, error) {
	var res []*ir.Node
	err := root.Visit(func(n *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return true, nil
		}
		ok, err := q.Match(n)
		if err != nil {
			return false, err
		}
		if ok {
			res = append(res, n)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func env(n *ir.Node) map[string]any {
	res := map[string]any{
		"kind":     "",
		"name":     "",
		"value":    "",
		"text":     "",
		"attrs":    map[string]string{},
		"children": 0,
	}
	if n == nil {
		return res
	}
	res["kind"] = n.Type.String()
	res["name"] = n.Name
	res["text"] = n.Text
	res["children"] = len(n.Children)
	if n.Value != nil {
		res["value"] = *n.Value
	}
	attrs := make(map[string]string, len(n.Attrs))
	for i := range n.Attrs {
		attrs[n.Attrs[i].Key] = n.Attrs[i].Val
	}
	res["attrs"] = attrs
	return res
}
