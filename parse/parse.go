package parse

import (
	"fmt"
	"strings"

	"github.com/bbcode-format/go-bbcode/debug"
	"github.com/bbcode-format/go-bbcode/ir"
	"github.com/bbcode-format/go-bbcode/token"
)

// listName is the tag whose closing auto-closes a trailing open item.
const listName = "list"

// Parse parses d into a document tree.  In strict mode (the default)
// it fails with *MismatchedClosingTagError or *UnclosedTagsError on
// malformed nesting; with ParseLenient(true) it always returns a tree
// whose String() equals d.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	return New(opts...).Parse(d)
}

// Parser is a reusable parse configuration.  It holds no per-call
// state, so one Parser may serve independent Parse calls.
type Parser struct {
	opts parseOpts
}

func New(opts ...ParseOption) *Parser {
	p := &Parser{}
	for _, o := range opts {
		o(&p.opts)
	}
	return p
}

func (p *Parser) Parse(d []byte) (*ir.Node, error) {
	toks := token.Tokenize(nil, d,
		token.TokenTags(p.opts.tags...),
		token.TokenCaseSensitive(p.opts.caseSensitive))
	st := &state{
		opts:  &p.opts,
		nodes: []*ir.Node{ir.Root()},
		poss:  []*token.Pos{nil},
	}
	for i := range toks {
		tok := &toks[i]
		switch tok.Type {
		case token.TText:
			st.add(st.top(), ir.Text(string(tok.Bytes)))
		case token.TItemEnd:
			st.foldItem()
		case token.TItem:
			st.push(ir.ListItem(), tok.Pos)
		case token.TOpen:
			st.push(tagNode(tok), tok.Pos)
		case token.TClose:
			if err := st.close(tok); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("%w: unexpected token %s", errInternal, tok.Info())
		}
	}
	if err := st.finish(); err != nil {
		return nil, err
	}
	return st.nodes[0], nil
}

func tagNode(tok *token.Token) *ir.Node {
	n := ir.Tag(tok.Name)
	if tok.Value != nil {
		n.WithValue(*tok.Value)
	}
	for _, a := range tok.Attrs {
		// Appended directly so duplicate keys survive and the
		// canonical form reproduces the input.
		n.Attrs = append(n.Attrs, ir.Attr{Key: a.Key, Val: a.Val})
	}
	return n
}

// state is the working stack of open containers, seeded with the
// document root.  poss holds the input position of each open tag for
// error reporting.
type state struct {
	opts  *parseOpts
	nodes []*ir.Node
	poss  []*token.Pos
}

func (st *state) top() *ir.Node {
	return st.nodes[len(st.nodes)-1]
}

func (st *state) push(n *ir.Node, pos *token.Pos) {
	st.nodes = append(st.nodes, n)
	st.poss = append(st.poss, pos)
}

func (st *state) pop() (*ir.Node, *token.Pos) {
	n, pos := st.nodes[len(st.nodes)-1], st.poss[len(st.poss)-1]
	st.nodes = st.nodes[:len(st.nodes)-1]
	st.poss = st.poss[:len(st.poss)-1]
	return n, pos
}

func (st *state) add(to, child *ir.Node) {
	if err := to.AddChild(child); err != nil {
		panic(fmt.Errorf("%w: %w", errInternal, err))
	}
}

// foldItem closes the open list item on top of the stack, if any,
// appending it to the container beneath.
func (st *state) foldItem() {
	if st.top().Type != ir.ListItemType {
		return
	}
	item, _ := st.pop()
	st.add(st.top(), item)
}

func (st *state) norm(v string) string {
	if st.opts.caseSensitive {
		return v
	}
	return strings.ToLower(v)
}

func (st *state) close(tok *token.Token) error {
	name := st.norm(tok.Name)
	if name == listName {
		st.foldItem()
	}
	popped, _ := st.pop()
	if st.norm(popped.Name) == name {
		st.add(st.top(), popped)
		return nil
	}
	if !st.opts.lenient {
		return &MismatchedClosingTagError{
			Expected: popped.Name,
			Found:    tok.Name,
			Pos:      tok.Pos,
		}
	}
	// Lenient recovery: put the popped frame back and look deeper in
	// the stack for a match.  Frames above the match are demoted to
	// the literal text they were parsed from.
	st.push(popped, nil)
	match := -1
	for i := len(st.nodes) - 1; i > 0; i-- {
		if st.norm(st.nodes[i].Name) == name {
			match = i
			break
		}
	}
	if match == -1 {
		// No open tag matches anywhere: the closing tag itself is
		// text and nothing is discarded.
		if debug.Lenient() {
			debug.Logf("lenient: close %q matches nothing, kept as text\n", tok.Name)
		}
		st.add(st.top(), ir.Text(string(tok.Bytes)))
		return nil
	}
	for len(st.nodes)-1 > match {
		frame, _ := st.pop()
		if debug.Lenient() {
			debug.Logf("lenient: flattening [%s] into its parent\n", frame.Name)
		}
		st.add(st.top(), ir.Text(flatten(frame)))
	}
	frame, _ := st.pop()
	st.add(st.top(), frame)
	return nil
}

func (st *state) finish() error {
	if len(st.nodes) == 1 {
		return nil
	}
	if !st.opts.lenient {
		return &UnclosedTagsError{
			Count:     len(st.nodes) - 1,
			Innermost: st.top().Name,
			Pos:       st.poss[len(st.poss)-1],
		}
	}
	for len(st.nodes) > 1 {
		frame, _ := st.pop()
		if debug.Lenient() {
			debug.Logf("lenient: unclosed [%s] flattened at end of input\n", frame.Name)
		}
		st.add(st.top(), ir.Text(flatten(frame)))
	}
	return nil
}

// flatten renders an open frame back to text: its opening tag
// followed by the canonical form of the children parsed so far.
func flatten(n *ir.Node) string {
	var b strings.Builder
	b.WriteString(n.StartTag())
	for _, c := range n.Children {
		b.WriteString(c.String())
	}
	return b.String()
}
