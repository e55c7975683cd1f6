package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bbcode-format/go-bbcode/ir"
)

type EncState struct {
	depth  int
	indent int
	tree   bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w.  By default the output is the canonical
// text form, byte-identical to the input the tree was parsed from.
// EncodeTree switches to an indented node dump, and EncodeColors adds
// terminal colors to either form.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
		depth:  -1,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.tree {
		return encodeTree(node, w, es, 0)
	}
	return encode(node, w, es)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func (es *EncState) color(t ir.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

func encode(n *ir.Node, w io.Writer, es *EncState) error {
	switch n.Type {
	case ir.TextType:
		return writeString(w, es.color(ir.TextType, ValueColor, n.Text))
	case ir.RootType:
		return encodeChildren(n, w, es)
	case ir.ListItemType:
		if err := writeString(w, es.color(ir.ListItemType, TagColor, "[*]")); err != nil {
			return err
		}
		return encodeChildren(n, w, es)
	case ir.TagType:
		if err := encodeStart(n, w, es); err != nil {
			return err
		}
		if err := encodeChildren(n, w, es); err != nil {
			return err
		}
		return writeString(w, es.color(ir.TagType, TagColor, "[/"+n.Name+"]"))
	default:
		return fmt.Errorf("%w: %s", ErrEncoding, n.Type)
	}
}

func encodeChildren(n *ir.Node, w io.Writer, es *EncState) error {
	for _, c := range n.Children {
		if err := encode(c, w, es); err != nil {
			return err
		}
	}
	return nil
}

func encodeStart(n *ir.Node, w io.Writer, es *EncState) error {
	var b strings.Builder
	b.WriteString(es.color(ir.TagType, TagColor, "["+n.Name))
	if n.Value != nil {
		b.WriteString(es.color(ir.TagType, SepColor, "="))
		b.WriteString(es.color(ir.TagType, ValueColor, *n.Value))
	}
	for i := range n.Attrs {
		b.WriteString(" ")
		b.WriteString(es.color(ir.TagType, FieldColor, n.Attrs[i].Key))
		b.WriteString(es.color(ir.TagType, SepColor, "="))
		b.WriteString(es.color(ir.TagType, ValueColor, n.Attrs[i].Val))
	}
	b.WriteString(es.color(ir.TagType, TagColor, "]"))
	return writeString(w, b.String())
}

func encodeTree(n *ir.Node, w io.Writer, es *EncState, depth int) error {
	pad := strings.Repeat(strings.Repeat(" ", es.indent), depth)
	if err := writeString(w, pad+treeLine(n, es)+"\n"); err != nil {
		return err
	}
	if es.depth >= 0 && depth >= es.depth {
		return nil
	}
	for _, c := range n.Children {
		if err := encodeTree(c, w, es, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func treeLine(n *ir.Node, es *EncState) string {
	var b strings.Builder
	b.WriteString(es.color(n.Type, TagColor, n.Type.String()))
	switch n.Type {
	case ir.TextType:
		b.WriteString(" ")
		b.WriteString(es.color(ir.TextType, ValueColor, strconv.Quote(n.Text)))
	case ir.TagType:
		b.WriteString(" ")
		b.WriteString(es.color(ir.TagType, FieldColor, n.Name))
		if n.Value != nil {
			b.WriteString(es.color(ir.TagType, SepColor, "="))
			b.WriteString(es.color(ir.TagType, ValueColor, *n.Value))
		}
		for i := range n.Attrs {
			b.WriteString(" ")
			b.WriteString(es.color(ir.TagType, FieldColor, n.Attrs[i].Key))
			b.WriteString(es.color(ir.TagType, SepColor, "="))
			b.WriteString(es.color(ir.TagType, ValueColor, n.Attrs[i].Val))
		}
	}
	return b.String()
}
