package ir

import "strings"

// Names of the nodes which do not correspond to a bracket tag.  The
// sentinels contain characters which terminate a tag name during
// scanning, so no parsed tag can collide with them.
const (
	RootName = "#document"
	TextName = "#text"
	ItemName = "*"
)

// Attr is one key=value pair of a tag.  Values keep whatever quoting
// the input used, so re-rendering reproduces the original text.
type Attr struct {
	Key string `json:"key"`
	Val string `json:"val"`
}

// Node is one node of a parsed document.  The Type field determines
// which of the remaining fields are meaningful.  Nodes own their
// children exclusively: there are no parent pointers and AddChild
// stores a deep copy of its argument.
type Node struct {
	Type Type `json:"type"`

	// Name is the tag name as it appeared in the input for TagType,
	// and a fixed sentinel otherwise.
	Name  string  `json:"name"`
	Value *string `json:"value,omitempty"`
	Attrs []Attr  `json:"attrs,omitempty"`

	Text string `json:"text,omitempty"`

	Children []*Node `json:"children,omitempty"`
}

func Root() *Node {
	return &Node{Type: RootType, Name: RootName}
}

func Tag(name string) *Node {
	return &Node{Type: TagType, Name: name}
}

func ListItem() *Node {
	return &Node{Type: ListItemType, Name: ItemName}
}

func Text(text string) *Node {
	return &Node{Type: TextType, Name: TextName, Text: text}
}

func (n *Node) WithValue(v string) *Node {
	n.Value = &v
	return n
}

// SetAttr appends the pair to the attribute list, replacing the value
// of an existing key.  Insertion order is preserved.
func (n *Node) SetAttr(key, val string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			n.Attrs[i].Val = val
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, Val: val})
	return n
}

func (n *Node) GetAttr(key string) (string, bool) {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			return n.Attrs[i].Val, true
		}
	}
	return "", false
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Type = n.Type
	dst.Name = n.Name
	dst.Text = n.Text
	if n.Value != nil {
		v := *n.Value
		dst.Value = &v
	}
	if n.Attrs != nil {
		dst.Attrs = make([]Attr, len(n.Attrs))
		copy(dst.Attrs, n.Attrs)
	}
	if n.Children != nil {
		dst.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			dstI := &Node{}
			c.CloneTo(dstI)
			dst.Children[i] = dstI
		}
	}
	return dst
}

// AddChild appends a deep copy of child.  A text child is merged into
// an immediately preceding text sibling, so a container never holds
// two adjacent text nodes.
func (n *Node) AddChild(child *Node) error {
	if n.Type.IsLeaf() {
		return ErrLeafChild
	}
	if child.Type == TextType && len(n.Children) > 0 {
		last := n.Children[len(n.Children)-1]
		if last.Type == TextType {
			last.Text += child.Text
			return nil
		}
	}
	n.Children = append(n.Children, child.Clone())
	return nil
}

// StartTag renders the opening bracket sequence of the node without
// its children or closing tag.  Root and text nodes render nothing.
func (n *Node) StartTag() string {
	switch n.Type {
	case ListItemType:
		return "[*]"
	case TagType:
		var b strings.Builder
		b.WriteByte('[')
		b.WriteString(n.Name)
		if n.Value != nil {
			b.WriteByte('=')
			b.WriteString(*n.Value)
		}
		for i := range n.Attrs {
			b.WriteByte(' ')
			b.WriteString(n.Attrs[i].Key)
			b.WriteByte('=')
			b.WriteString(n.Attrs[i].Val)
		}
		b.WriteByte(']')
		return b.String()
	default:
		return ""
	}
}

// String renders the canonical text form.  For trees built by parse
// this equals the input that produced them.
func (n *Node) String() string {
	var b strings.Builder
	n.render(&b)
	return b.String()
}

func (n *Node) render(b *strings.Builder) {
	switch n.Type {
	case TextType:
		b.WriteString(n.Text)
	case RootType, ListItemType:
		b.WriteString(n.StartTag())
		for _, c := range n.Children {
			c.render(b)
		}
	case TagType:
		b.WriteString(n.StartTag())
		for _, c := range n.Children {
			c.render(b)
		}
		b.WriteString("[/")
		b.WriteString(n.Name)
		b.WriteByte(']')
	}
}

// Visit calls f on n and, if f returns true on the pre-order call,
// recursively on its children.  f is called again with isPost true
// after the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
