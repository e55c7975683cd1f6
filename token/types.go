package token

import "fmt"

type TokenType int

const (
	// TText is a literal character run, including bracket sequences
	// whose name was not recognized.
	TText TokenType = iota
	// TOpen is a recognized opening tag, possibly with a value and
	// attributes.
	TOpen
	// TClose is a recognized closing tag.
	TClose
	// TItem is a [*] list item marker.
	TItem
	// TItemEnd marks a list-item boundary: it is emitted before the
	// token produced by any non-closing bracket sequence whose name
	// began with '*', whether or not that sequence was recognized.
	// It carries no bytes.
	TItemEnd
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TText:    "TText",
		TOpen:    "TOpen",
		TClose:   "TClose",
		TItem:    "TItem",
		TItemEnd: "TItemEnd",
	}[t]
}

// Attr is one key=value attribute of an opening tag, in input order.
type Attr struct {
	Key, Val string
}

// Token is one lexical element of a BBCode document.  Bytes holds the
// raw input consumed by the token; the concatenation of Bytes over a
// token stream equals the tokenized input.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte

	// Name, Value and Attrs are set for TOpen; Name for TClose.
	// The name keeps the case it had in the input.
	Name  string
	Value *string
	Attrs []Attr
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	return string(t.Bytes)
}
