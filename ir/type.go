package ir

import "fmt"

type Type int

const (
	RootType Type = iota
	TagType
	ListItemType
	TextType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		RootType:     "Root",
		TagType:      "Tag",
		ListItemType: "ListItem",
		TextType:     "Text",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Root":     RootType,
		"Tag":      TagType,
		"ListItem": ListItemType,
		"Text":     TextType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		RootType,
		TagType,
		ListItemType,
		TextType,
	}
}

func (t Type) IsLeaf() bool {
	return t == TextType
}
