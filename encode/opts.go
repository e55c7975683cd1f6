package encode

type EncodeOption func(*EncState)

// EncodeTree switches from canonical text output to an indented node
// dump.
func EncodeTree(v bool) EncodeOption {
	return func(es *EncState) { es.tree = v }
}

// Depth limits how deep the tree dump descends; negative means no
// limit.
func Depth(n int) EncodeOption {
	return func(es *EncState) { es.depth = n }
}

func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
