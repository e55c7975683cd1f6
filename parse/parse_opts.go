package parse

type parseOpts struct {
	tags          []string
	caseSensitive bool
	lenient       bool
}

type ParseOption func(*parseOpts)

// ParseTags sets the allow-list of recognized tag names.
func ParseTags(names ...string) ParseOption {
	return func(o *parseOpts) { o.tags = names }
}

// ParseCaseSensitive controls whether tag names are matched exactly.
// By default names are folded to lower case for comparison.
func ParseCaseSensitive(v bool) ParseOption {
	return func(o *parseOpts) { o.caseSensitive = v }
}

// ParseLenient converts the two structural failures, mismatched and
// unclosed tags, into recovery: the malformed region is demoted to
// literal text and the parse always returns a tree whose canonical
// form equals the input.
func ParseLenient(v bool) ParseOption {
	return func(o *parseOpts) { o.lenient = v }
}
