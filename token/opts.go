package token

type tokenOpts struct {
	tags          []string
	caseSensitive bool
}

type TokenOpt func(*tokenOpts)

// TokenTags sets the allow-list of tag names.  A bracket sequence
// whose name is not listed is folded back into the surrounding text.
func TokenTags(names ...string) TokenOpt {
	return func(o *tokenOpts) { o.tags = names }
}

// TokenCaseSensitive controls whether tag names are compared exactly
// or folded to lower case (the default).
func TokenCaseSensitive(v bool) TokenOpt {
	return func(o *tokenOpts) { o.caseSensitive = v }
}
