// Package bbcode parses BBCode text into trees and renders them back.
//
// The heavy lifting lives in the subpackages: token scans text, parse
// builds ir trees, encode renders them, query selects nodes.  This
// package provides a ready-to-use default configuration plus tree
// diff and patch helpers.
package bbcode

import (
	"github.com/bbcode-format/go-bbcode/ir"
	"github.com/bbcode-format/go-bbcode/parse"
)

// DefaultTags returns the allow-list used by Parse: the common forum
// tags.  The "*" entry enables [*] list items.
func DefaultTags() []string {
	return []string{
		"b", "i", "u", "s",
		"code", "quote",
		"list", "*",
		"img", "url",
		"color", "size", "center",
	}
}

// Parse parses text with the default configuration: the DefaultTags
// allow-list, case-insensitive, strict.
func Parse(text string) (*ir.Node, error) {
	return parse.Parse([]byte(text), parse.ParseTags(DefaultTags()...))
}
