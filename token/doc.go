// Package token provides tokenization support for BBCode text.
//
// [Tokenize] is a function for tokenizing bytes.  It never fails: any
// bracketed run that does not form a recognized tag is emitted as
// ordinary text, byte for byte.
package token
