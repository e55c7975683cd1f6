// Package parse builds BBCode document trees from tokenized input.
//
// [Parse] is the entry point.  By default unbalanced tags are errors;
// [ParseLenient] recovers from them instead.
package parse
