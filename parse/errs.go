package parse

import (
	"errors"
	"fmt"

	"github.com/bbcode-format/go-bbcode/token"
)

var (
	errInternal = errors.New("internal parse error")
	ErrParse    = errors.New("parse error")
)

// MismatchedClosingTagError is returned by strict parses when a
// closing tag does not match the innermost open tag.
type MismatchedClosingTagError struct {
	Expected, Found string
	Pos             *token.Pos
}

func (e *MismatchedClosingTagError) Unwrap() error {
	return ErrParse
}

func (e *MismatchedClosingTagError) Error() string {
	if e.Pos == nil {
		return fmt.Sprintf("%s: mismatched closing tag: expected [/%s], found [/%s]",
			ErrParse, e.Expected, e.Found)
	}
	return fmt.Sprintf("%s: mismatched closing tag: expected [/%s], found [/%s] %s",
		ErrParse, e.Expected, e.Found, e.Pos)
}

// UnclosedTagsError is returned by strict parses when input ends with
// open tags still on the stack.
type UnclosedTagsError struct {
	Count     int
	Innermost string
	Pos       *token.Pos
}

func (e *UnclosedTagsError) Unwrap() error {
	return ErrParse
}

func (e *UnclosedTagsError) Error() string {
	if e.Pos == nil {
		return fmt.Sprintf("%s: %d unclosed tag(s), innermost [%s]",
			ErrParse, e.Count, e.Innermost)
	}
	return fmt.Sprintf("%s: %d unclosed tag(s), innermost [%s] %s",
		ErrParse, e.Count, e.Innermost, e.Pos)
}
