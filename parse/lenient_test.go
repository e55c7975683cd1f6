package parse

import (
	"errors"
	"testing"
)

func TestStrictUnclosed(t *testing.T) {
	_, err := Parse([]byte(`[b]Hello`), ParseTags(testTags...))
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, ErrParse) {
		t.Errorf("error %v does not wrap ErrParse", err)
	}
	unclosed := &UnclosedTagsError{}
	if !errors.As(err, &unclosed) {
		t.Fatalf("error %v is not UnclosedTagsError", err)
	}
	if unclosed.Count != 1 || unclosed.Innermost != "b" {
		t.Errorf("count=%d innermost=%q, want 1 and b", unclosed.Count, unclosed.Innermost)
	}
	if unclosed.Pos == nil {
		t.Errorf("missing position")
	}
}

func TestStrictMismatch(t *testing.T) {
	_, err := Parse([]byte(`[b]X[/i]`), ParseTags(testTags...))
	if err == nil {
		t.Fatal("expected error")
	}
	mismatch := &MismatchedClosingTagError{}
	if !errors.As(err, &mismatch) {
		t.Fatalf("error %v is not MismatchedClosingTagError", err)
	}
	if mismatch.Expected != "b" || mismatch.Found != "i" {
		t.Errorf("expected=%q found=%q, want b and i", mismatch.Expected, mismatch.Found)
	}
	if mismatch.Pos == nil {
		t.Errorf("missing position")
	}
}

// lenient parses always produce a tree whose text form is the input
func TestLenientRoundTrip(t *testing.T) {
	pts := []string{
		`[b]Hello`,
		`[b]X[/i]`,
		`[b][i]x[/b]`,
		`[/b]x`,
		`[b]x[/i]more[/b]`,
		`[list][*]A[*]B`,
		`[quote][b]deep[i]er`,
	}
	for _, in := range pts {
		doc, err := Parse([]byte(in), ParseTags(testTags...), ParseLenient(true))
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", in, err)
			continue
		}
		if out := doc.String(); out != in {
			t.Errorf("lenient round trip of %q produced %q", in, out)
		}
	}
}

func TestLenientFlattening(t *testing.T) {
	// closing [/b] skips the open [i]: the [i] frame is demoted to
	// text inside b
	doc, err := Parse([]byte(`[b][i]x[/b]`), ParseTags(testTags...), ParseLenient(true))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Children) != 1 {
		t.Fatalf("root has %d children, want 1", len(doc.Children))
	}
	b := doc.Children[0]
	if b.Name != "b" {
		t.Fatalf("kept tag %q, want b", b.Name)
	}
	if len(b.Children) != 1 || b.Children[0].Text != "[i]x" {
		t.Errorf("b children %v, want single text [i]x", b.Children)
	}
}

func TestLenientNoMatch(t *testing.T) {
	// a closing tag matching nothing open becomes text; the open [b]
	// stays open until the end of input
	doc, err := Parse([]byte(`[b]x[/i]more[/b]`), ParseTags(testTags...), ParseLenient(true))
	if err != nil {
		t.Fatal(err)
	}
	b := doc.Children[0]
	if len(b.Children) != 1 || b.Children[0].Text != "x[/i]more" {
		t.Errorf("b children %v, want single text x[/i]more", b.Children)
	}
}

func TestLenientUnclosedAtEOF(t *testing.T) {
	doc, err := Parse([]byte(`say [b]loud`), ParseTags(testTags...), ParseLenient(true))
	if err != nil {
		t.Fatal(err)
	}
	// the unclosed frame is flattened into the root as text
	if len(doc.Children) != 1 || doc.Children[0].Type.String() != "Text" {
		t.Fatalf("root children %v, want single text node", doc.Children)
	}
	if doc.Children[0].Text != "say [b]loud" {
		t.Errorf("flattened text %q", doc.Children[0].Text)
	}
}
