package encode

import (
	"bytes"
	"testing"

	"github.com/bbcode-format/go-bbcode/ir"
	"github.com/bbcode-format/go-bbcode/parse"
)

var testTags = []string{"b", "i", "list", "*", "img", "url"}

func testDoc(t *testing.T, in string) *ir.Node {
	t.Helper()
	doc, err := parse.Parse([]byte(in), parse.ParseTags(testTags...))
	if err != nil {
		t.Fatalf("# doc\n%s\n# error %v", in, err)
	}
	return doc
}

func TestEncodeCanonical(t *testing.T) {
	for _, in := range []string{
		`hello`,
		`[b]Hello[/b]`,
		`[img align='right']x[/img]`,
		`[list][*]A[*]B[/list]`,
	} {
		doc := testDoc(t, in)
		var buf bytes.Buffer
		if err := Encode(doc, &buf); err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if buf.String() != in {
			t.Errorf("encoded %q, want %q", buf.String(), in)
		}
		if MustString(doc) != in {
			t.Errorf("MustString %q, want %q", MustString(doc), in)
		}
	}
}

func TestEncodeTree(t *testing.T) {
	doc := testDoc(t, `[url=http://x]y[/url]`)
	var buf bytes.Buffer
	if err := Encode(doc, &buf, EncodeTree(true)); err != nil {
		t.Fatal(err)
	}
	want := "Root\n  Tag url=http://x\n    Text \"y\"\n"
	if buf.String() != want {
		t.Errorf("tree dump:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestEncodeTreeDepth(t *testing.T) {
	doc := testDoc(t, `[b][i]x[/i][/b]`)
	var buf bytes.Buffer
	if err := Encode(doc, &buf, EncodeTree(true), Depth(1)); err != nil {
		t.Fatal(err)
	}
	want := "Root\n  Tag b\n"
	if buf.String() != want {
		t.Errorf("depth-limited dump:\n%s\nwant:\n%s", buf.String(), want)
	}
}

// colored output strips back to the plain form
func TestEncodeColors(t *testing.T) {
	doc := testDoc(t, `[b]x[/b]`)
	var buf bytes.Buffer
	if err := Encode(doc, &buf, EncodeColors(NewColors())); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("x")) {
		t.Errorf("colored output lost content: %q", buf.String())
	}
}
