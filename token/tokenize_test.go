package token

import (
	"bytes"
	"testing"
)

var testTags = []string{"b", "i", "code", "quote", "list", "*", "img", "url"}

type tokTest struct {
	in   string
	toks []Token
}

func TestTokenize(t *testing.T) {
	sp := func(v string) *string { return &v }
	tts := []tokTest{
		{
			in:   "hello",
			toks: []Token{{Type: TText, Bytes: []byte("hello")}},
		},
		{
			in: "[b]X[/b]",
			toks: []Token{
				{Type: TOpen, Name: "b", Bytes: []byte("[b]")},
				{Type: TText, Bytes: []byte("X")},
				{Type: TClose, Name: "b", Bytes: []byte("[/b]")},
			},
		},
		{
			in: "[url=http://x]y[/url]",
			toks: []Token{
				{Type: TOpen, Name: "url", Value: sp("http://x"), Bytes: []byte("[url=http://x]")},
				{Type: TText, Bytes: []byte("y")},
				{Type: TClose, Name: "url", Bytes: []byte("[/url]")},
			},
		},
		{
			// quotes keep a spaced value in one token and survive
			// verbatim in the value
			in: "[quote='some one']q[/quote]",
			toks: []Token{
				{Type: TOpen, Name: "quote", Value: sp("'some one'"), Bytes: []byte("[quote='some one']")},
				{Type: TText, Bytes: []byte("q")},
				{Type: TClose, Name: "quote", Bytes: []byte("[/quote]")},
			},
		},
		{
			in: "[img align='right' alt=x]",
			toks: []Token{
				{
					Type:  TOpen,
					Name:  "img",
					Attrs: []Attr{{Key: "align", Val: "'right'"}, {Key: "alt", Val: "x"}},
					Bytes: []byte("[img align='right' alt=x]"),
				},
			},
		},
		{
			in: "[list][*]a[*]b[/list]",
			toks: []Token{
				{Type: TOpen, Name: "list", Bytes: []byte("[list]")},
				{Type: TItemEnd},
				{Type: TItem, Bytes: []byte("[*]")},
				{Type: TText, Bytes: []byte("a")},
				{Type: TItemEnd},
				{Type: TItem, Bytes: []byte("[*]")},
				{Type: TText, Bytes: []byte("b")},
				{Type: TClose, Name: "list", Bytes: []byte("[/list]")},
			},
		},
		{
			// inside [code] only [/code] is recognized
			in: "[code][b]hi[/b][/code]",
			toks: []Token{
				{Type: TOpen, Name: "code", Bytes: []byte("[code]")},
				{Type: TText, Bytes: []byte("[b]hi[/b]")},
				{Type: TClose, Name: "code", Bytes: []byte("[/code]")},
			},
		},
		{
			// unknown name folds back to text, terminator included
			in: "a[z]b",
			toks: []Token{
				{Type: TText, Bytes: []byte("a")},
				{Type: TText, Bytes: []byte("[z]b")},
			},
		},
		{
			// unterminated sequence at end of input
			in: "abc[b",
			toks: []Token{
				{Type: TText, Bytes: []byte("abc")},
				{Type: TText, Bytes: []byte("[b")},
			},
		},
		{
			// names keep their input case under folding
			in: "[B]x[/b]",
			toks: []Token{
				{Type: TOpen, Name: "B", Bytes: []byte("[B]")},
				{Type: TText, Bytes: []byte("x")},
				{Type: TClose, Name: "b", Bytes: []byte("[/b]")},
			},
		},
	}
	for _, tt := range tts {
		toks := Tokenize(nil, []byte(tt.in), TokenTags(testTags...))
		if len(toks) != len(tt.toks) {
			t.Errorf("%q: got %d tokens, want %d", tt.in, len(toks), len(tt.toks))
			continue
		}
		for i := range toks {
			got, want := &toks[i], &tt.toks[i]
			if got.Type != want.Type {
				t.Errorf("%q token %d: type %s, want %s", tt.in, i, got.Type, want.Type)
			}
			if string(got.Bytes) != string(want.Bytes) {
				t.Errorf("%q token %d: bytes %q, want %q", tt.in, i, got.Bytes, want.Bytes)
			}
			if got.Name != want.Name {
				t.Errorf("%q token %d: name %q, want %q", tt.in, i, got.Name, want.Name)
			}
			if (got.Value == nil) != (want.Value == nil) {
				t.Errorf("%q token %d: value %v, want %v", tt.in, i, got.Value, want.Value)
			} else if got.Value != nil && *got.Value != *want.Value {
				t.Errorf("%q token %d: value %q, want %q", tt.in, i, *got.Value, *want.Value)
			}
			if len(got.Attrs) != len(want.Attrs) {
				t.Errorf("%q token %d: %d attrs, want %d", tt.in, i, len(got.Attrs), len(want.Attrs))
				continue
			}
			for j := range got.Attrs {
				if got.Attrs[j] != want.Attrs[j] {
					t.Errorf("%q token %d attr %d: %v, want %v", tt.in, i, j, got.Attrs[j], want.Attrs[j])
				}
			}
		}
	}
}

// the raw bytes of any token stream concatenate back to the input
func TestTokenizeLossless(t *testing.T) {
	for _, in := range []string{
		"",
		"hello",
		"[b]X[/b]",
		"[b]X",
		"[/b]",
		"a[z]b[",
		"[*junk]",
		"[list][*]a[*]b[/list]",
		"[code][b]x",
		"[img align='right' alt='a b']",
		"[url=\"http://x y\"]z[/url]",
		"[b=weird attr=]t[/b]",
		"[/b=x]oddball[/b]",
	} {
		toks := Tokenize(nil, []byte(in), TokenTags(testTags...))
		var buf bytes.Buffer
		for i := range toks {
			buf.Write(toks[i].Bytes)
		}
		if buf.String() != in {
			t.Errorf("tokens of %q concatenate to %q", in, buf.String())
		}
	}
}

// a rejected [*... sequence still marks a list item boundary
func TestTokenizeItemEnd(t *testing.T) {
	toks := Tokenize(nil, []byte("[*]a[*junk]b"), TokenTags(testTags...))
	types := []TokenType{TItemEnd, TItem, TText, TItemEnd, TText}
	if len(toks) != len(types) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(types))
	}
	for i := range toks {
		if toks[i].Type != types[i] {
			t.Errorf("token %d: %s, want %s", i, toks[i].Type, types[i])
		}
	}
	if got := string(toks[4].Bytes); got != "[*junk]b" {
		t.Errorf("rejected item text %q, want %q", got, "[*junk]b")
	}
}

func TestTokenizeCaseSensitive(t *testing.T) {
	toks := Tokenize(nil, []byte("[B]x[/B]"),
		TokenTags(testTags...), TokenCaseSensitive(true))
	if len(toks) != 1 || toks[0].Type != TText {
		t.Fatalf("case sensitive [B] should be text, got %d tokens", len(toks))
	}
	if string(toks[0].Bytes) != "[B]x[/B]" {
		t.Errorf("got %q", toks[0].Bytes)
	}
}

func TestPos(t *testing.T) {
	toks := Tokenize(nil, []byte("line one\n[b]x[/b]"), TokenTags(testTags...))
	if len(toks) != 4 {
		t.Fatalf("got %d tokens", len(toks))
	}
	line, col := toks[1].Pos.LineCol()
	if line != 1 || col != 0 {
		t.Errorf("open tag at line=%d col=%d, want line=1 col=0", line, col)
	}
}
