package bbcode

import (
	"strings"
	"testing"
)

func TestParseDefaults(t *testing.T) {
	for _, in := range []string{
		`[b]Hello[/b]`,
		`[quote="a b"]said[/quote]`,
		`[list][*]one[*]two[/list]`,
		`[color=red]r[/color]`,
	} {
		doc, err := Parse(in)
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", in, err)
			continue
		}
		if doc.String() != in {
			t.Errorf("round trip of %q produced %q", in, doc.String())
		}
	}
}

func TestPatch(t *testing.T) {
	doc, err := Parse(`[b]old[/b]`)
	if err != nil {
		t.Fatal(err)
	}
	patched, err := Patch(doc, []byte(`[
		{"op": "replace", "path": "/children/0/children/0/text", "value": "new"}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	if patched.String() != `[b]new[/b]` {
		t.Errorf("patched form %q", patched.String())
	}
	// the original tree is untouched
	if doc.String() != `[b]old[/b]` {
		t.Errorf("patch modified its input: %q", doc.String())
	}
}

func TestPatchBad(t *testing.T) {
	doc, err := Parse(`[b]x[/b]`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Patch(doc, []byte(`not json`)); err == nil {
		t.Errorf("expected decode error")
	}
	if _, err := Patch(doc, []byte(`[{"op": "remove", "path": "/nope/7"}]`)); err == nil {
		t.Errorf("expected apply error")
	}
}

func TestDiff(t *testing.T) {
	a, err := Parse(`[b]same[/b]`)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse(`[b]different[/b]`)
	if err != nil {
		t.Fatal(err)
	}
	if _, changed := Diff(a, a.Clone()); changed {
		t.Errorf("identical trees report a diff")
	}
	out, changed := Diff(a, b)
	if !changed {
		t.Errorf("differing trees report no diff")
	}
	if !strings.Contains(out, "different") {
		t.Errorf("diff output %q misses the new text", out)
	}
}
