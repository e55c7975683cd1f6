package query

import (
	"errors"
	"testing"

	"github.com/bbcode-format/go-bbcode/parse"
)

func TestQuerySelect(t *testing.T) {
	doc, err := parse.Parse(
		[]byte(`[b]x[/b][img src=a.png]p[/img][img alt=noimg]q[/img]`),
		parse.ParseTags("b", "img"))
	if err != nil {
		t.Fatal(err)
	}
	qts := []struct {
		q string
		n int
	}{
		{`kind == "Tag"`, 3},
		{`kind == "Tag" && name == "img"`, 2},
		{`kind == "Tag" && name == "img" && attrs["src"] != ""`, 1},
		{`kind == "Text" && text contains "q"`, 1},
		{`children > 0`, 4},
		{`name == "nosuch"`, 0},
	}
	for _, qt := range qts {
		q, err := Compile(qt.q)
		if err != nil {
			t.Errorf("%q: %v", qt.q, err)
			continue
		}
		res, err := q.Select(doc)
		if err != nil {
			t.Errorf("%q: %v", qt.q, err)
			continue
		}
		if len(res) != qt.n {
			t.Errorf("%q selected %d nodes, want %d", qt.q, len(res), qt.n)
		}
	}
}

func TestQueryMatch(t *testing.T) {
	doc, err := parse.Parse([]byte(`[b=v]x[/b]`), parse.ParseTags("b"))
	if err != nil {
		t.Fatal(err)
	}
	q, err := Compile(`value == "v"`)
	if err != nil {
		t.Fatal(err)
	}
	ok, err := q.Match(doc.Children[0])
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Errorf("%s did not match b=v", q)
	}
}

func TestCompileError(t *testing.T) {
	_, err := Compile(`name ==`)
	if err == nil {
		t.Fatal("expected compile error")
	}
	if !errors.Is(err, ErrQuery) {
		t.Errorf("error %v does not wrap ErrQuery", err)
	}
	// non-boolean expressions are rejected at compile time
	if _, err := Compile(`name`); err == nil {
		t.Errorf("expected type error for non-boolean query")
	}
}
