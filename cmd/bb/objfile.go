package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bbcode-format/go-bbcode/ir"
	"github.com/bbcode-format/go-bbcode/parse"

	"github.com/scott-cotton/cli"
)

func getDocBytes(cc *cli.Context, path string) ([]byte, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getDoc(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := getDocBytes(cc, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}
