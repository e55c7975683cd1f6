package main

import (
	"fmt"
	"io"

	"github.com/bbcode-format/go-bbcode/encode"
	"github.com/bbcode-format/go-bbcode/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	pOpts, err := cfg.parseOpts()
	if err != nil {
		return err
	}
	for i, file := range args {
		if err := viewFile(cfg, cc, cc.Out, file, pOpts); err != nil {
			return err
		}
		if i < len(args)-1 {
			cc.Out.Write([]byte("\n"))
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, cc *cli.Context, w io.Writer, file string, pOpts []parse.ParseOption) error {
	doc, err := getDoc(cc, file, pOpts...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	if err := encode.Encode(doc, w, cfg.encOpts(w)...); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	return nil
}
