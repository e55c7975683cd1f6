package main

import (
	"fmt"
	"io"

	"github.com/bbcode-format/go-bbcode/encode"
	"github.com/bbcode-format/go-bbcode/parse"
	"github.com/bbcode-format/go-bbcode/query"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an expression", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	pOpts, err := cfg.parseOpts()
	if err != nil {
		return err
	}
	for _, file := range args {
		if err := getFile(cfg, cc, cc.Out, file, q, pOpts); err != nil {
			return fmt.Errorf("error querying %s: %w", file, err)
		}
	}
	return nil
}

func getFile(cfg *GetConfig, cc *cli.Context, w io.Writer, file string, q *query.Query, pOpts []parse.ParseOption) error {
	doc, err := getDoc(cc, file, pOpts...)
	if err != nil {
		return err
	}
	matches, err := q.Select(doc)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(w)
	if cfg.Tree {
		opts = append(opts, encode.EncodeTree(true))
	}
	for _, m := range matches {
		if err := encode.Encode(m, w, opts...); err != nil {
			return err
		}
		if err := writeNL(w, cfg.Tree); err != nil {
			return err
		}
	}
	return nil
}

// tree dumps end in a newline already; canonical forms do not.
func writeNL(w io.Writer, tree bool) error {
	if tree {
		return nil
	}
	_, err := w.Write([]byte("\n"))
	return err
}
