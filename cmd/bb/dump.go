package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bbcode-format/go-bbcode/debug"
	"github.com/bbcode-format/go-bbcode/encode"
	"github.com/bbcode-format/go-bbcode/parse"
	"github.com/bbcode-format/go-bbcode/token"

	"github.com/scott-cotton/cli"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
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
		if err := dumpFile(cfg, cc, cc.Out, file, pOpts); err != nil {
			return err
		}
		if i < len(args)-1 {
			cc.Out.Write([]byte("\n"))
		}
	}
	return nil
}

func dumpFile(cfg *DumpConfig, cc *cli.Context, w io.Writer, file string, pOpts []parse.ParseOption) error {
	d, err := getDocBytes(cc, file)
	if err != nil {
		return err
	}
	if debug.Tokens() {
		tags, err := cfg.tagNames()
		if err != nil {
			return err
		}
		toks := token.Tokenize(nil, d,
			token.TokenTags(tags...),
			token.TokenCaseSensitive(cfg.CS))
		for i := range toks {
			debug.Logf("token %d: %s\n", i, toks[i].Info())
		}
	}
	doc, err := parse.Parse(d, pOpts...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	if cfg.JSON {
		j, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("internal error: %w", err)
		}
		if _, err := w.Write(append(j, '\n')); err != nil {
			return err
		}
		return nil
	}
	opts := append(cfg.encOpts(w), encode.EncodeTree(true))
	if cfg.Depth >= 0 {
		opts = append(opts, encode.Depth(cfg.Depth))
	}
	if err := encode.Encode(doc, w, opts...); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}
	return nil
}
