package main

import (
	"fmt"
	"os"

	"github.com/bbcode-format/go-bbcode"
	"github.com/bbcode-format/go-bbcode/parse"

	"github.com/scott-cotton/cli"
)

// check validates strictly even when -lenient is set globally; a
// document that only parses leniently is still reported.
func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	tags, err := cfg.tagNames()
	if err != nil {
		return err
	}
	pOpts := []parse.ParseOption{
		parse.ParseTags(tags...),
		parse.ParseCaseSensitive(cfg.CS),
	}
	bad := 0
	for _, file := range args {
		if err := checkFile(cfg, cc, file, pOpts); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", file, err)
			bad++
			continue
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: ok\n", file)
		}
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkFile(cfg *CheckConfig, cc *cli.Context, file string, pOpts []parse.ParseOption) error {
	d, err := getDocBytes(cc, file)
	if err != nil {
		return err
	}
	doc, err := parse.Parse(d, pOpts...)
	if err != nil {
		return err
	}
	diff, changed := bbcode.DiffStrings(string(d), doc.String())
	if !changed {
		return nil
	}
	if cfg.Quiet {
		return fmt.Errorf("round-trip mismatch")
	}
	return fmt.Errorf("round-trip mismatch:\n%s", diff)
}
