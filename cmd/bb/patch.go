package main

import (
	"fmt"
	"os"

	"github.com/bbcode-format/go-bbcode"
	"github.com/bbcode-format/go-bbcode/encode"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: patch requires a JSON patch file and at least one document", cli.ErrUsage)
	}
	pd, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read patch %q: %w", args[0], err)
	}
	pOpts, err := cfg.parseOpts()
	if err != nil {
		return err
	}
	for i, file := range args[1:] {
		doc, err := getDoc(cc, file, pOpts...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, err := bbcode.Patch(doc, pd)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		if i < len(args[1:])-1 {
			cc.Out.Write([]byte("\n"))
		}
	}
	return nil
}
