package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bbcode-format/go-bbcode"
	"github.com/bbcode-format/go-bbcode/encode"
	"github.com/bbcode-format/go-bbcode/parse"

	"github.com/scott-cotton/cli"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Lenient  bool   `cli:"name=lenient aliases=l desc='recover from malformed nesting instead of failing'"`
	CS       bool   `cli:"name=cs desc='match tag names case sensitively'"`
	Tags     string `cli:"name=tags desc='comma separated tag allow-list'"`
	TagsFile string `cli:"name=tagsFile desc='yaml file with a tags: allow-list'"`
	Color    bool   `cli:"name=color desc='colorize output'"`

	Main *cli.Command
}

type tagsFile struct {
	Tags []string `yaml:"tags"`
}

func (cfg *MainConfig) tagNames() ([]string, error) {
	if cfg.TagsFile != "" {
		d, err := os.ReadFile(cfg.TagsFile)
		if err != nil {
			return nil, fmt.Errorf("reading tags file: %w", err)
		}
		tf := &tagsFile{}
		if err := yaml.Unmarshal(d, tf); err != nil {
			return nil, fmt.Errorf("decoding tags file %q: %w", cfg.TagsFile, err)
		}
		return tf.Tags, nil
	}
	if cfg.Tags != "" {
		return strings.Split(cfg.Tags, ","), nil
	}
	return bbcode.DefaultTags(), nil
}

func (cfg *MainConfig) parseOpts() ([]parse.ParseOption, error) {
	tags, err := cfg.tagNames()
	if err != nil {
		return nil, err
	}
	return []parse.ParseOption{
		parse.ParseTags(tags...),
		parse.ParseCaseSensitive(cfg.CS),
		parse.ParseLenient(cfg.Lenient),
	}, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DumpConfig struct {
	*MainConfig

	JSON  bool `cli:"name=j aliases=json desc='dump the tree as JSON'"`
	Depth int

	Dump *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='suppress the round-trip diff on mismatch'"`

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig

	Tree bool `cli:"name=tree desc='print matches as node dumps instead of text'"`

	Get *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}
