package main

import (
	"io"
	"os"

	"github.com/elastide/lsconf/render"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='render with color'"`
	Verbose bool `cli:"name=v aliases=verbose desc='verbose diagnostics'"`
	Indent  int  `cli:"name=indent desc='spaces per nesting level'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) renderOpts(w io.Writer) []render.Option {
	var res []render.Option
	if cfg.Indent > 0 {
		res = append(res, render.Indent(cfg.Indent))
	}
	if cfg.Color {
		return append(res, render.WithColors(render.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		return append(res, render.WithColors(render.NewColors()))
	}
	return res
}

type FmtConfig struct {
	*MainConfig

	Write bool `cli:"name=w desc='rewrite files in place'"`
	Diff  bool `cli:"name=d aliases=diff desc='show a diff instead of the output'"`

	Fmt *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='no output, status only'"`

	Check *cli.Command
}

type TreeConfig struct {
	*MainConfig

	YAML    bool `cli:"name=y aliases=yaml desc='output yaml instead of json'"`
	Compact bool `cli:"name=c desc='compact json output'"`
	Reverse bool `cli:"name=r desc='read a tree and emit configuration text'"`

	Tree *cli.Command
}
