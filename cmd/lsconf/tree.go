package main

import (
	"fmt"
	"io"

	"github.com/elastide/lsconf/ast"
	"github.com/elastide/lsconf/parse"
	"github.com/elastide/lsconf/render"
	"github.com/elastide/lsconf/tree"

	"github.com/scott-cotton/cli"
)

func lsconfTree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		return err
	}
	setVerbose(cfg.Verbose)
	return eachInput(args, func(name string, data []byte) error {
		if cfg.Reverse {
			return treeToConfig(cfg, cc.Out, name, data)
		}
		return configToTree(cfg, cc.Out, name, data)
	})
}

func configToTree(cfg *TreeConfig, w io.Writer, name string, data []byte) error {
	doc, err := parse.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	v, err := tree.FromNode(doc)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	var out []byte
	switch {
	case cfg.YAML:
		out, err = tree.MarshalYAML(v)
	case cfg.Compact:
		out, err = tree.Marshal(v)
	default:
		out, err = tree.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if _, err := w.Write(out); err != nil {
		return err
	}
	if len(out) > 0 && out[len(out)-1] != '\n' {
		_, err = w.Write([]byte("\n"))
	}
	return err
}

func treeToConfig(cfg *TreeConfig, w io.Writer, name string, data []byte) error {
	var (
		v   tree.Value
		err error
	)
	if cfg.YAML {
		v, err = tree.UnmarshalYAML(data)
	} else {
		v, err = tree.Unmarshal(data)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	n, err := tree.ToNode(v)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	doc, ok := n.(*ast.Document)
	if !ok {
		return fmt.Errorf("%s: tree is a %v, not a config", name, n.Kind())
	}
	theLog.Debug("rebuilt", "file", name, "sections", len(doc.Sections))
	out, err := render.String(doc, cfg.renderOpts(w)...)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	_, err = io.WriteString(w, out)
	return err
}
