package main

import (
	"fmt"
	"io"
	"os"

	"github.com/elastide/lsconf/parse"
	"github.com/elastide/lsconf/render"

	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func lsconfFmt(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	setVerbose(cfg.Verbose)
	if cfg.Write && cfg.Diff {
		return fmt.Errorf("%w: -w and -d are mutually exclusive", cli.ErrUsage)
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires file arguments", cli.ErrUsage)
	}
	return eachInput(args, func(name string, data []byte) error {
		return fmtOne(cfg, cc.Out, name, data)
	})
}

func fmtOne(cfg *FmtConfig, w io.Writer, name string, data []byte) error {
	doc, err := parse.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	out, err := render.String(doc, render.Indent(cfg.Indent))
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	theLog.Debug("formatted", "file", name, "in", len(data), "out", len(out))
	switch {
	case cfg.Write:
		if out == string(data) {
			return nil
		}
		return os.WriteFile(name, []byte(out), 0644)
	case cfg.Diff:
		return writeDiff(w, string(data), out)
	default:
		if cfg.Color {
			colored, err := render.String(doc, cfg.renderOpts(w)...)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			_, err = io.WriteString(w, colored)
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	}
}

func writeDiff(w io.Writer, before, after string) error {
	if before == after {
		return nil
	}
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range splitKeepNL(d.Text) {
			if _, err := io.WriteString(w, prefix+line); err != nil {
				return err
			}
		}
	}
	return nil
}

func splitKeepNL(s string) []string {
	var out []string
	for len(s) > 0 {
		i := 0
		for i < len(s) && s[i] != '\n' {
			i++
		}
		if i < len(s) {
			i++
		}
		out = append(out, s[:i])
		s = s[i:]
	}
	return out
}
