package main

import (
	"errors"
	"fmt"

	"github.com/elastide/lsconf/parse"

	"github.com/scott-cotton/cli"
)

func lsconfCheck(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	setVerbose(cfg.Verbose)
	bad := 0
	ierr := eachInput(args, func(name string, data []byte) error {
		doc, err := parse.Parse(data)
		if err != nil {
			bad++
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "%s: %v\n", name, err)
			}
			if errors.Is(err, parse.ErrInternal) {
				theLog.Error("internal parse failure", "file", name, "err", err)
			}
			return nil
		}
		theLog.Debug("parsed", "file", name, "sections", len(doc.Sections))
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "%s: ok\n", name)
		}
		return nil
	})
	if ierr != nil {
		return ierr
	}
	if bad > 0 {
		return fmt.Errorf("%d configuration(s) failed to parse", bad)
	}
	return nil
}
