package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "lsconf").
		WithSynopsis("lsconf [opts] command [opts]").
		WithDescription("lsconf is a tool for working with logstash pipeline configurations.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return lsconfMain(cfg, cc, args)
		}).
		WithSubs(
			FmtCommand(cfg),
			CheckCommand(cfg),
			TreeCommand(cfg))
}

func lsconfMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("fmt").
		WithAliases("f").
		WithSynopsis("fmt [-w|-d] [files]").
		WithDescription("reformat configurations canonically").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return lsconfFmt(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c", "ch").
		WithSynopsis("check [files]").
		WithDescription("parse configurations and report errors").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return lsconfCheck(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("tree").
		WithAliases("t", "tr").
		WithSynopsis("tree [-y|-c] [-r] [files]").
		WithDescription("convert configurations to and from the canonical tree form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return lsconfTree(cfg, cc, args)
		})
	cfg.Tree = cmd
	return cmd
}
