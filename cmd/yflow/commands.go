package main

import (
	"github.com/scott-cotton/cli"
	"github.com/spf13/afero"
)

func MainCommand() *cli.Command {
	return mainCommand(&MainConfig{FS: afero.NewOsFs()})
}

func mainCommand(cfg *MainConfig) *cli.Command {
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: flow/f, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc, "(format)"),
		},
		&cli.Opt{
			Name:        "spec",
			Description: "spec version: 1.1 or 1.2",
			Type:        cli.NamedFuncOpt(cfg.versionFunc, "(version)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "yflow").
		WithSynopsis("yflow [opts] command [opts]").
		WithDescription("yflow is a tool for working with inline yaml fragments.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return yflowMain(cfg, cc, args)
		}).
		WithSubs(
			LoadCommand(cfg),
			FmtCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			QueryCommand(cfg),
			MatchCommand(cfg))
}

func LoadCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &LoadConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Load, "load").
		WithAliases("l").
		WithSynopsis("load [files]").
		WithDescription("load fragments and show their structure, as yaml by default").
		WithRun(func(cc *cli.Context, args []string) error {
			return load(cfg, cc, args)
		})
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithAliases("f").
		WithSynopsis("fmt [-w] [-c] [files]").
		WithDescription("dump fragments in canonical inline form").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtMain(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-r] a b").
		WithDescription("diff two fragments").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch [-r] [-f] <patch> [files]").
		WithDescription(patchDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchMain(cfg, cc, args)
		})
}

const patchDescription = `patch fragments.

The patch is either a diff as produced by 'yflow diff', or a sequence of
RFC 6902 operations such as

  [{op: replace, path: /spec/replicas, value: 3}]

-r reverses a diff before applying it and has no meaning for RFC 6902
operations.`

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Query, "query").
		WithAliases("q").
		WithSynopsis("query [-t] <expr> [files]").
		WithDescription("evaluate an expression with v bound to each fragment").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return queryMain(cfg, cc, args)
		})
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "match").
		WithAliases("m").
		WithSynopsis("match [-trim] [-u] [-f] <pattern> [files]").
		WithDescription("output fragments matching a pattern").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return match(cfg, cc, args)
		})
}
