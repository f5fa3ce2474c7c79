package main

import (
	"fmt"
	"io"

	"github.com/signadot/yflow/format"
	"github.com/signadot/yflow/libdiff"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	differs, err := runDiff(cfg, cc.Out, cc.In, args[0], args[1])
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// runDiff writes the diff between two files and reports whether they
// differ.
func runDiff(cfg *DiffConfig, w io.Writer, in io.Reader, a, b string) (bool, error) {
	from, err := loadArg(cfg.MainConfig, in, a, true)
	if err != nil {
		return false, fmt.Errorf("error loading %s: %w", a, err)
	}
	to, err := loadArg(cfg.MainConfig, in, b, true)
	if err != nil {
		return false, fmt.Errorf("error loading %s: %w", b, err)
	}
	d := libdiff.Diff(from, to)
	if d == nil {
		return false, nil
	}
	if cfg.Reverse {
		d, err = libdiff.Reverse(d)
		if err != nil {
			return false, fmt.Errorf("error reversing: %w", err)
		}
	}
	if err := newDocWriter(cfg.MainConfig, w, format.FlowFormat).write(d); err != nil {
		return false, err
	}
	return true, nil
}
