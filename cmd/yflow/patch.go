package main

import (
	"fmt"
	"io"

	"github.com/signadot/yflow/format"
	"github.com/signadot/yflow/libdiff"
	"github.com/signadot/yflow/patch"
	"github.com/signadot/yflow/value"

	"github.com/scott-cotton/cli"
)

func patchMain(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch argument", cli.ErrUsage)
	}
	return runPatch(cfg, cc.Out, cc.In, args[0], args[1:])
}

func runPatch(cfg *PatchConfig, w io.Writer, in io.Reader, arg string, files []string) error {
	p, err := loadArg(cfg.MainConfig, in, arg, cfg.File)
	if err != nil {
		return fmt.Errorf("error loading patch: %w", err)
	}
	apply, err := patchFunc(cfg, p)
	if err != nil {
		return err
	}
	docs, err := loadFiles(cfg.MainConfig, in, files)
	if err != nil {
		return err
	}
	dw := newDocWriter(cfg.MainConfig, w, format.FlowFormat)
	for _, d := range docs {
		res, err := apply(d.v)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", d, err)
		}
		if err := dw.write(res); err != nil {
			return err
		}
	}
	return nil
}

// patchFunc reads p as RFC 6902 operations if it is a sequence and as a
// diff otherwise.
func patchFunc(cfg *PatchConfig, p *value.Value) (func(*value.Value) (*value.Value, error), error) {
	if p.Type == value.SequenceType {
		if cfg.Reverse {
			return nil, fmt.Errorf("%w: -r applies to diffs only", cli.ErrUsage)
		}
		ops, err := patch.Decode(p)
		if err != nil {
			return nil, err
		}
		return ops.Apply, nil
	}
	if _, _, err := libdiff.SplitOp(p); err != nil {
		return nil, err
	}
	if cfg.Reverse {
		rev, err := libdiff.Reverse(p)
		if err != nil {
			return nil, fmt.Errorf("error reversing patch: %w", err)
		}
		p = rev
	}
	return func(doc *value.Value) (*value.Value, error) {
		return libdiff.Patch(doc, p)
	}, nil
}
