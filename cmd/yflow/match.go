package main

import (
	"fmt"
	"io"

	"github.com/signadot/yflow"
	"github.com/signadot/yflow/format"
	"github.com/signadot/yflow/value"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a pattern", cli.ErrUsage)
	}
	n, err := runMatch(cfg, cc.Out, cc.In, args[0], args[1:])
	if err != nil {
		return err
	}
	if n == 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// runMatch writes the fragments matching the pattern and returns how
// many there were.
func runMatch(cfg *MatchConfig, w io.Writer, in io.Reader, arg string, files []string) (int, error) {
	pattern, err := loadArg(cfg.MainConfig, in, arg, cfg.File)
	if err != nil {
		return 0, fmt.Errorf("error loading match: %w", err)
	}
	docs, err := loadFiles(cfg.MainConfig, in, files)
	if err != nil {
		return 0, err
	}
	dw := newDocWriter(cfg.MainConfig, w, format.FlowFormat)
	seen := seenSet{}
	n := 0
	for _, d := range docs {
		if !yflow.Match(d.v, pattern) {
			continue
		}
		v := d.v
		if cfg.Trim {
			v = yflow.Trim(pattern, v)
		}
		if cfg.Unique && !seen.add(v) {
			continue
		}
		if err := dw.write(v); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// seenSet holds values by hash.
type seenSet map[uint64][]*value.Value

// add records v and reports whether it was not already present.
func (s seenSet) add(v *value.Value) bool {
	h := v.Hash()
	for _, o := range s[h] {
		if value.Equal(o, v) {
			return false
		}
	}
	s[h] = append(s[h], v)
	return true
}
