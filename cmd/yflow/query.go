package main

import (
	"fmt"
	"io"

	"github.com/signadot/yflow/format"
	"github.com/signadot/yflow/query"

	"github.com/scott-cotton/cli"
)

func queryMain(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires an expression", cli.ErrUsage)
	}
	return runQuery(cfg, cc.Out, cc.In, args[0], args[1:])
}

// runQuery writes the result of the expression for each fragment or, with
// -t, the fragments for which it is true.
func runQuery(cfg *QueryConfig, w io.Writer, in io.Reader, src string, files []string) error {
	q, err := query.Compile(src)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	docs, err := loadFiles(cfg.MainConfig, in, files)
	if err != nil {
		return err
	}
	dw := newDocWriter(cfg.MainConfig, w, format.FlowFormat)
	for _, d := range docs {
		var (
			res = d.v
			ok  = true
		)
		if cfg.Filter {
			ok, err = q.Test(d.v)
		} else {
			res, err = q.Run(d.v)
		}
		if err != nil {
			return fmt.Errorf("error querying %s: %w", d, err)
		}
		if !ok {
			continue
		}
		if err := dw.write(res); err != nil {
			return err
		}
	}
	return nil
}
