package main

import (
	"io"

	"github.com/signadot/yflow/format"

	"github.com/scott-cotton/cli"
)

func load(cfg *LoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		return err
	}
	return runLoad(cfg.MainConfig, cc.Out, cc.In, args)
}

func runLoad(cfg *MainConfig, w io.Writer, in io.Reader, files []string) error {
	docs, err := loadFiles(cfg, in, files)
	if err != nil {
		return err
	}
	dw := newDocWriter(cfg, w, format.YAMLFormat)
	for _, d := range docs {
		if err := dw.write(d.v); err != nil {
			return err
		}
	}
	return nil
}
