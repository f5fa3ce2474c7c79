package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/signadot/yflow"
	"github.com/signadot/yflow/format"

	"github.com/scott-cotton/cli"
	"github.com/spf13/afero"
)

var errNotFormatted = errors.New("not formatted")

func fmtMain(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Write && len(args) == 0 {
		return fmt.Errorf("%w: -w requires files", cli.ErrUsage)
	}
	err = runFmt(cfg, cc.Out, cc.In, args)
	if errors.Is(err, errNotFormatted) {
		fmt.Fprintln(cc.Out, err)
		return cli.ExitCodeErr(1)
	}
	return err
}

// runFmt re-dumps fragments in canonical form. With -w files are
// rewritten in place and with -c unformatted files are reported.
func runFmt(cfg *FmtConfig, w io.Writer, in io.Reader, files []string) error {
	if !cfg.Write && !cfg.Check {
		docs, err := loadFiles(cfg.MainConfig, in, files)
		if err != nil {
			return err
		}
		dw := newDocWriter(cfg.MainConfig, w, format.FlowFormat)
		for _, d := range docs {
			if err := dw.write(d.v); err != nil {
				return err
			}
		}
		return nil
	}
	var unformatted []string
	for _, file := range files {
		text, err := readInput(cfg.MainConfig, in, file)
		if err != nil {
			return err
		}
		out, err := canonical(cfg.MainConfig, text)
		if err != nil {
			return fmt.Errorf("error formatting %s: %w", file, err)
		}
		if out == text {
			continue
		}
		if cfg.Check {
			unformatted = append(unformatted, file)
			continue
		}
		if err := afero.WriteFile(cfg.FS, file, []byte(out), 0644); err != nil {
			return fmt.Errorf("error writing %s: %w", file, err)
		}
	}
	if len(unformatted) != 0 {
		return fmt.Errorf("%w: %s", errNotFormatted, strings.Join(unformatted, ", "))
	}
	return nil
}

// canonical returns the formatted text of a file, one dumped fragment per
// line.
func canonical(cfg *MainConfig, text string) (string, error) {
	frags, _ := fragments(cfg, text)
	buf := &strings.Builder{}
	for _, frag := range frags {
		v, err := yflow.Load(frag, cfg.options()...)
		if err != nil {
			return "", err
		}
		buf.WriteString(yflow.Dump(v, cfg.options()...))
		buf.WriteByte('\n')
	}
	return buf.String(), nil
}
