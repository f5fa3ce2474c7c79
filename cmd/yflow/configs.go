package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/yflow"
	"github.com/signadot/yflow/encode"
	"github.com/signadot/yflow/format"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
	"github.com/spf13/afero"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Strict bool `cli:"name=strict desc='reject text after a value'"`
	Lines  bool `cli:"name=l aliases=lines desc='read one fragment per line'"`
	Gops   bool `cli:"name=gops desc='start a gops agent'"`

	Version   format.Version
	OutFormat *format.Format

	Out      string
	CloseOut func() error

	FS   afero.Fs
	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(cc *cli.Context, v string) (any, error) {
	f, err := format.ParseFormat(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.OutFormat = &f
	return f, nil
}

func (cfg *MainConfig) versionFunc(cc *cli.Context, v string) (any, error) {
	ver, err := format.ParseVersion(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Version = ver
	return ver, nil
}

func (cfg *MainConfig) options() []yflow.Option {
	return []yflow.Option{
		yflow.WithSpecVersion(cfg.Version),
		yflow.WithStrict(cfg.Strict),
	}
}

func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	if cfg.OutFormat != nil {
		return *cfg.OutFormat
	}
	return def
}

func (cfg *MainConfig) encOpts(w io.Writer, def format.Format) []encode.EncodeOption {
	res := append(yflow.NewOptions(cfg.options()...).EncodeOptions(),
		encode.EncodeFormat(cfg.outFormat(def)))
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return res
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type LoadConfig struct {
	*MainConfig
	Load *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write result to the source file'"`
	Check bool `cli:"name=c aliases=check desc='fail if a file is not formatted'"`

	Fmt *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='apply diff reversed'"`
	File    bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Filter bool `cli:"name=t desc='output the fragments for which the expression is true'"`

	Query *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim   bool `cli:"name=trim desc='trim the results to the match'"`
	File   bool `cli:"name=f desc='consider match a file path'"`
	Unique bool `cli:"name=u desc='skip repeated results'"`
}
