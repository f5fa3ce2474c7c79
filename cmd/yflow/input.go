package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/yflow"
	"github.com/signadot/yflow/debug"
	"github.com/signadot/yflow/encode"
	"github.com/signadot/yflow/format"
	"github.com/signadot/yflow/value"

	"github.com/spf13/afero"
)

// doc is one loaded fragment. line is 0 unless fragments are read per
// line.
type doc struct {
	file string
	line int
	v    *value.Value
}

func (d *doc) String() string {
	if d.line == 0 {
		return d.file
	}
	return fmt.Sprintf("%s:%d", d.file, d.line)
}

func readInput(cfg *MainConfig, in io.Reader, file string) (string, error) {
	if file == "-" {
		d, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("error reading stdin: %w", err)
		}
		return string(d), nil
	}
	d, err := afero.ReadFile(cfg.FS, file)
	if err != nil {
		return "", fmt.Errorf("could not read %q: %w", file, err)
	}
	return string(d), nil
}

// fragments splits text into the fragments to load, skipping blank lines
// in line mode.
func fragments(cfg *MainConfig, text string) ([]string, []int) {
	if !cfg.Lines {
		return []string{text}, []int{0}
	}
	var (
		frags []string
		lines []int
	)
	for i, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		frags = append(frags, line)
		lines = append(lines, i+1)
	}
	return frags, lines
}

func loadFile(cfg *MainConfig, in io.Reader, file string) ([]*doc, error) {
	text, err := readInput(cfg, in, file)
	if err != nil {
		return nil, err
	}
	frags, lines := fragments(cfg, text)
	res := make([]*doc, 0, len(frags))
	for i, frag := range frags {
		d := &doc{file: file, line: lines[i]}
		d.v, err = yflow.Load(frag, cfg.options()...)
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %w", d, err)
		}
		res = append(res, d)
	}
	return res, nil
}

// loadFiles loads each file, or standard input if there are none.
func loadFiles(cfg *MainConfig, in io.Reader, files []string) ([]*doc, error) {
	if len(files) == 0 {
		files = []string{"-"}
	}
	var res []*doc
	for _, file := range files {
		docs, err := loadFile(cfg, in, file)
		if err != nil {
			return nil, err
		}
		res = append(res, docs...)
	}
	return res, nil
}

// loadArg loads a command argument, which is a fragment or, when isFile,
// a file holding one.
func loadArg(cfg *MainConfig, in io.Reader, arg string, isFile bool) (*value.Value, error) {
	text := arg
	if isFile {
		var err error
		text, err = readInput(cfg, in, arg)
		if err != nil {
			return nil, err
		}
	}
	return yflow.Load(text, cfg.options()...)
}

// docWriter encodes a stream of values, separating yaml documents.
type docWriter struct {
	w    io.Writer
	opts []encode.EncodeOption
	n    int
}

func newDocWriter(cfg *MainConfig, w io.Writer, def format.Format) *docWriter {
	return &docWriter{w: w, opts: cfg.encOpts(w, def)}
}

func (dw *docWriter) write(v *value.Value) error {
	if dw.n > 0 && encode.FormatFromOpts(dw.opts...) == format.YAMLFormat {
		if _, err := io.WriteString(dw.w, "---\n"); err != nil {
			return err
		}
	}
	dw.n++
	if debug.Dump() {
		debug.Logf("encode", "doc", dw.n, "format", encode.FormatFromOpts(dw.opts...), "in", v)
	}
	if err := encode.Encode(v, dw.w, dw.opts...); err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	return nil
}
