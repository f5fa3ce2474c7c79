package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/signadot/yflow/encode"
	"github.com/signadot/yflow/format"
	"github.com/signadot/yflow/libdiff"
	"github.com/signadot/yflow/patch"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, files map[string]string) *MainConfig {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0644))
	}
	return &MainConfig{FS: fs}
}

type nopCloser struct{ *bytes.Buffer }

func (nopCloser) Close() error { return nil }

func TestLoad(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"a.yml": "{b: 1, a: [x, z]}",
		"b.yml": "[1, 2.5]\n",
	})
	out := &bytes.Buffer{}
	require.NoError(t, runLoad(cfg, out, nil, []string{"a.yml", "b.yml"}))
	require.True(t, strings.HasPrefix(out.String(), "b: 1\n"), out.String())
	docs := strings.Split(out.String(), "---\n")
	require.Len(t, docs, 2)

	var a struct {
		B int      `yaml:"b"`
		A []string `yaml:"a"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(docs[0]), &a))
	require.Equal(t, 1, a.B)
	require.Equal(t, []string{"x", "z"}, a.A)

	var b []float64
	require.NoError(t, yaml.Unmarshal([]byte(docs[1]), &b))
	require.Equal(t, []float64{1, 2.5}, b)
}

func TestLoadStdin(t *testing.T) {
	cfg := testConfig(t, nil)
	f := format.FlowFormat
	cfg.OutFormat = &f
	out := &bytes.Buffer{}
	require.NoError(t, runLoad(cfg, out, strings.NewReader("{ a:   1 }"), nil))
	require.Equal(t, "{ a: 1 }\n", out.String())
}

func TestLoadErrors(t *testing.T) {
	cfg := testConfig(t, map[string]string{"bad.yml": "[1, 2"})
	err := runLoad(cfg, &bytes.Buffer{}, nil, []string{"bad.yml"})
	require.ErrorContains(t, err, "bad.yml")

	err = runLoad(cfg, &bytes.Buffer{}, nil, []string{"missing.yml"})
	require.ErrorContains(t, err, "missing.yml")
}

func TestLines(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"l.yml": "{a: 1}\n\n[b,   c]\n",
	})
	cfg.Lines = true
	out := &bytes.Buffer{}
	require.NoError(t, runFmt(&FmtConfig{MainConfig: cfg}, out, nil, []string{"l.yml"}))
	require.Equal(t, "{ a: 1 }\n[b, c]\n", out.String())

	cfg = testConfig(t, map[string]string{"l.yml": "{a: 1}\n[b\n"})
	cfg.Lines = true
	err := runLoad(cfg, &bytes.Buffer{}, nil, []string{"l.yml"})
	require.ErrorContains(t, err, "l.yml:2")
}

func TestFmtWrite(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"a.yml": "{ a:   [1, 2], b: 'x' }",
		"b.yml": "{ a: 1 }\n",
	})
	fcfg := &FmtConfig{MainConfig: cfg, Check: true}
	err := runFmt(fcfg, &bytes.Buffer{}, nil, []string{"a.yml", "b.yml"})
	require.ErrorIs(t, err, errNotFormatted)
	require.ErrorContains(t, err, "a.yml")
	require.NotContains(t, err.Error(), "b.yml")

	fcfg = &FmtConfig{MainConfig: cfg, Write: true}
	require.NoError(t, runFmt(fcfg, &bytes.Buffer{}, nil, []string{"a.yml", "b.yml"}))
	d, err := afero.ReadFile(cfg.FS, "a.yml")
	require.NoError(t, err)
	require.Equal(t, "{ a: [1, 2], b: x }\n", string(d))

	fcfg = &FmtConfig{MainConfig: cfg, Check: true}
	require.NoError(t, runFmt(fcfg, &bytes.Buffer{}, nil, []string{"a.yml", "b.yml"}))
}

func TestDiffPatch(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"from.yml": "{name: web, replicas: 1, ports: [80]}",
		"to.yml":   "{name: web, replicas: 3, ports: [80, 443]}",
	})
	dcfg := &DiffConfig{MainConfig: cfg}
	out := &bytes.Buffer{}
	differs, err := runDiff(dcfg, out, nil, "from.yml", "to.yml")
	require.NoError(t, err)
	require.True(t, differs)
	require.NoError(t, afero.WriteFile(cfg.FS, "d.yml", out.Bytes(), 0644))

	pcfg := &PatchConfig{MainConfig: cfg, File: true}
	out.Reset()
	require.NoError(t, runPatch(pcfg, out, nil, "d.yml", []string{"from.yml"}))
	require.Equal(t, "{ name: web, replicas: 3, ports: [80, 443] }\n", out.String())

	pcfg.Reverse = true
	out.Reset()
	require.NoError(t, runPatch(pcfg, out, nil, "d.yml", []string{"to.yml"}))
	require.Equal(t, "{ name: web, replicas: 1, ports: [80] }\n", out.String())

	out.Reset()
	err = runPatch(pcfg, out, nil, "d.yml", []string{"from.yml"})
	require.ErrorIs(t, err, libdiff.ErrConflict)

	out.Reset()
	differs, err = runDiff(dcfg, out, nil, "from.yml", "from.yml")
	require.NoError(t, err)
	require.False(t, differs)
	require.Empty(t, out.String())
}

func TestJSONPatch(t *testing.T) {
	cfg := testConfig(t, map[string]string{"a.yml": "{a: 1, b: [x]}"})
	pcfg := &PatchConfig{MainConfig: cfg}
	out := &bytes.Buffer{}
	require.NoError(t, runPatch(pcfg, out, nil,
		"[{op: replace, path: /a, value: 2}, {op: add, path: /b/-, value: y}]",
		[]string{"a.yml"}))
	require.Equal(t, "{ a: 2, b: [x, y] }\n", out.String())

	err := runPatch(pcfg, out, nil, "[{op: remove, path: /c}]", []string{"a.yml"})
	require.ErrorIs(t, err, patch.ErrPatch)

	err = runPatch(pcfg, out, nil, "{a: 1}", []string{"a.yml"})
	require.ErrorIs(t, err, libdiff.ErrDiff)
}

func TestQuery(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"a.yml": "{name: web, ports: [80, 443]}",
		"b.yml": "{name: db, ports: [5432]}",
	})
	qcfg := &QueryConfig{MainConfig: cfg}
	out := &bytes.Buffer{}
	require.NoError(t, runQuery(qcfg, out, nil, "v.name + ':' + string(len(v.ports))", []string{"a.yml", "b.yml"}))
	require.Equal(t, "'web:2'\n'db:1'\n", out.String())

	qcfg.Filter = true
	out.Reset()
	require.NoError(t, runQuery(qcfg, out, nil, "443 in v.ports", []string{"a.yml", "b.yml"}))
	require.Equal(t, "{ name: web, ports: [80, 443] }\n", out.String())

	err := runQuery(qcfg, out, nil, "v.name +", []string{"a.yml"})
	require.Error(t, err)
}

func TestMatch(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"all.yml": "{kind: svc, name: a, port: 80}\n{kind: job, name: b}\n{kind: svc, name: c, port: 81}\n",
	})
	cfg.Lines = true
	mcfg := &MatchConfig{MainConfig: cfg}
	out := &bytes.Buffer{}
	n, err := runMatch(mcfg, out, nil, "{kind: svc}", []string{"all.yml"})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "{ kind: svc, name: a, port: 80 }\n{ kind: svc, name: c, port: 81 }\n", out.String())

	mcfg.Trim = true
	out.Reset()
	n, err = runMatch(mcfg, out, nil, "{kind: svc, port: null}", []string{"all.yml"})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "{ kind: svc, port: 80 }\n{ kind: svc, port: 81 }\n", out.String())

	mcfg.Unique = true
	out.Reset()
	n, err = runMatch(mcfg, out, nil, "{kind: null}", []string{"all.yml"})
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, "{ kind: svc }\n{ kind: job }\n", out.String())

	out.Reset()
	n, err = runMatch(mcfg, out, nil, "{kind: cron}", []string{"all.yml"})
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestSpecVersion(t *testing.T) {
	cfg := testConfig(t, map[string]string{"a.yml": "[yes, no, true]"})
	out := &bytes.Buffer{}
	require.NoError(t, runFmt(&FmtConfig{MainConfig: cfg}, out, nil, []string{"a.yml"}))
	require.Equal(t, "[yes, no, true]\n", out.String())

	_, err := cfg.versionFunc(nil, "1.1")
	require.NoError(t, err)
	out.Reset()
	require.NoError(t, runFmt(&FmtConfig{MainConfig: cfg}, out, nil, []string{"a.yml"}))
	require.Equal(t, "[true, false, true]\n", out.String())

	_, err = cfg.versionFunc(nil, "2.0")
	require.ErrorIs(t, err, format.ErrBadVersion)
}

func TestEncOpts(t *testing.T) {
	cfg := testConfig(t, nil)
	out := &bytes.Buffer{}
	require.Equal(t, format.YAMLFormat, encode.FormatFromOpts(cfg.encOpts(out, format.YAMLFormat)...))

	_, err := cfg.fmtFunc(nil, "json")
	require.NoError(t, err)
	require.Equal(t, format.JSONFormat, cfg.outFormat(format.FlowFormat))
	require.Equal(t, format.JSONFormat, encode.FormatFromOpts(cfg.encOpts(out, format.YAMLFormat)...))
	_, err = cfg.fmtFunc(nil, "toml")
	require.ErrorIs(t, err, format.ErrBadFormat)
}

func TestUsageCloses(t *testing.T) {
	cfg := testConfig(t, nil)
	errOut := &bytes.Buffer{}
	cc := &cli.Context{
		In:  io.NopCloser(strings.NewReader("")),
		Out: nopCloser{&bytes.Buffer{}},
		Err: nopCloser{errOut},
	}
	err := mainCommand(cfg).Run(cc, []string{"-o", "out.yml", "query"})
	var xc cli.ExitCodeErr
	require.True(t, errors.As(err, &xc), "got %v", err)
	require.Equal(t, cli.ExitCodeErr(1), xc)
	require.Contains(t, errOut.String(), "expression")

	exists, err := afero.Exists(cfg.FS, "out.yml")
	require.NoError(t, err)
	require.True(t, exists)
	_, err = cc.Out.Write([]byte("x"))
	require.Error(t, err, "output left open")
}
