package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/signadot/yflow/encode"
	"github.com/signadot/yflow/parse"
	"github.com/signadot/yflow/value"
)

const doc = "{a: 1, name: x, items: [1, 2, 3], spec: {on: true, tags: [web, db]}}"

func TestRun(t *testing.T) {
	v, err := parse.Load(doc)
	require.NoError(t, err)
	tests := []struct {
		src  string
		want string
	}{
		{src: "v.a", want: "1"},
		{src: "v.a + 1", want: "2"},
		{src: "v.name + '!'", want: "x!"},
		{src: "len(v.items)", want: "3"},
		{src: "filter(v.items, # > 1)", want: "[2, 3]"},
		{src: "v.items | map(# * 2)", want: "[2, 4, 6]"},
		{src: "v.spec.on ? 'up' : 'down'", want: "up"},
		{src: "'db' in v.spec.tags", want: "true"},
		{src: "{'x': v.a, 'y': v.spec.tags[0]}", want: "{ x: 1, y: web }"},
		{src: "v.missing", want: "null"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := Run(tt.src, v)
			require.NoError(t, err)
			require.Equal(t, tt.want, encode.Dump(got))
		})
	}
}

func TestDumpFunc(t *testing.T) {
	v, err := parse.Load("{a: [1, b]}")
	require.NoError(t, err)
	got, err := Run("dump(v.a)", v)
	require.NoError(t, err)
	require.Equal(t, value.StringType, got.Type)
	require.Equal(t, "[1, b]", got.String)
}

func TestCompiled(t *testing.T) {
	q, err := Compile("v * 2")
	require.NoError(t, err)
	require.Equal(t, "v * 2", q.String())
	for i, want := range []string{"0", "2", "4"} {
		got, err := q.Run(value.FromInt(int64(i)))
		require.NoError(t, err)
		require.Equal(t, want, encode.Dump(got))
	}
}

func TestTest(t *testing.T) {
	v, err := parse.Load(doc)
	require.NoError(t, err)
	for src, want := range map[string]bool{
		"v.a == 1":               true,
		"v.a > 1":                false,
		"v.items":                true,
		"filter(v.items, # > 5)": false,
		"v.name":                 true,
		"v.missing":              false,
		"v.a - 1":                false,
	} {
		q, err := Compile(src)
		require.NoError(t, err)
		got, err := q.Test(v)
		require.NoError(t, err)
		require.Equal(t, want, got, src)
	}
}

func TestErrors(t *testing.T) {
	_, err := Compile("v.a +")
	require.ErrorIs(t, err, ErrQuery)

	v, err := parse.Load(doc)
	require.NoError(t, err)
	_, err = Run("v.items[10]", v)
	require.ErrorIs(t, err, ErrQuery)
}
