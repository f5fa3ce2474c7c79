package libdiff

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/signadot/yflow/encode"
	"github.com/signadot/yflow/value"
)

func str(s string) *value.Value { return value.FromString(s) }
func num(i int64) *value.Value  { return value.FromInt(i) }

func seq(vs ...*value.Value) *value.Value {
	return value.FromSlice(vs)
}

func mapping(kvs ...any) *value.Value {
	res := value.NewMapping()
	for i := 0; i < len(kvs); i += 2 {
		res.Set(kvs[i].(string), kvs[i+1].(*value.Value))
	}
	return res
}

// sortKeys orders mapping keys so patched mappings compare regardless of
// where inserted keys went.
func sortKeys(v *value.Value) *value.Value {
	if v == nil {
		return nil
	}
	res := v.Clone()
	res.Visit(func(v *value.Value, isPost bool) (bool, error) {
		if isPost || v.Type != value.MappingType {
			return true, nil
		}
		idx := make([]int, len(v.Keys))
		for i := range idx {
			idx[i] = i
		}
		slices.SortFunc(idx, func(a, b int) int {
			if v.Keys[a] < v.Keys[b] {
				return -1
			}
			if v.Keys[a] > v.Keys[b] {
				return 1
			}
			return 0
		})
		keys := make([]string, len(idx))
		vals := make([]*value.Value, len(idx))
		for i, j := range idx {
			keys[i], vals[i] = v.Keys[j], v.Values[j]
		}
		v.Keys, v.Values = keys, vals
		return true, nil
	})
	return res
}

type diffTest struct {
	name     string
	from, to *value.Value
}

var diffTests = []diffTest{
	{name: "int", from: num(1), to: num(2)},
	{name: "type", from: num(1), to: str("1")},
	{name: "null", from: value.Null(), to: value.FromBool(true)},
	{name: "short string", from: str("a"), to: str("b")},
	{name: "string", from: str("the quick brown fox jumps"), to: str("the quick red fox jumps")},
	{name: "unicode", from: str("naïve café au lait"), to: str("naïve cafés au lait")},
	{name: "lines", from: str("one\ntwo\nthree\nfour"), to: str("one\n2\nthree\nfour\nfive")},
	{name: "sequence", from: seq(num(1), num(2), num(3)), to: seq(num(1), num(3), num(4))},
	{name: "sequence grow", from: seq(), to: seq(str("a"), str("b"))},
	{name: "sequence shrink", from: seq(str("a"), str("b")), to: seq()},
	{
		name: "nested sequence",
		from: seq(mapping("a", num(1)), seq(num(1)), str("x")),
		to:   seq(str("new"), mapping("a", num(2)), seq(num(1), num(2)), str("x")),
	},
	{
		name: "mapping",
		from: mapping("a", num(1), "b", num(2), "c", num(3)),
		to:   mapping("a", num(1), "b", num(5), "d", num(4)),
	},
	{
		name: "moved key",
		from: mapping("a", num(1), "b", num(2)),
		to:   mapping("b", num(3), "a", num(1)),
	},
	{
		name: "index keys",
		from: mapping("0", str("x"), "1", str("y")),
		to:   mapping("0", str("z"), "1", str("w")),
	},
	{
		name: "deep",
		from: mapping("spec", mapping("replicas", num(1), "image", str("app:v1.0.1"), "ports", seq(num(80)))),
		to:   mapping("spec", mapping("replicas", num(3), "image", str("app:v1.0.2"), "ports", seq(num(80), num(443)))),
	},
}

func TestDiffPatch(t *testing.T) {
	for _, tt := range diffTests {
		t.Run(tt.name, func(t *testing.T) {
			d := Diff(tt.from, tt.to)
			require.NotNil(t, d)

			got, err := Patch(tt.from, d)
			require.NoError(t, err)
			require.Equal(t, encode.Dump(sortKeys(tt.to)), encode.Dump(sortKeys(got)))

			rev, err := Reverse(d)
			require.NoError(t, err)
			back, err := Patch(tt.to, rev)
			require.NoError(t, err)
			require.Equal(t, encode.Dump(sortKeys(tt.from)), encode.Dump(sortKeys(back)))
		})
	}
}

func TestDiffEqual(t *testing.T) {
	for _, v := range []*value.Value{
		value.Null(),
		num(1),
		str("x"),
		seq(num(1), mapping("a", seq())),
		mapping("a", num(1), "b", str("c")),
	} {
		require.Nil(t, Diff(v, v.Clone()))
	}
}

func TestDiffShape(t *testing.T) {
	require.Equal(t,
		`{ '!replace': { from: 1, to: 2 } }`,
		encode.Dump(Diff(num(1), num(2))))

	d := Diff(
		mapping("a", num(1), "b", num(2), "c", num(3)),
		mapping("a", num(1), "b", num(5), "d", num(4)))
	require.Equal(t,
		`{ '!mapdiff': { b: { '!replace': { from: 2, to: 5 } }, c: { '!delete': 3 }, d: { '!insert': 4 } } }`,
		encode.Dump(d))

	op, _, err := SplitOp(Diff(str("the quick brown fox jumps"), str("the quick red fox jumps")))
	require.NoError(t, err)
	require.Equal(t, StringOp, op)

	op, _, err = SplitOp(Diff(seq(num(1), num(2)), seq(num(1), num(2), num(3))))
	require.NoError(t, err)
	require.Equal(t, SequenceOp, op)
}

func TestPatchKeyOrder(t *testing.T) {
	from := mapping("a", num(1), "b", num(2))
	to := mapping("b", num(3), "c", num(4))
	d := Diff(from, to)

	got, err := Patch(from, d)
	require.NoError(t, err)
	require.Equal(t, "{ b: 3, c: 4 }", encode.Dump(got))

	rev, err := Reverse(d)
	require.NoError(t, err)
	back, err := Patch(to, rev)
	require.NoError(t, err)
	// inserted keys go last
	require.Equal(t, "{ b: 2, a: 1 }", encode.Dump(back))
	require.False(t, value.Equal(from, back))
	require.True(t, value.Equal(sortKeys(from), sortKeys(back)))
}

func TestPatchConflict(t *testing.T) {
	d := Diff(mapping("a", num(1)), mapping("a", num(2)))
	_, err := Patch(mapping("a", num(7)), d)
	require.ErrorIs(t, err, ErrConflict)

	d = Diff(seq(num(1), num(2)), seq(num(1)))
	_, err = Patch(seq(num(1), num(3)), d)
	require.ErrorIs(t, err, ErrConflict)

	d = Diff(str("the quick brown fox jumps"), str("the quick red fox jumps"))
	_, err = Patch(str("the slow brown fox jumps"), d)
	require.ErrorIs(t, err, ErrConflict)

	_, err = Patch(num(1), mapping("!bogus", num(1)))
	require.ErrorIs(t, err, ErrDiff)

	_, err = Patch(num(1), MakeOp(MappingOp, value.NewMapping()))
	require.ErrorIs(t, err, ErrDiff)
}

func TestPatchNil(t *testing.T) {
	got, err := Patch(num(1), nil)
	require.NoError(t, err)
	require.True(t, value.Equal(num(1), got))
}
