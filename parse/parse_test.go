package parse

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/yflow/format"
	"github.com/signadot/yflow/token"
	"github.com/signadot/yflow/value"
)

type parseTest struct {
	in   string
	want *value.Value
	opts []ParseOption
}

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

var (
	num = value.FromInt
	str = value.FromString
)

func TestLoad(t *testing.T) {
	tests := []parseTest{
		{in: ``, want: str("")},
		{in: "  \t\n", want: str("")},
		{in: `null`, want: value.Null()},
		{in: `~`, want: value.Null()},
		{in: `  12  `, want: num(12)},
		{in: `foo # comment`, want: str("foo")},
		{in: `foo#bar`, want: str("foo#bar")},
		{in: `'it''s'`, want: str("it's")},
		{in: `"a\"b"`, want: str(`a"b`)},
		{in: `"12"`, want: str("12")},
		{in: `'true'`, want: str("true")},
		{in: `010`, want: num(8)},
		{in: `0x1A`, want: num(26)},
		{in: `.inf`, want: value.FromFloat(math.Inf(1))},
		{in: `.NaN`, want: value.FromFloat(math.Inf(1))},
		{in: `-.inf`, want: value.FromFloat(math.Inf(-1))},
		{in: `yes`, want: str("yes")},
		{in: `yes`, want: value.FromBool(true), opts: []ParseOption{SpecVersion(format.Version11)}},
		{in: `y`, want: value.FromBool(true), opts: []ParseOption{SpecVersion(format.Version11)}},
		{in: `[1, 2, 3]`, want: seq(num(1), num(2), num(3))},
		{in: `[]`, want: seq()},
		{in: `[ ]`, want: seq()},
		{in: `[1,2]`, want: seq(num(1), num(2))},
		{in: `[foo, {bar: baz}]`, want: seq(str("foo"), mapping("bar", str("baz")))},
		{in: `[[1, [2]], {}]`, want: seq(seq(num(1), seq(num(2))), mapping())},
		{in: `[a, "b, c", 'd]']`, want: seq(str("a"), str("b, c"), str("d]"))},
		{in: `[!str 12, ! 3.5, ! '7x']`, want: seq(str("12"), num(3), num(7))},
		{in: `[true, false, null, ~]`, want: seq(value.FromBool(true), value.FromBool(false), value.Null(), value.Null())},
		{in: `[yes, n]`, want: seq(value.FromBool(true), value.FromBool(false)), opts: []ParseOption{SpecVersion(format.Version11)}},
		{in: `[a: b, c]`, want: seq(mapping("a", str("b")), str("c"))},
		{in: `[a: b: c]`, want: seq(mapping("a", str("b: c")))},
		{in: `[a: 1]`, want: seq(mapping("a", num(1)))},
		{in: `["a: b"]`, want: seq(str("a: b"))},
		{in: `[a:b]`, want: seq(str("a:b"))},
		{in: `{foo: bar, baz: 12}`, want: mapping("foo", str("bar"), "baz", num(12))},
		{in: `{}`, want: mapping()},
		{in: `{ }`, want: mapping()},
		{in: `{a:1}`, want: mapping("a", num(1))},
		{in: `{a: 1, a: 2, b: 3}`, want: mapping("a", num(2), "b", num(3))},
		{in: `{b: 1, a: 2, b: 3}`, want: mapping("b", num(3), "a", num(2))},
		{in: `{1: a, true: b, null: c}`, want: mapping("1", str("a"), "true", str("b"), "null", str("c"))},
		{in: `{"quoted key": 1, 'k''': x}`, want: mapping("quoted key", num(1), "k'", str("x"))},
		{in: `{a: [1, 2], b: {c: d}}`, want: mapping("a", seq(num(1), num(2)), "b", mapping("c", str("d")))},
		{in: `{a: [], b: {}}`, want: mapping("a", seq(), "b", mapping())},
		{in: `{a: "x, y", b: 'z}'}`, want: mapping("a", str("x, y"), "b", str("z}"))},
		{in: `{a: b c}`, want: mapping("a", str("b c"))},
		{in: `{a: 2001-12-14}`, want: mapping("a", num(1008288000)), opts: []ParseOption{Location(time.UTC)}},
		{in: `[1, 2] trailing`, want: seq(num(1), num(2))},
		{in: `{a: 1}}`, want: mapping("a", num(1))},
	}
	for _, tt := range tests {
		got, err := Load(tt.in, tt.opts...)
		if err != nil {
			t.Errorf("Load(%q): %v", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Load(%q) (-want +got):\n%s", tt.in, diff)
		}
	}
}

type errTest struct {
	in   string
	err  error
	opts []ParseOption
}

func TestLoadErrors(t *testing.T) {
	tests := []errTest{
		{in: `[1, 2`, err: token.ErrNoTerminator},
		{in: `[1, 2,`, err: token.ErrMalformedSequence},
		{in: `[`, err: token.ErrMalformedSequence},
		{in: `[[1]`, err: token.ErrMalformedSequence},
		{in: `"unterminated`, err: token.ErrUnterminatedQuote},
		{in: `'unterminated`, err: token.ErrUnterminatedQuote},
		{in: `["a, b]`, err: token.ErrUnterminatedQuote},
		{in: `{`, err: token.ErrMalformedMapping},
		{in: `{a: 1,`, err: token.ErrMalformedMapping},
		{in: `{a: 1`, err: token.ErrNoTerminator},
		{in: `{a`, err: token.ErrNoTerminator},
		{in: `{a:`, err: token.ErrMalformedMapping},
		{in: `{a: {b: c}`, err: token.ErrMalformedMapping},
		{in: `[a, {b: c]`, err: token.ErrNoTerminator},
		{in: "[a\nb]", err: token.ErrNoTerminator},
		{in: `! "12`, err: token.ErrUnterminatedQuote},
		{in: `[1, 2] trailing`, err: token.ErrTrailing, opts: []ParseOption{Strict(true)}},
		{in: `'a' b`, err: token.ErrTrailing, opts: []ParseOption{Strict(true)}},
	}
	for _, tt := range tests {
		_, err := Load(tt.in, tt.opts...)
		if !errors.Is(err, tt.err) {
			t.Errorf("Load(%q): expected %v, got %v", tt.in, tt.err, err)
		}
		if !errors.Is(err, ErrMalformed) {
			t.Errorf("Load(%q): %v does not wrap ErrMalformed", tt.in, err)
		}
	}
}

func TestLoadStrictOK(t *testing.T) {
	for _, in := range []string{`[1]`, `{a: b}`, `'x'`, `plain text`, ` [1] `} {
		if _, err := Load(in, Strict(true)); err != nil {
			t.Errorf("Load(%q): %v", in, err)
		}
	}
}

func TestLoadErrorPosition(t *testing.T) {
	tests := []struct {
		in  string
		off int
	}{
		{in: `[1, 2,`, off: 0},
		{in: `  [1, 2,`, off: 2},
		{in: `[1, 2`, off: 4},
		{in: `{a: [x, "y}`, off: 8},
		{in: `[[1], {a: b,`, off: 6},
	}
	for _, tt := range tests {
		_, err := Load(tt.in, WithFilename("frag.yml"))
		var se *token.SyntaxErr
		if !errors.As(err, &se) {
			t.Errorf("Load(%q): expected syntax error, got %v", tt.in, err)
			continue
		}
		if se.Pos.I != tt.off {
			t.Errorf("Load(%q): error at %d, want %d", tt.in, se.Pos.I, tt.off)
		}
		if !strings.Contains(err.Error(), "frag.yml") {
			t.Errorf("Load(%q): %q does not name the file", tt.in, err.Error())
		}
	}
}

func TestLoadObject(t *testing.T) {
	in := `[!!php/object:{"a":1}, x]`
	got, err := Load(in, ObjectCodec(value.JSONCodec))
	if err != nil {
		t.Fatal(err)
	}
	want := seq(value.Opaque(`{"a":1}`, map[string]any{"a": float64(1)}), str("x"))
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	got, err = Load(`!obj:7`, ObjectTag("!obj:"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(value.Opaque("7", nil), got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestGetEvaluator(t *testing.T) {
	e := GetEvaluator(SpecVersion(format.Version11), ObjectTag("!o:"))
	if !e.Version.Is11() || e.ObjectTag != "!o:" {
		t.Errorf("unexpected evaluator %+v", e)
	}
}
