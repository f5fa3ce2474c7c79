package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/yflow/eval"
	"github.com/signadot/yflow/format"
	"github.com/signadot/yflow/token"
	"github.com/signadot/yflow/value"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	version   format.Version
	codec     value.ObjectCodec
	objectTag string
	format    format.Format

	Color func(value.Type, ColorAttr, string) string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if es.objectTag == "" {
		es.objectTag = eval.DefaultObjectTag
	}
	return es
}

func (es *EncState) color(t value.Type, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, a, s)
}

// Dump returns the inline form of v.
func Dump(v *value.Value, opts ...EncodeOption) string {
	es := newEncState(opts)
	buf := &strings.Builder{}
	dump(buf, v, es)
	return buf.String()
}

// Encode writes v followed by a newline in the format selected by
// EncodeFormat, inline flow by default.
func Encode(v *value.Value, w io.Writer, opts ...EncodeOption) error {
	es := newEncState(opts)
	switch es.format {
	case format.FlowFormat:
		buf := &strings.Builder{}
		dump(buf, v, es)
		buf.WriteByte('\n')
		return writeString(w, buf.String())
	case format.YAMLFormat, format.JSONFormat:
		d, err := marshalYAML(v, es)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		return fmt.Errorf("%w: unknown format %s", ErrEncoding, es.format)
	}
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func dump(buf *strings.Builder, v *value.Value, es *EncState) {
	if v == nil {
		v = value.Null()
	}
	switch v.Type {
	case value.RawType:
		buf.WriteString(v.String)
	case value.OpaqueType:
		buf.WriteString(es.color(v.Type, TagColor, es.objectTag))
		buf.WriteString(es.color(v.Type, ValueColor, opaquePayload(v, es)))
	case value.SequenceType, value.MappingType:
		dumpComposite(buf, v, es)
	default:
		buf.WriteString(es.color(v.Type, ValueColor, scalar(v, es)))
	}
}

func opaquePayload(v *value.Value, es *EncState) string {
	if v.Object == nil {
		return v.String
	}
	codec := es.codec
	if codec == nil {
		codec = value.JSONCodec
	}
	d, err := codec.Marshal(v.Object)
	if err != nil {
		return v.String
	}
	return d
}

func dumpComposite(buf *strings.Builder, v *value.Value, es *EncState) {
	if v.IsList() {
		buf.WriteString(es.color(v.Type, SepColor, "["))
		for i, elt := range v.Values {
			if i > 0 {
				buf.WriteString(es.color(v.Type, SepColor, ","))
				buf.WriteByte(' ')
			}
			dump(buf, elt, es)
		}
		buf.WriteString(es.color(v.Type, SepColor, "]"))
		return
	}
	buf.WriteString(es.color(v.Type, SepColor, "{"))
	buf.WriteByte(' ')
	for i, k := range v.Keys {
		if i > 0 {
			buf.WriteString(es.color(v.Type, SepColor, ","))
			buf.WriteByte(' ')
		}
		buf.WriteString(es.color(v.Type, FieldColor, key(k, es)))
		buf.WriteString(es.color(v.Type, SepColor, ":"))
		buf.WriteByte(' ')
		dump(buf, v.Values[i], es)
	}
	buf.WriteByte(' ')
	buf.WriteString(es.color(v.Type, SepColor, "}"))
}

// key dumps a mapping key. Keys spelling an integer canonically are
// written as that integer.
func key(k string, es *EncState) string {
	if i, err := strconv.ParseInt(k, 10, 64); err == nil && strconv.FormatInt(i, 10) == k {
		return scalar(value.FromInt(i), es)
	}
	return scalar(value.FromString(k), es)
}

func scalar(v *value.Value, es *EncState) string {
	switch v.Type {
	case value.NullType:
		return "null"
	case value.BoolType:
		return strconv.FormatBool(v.Bool)
	case value.IntType:
		return strconv.FormatInt(v.Int, 10)
	case value.FloatType:
		return formatFloat(v.Float)
	case value.StringType:
		return str(v.String, es)
	}
	return str(v.String, es)
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".Inf"
	case math.IsInf(f, -1):
		return "-.Inf"
	case math.IsNaN(f):
		return ".NaN"
	}
	abs := math.Abs(f)
	if abs >= 1e15 || (abs != 0 && abs < 1e-4) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func str(s string, es *EncState) string {
	switch {
	case eval.IsDigits(s), eval.IsNumeric(s):
		return "'" + s + "'"
	case token.HasLineBreak(s):
		if q, ok := doubleQuoted(s); ok {
			return q
		}
		return token.QuoteSingle(s)
	case token.NeedsQuote(s):
		return token.QuoteSingle(s)
	case s == "":
		return "''"
	case eval.IsTimestamp(s):
		return "'" + s + "'"
	case isWord(s, es):
		return "'" + s + "'"
	case !reloadsAsString(s, es):
		return token.QuoteSingle(s)
	}
	return s
}

// doubleQuoted returns s double quoted and whether that text scans back
// as s. Backslashes are kept as they are, so a backslash before a quote,
// n or r does not survive.
func doubleQuoted(s string) (string, bool) {
	q := token.QuoteDouble(s)
	sc := token.NewScanner(q)
	got, err := token.ScanQuoted(sc)
	return q, err == nil && sc.EOF() && got == s
}

func isWord(s string, es *EncState) bool {
	return eval.IsTrue(es.version, s) || eval.IsFalse(es.version, s) || eval.IsNullWord(s)
}

// reloadsAsString reports whether bare s loads back as the string s.
func reloadsAsString(s string, es *EncState) bool {
	ev := eval.Evaluator{Version: es.version, ObjectTag: es.objectTag}
	v, err := ev.Scalar(s)
	return err == nil && v.Type == value.StringType && v.String == s
}
