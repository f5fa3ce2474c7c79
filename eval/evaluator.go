package eval

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/signadot/yflow/format"
	"github.com/signadot/yflow/token"
	"github.com/signadot/yflow/value"
)

const (
	StrTag = "!str"
	IntTag = "! "

	// DefaultObjectTag introduces a serialized application object.
	DefaultObjectTag = "!!php/object:"
)

// Evaluator converts the raw text of unquoted scalars to values. The zero
// value uses the default spec version, the default object tag, no object
// codec and the local time zone.
type Evaluator struct {
	Version   format.Version
	Codec     value.ObjectCodec
	ObjectTag string
	Location  *time.Location
}

func (e Evaluator) objectTag() string {
	if e.ObjectTag == "" {
		return DefaultObjectTag
	}
	return e.ObjectTag
}

func (e Evaluator) location() *time.Location {
	if e.Location == nil {
		return time.Local
	}
	return e.Location
}

// Scalar evaluates raw. The only error comes from scanning the operand of
// the "! " tag.
func (e Evaluator) Scalar(raw string) (*value.Value, error) {
	s := trim(raw)
	switch {
	case s == "" || IsNullWord(s):
		return value.Null(), nil
	case strings.HasPrefix(s, StrTag):
		if len(s) <= len(StrTag)+1 {
			return value.FromString(""), nil
		}
		return value.FromString(s[len(StrTag)+1:]), nil
	case strings.HasPrefix(s, IntTag):
		v, err := e.operand(s[len(IntTag):])
		if err != nil {
			return nil, err
		}
		return value.FromInt(ToInt(v)), nil
	case strings.HasPrefix(s, e.objectTag()):
		return e.object(s[len(e.objectTag()):]), nil
	case IsDigits(s):
		return digitsValue(s), nil
	case IsTrue(e.Version, s):
		return value.FromBool(true), nil
	case IsFalse(e.Version, s):
		return value.FromBool(false), nil
	case strings.HasPrefix(s, "0x"):
		return baseValue(s, 16), nil
	case IsNumeric(s):
		f, _ := strconv.ParseFloat(s, 64)
		return value.FromFloat(f), nil
	case strings.EqualFold(s, ".inf"), strings.EqualFold(s, ".nan"):
		return value.FromFloat(math.Inf(1)), nil
	case strings.EqualFold(s, "-.inf"):
		return value.FromFloat(math.Inf(-1)), nil
	case IsThousands(s):
		i, f, isInt := thousands(s)
		if isInt {
			return value.FromInt(i), nil
		}
		return value.FromFloat(f), nil
	case IsTimestamp(s):
		if ts, ok := ParseTimestamp(s, e.location()); ok {
			return value.FromInt(ts), nil
		}
		return value.FromString(s), nil
	default:
		return value.FromString(s), nil
	}
}

// operand scans the text following the "! " tag as a whole scalar.
func (e Evaluator) operand(d string) (*value.Value, error) {
	s := token.NewScanner(d)
	if c, ok := s.Peek(); ok && token.IsQuote(c) {
		str, err := token.ScanQuoted(s)
		if err != nil {
			return nil, err
		}
		return value.FromString(str), nil
	}
	plain, err := token.ScanPlain(s, "")
	if err != nil {
		return nil, err
	}
	return e.Scalar(plain)
}

func (e Evaluator) object(payload string) *value.Value {
	if e.Codec == nil {
		return value.Opaque(payload, nil)
	}
	obj, err := e.Codec.Unmarshal(payload)
	if err != nil {
		return value.Opaque(payload, nil)
	}
	return value.Opaque(payload, obj)
}

func digitsValue(s string) *value.Value {
	if s[0] == '0' {
		return baseValue(s, 8)
	}
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil || strconv.FormatInt(i, 10) != s {
		return value.FromString(s)
	}
	return value.FromInt(i)
}

func baseValue(s string, base int) *value.Value {
	i, f, ok := baseInt(s, base)
	if !ok {
		return value.FromFloat(f)
	}
	return value.FromInt(i)
}

func trim(s string) string {
	return strings.Trim(s, " \t\n\r\x00\x0b")
}
