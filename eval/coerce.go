package eval

import (
	"math"
	"strconv"

	"github.com/signadot/yflow/value"
)

// ToInt coerces v to an integer: floats are truncated, booleans are 0 or
// 1, strings yield their leading decimal integer (0 if none) and
// everything else 0.
func ToInt(v *value.Value) int64 {
	switch v.Type {
	case value.IntType:
		return v.Int
	case value.FloatType:
		return floatToInt(v.Float)
	case value.BoolType:
		if v.Bool {
			return 1
		}
		return 0
	case value.StringType:
		return leadingInt(v.String)
	default:
		return 0
	}
}

func floatToInt(f float64) int64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt64:
		return math.MaxInt64
	case f <= math.MinInt64:
		return math.MinInt64
	}
	return int64(f)
}

func leadingInt(s string) int64 {
	s = trim(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	n := digits(s[i:])
	if n == 0 {
		return 0
	}
	v, err := strconv.ParseInt(s[:i+n], 10, 64)
	if err != nil {
		if s[0] == '-' {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return v
}
