package eval

import (
	"math"
	"strconv"
	"strings"

	"github.com/grafana/regexp"
)

var thousandsRE = regexp.MustCompile(`^[+-]?[0-9,]+(\.[0-9]+)?$`)

// IsDigits reports whether s is non-empty and all ASCII digits.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !asciiDigit(s[i]) {
			return false
		}
	}
	return true
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// IsNumeric reports whether s is a decimal number: optional leading
// whitespace and sign, digits with an optional fraction (or a fraction
// alone) and an optional exponent. It does not depend on the locale.
func IsNumeric(s string) bool {
	i := 0
	n := len(s)
	for i < n && strings.IndexByte(" \t\n\r\v\f", s[i]) != -1 {
		i++
	}
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intDigits := digits(s[i:])
	i += intDigits
	fracDigits := 0
	if i < n && s[i] == '.' {
		i++
		fracDigits = digits(s[i:])
		i += fracDigits
	}
	if intDigits+fracDigits == 0 {
		return false
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < n && (s[j] == '+' || s[j] == '-') {
			j++
		}
		expDigits := digits(s[j:])
		if expDigits == 0 {
			return false
		}
		i = j + expDigits
	}
	return i == n
}

func digits(s string) int {
	i := 0
	for i < len(s) && asciiDigit(s[i]) {
		i++
	}
	return i
}

// IsThousands reports whether s is digits with optional thousands commas,
// sign and fraction, such as 1,234.5.
func IsThousands(s string) bool {
	return thousandsRE.MatchString(s)
}

// baseInt reads the digits of s valid in base, skipping any other byte.
// Past the int64 range the result is a float.
func baseInt(s string, base int) (int64, float64, bool) {
	var (
		n        int64
		f        float64
		overflow bool
	)
	b := int64(base)
	for i := 0; i < len(s); i++ {
		d := digitVal(s[i])
		if d < 0 || d >= b {
			continue
		}
		f = f*float64(base) + float64(d)
		if overflow {
			continue
		}
		if n > (math.MaxInt64-d)/b {
			overflow = true
			continue
		}
		n = n*b + d
	}
	return n, f, !overflow
}

func digitVal(c byte) int64 {
	switch {
	case c >= '0' && c <= '9':
		return int64(c - '0')
	case c >= 'a' && c <= 'f':
		return int64(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int64(c-'A') + 10
	}
	return -1
}

func thousands(s string) (int64, float64, bool) {
	clean := strings.ReplaceAll(s, ",", "")
	clean = strings.TrimPrefix(clean, "+")
	f, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		f = 0
	}
	intPart, _, _ := strings.Cut(clean, ".")
	i, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		if intPart != "" && intPart != "-" {
			return 0, f, false
		}
		i = 0
	}
	return i, f, float64(i) == f
}
