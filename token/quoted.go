package token

import (
	"strings"
	"unicode/utf8"
)

func IsQuote(c byte) bool {
	return c == '"' || c == '\''
}

// ScanQuoted scans a quoted scalar at the cursor and returns its
// unescaped text, leaving the cursor past the closing quote.
//
// Inside double quotes any backslash pair is accepted, except a backslash
// before a newline; only \", \n and \r are unescaped. Inside single
// quotes a doubled quote stands for one quote.
func ScanQuoted(s *Scanner) (string, error) {
	c, ok := s.Peek()
	if !ok || !IsQuote(c) {
		return "", s.Err(ErrUnterminatedQuote)
	}
	var (
		n   int
		err error
	)
	if c == '"' {
		n, err = doubleQuotedLen(s.Rest())
	} else {
		n, err = singleQuotedLen(s.Rest())
	}
	if err != nil {
		return "", s.Err(err)
	}
	inner := s.d[s.i+1 : s.i+n-1]
	if !utf8.ValidString(inner) {
		return "", s.Err(ErrBadUTF8)
	}
	s.Advance(n)
	if c == '"' {
		return unescapeDouble(inner), nil
	}
	return strings.ReplaceAll(inner, "''", "'"), nil
}

// doubleQuotedLen returns the length of the double quoted token at the
// start of d, quotes included.
func doubleQuotedLen(d string) (int, error) {
	i := 1
	n := len(d)
	for i < n {
		switch d[i] {
		case '"':
			return i + 1, nil
		case '\\':
			if i+1 >= n || d[i+1] == '\n' {
				return 0, ErrUnterminatedQuote
			}
			i += 2
		default:
			i++
		}
	}
	return 0, ErrUnterminatedQuote
}

func singleQuotedLen(d string) (int, error) {
	i := 1
	n := len(d)
	for i < n {
		if d[i] != '\'' {
			i++
			continue
		}
		if i+1 < n && d[i+1] == '\'' {
			i += 2
			continue
		}
		return i + 1, nil
	}
	return 0, ErrUnterminatedQuote
}

// replacements are applied one after the other over the whole text.
func unescapeDouble(v string) string {
	v = strings.ReplaceAll(v, `\"`, `"`)
	v = strings.ReplaceAll(v, `\n`, "\n")
	return strings.ReplaceAll(v, `\r`, "\r")
}
