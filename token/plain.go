package token

import (
	"strings"
)

// ScanPlain scans an unquoted scalar at the cursor.
//
// With no terminators it consumes the rest of the text, drops an inline
// comment introduced by " #" and trims trailing whitespace.
//
// With terminators it takes at least one byte and then everything up to,
// not including, the first terminator. The token may not span a newline.
// If no terminator follows, ErrNoTerminator is returned and the cursor is
// left unchanged.
func ScanPlain(s *Scanner, terms string) (string, error) {
	if terms == "" {
		res := StripComment(s.Rest())
		s.Advance(len(s.Rest()))
		return res, nil
	}
	d := s.Rest()
	n := len(d)
	if n == 0 || d[0] == '\n' {
		return "", s.Err(ErrNoTerminator)
	}
	for j := 1; j < n; j++ {
		c := d[j]
		if strings.IndexByte(terms, c) != -1 {
			s.Advance(j)
			return d[:j], nil
		}
		if c == '\n' {
			break
		}
	}
	return "", s.Err(ErrNoTerminator)
}

// StripComment removes everything from the first " #" on and trims
// trailing whitespace.
func StripComment(v string) string {
	i := strings.Index(v, " #")
	if i == -1 {
		return v
	}
	return strings.TrimRight(v[:i], " \t\n\r\x00\x0b")
}
