package token

import (
	"errors"
	"testing"
)

type scanTest struct {
	in   string
	out  string
	rest string
	err  error
}

func TestScanQuoted(t *testing.T) {
	tests := []scanTest{
		{in: `"abc"`, out: `abc`},
		{in: `"abc", 2]`, out: `abc`, rest: `, 2]`},
		{in: `'it''s'`, out: `it's`},
		{in: `''`, out: ``},
		{in: `""`, out: ``},
		{in: `"a\"b"`, out: `a"b`},
		{in: `"a\nb\rc"`, out: "a\nb\rc"},
		{in: `"a\tb"`, out: `a\tb`},
		{in: `"a\\b"`, out: `a\\b`},
		{in: `'a\nb'`, out: `a\nb`},
		{in: `'"'`, out: `"`},
		{in: `"'"`, out: `'`},
		{in: "\"line\nbreak\"", out: "line\nbreak"},
		{in: `"∞"x`, out: `∞`, rest: `x`},
		{in: `"unterminated`, err: ErrUnterminatedQuote},
		{in: `'unterminated`, err: ErrUnterminatedQuote},
		{in: `'it''`, err: ErrUnterminatedQuote},
		{in: `"esc\`, err: ErrUnterminatedQuote},
		{in: "\"esc\\\nx\"", err: ErrUnterminatedQuote},
		{in: "\"\xff\"", err: ErrBadUTF8},
	}
	for _, tt := range tests {
		s := NewScanner(tt.in)
		got, err := ScanQuoted(s)
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Errorf("%q: expected %v, got %v", tt.in, tt.err, err)
			}
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("%q: %v does not wrap ErrMalformed", tt.in, err)
			}
			if s.Offset() != 0 {
				t.Errorf("%q: cursor moved on error to %d", tt.in, s.Offset())
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if got != tt.out {
			t.Errorf("%q: got %q want %q", tt.in, got, tt.out)
		}
		if s.Rest() != tt.rest {
			t.Errorf("%q: rest %q want %q", tt.in, s.Rest(), tt.rest)
		}
	}
}

func TestScanPlain(t *testing.T) {
	tests := []struct {
		scanTest
		terms string
	}{
		{scanTest: scanTest{in: `abc, def]`, out: `abc`, rest: `, def]`}, terms: ",]"},
		{scanTest: scanTest{in: `abc]`, out: `abc`, rest: `]`}, terms: ",]"},
		{scanTest: scanTest{in: `,]`, out: `,`, rest: `]`}, terms: ",]"},
		{scanTest: scanTest{in: `key: value}`, out: `key`, rest: `: value}`}, terms: ": "},
		{scanTest: scanTest{in: `a b c`, out: `a b c`}},
		{scanTest: scanTest{in: `value # comment`, out: `value`}},
		{scanTest: scanTest{in: `value#not comment`, out: `value#not comment`}},
		{scanTest: scanTest{in: `abc`, err: ErrNoTerminator}, terms: ",]"},
		{scanTest: scanTest{in: "ab\nc]", err: ErrNoTerminator}, terms: ",]"},
		{scanTest: scanTest{in: ``, err: ErrNoTerminator}, terms: ",]"},
	}
	for _, tt := range tests {
		s := NewScanner(tt.in)
		got, err := ScanPlain(s, tt.terms)
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Errorf("%q: expected %v, got %v", tt.in, tt.err, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if got != tt.out {
			t.Errorf("%q: got %q want %q", tt.in, got, tt.out)
		}
		if s.Rest() != tt.rest {
			t.Errorf("%q: rest %q want %q", tt.in, s.Rest(), tt.rest)
		}
	}
}

func TestSyntaxErrPos(t *testing.T) {
	s := NewScannerFile("[1,\n  \"x", "doc.yml")
	s.Advance(6)
	_, err := ScanQuoted(s)
	var serr *SyntaxErr
	if !errors.As(err, &serr) {
		t.Fatalf("expected *SyntaxErr, got %T", err)
	}
	if serr.Pos.Line() != 1 || serr.Pos.Col() != 2 {
		t.Errorf("got line %d col %d", serr.Pos.Line(), serr.Pos.Col())
	}
	t.Log(err)
}

func TestScannerAdvance(t *testing.T) {
	s := NewScanner("abc")
	s.Advance(2)
	if s.Offset() != 2 {
		t.Fatalf("offset %d", s.Offset())
	}
	if s.Rest() != "c" {
		t.Errorf("rest %q", s.Rest())
	}
	s.Advance(10)
	if !s.EOF() {
		t.Error("expected EOF")
	}
	if _, ok := s.Peek(); ok {
		t.Error("peek at EOF")
	}
}
