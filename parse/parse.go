package parse

import (
	"strings"

	"github.com/signadot/yflow/debug"
	"github.com/signadot/yflow/token"
	"github.com/signadot/yflow/value"
)

const space = " \t\n\r\x00\x0b"

type parser struct {
	opts *parseOpts
}

// Load parses an inline fragment. Surrounding whitespace is ignored and
// empty text yields the empty string. Text starting with '[' or '{' is a
// sequence or mapping, anything else a single scalar. Every error wraps
// ErrMalformed.
func Load(text string, opts ...ParseOption) (*value.Value, error) {
	o := &parseOpts{}
	for _, f := range opts {
		f(o)
	}
	p := &parser{opts: o}
	res, err := p.load(text)
	if debug.Load() {
		if err != nil {
			debug.Errorf("load", err, "in", text)
		} else {
			debug.Logf("load", "in", text, "out", res)
		}
	}
	return res, err
}

func (p *parser) load(text string) (*value.Value, error) {
	end := len(strings.TrimRight(text, space))
	start := end - len(strings.TrimLeft(text[:end], space))
	if start == end {
		return value.FromString(""), nil
	}
	s := token.NewScannerFile(text[:end], p.opts.filename)
	s.Advance(start)
	var (
		res *value.Value
		err error
	)
	switch text[start] {
	case '[':
		res, err = p.parseSequence(s)
	case '{':
		res, err = p.parseMapping(s)
	default:
		res, _, err = p.scanScalar(s, "", true)
	}
	if err != nil {
		return nil, err
	}
	if p.opts.strict && !s.EOF() {
		return nil, s.Err(token.ErrTrailing)
	}
	return res, nil
}

// scanScalar scans a quoted or plain scalar at the cursor and reports
// whether it was quoted. Plain text is typed when evaluate is set.
func (p *parser) scanScalar(s *token.Scanner, terms string, evaluate bool) (*value.Value, bool, error) {
	if c, ok := s.Peek(); ok && token.IsQuote(c) {
		str, err := token.ScanQuoted(s)
		if err != nil {
			return nil, true, err
		}
		return value.FromString(str), true, nil
	}
	raw, err := token.ScanPlain(s, terms)
	if err != nil {
		return nil, false, err
	}
	if !evaluate {
		return value.FromString(raw), false, nil
	}
	v, err := p.opts.eval.Scalar(raw)
	if err != nil {
		return nil, false, err
	}
	if debug.Eval() {
		debug.Logf("eval", "raw", raw, "type", v.Type, "value", v)
	}
	return v, false, nil
}

func (p *parser) scanKey(s *token.Scanner) (string, error) {
	if c, ok := s.Peek(); ok && token.IsQuote(c) {
		return token.ScanQuoted(s)
	}
	return token.ScanPlain(s, ": ")
}

func (p *parser) parseSequence(s *token.Scanner) (*value.Value, error) {
	start := s.Offset()
	s.Advance(1)
	res := value.NewSequence()
	for {
		c, ok := s.Peek()
		if !ok {
			return nil, s.ErrAt(token.ErrMalformedSequence, start)
		}
		switch c {
		case '[':
			elt, err := p.parseSequence(s)
			if err != nil {
				return nil, err
			}
			res.Append(elt)
		case '{':
			elt, err := p.parseMapping(s)
			if err != nil {
				return nil, err
			}
			res.Append(elt)
		case ']':
			s.Advance(1)
			return res, nil
		case ',', ' ':
			s.Advance(1)
		default:
			elt, quoted, err := p.scanScalar(s, ",]", true)
			if err != nil {
				return nil, err
			}
			if !quoted && elt.Type == value.StringType && strings.Contains(elt.String, ": ") {
				if m, ok := p.embeddedMapping(elt.String); ok {
					elt = m
				}
			}
			res.Append(elt)
		}
	}
}

// embeddedMapping reads "k: v" in a sequence as a mapping without braces.
// It uses its own scanner so a failure leaves nothing to undo.
func (p *parser) embeddedMapping(text string) (*value.Value, bool) {
	m, err := p.parseMapping(token.NewScanner("{" + text + "}"))
	if err != nil {
		if debug.Load() {
			debug.Logf("not a mapping", "text", text, "err", err)
		}
		return nil, false
	}
	return m, true
}

func (p *parser) parseMapping(s *token.Scanner) (*value.Value, error) {
	start := s.Offset()
	s.Advance(1)
	res := value.NewMapping()
	for {
		c, ok := s.Peek()
		if !ok {
			return nil, s.ErrAt(token.ErrMalformedMapping, start)
		}
		switch c {
		case ' ', ',':
			s.Advance(1)
			continue
		case '}':
			s.Advance(1)
			return res, nil
		}
		key, err := p.scanKey(s)
		if err != nil {
			return nil, err
		}
		val, err := p.mappingValue(s, start)
		if err != nil {
			return nil, err
		}
		res.Set(key, val)
	}
}

func (p *parser) mappingValue(s *token.Scanner, start int) (*value.Value, error) {
	for {
		c, ok := s.Peek()
		if !ok {
			return nil, s.ErrAt(token.ErrMalformedMapping, start)
		}
		switch c {
		case ':', ' ':
			s.Advance(1)
		case '[':
			return p.parseSequence(s)
		case '{':
			return p.parseMapping(s)
		default:
			v, _, err := p.scanScalar(s, ",}", true)
			return v, err
		}
	}
}
