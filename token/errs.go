package token

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is wrapped by every syntax error.
	ErrMalformed = errors.New("malformed inline string")

	ErrUnterminatedQuote = fmt.Errorf("%w: unterminated quoted scalar", ErrMalformed)
	ErrNoTerminator      = fmt.Errorf("%w: missing terminator", ErrMalformed)
	ErrMalformedSequence = fmt.Errorf("%w: malformed inline sequence", ErrMalformed)
	ErrMalformedMapping  = fmt.Errorf("%w: malformed inline mapping", ErrMalformed)
	ErrTrailing          = fmt.Errorf("%w: trailing content", ErrMalformed)
	ErrBadUTF8           = fmt.Errorf("%w: bad utf8", ErrMalformed)
)

type SyntaxErr struct {
	Err error
	Pos Pos
}

func (e *SyntaxErr) Unwrap() error {
	return e.Err
}

func NewSyntaxErr(e error, p *Pos) *SyntaxErr {
	return &SyntaxErr{Err: e, Pos: *p}
}

func (e *SyntaxErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
