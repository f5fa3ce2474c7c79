package token

// Scanner is a cursor over inline text.
type Scanner struct {
	d   string
	i   int
	doc *PosDoc
}

func NewScanner(d string) *Scanner {
	return NewScannerFile(d, "")
}

// NewScannerFile is NewScanner with a filename used in error positions.
func NewScannerFile(d, filename string) *Scanner {
	return &Scanner{d: d, doc: NewPosDoc(d, filename)}
}

func (s *Scanner) Offset() int { return s.i }

func (s *Scanner) EOF() bool { return s.i >= len(s.d) }

// Peek returns the byte under the cursor, false at the end of the text.
func (s *Scanner) Peek() (byte, bool) {
	if s.i >= len(s.d) {
		return 0, false
	}
	return s.d[s.i], true
}

func (s *Scanner) Advance(n int) {
	s.i = min(s.i+n, len(s.d))
}

// Rest returns the unconsumed text.
func (s *Scanner) Rest() string {
	return s.d[s.i:]
}

func (s *Scanner) Pos() *Pos {
	return s.doc.Pos(s.i)
}

// Err returns a syntax error at the cursor.
func (s *Scanner) Err(e error) error {
	return NewSyntaxErr(e, s.Pos())
}

func (s *Scanner) ErrAt(e error, off int) error {
	return NewSyntaxErr(e, s.doc.Pos(off))
}
