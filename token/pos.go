package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc indexes the line starts of a text for position reporting.
type PosDoc struct {
	d        string
	n        []int
	filename string
}

func NewPosDoc(d, filename string) *PosDoc {
	p := &PosDoc{d: d, filename: filename}
	for i := 0; i < len(d); i++ {
		if d[i] == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	if di == 0 {
		return 0, off
	}
	return di, off - p.n[di-1] - 1
}

func (p *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: i,
		D: p,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	if p.D == nil {
		return 0, p.I
	}
	return p.D.LineCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := "?"
	if p.D != nil {
		sample = p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))]
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	res := fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
	if p.D != nil && p.D.filename != "" {
		res += " of " + p.D.filename
	}
	return res
}
