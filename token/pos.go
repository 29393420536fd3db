package token

import (
	"fmt"
	"sort"
	"strconv"
)

// PosDoc maps offsets in stripped text back to the input it was stripped
// from.
type PosDoc struct {
	d     []byte
	n     []int
	off   []int
	split int
}

func newPosDoc(d []byte) *PosDoc {
	p := &PosDoc{d: d, off: make([]int, 0, len(d)), split: -1}
	for i, c := range d {
		if c == '\n' {
			p.n = append(p.n, i)
		}
	}
	return p
}

// Split returns the stripped offset of the first bare token which was
// separated from the token before it only by whitespace.
func (p *PosDoc) Split() (int, bool) {
	return p.split, p.split >= 0
}

// LineCol gives the zero based line and column of offset off of the
// input.
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

// Pos returns the position of byte i of the stripped text. The end of the
// stripped text is the end of the input.
func (p *PosDoc) Pos(i int) *Pos {
	if i < len(p.off) {
		return &Pos{I: p.off[i], D: p}
	}
	return &Pos{I: len(p.d), D: p}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
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
	sample := string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
