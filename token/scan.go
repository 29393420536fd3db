package token

import "strings"

// Delim is one of the six structural characters of JSON.
type Delim byte

const (
	Colon   Delim = ':'
	Comma   Delim = ','
	LCurl   Delim = '{'
	RCurl   Delim = '}'
	LSquare Delim = '['
	RSquare Delim = ']'
)

const delims = ":,{}[]"

func (d Delim) String() string {
	return string(rune(d))
}

func (d Delim) IsOpen() bool {
	return d == LCurl || d == LSquare
}

func (d Delim) IsClose() bool {
	return d == RCurl || d == RSquare
}

// Match returns the closing delimiter for an opening one, and the reverse.
func (d Delim) Match() Delim {
	switch d {
	case LCurl:
		return RCurl
	case RCurl:
		return LCurl
	case LSquare:
		return RSquare
	case RSquare:
		return LSquare
	}
	return d
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// Strip removes spaces, tabs, newlines and carriage returns from in. When
// quoteAware is set, whitespace inside string literals is kept, and
// whitespace which separates two bare tokens, as in "[1 2]", is recorded
// in the PosDoc (see Split) rather than silently joining them. The PosDoc
// locates bytes of the result in in.
func Strip(in []byte, quoteAware bool) (string, *PosDoc) {
	var b strings.Builder
	b.Grow(len(in))
	pd := newPosDoc(in)
	gap := false
	keep := func(i int) {
		if gap && quoteAware && pd.split < 0 && b.Len() > 0 {
			prev := in[pd.off[len(pd.off)-1]]
			if !isDelim(prev) && !isDelim(in[i]) {
				pd.split = len(pd.off)
			}
		}
		gap = false
		b.WriteByte(in[i])
		pd.off = append(pd.off, i)
	}
	quoted := false
	for i := 0; i < len(in); i++ {
		c := in[i]
		if quoteAware {
			if quoted {
				keep(i)
				switch c {
				case '\\':
					if i+1 < len(in) {
						i++
						keep(i)
					}
				case '"':
					quoted = false
				}
				continue
			}
			if c == '"' {
				quoted = true
			}
		}
		if isSpace(c) {
			gap = true
			continue
		}
		keep(i)
	}
	return b.String(), pd
}

func isDelim(c byte) bool {
	return strings.IndexByte(delims, c) >= 0
}

// Next returns the leftmost delimiter in s and its offset. When quoteAware
// is set, delimiters inside string literals are passed over; s must then
// start outside of a literal.
func Next(s string, quoteAware bool) (Delim, int, bool) {
	if !quoteAware {
		i := strings.IndexAny(s, delims)
		if i < 0 {
			return 0, -1, false
		}
		return Delim(s[i]), i, true
	}
	quoted := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if quoted {
			switch c {
			case '\\':
				i++
			case '"':
				quoted = false
			}
			continue
		}
		if c == '"' {
			quoted = true
			continue
		}
		if isDelim(c) {
			return Delim(c), i, true
		}
	}
	return 0, -1, false
}
