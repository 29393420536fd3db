package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Path returns the location of n below its root, e.g. "$.person.skills[1]".
func (n *Node) Path() string {
	if n.Parent == nil {
		return "$"
	}
	switch n.Parent.Type {
	case ObjectType:
		prefix := n.Parent.Path() + "."
		f := n.Key
		if f != "" && strings.IndexAny(f, "'.*$[] ") == -1 {
			return prefix + f
		}
		return prefix + "'" + strings.Replace(f, "'", "\\'", -1) + "'"
	case ArrayType:
		return n.Parent.Path() + "[" + strconv.Itoa(n.index()) + "]"
	default:
		panic("parent but not in container")
	}
}

func (n *Node) index() int {
	i := 0
	for c := n.Parent.Child; c != nil && c != n; c = c.Next {
		i++
	}
	return i
}

// Segment is one step of a path: a field of an object or an index of an
// array.
type Segment struct {
	Field   string
	Index   int
	IsIndex bool
}

func (s Segment) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return "." + s.Field
}

// ParsePath parses a path such as "person.skills[1]" or
// "$.a.'b.c'[0]". A leading "$" is optional. Fields are returned
// unescaped.
func ParsePath(p string) ([]Segment, error) {
	p = strings.TrimPrefix(p, "$")
	var res []Segment
	i := 0
	for i < len(p) {
		switch p[i] {
		case '.':
			i++
			if i < len(p) && p[i] == '\'' {
				continue
			}
			j := i
			for j < len(p) && p[j] != '.' && p[j] != '[' {
				j++
			}
			if j == i {
				return nil, fmt.Errorf("%w: empty field at %d in %q", ErrMalformed, i, p)
			}
			res = append(res, Segment{Field: p[i:j]})
			i = j
		case '[':
			j := strings.IndexByte(p[i:], ']')
			if j < 0 {
				return nil, fmt.Errorf("%w: unterminated index in %q", ErrMalformed, p)
			}
			idx, err := strconv.Atoi(p[i+1 : i+j])
			if err != nil {
				return nil, fmt.Errorf("%w: bad index %q: %w", ErrMalformed, p[i+1:i+j], err)
			}
			res = append(res, Segment{Index: idx, IsIndex: true})
			i += j + 1
		case '\'':
			var b strings.Builder
			j := i + 1
			for ; j < len(p) && p[j] != '\''; j++ {
				if p[j] == '\\' && j+1 < len(p) {
					j++
				}
				b.WriteByte(p[j])
			}
			if j == len(p) {
				return nil, fmt.Errorf("%w: unterminated quote in %q", ErrMalformed, p)
			}
			res = append(res, Segment{Field: b.String()})
			i = j + 1
		default:
			if i != 0 {
				return nil, fmt.Errorf("%w: unexpected %q at %d in %q", ErrMalformed, p[i], i, p)
			}
			// a path may start with a bare field
			p = "." + p
		}
	}
	return res, nil
}
