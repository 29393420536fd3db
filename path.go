package simplejson

import "github.com/signadot/simplejson/ir"

// Path returns a copy of the value at p. Paths are written
// "person.skills[1]", with an optional leading "$", and fields holding
// '.' or '[' may be quoted: "$.'a.b'".
func (d *Document) Path(p string) (*Document, error) {
	return d.SetPath(p).Get()
}

// SetPath starts a cursor from a path in the form Path accepts.
func (d *Document) SetPath(p string) Cursor {
	segs, err := ir.ParsePath(p)
	return Cursor{doc: d, path: segs, err: err}
}
