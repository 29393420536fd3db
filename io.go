package simplejson

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/simplejson/encode"
	"github.com/signadot/simplejson/parse"
)

// Read parses all of r.
func Read(r io.Reader, opts ...parse.ParseOption) (*Document, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return ParseBytes(d, opts...)
}

func Load(path string, opts ...parse.ParseOption) (*Document, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := ParseBytes(d, opts...)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return doc, nil
}

// Save writes d to path followed by a newline.
func (d *Document) Save(path string, opts ...encode.EncodeOption) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if err := encode.Encode(d.root, f, opts...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write encodes d to w followed by a newline.
func (d *Document) Write(w io.Writer, opts ...encode.EncodeOption) error {
	return encode.Encode(d.root, w, opts...)
}
