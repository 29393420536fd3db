package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	JSONFormat Format = iota
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

var names = map[string]Format{
	"j":    JSONFormat,
	"json": JSONFormat,
	"y":    YAMLFormat,
	"yaml": YAMLFormat,
	"yml":  YAMLFormat,
}

// ParseFormat accepts a format name or its first letter.
func ParseFormat(v string) (Format, error) {
	if f, ok := names[strings.ToLower(v)]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

// FromPath guesses the format of a file from its extension.
func FromPath(p string) (Format, bool) {
	ext := strings.TrimPrefix(filepath.Ext(p), ".")
	if len(ext) < 2 {
		return 0, false
	}
	f, err := ParseFormat(ext)
	return f, err == nil
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	if f != JSONFormat && f != YAMLFormat {
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
	return []byte(f.name()), nil
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) name() string {
	if f == YAMLFormat {
		return "yaml"
	}
	return "json"
}

// Suffix is the file extension for f, with the dot.
func (f Format) Suffix() string {
	if _, err := f.MarshalText(); err != nil {
		return ""
	}
	return "." + f.name()
}

func Formats() []Format {
	return []Format{JSONFormat, YAMLFormat}
}
