package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/simplejson"
	"github.com/signadot/simplejson/parse"

	"github.com/scott-cotton/cli"
)

func getDocFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*simplejson.Document, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	return simplejson.Read(r, opts...)
}

// getish reads an argument which is either literal text or, with f, a
// file.
func getish(s, f bool, cc *cli.Context, arg string) ([]byte, error) {
	if s == f && s {
		return nil, fmt.Errorf("%w: only one of -s, -f may be specified", cli.ErrUsage)
	}
	var r io.Reader
	if f {
		switch arg {
		case "-":
			r = cc.In
		default:
			f, err := os.Open(arg)
			if err != nil {
				return nil, fmt.Errorf("error opening %s: %w", arg, err)
			}
			defer f.Close()
			r = f
		}
	} else {
		r = strings.NewReader(arg)
	}
	return io.ReadAll(r)
}

func writeDoc(cfg *MainConfig, cc *cli.Context, doc *simplejson.Document) error {
	if err := doc.Write(cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return fmt.Errorf("error encoding output: %w", err)
	}
	return nil
}

// inputs returns the files named in args, or stdin when there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
