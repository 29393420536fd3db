package libdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/simplejson/encode"
	"github.com/signadot/simplejson/ir"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

const indent = "  "

type Op int

const (
	Equal Op = iota
	Insert
	Delete
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	default:
		return " "
	}
}

// Line is one line of either side of a diff.
type Line struct {
	Op   Op
	Text string
}

type Result struct {
	Lines []Line
}

// Diff compares the indented encodings of from and to line by line.
func Diff(from, to *ir.Node) (*Result, error) {
	fromText, err := encode.String(from, encode.EncodeIndent(indent))
	if err != nil {
		return nil, fmt.Errorf("error encoding from: %w", err)
	}
	toText, err := encode.String(to, encode.EncodeIndent(indent))
	if err != nil {
		return nil, fmt.Errorf("error encoding to: %w", err)
	}
	return DiffText(fromText+"\n", toText+"\n"), nil
}

func DiffText(from, to string) *Result {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	res := &Result{}
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			res.Lines = append(res.Lines, Line{Op: op, Text: strings.TrimSuffix(ln, "\n")})
		}
	}
	return res
}

func (r *Result) Changed() bool {
	for i := range r.Lines {
		if r.Lines[i].Op != Equal {
			return true
		}
	}
	return false
}

// Reverse returns the diff which takes to back to from.
func (r *Result) Reverse() *Result {
	res := &Result{Lines: make([]Line, len(r.Lines))}
	for i, ln := range r.Lines {
		switch ln.Op {
		case Insert:
			ln.Op = Delete
		case Delete:
			ln.Op = Insert
		}
		res.Lines[i] = ln
	}
	return res
}

// Write renders r with one marked line per diff line, optionally colored.
func (r *Result) Write(w io.Writer, useColor bool) error {
	ins := color.New(color.FgGreen).SprintFunc()
	del := color.New(color.FgRed).SprintFunc()
	for _, ln := range r.Lines {
		text := ln.Op.String() + " " + ln.Text
		if useColor {
			switch ln.Op {
			case Insert:
				text = ins(text)
			case Delete:
				text = del(text)
			}
		}
		if _, err := io.WriteString(w, text+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func (r *Result) String() string {
	var b strings.Builder
	_ = r.Write(&b, false)
	return b.String()
}
