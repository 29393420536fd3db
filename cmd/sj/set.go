package main

import (
	"fmt"
	"strconv"

	"github.com/signadot/simplejson"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if count(cfg.String, cfg.Bool, cfg.Float, cfg.Null, cfg.Delete) > 1 {
		return fmt.Errorf("%w: at most one of -s -b -f -null -d", cli.ErrUsage)
	}
	nVals := 1
	if cfg.Null || cfg.Delete {
		nVals = 0
	}
	if len(args) < 1+nVals || len(args) > 2+nVals {
		return fmt.Errorf("%w: set requires a path, %d value(s) and at most one file", cli.ErrUsage, nVals)
	}
	file := "-"
	if len(args) == 2+nVals {
		file = args[1+nVals]
	}
	doc, err := getDocFile(cc, file, cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", file, err)
	}
	cur := doc.SetPath(args[0])
	if err := cur.Err(); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	switch {
	case cfg.Delete:
		err = cur.Delete()
	case cfg.Null:
		err = cur.SetNull()
	case cfg.String:
		err = cur.SetString(args[1])
	case cfg.Bool:
		var b bool
		b, err = strconv.ParseBool(args[1])
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		err = cur.SetBool(b)
	case cfg.Float:
		var f float64
		f, err = strconv.ParseFloat(args[1], 32)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		err = cur.SetFloat(float32(f))
	default:
		var v *simplejson.Document
		v, err = simplejson.Parse(args[1], cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding value: %w", err)
		}
		err = cur.Set(v)
	}
	if err != nil {
		return fmt.Errorf("error setting %s: %w", cur.Path(), err)
	}
	return writeDoc(cfg.MainConfig, cc, doc)
}

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
}
