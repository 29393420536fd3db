package main

import (
	"runtime"

	"github.com/signadot/simplejson"

	"github.com/scott-cotton/cli"

	"golang.org/x/sync/errgroup"
)

type checkResult struct {
	doc *simplejson.Document
	err error
}

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	files := inputs(args)
	res := make([]checkResult, len(files))
	g := &errgroup.Group{}
	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	g.SetLimit(jobs)
	for i, file := range files {
		g.Go(func() error {
			res[i].doc, res[i].err = getDocFile(cc, file, cfg.parseOpts()...)
			return nil
		})
	}
	_ = g.Wait()
	failed := 0
	for i, file := range files {
		if err := res[i].err; err != nil {
			theLog.Error("invalid", "file", file, "error", err)
			failed++
			continue
		}
		if !cfg.Quiet {
			doc := res[i].doc
			theLog.Info("ok", "file", file, "type", doc.Type(), "len", doc.Len())
		}
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
