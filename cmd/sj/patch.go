package main

import (
	"fmt"

	"github.com/signadot/simplejson"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires 1 argument, a patch", cli.ErrUsage)
	}
	p, err := getish(cfg.String, cfg.File, cc, args[0])
	if err != nil {
		return err
	}
	for _, file := range inputs(args[1:]) {
		doc, err := getDocFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		var res *simplejson.Document
		if cfg.Merge {
			res, err = doc.MergePatch(p)
		} else {
			res, err = doc.ApplyPatch(p)
		}
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
		}
		if err := writeDoc(cfg.MainConfig, cc, res); err != nil {
			return err
		}
	}
	return nil
}
