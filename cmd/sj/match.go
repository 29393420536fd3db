package main

import (
	"fmt"

	"github.com/signadot/simplejson"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires 1 argument, a match", cli.ErrUsage)
	}
	if cfg.Expr && cfg.Trim {
		return fmt.Errorf("%w: -trim needs a match document, not -e", cli.ErrUsage)
	}
	m, err := getish(cfg.String, cfg.File, cc, args[0])
	if err != nil {
		return err
	}
	var matchDoc *simplejson.Document
	if !cfg.Expr {
		matchDoc, err = simplejson.ParseBytes(m, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding match: %w", err)
		}
	}
	for _, file := range inputs(args[1:]) {
		doc, err := getDocFile(cc, file, cfg.parseOpts()...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		var ok bool
		if cfg.Expr {
			ok, err = doc.Match(string(m))
			if err != nil {
				return fmt.Errorf("error matching %s: %w", file, err)
			}
		} else {
			ok = simplejson.Match(doc.Root(), matchDoc.Root())
		}
		if !ok {
			continue
		}
		if cfg.Trim {
			doc = simplejson.New(simplejson.Trim(matchDoc.Root(), doc.Root()))
		}
		if err := writeDoc(cfg.MainConfig, cc, doc); err != nil {
			return err
		}
	}
	return nil
}
