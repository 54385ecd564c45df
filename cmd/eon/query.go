package main

import (
	"fmt"
	"strings"

	"github.com/signadot/eon-format/go-eon/eval"
	"github.com/signadot/eon-format/go-eon/ir"
	"github.com/signadot/eon-format/go-eon/parse"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: query requires one argument, an expression", cli.ErrUsage)
	}
	src := args[0]
	allTrue := true
	for i, arg := range inputs(args[1:]) {
		doc, err := getObjFile(cc, arg, cfg.fileParseOpts(arg)...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		res, err := eval.Query(doc, src, eval.Env(cfg.Vars))
		if err != nil {
			return fmt.Errorf("error querying %s: %w", arg, err)
		}
		if cfg.Test {
			allTrue = allTrue && ir.Truth(res)
			continue
		}
		if i > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, res); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	if !allTrue {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// varFunc sets vars[name] from a name=val argument, where val is an eon
// value.
func varFunc(vars map[string]any, a string) error {
	name, val, ok := strings.Cut(a, "=")
	if !ok || name == "" {
		return fmt.Errorf("%w: expected name=val, got %q", cli.ErrUsage, a)
	}
	node, err := parse.ParseString(val)
	if err != nil {
		return fmt.Errorf("%w: value of %s: %w", cli.ErrUsage, name, err)
	}
	vars[name] = ir.ToAny(node)
	return nil
}
