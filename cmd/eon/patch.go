package main

import (
	"fmt"

	"github.com/signadot/eon-format/go-eon"
	"github.com/signadot/eon-format/go-eon/ir"
	"github.com/signadot/eon-format/go-eon/parse"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch, and optionally files to which to apply it", cli.ErrUsage)
	}
	p, err := getPatch(cfg, cc, args[0])
	if err != nil {
		return err
	}
	for i, file := range inputs(args[1:]) {
		target, err := getObjFile(cc, file, cfg.fileParseOpts(file)...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		res, err := applyPatch(target, p, cfg.Merge)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", file, err)
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
	return nil
}

func applyPatch(doc, p *ir.Node, merge bool) (*ir.Node, error) {
	if merge {
		return eon.MergePatch(doc, p)
	}
	return eon.Patch(doc, p)
}

func getPatch(cfg *PatchConfig, cc *cli.Context, arg string) (*ir.Node, error) {
	var (
		res *ir.Node
		err error
	)
	if cfg.String {
		res, err = parse.ParseString(arg, cfg.parseOpts()...)
	} else {
		res, err = getObjFile(cc, arg, cfg.fileParseOpts(arg)...)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: patch %s: %w", cli.ErrUsage, arg, err)
	}
	return res, nil
}
