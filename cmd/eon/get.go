package main

import (
	"fmt"
	"io"

	"github.com/signadot/eon-format/go-eon/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path, err := argPath(args[0])
	if err != nil {
		return err
	}
	for i, arg := range inputs(args[1:]) {
		if err := queryArg(cfg.MainConfig, cc, arg, path, false, i > 0); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: list requires one argument, a path", cli.ErrUsage)
	}
	path, err := argPath(args[0])
	if err != nil {
		return err
	}
	for i, arg := range inputs(args[1:]) {
		if err := queryArg(cfg.MainConfig, cc, arg, path, true, i > 0); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, path, err)
		}
	}
	return nil
}

func argPath(path string) (*ir.Path, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	p, err := ir.ParsePath(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return p, nil
}

func queryArg(cfg *MainConfig, cc *cli.Context, arg string, path *ir.Path, list, sep bool) error {
	target, err := getObjFile(cc, arg, cfg.fileParseOpts(arg)...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return writePath(cfg, cc.Out, target, path, list, sep)
}

func writePath(cfg *MainConfig, w io.Writer, target *ir.Node, path *ir.Path, list, sep bool) error {
	var res *ir.Node
	if list {
		res = ir.FromSlice(target.ListParsedPath(path))
	} else {
		var err error
		res, err = target.GetParsedPath(path)
		if err != nil {
			return err
		}
	}
	if sep {
		if err := writeSep(w); err != nil {
			return err
		}
	}
	if err := writeDoc(cfg, w, res); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
