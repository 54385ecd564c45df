package main

import (
	"fmt"
	"io"

	"github.com/signadot/eon-format/go-eon"
	"github.com/signadot/eon-format/go-eon/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	y1, err := getObjFile(cc, args[0], cfg.fileParseOpts(args[0])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	y2, err := getObjFile(cc, args[1], cfg.fileParseOpts(args[1])...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	d := eon.Diff(y1, y2)
	if len(d) == 0 {
		return nil
	}
	if cfg.Reverse {
		d = libdiff.Reverse(d)
	}
	if err := writeChanges(cc.Out, d, cfg.Edits, cfg.colorOn(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func writeChanges(w io.Writer, cs []libdiff.Change, edits, colored bool) error {
	for i := range cs {
		c := &cs[i]
		line := c.String()
		if edits && len(c.Edits) != 0 {
			line = fmt.Sprintf("~ %s: %s", c.Path, libdiff.StringEditsText(c.Edits))
		}
		if colored {
			line = changeColor(c.Op).Sprint(line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func changeColor(op libdiff.Op) *color.Color {
	attr := color.FgYellow
	switch op {
	case libdiff.Insert:
		attr = color.FgGreen
	case libdiff.Delete:
		attr = color.FgRed
	}
	c := color.New(attr)
	c.EnableColor()
	return c
}
