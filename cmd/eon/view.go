package main

import (
	"fmt"
	"io"

	"github.com/signadot/eon-format/go-eon/encode"
	"github.com/signadot/eon-format/go-eon/ir"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	files := inputs(args)
	for i, file := range files {
		y, err := getObjFile(cc, file, cfg.fileParseOpts(file)...)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if i > 0 {
			if err := writeSep(cc.Out); err != nil {
				return err
			}
		}
		if err := writeDoc(cfg.MainConfig, cc.Out, y); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}

// writeDoc encodes y to w followed by a newline.
func writeDoc(cfg *MainConfig, w io.Writer, y *ir.Node) error {
	if err := encode.Encode(y, w, cfg.encOpts(w)...); err != nil {
		return err
	}
	_, err := w.Write([]byte("\n"))
	return err
}
