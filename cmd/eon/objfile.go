package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/eon-format/go-eon/format"
	"github.com/signadot/eon-format/go-eon/ir"
	"github.com/signadot/eon-format/go-eon/parse"

	"github.com/scott-cotton/cli"
)

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := readArg(cc.In, path)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, opts...)
}

func readArg(in io.Reader, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = in
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

// fileParseOpts is parseOpts with the input format taken from the suffix
// of path when no format was given on the command line.
func (cfg *MainConfig) fileParseOpts(path string) []parse.ParseOption {
	res := cfg.parseOpts()
	if cfg.InFormat != nil || count(cfg.E, cfg.J, cfg.Y) != 0 {
		return res
	}
	if f, ok := format.FromPath(path); ok {
		res = append(res, parse.ParseFormat(f))
	}
	return res
}

// inputs returns args, or stdin when there are none.
func inputs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

func writeSep(w io.Writer) error {
	_, err := w.Write([]byte("---\n"))
	return err
}
