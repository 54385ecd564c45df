package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/signadot/eon-format/go-eon/parse"

	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	bad := 0
	for _, file := range inputs(args) {
		d, err := readArg(cc.In, file)
		if err == nil {
			err = checkDoc(d, cfg.fileParseOpts(file)...)
		}
		if err == nil {
			continue
		}
		bad++
		if !cfg.Quiet {
			reportCheck(cc.Out, file, err)
		}
	}
	if bad != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkDoc(d []byte, opts ...parse.ParseOption) error {
	_, err := parse.Parse(d, opts...)
	return err
}

func reportCheck(w io.Writer, file string, err error) {
	var pe *parse.ParseError
	if errors.As(err, &pe) {
		line, col := pe.LineCol()
		theLog.Warn("invalid document", "file", file, "line", line, "col", col)
	}
	fmt.Fprintf(w, "%s: %v\n", file, err)
}
