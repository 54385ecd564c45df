package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/eon-format/go-eon/encode"
	"github.com/signadot/eon-format/go-eon/format"
	"github.com/signadot/eon-format/go-eon/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Pretty bool `cli:"name=p aliases=pretty desc='indented output'"`
	Indent int  `cli:"name=indent desc='spaces per level for indented output'"`
	Sort   bool `cli:"name=sort desc='sort object keys on output'"`
	Strict bool `cli:"name=strict desc='reject repeated object keys'"`

	E bool `cli:"name=e aliases=eon desc='do i/o in eon'"`
	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) ioFormat(explicit *format.Format) format.Format {
	var f format.Format
	switch {
	case cfg.E:
		f = format.EONFormat
	case cfg.Y:
		f = format.YAMLFormat
	case cfg.J:
		f = format.JSONFormat
	}
	if explicit != nil {
		f = *explicit
	}
	return f
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	res := []parse.ParseOption{
		parse.ParseFormat(cfg.ioFormat(cfg.InFormat)),
	}
	if cfg.Strict {
		res = append(res, parse.StrictKeys())
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.ioFormat(cfg.OutFormat)),
		encode.EncodeSortKeys(cfg.Sort),
	}
	if cfg.Pretty {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	if cfg.colorOn(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// colorOn reports whether output to w is colored: -color was given, or
// it was not given at all and w is a terminal.
func (cfg *MainConfig) colorOn(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.optSet("color") {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// optSet reports whether the main option name was given on the command
// line.
func (cfg *MainConfig) optSet(name string) bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q aliases=quiet desc='only set the exit code'"`

	Check *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}

type QueryConfig struct {
	*MainConfig
	Vars map[string]any

	Test bool `cli:"name=t aliases=test desc='exit 1 unless the result is truthy'"`

	Query *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Edits   bool `cli:"name=edits desc='show character edits of changed strings'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=merge desc='apply a JSON merge patch instead of a JSON patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}
