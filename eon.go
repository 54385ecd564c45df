package eon

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/signadot/eon-format/go-eon/encode"
	"github.com/signadot/eon-format/go-eon/ir"
	"github.com/signadot/eon-format/go-eon/parse"
)

// IOError reports a failure to read or write a document, as distinct
// from a document which does not parse.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("eon: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("eon: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Loads parses an EON document.
func Loads(s string, opts ...parse.ParseOption) (*ir.Node, error) {
	return parse.ParseString(s, opts...)
}

// Dumps renders node as EON text.
func Dumps(node *ir.Node, opts ...encode.EncodeOption) (string, error) {
	return encode.EncodeString(node, opts...)
}

// Load reads all of r and parses it.
func Load(r io.Reader, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{Op: "read", Err: err}
	}
	return parse.Parse(d, opts...)
}

// Dump writes node to w.  Nothing is written if node cannot be encoded.
func Dump(node *ir.Node, w io.Writer, opts ...encode.EncodeOption) error {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, opts...); err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

func LoadFile(path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	return parse.Parse(d, opts...)
}

// DumpFile writes node to the file at path followed by a newline,
// replacing its contents.
func DumpFile(path string, node *ir.Node, opts ...encode.EncodeOption) error {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, opts...); err != nil {
		return err
	}
	buf.WriteByte('\n')
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	return nil
}

// Unmarshal parses d into a dynamic Go value as produced by ir.ToAny.
func Unmarshal(d []byte, opts ...parse.ParseOption) (any, error) {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return ir.ToAny(node), nil
}

// Marshal renders a dynamic Go value, converted with ir.FromAny, as EON
// text.
func Marshal(v any, opts ...encode.EncodeOption) ([]byte, error) {
	node, err := ir.FromAny(v)
	if err != nil {
		return nil, err
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
