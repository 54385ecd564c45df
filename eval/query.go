package eval

import (
	"errors"
	"fmt"

	"github.com/signadot/eon-format/go-eon/debug"
	"github.com/signadot/eon-format/go-eon/ir"

	"github.com/expr-lang/expr"
)

var ErrQuery = errors.New("query error")

type Env map[string]any

// DocName is the name under which the whole document is visible to a
// query.
const DocName = "doc"

// QueryEnv returns the variables visible to a query over doc: the
// top-level fields of doc if it is an object, doc itself as DocName, and
// then vars, which take precedence.
func QueryEnv(doc *ir.Node, vars Env) Env {
	env := Env{}
	if doc.Type == ir.ObjectType {
		for i, f := range doc.Fields {
			env[f.String] = ir.ToAny(doc.Values[i])
		}
	}
	env[DocName] = ir.ToAny(doc)
	for k, v := range vars {
		env[k] = v
	}
	return env
}

// Query evaluates the expr-lang expression src over doc and converts the
// result to a node.
func Query(doc *ir.Node, src string, vars Env) (*ir.Node, error) {
	env := QueryEnv(doc, vars)
	opts := append([]expr.Option{expr.Env(map[string]any(env))}, exprOpts(doc)...)
	prg, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %w", ErrQuery, src, err)
	}
	out, err := expr.Run(prg, map[string]any(env))
	if err != nil {
		return nil, fmt.Errorf("%w: run %q: %w", ErrQuery, src, err)
	}
	if debug.Query() {
		debug.Logf("query %q: %T", src, out)
	}
	res, err := ir.FromAny(out)
	if err != nil {
		return nil, fmt.Errorf("%w: result of %q: %w", ErrQuery, src, err)
	}
	return res, nil
}

// Test evaluates src over doc and reports whether the result is truthy.
func Test(doc *ir.Node, src string, vars Env) (bool, error) {
	res, err := Query(doc, src, vars)
	if err != nil {
		return false, err
	}
	return ir.Truth(res), nil
}
