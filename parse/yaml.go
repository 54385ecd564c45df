package parse

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/signadot/eon-format/go-eon/ir"
)

func parseYAML(d []byte, opts *parseOpts) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, &ParseError{Err: fmt.Errorf("%w: %w", ErrYAML, err)}
	}
	return fromYAML(v, opts, 1)
}

func fromYAML(v any, opts *parseOpts, depth int) (*ir.Node, error) {
	switch x := v.(type) {
	case yaml.MapSlice:
		if opts.maxDepth > 0 && depth > opts.maxDepth {
			return nil, &ParseError{Err: fmt.Errorf("%w: more than %d levels", ErrTooDeep, opts.maxDepth)}
		}
		res := ir.Object()
		for _, item := range x {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			val, err := fromYAML(item.Value, opts, depth+1)
			if err != nil {
				return nil, err
			}
			if opts.strictKeys && ir.Get(res, key) != nil {
				return nil, &ParseError{Err: fmt.Errorf("%w %q", ErrDuplicateKey, key)}
			}
			res.Set(key, val)
		}
		return res, nil
	case []any:
		if opts.maxDepth > 0 && depth > opts.maxDepth {
			return nil, &ParseError{Err: fmt.Errorf("%w: more than %d levels", ErrTooDeep, opts.maxDepth)}
		}
		res := ir.Array()
		for _, e := range x {
			elt, err := fromYAML(e, opts, depth+1)
			if err != nil {
				return nil, err
			}
			res.Append(elt)
		}
		return res, nil
	default:
		res, err := ir.FromAny(x)
		if err != nil {
			return nil, &ParseError{Err: fmt.Errorf("%w: %w", ErrYAML, err)}
		}
		return res, nil
	}
}
