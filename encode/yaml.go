package encode

import (
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/eon-format/go-eon/ir"
)

func encodeYAML(node *ir.Node, w *bytes.Buffer, es *EncState) error {
	v, err := toYAML(node, es)
	if err != nil {
		return err
	}
	indent := 2
	if es.pretty && es.indent > 0 {
		indent = es.indent
	}
	d, err := yaml.MarshalWithOptions(v, yaml.Indent(indent))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	w.Write(bytes.TrimSuffix(d, []byte("\n")))
	return nil
}

// toYAML converts node to values go-yaml marshals in order.  Numbers
// without an int64 or float64 value are converted to float64.
func toYAML(node *ir.Node, es *EncState) (any, error) {
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, 0, len(node.Fields))
		for i, f := range node.Fields {
			v, err := toYAML(node.Values[i], es)
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: f.String, Value: v})
		}
		if es.sortKeys {
			res = sortedMapSlice(res)
		}
		return res, nil
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			v, err := toYAML(elt, es)
			if err != nil {
				return nil, err
			}
			res[i] = v
		}
		return res, nil
	case ir.NumberType:
		switch {
		case node.Int64 != nil:
			return *node.Int64, nil
		case node.Float64 != nil:
			if _, err := FormatFloat(*node.Float64); err != nil {
				return nil, err
			}
			return *node.Float64, nil
		}
		f, err := strconv.ParseFloat(node.Number, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: number %s: %w", ErrEncoding, node.Number, err)
		}
		return f, nil
	case ir.StringType:
		return node.String, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NullType:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: unknown node type %d", ErrEncoding, int(node.Type))
	}
}

func sortedMapSlice(m yaml.MapSlice) yaml.MapSlice {
	res := slices.Clone(m)
	slices.SortStableFunc(res, func(a, b yaml.MapItem) int {
		return strings.Compare(a.Key.(string), b.Key.(string))
	})
	return res
}
