package ir

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"slices"
	"strconv"
)

// FromAny converts a dynamic Go value into a node.
//
// nil, bool, the integer and float kinds, string, json.Number,
// *big.Int, slices and arrays, and maps with string keys are converted
// directly, with map keys in sorted order.  A *Node is cloned.  Other
// values go through encoding/json.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		if x == nil {
			return Null(), nil
		}
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int8:
		return FromInt(int64(x)), nil
	case int16:
		return FromInt(int64(x)), nil
	case int32:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint8:
		return FromInt(int64(x)), nil
	case uint16:
		return FromInt(int64(x)), nil
	case uint32:
		return FromInt(int64(x)), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case *big.Int:
		if x.IsInt64() {
			return FromInt(x.Int64()), nil
		}
		return FromNumber(x.String()), nil
	case json.Number:
		return NumberFromText(string(x))
	case []*Node:
		res := Array()
		for _, e := range x {
			res.Append(e.Clone())
		}
		return res, nil
	case []any:
		res := Array()
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			res.Append(n)
		}
		return res, nil
	case map[string]any:
		res := Object()
		for _, k := range sortedKeys(x) {
			n, err := FromAny(x[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", FieldSegment(k), err)
			}
			res.Set(k, n)
		}
		return res, nil
	}
	return fromReflect(v)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func fromUint(u uint64) *Node {
	if u <= math.MaxInt64 {
		return FromInt(int64(u))
	}
	return FromNumber(strconv.FormatUint(u, 10))
}

func fromReflect(v any) (*Node, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null(), nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			// []byte as encoding/json does it
			break
		}
		res := Array()
		for i := 0; i < rv.Len(); i++ {
			n, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			res.Append(n)
		}
		return res, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		if rv.IsNil() {
			return Null(), nil
		}
		keys := make([]string, 0, rv.Len())
		vals := make(map[string]reflect.Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			keys = append(keys, k)
			vals[k] = iter.Value()
		}
		slices.Sort(keys)
		res := Object()
		for _, k := range keys {
			n, err := FromAny(vals[k].Interface())
			if err != nil {
				return nil, fmt.Errorf("%s: %w", FieldSegment(k), err)
			}
			res.Set(k, n)
		}
		return res, nil
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
	case reflect.Func, reflect.Chan, reflect.Complex64, reflect.Complex128, reflect.UnsafePointer:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
	d, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %T: %w", ErrUnsupportedType, v, err)
	}
	return FromJSON(d)
}

// NumberFromText creates a number node from a decimal literal, choosing
// Int64 for integral literals and Float64 for fractional ones, with the
// textual Number as a fallback when the value is out of range.
func NumberFromText(v string) (*Node, error) {
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '.', 'e', 'E':
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
					return FromNumber(v), nil
				}
				return nil, err
			}
			return FromFloat(f), nil
		}
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return FromNumber(v), nil
		}
		return nil, err
	}
	return FromInt(i), nil
}

// ToAny converts node to a dynamic Go value: nil, bool, int64, float64,
// json.Number (for out of range numbers), string, []any, or
// map[string]any.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NumberType:
		if node.Int64 != nil {
			return *node.Int64
		}
		if node.Float64 != nil {
			return *node.Float64
		}
		return json.Number(node.Number)
	case BoolType:
		return node.Bool
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}
