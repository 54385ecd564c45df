package ir

import (
	"encoding/json"
	"fmt"

	"github.com/valyala/fastjson"
)

// irBase is the JSON representation of the IR itself, so that a node
// can be inspected or stored without an EON parser.
type irBase struct {
	Type    Type     `json:"type"`
	Fields  []*Node  `json:"fields,omitempty"`
	Values  []*Node  `json:"values,omitempty"`
	Number  string   `json:"number,omitempty"`
	Float64 *float64 `json:"float,omitempty"`
	Int64   *int64   `json:"int,omitempty"`
}

func (y *Node) MarshalJSON() ([]byte, error) {
	base := &irBase{
		Type:    y.Type,
		Fields:  y.Fields,
		Values:  y.Values,
		Number:  y.Number,
		Float64: y.Float64,
		Int64:   y.Int64,
	}
	switch y.Type {
	case StringType:
		type C struct {
			irBase
			String string `json:"string"`
		}
		return json.Marshal(C{irBase: *base, String: y.String})
	case BoolType:
		type C struct {
			irBase
			Bool bool `json:"bool"`
		}
		return json.Marshal(C{irBase: *base, Bool: y.Bool})
	default:
		return json.Marshal(base)
	}
}

func (y *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		irBase
		String string `json:"string"`
		Bool   bool   `json:"bool"`
	}
	tmp := &C{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	y.Type = tmp.Type
	y.Values = tmp.Values
	y.Fields = tmp.Fields
	y.Bool = tmp.Bool
	y.String = tmp.String
	y.Number = tmp.Number
	y.Int64 = tmp.Int64
	y.Float64 = tmp.Float64

	switch y.Type {
	case ObjectType:
		if len(y.Fields) != len(y.Values) {
			return fmt.Errorf("malformed object with %d fields and %d values", len(y.Fields), len(y.Values))
		}
		seen := make(map[string]bool, len(y.Fields))
		for _, f := range y.Fields {
			if f.Type != StringType {
				return fmt.Errorf("invalid field type %s", f.Type)
			}
			if seen[f.String] {
				return fmt.Errorf("duplicate field %q", f.String)
			}
			seen[f.String] = true
		}
	case ArrayType:
		if len(y.Fields) != 0 {
			return fmt.Errorf("malformed array with %d fields", len(y.Fields))
		}
	case NumberType:
		n := 0
		if y.Int64 != nil {
			n++
		}
		if y.Float64 != nil {
			n++
		}
		if y.Number != "" {
			n++
		}
		if n != 1 {
			return fmt.Errorf("malformed number with %d representations", n)
		}
	}
	return nil
}

// FromJSON decodes a JSON value (not the IR representation) into a node,
// preserving the order of object fields.  Repeated fields keep their
// first position and take the last value.
func FromJSON(d []byte) (*Node, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(d)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	return fromFastJSON(v)
}

func fromFastJSON(v *fastjson.Value) (*Node, error) {
	switch v.Type() {
	case fastjson.TypeNull:
		return Null(), nil
	case fastjson.TypeTrue:
		return FromBool(true), nil
	case fastjson.TypeFalse:
		return FromBool(false), nil
	case fastjson.TypeString:
		return FromString(string(v.GetStringBytes())), nil
	case fastjson.TypeNumber:
		return NumberFromText(v.String())
	case fastjson.TypeArray:
		res := Array()
		for _, elt := range v.GetArray() {
			n, err := fromFastJSON(elt)
			if err != nil {
				return nil, err
			}
			res.Append(n)
		}
		return res, nil
	case fastjson.TypeObject:
		res := Object()
		var err error
		v.GetObject().Visit(func(key []byte, val *fastjson.Value) {
			if err != nil {
				return
			}
			var n *Node
			n, err = fromFastJSON(val)
			if err == nil {
				res.Set(string(key), n)
			}
		})
		if err != nil {
			return nil, err
		}
		return res, nil
	}
	return nil, fmt.Errorf("unexpected JSON value type %s", v.Type())
}
