package ir

import (
	"maps"
	"slices"
	"strings"
)

type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Values = nil
	dst.Fields = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, yf := range y.Fields {
			dst.Fields[i] = yf.Clone()
		}
	}
	dst.String = y.String
	dst.Number = y.Number
	dst.Float64 = nil
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	dst.Int64 = nil
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

// FromNumber creates a number node holding the literal text v, for
// numbers which neither int64 nor float64 can represent.
func FromNumber(v string) *Node {
	return &Node{
		Type:   NumberType,
		Number: v,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// IsInt reports whether node is an integral number.
func (y *Node) IsInt() bool {
	if y.Type != NumberType {
		return false
	}
	if y.Int64 != nil {
		return true
	}
	if y.Float64 != nil {
		return false
	}
	return y.Number != "" && !strings.ContainsAny(y.Number, ".eE")
}

// IsFloat reports whether node is a fractional number.
func (y *Node) IsFloat() bool {
	return y.Type == NumberType && !y.IsInt()
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

// FromMap creates an object from yMap with keys in sorted order.
func FromMap(yMap map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(yMap))
	res.Values = make([]*Node, len(yMap))
	keys := slices.Sorted(maps.Keys(yMap))
	for i, key := range keys {
		res.Fields[i] = FromString(key)
		res.Values[i] = yMap[key]
	}
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals creates an object with the fields of kvs in order.  Key
// uniqueness is the caller's responsibility; see [Node.Set].
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		res.Fields[i] = kvs[i].Key
		res.Values[i] = kvs[i].Val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(ySlice)),
	}
	copy(res.Values, ySlice)
	return res
}

func Object() *Node {
	return &Node{Type: ObjectType, Fields: []*Node{}, Values: []*Node{}}
}

func Array() *Node {
	return &Node{Type: ArrayType, Values: []*Node{}}
}

func Get(y *Node, field string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	i := y.index(field)
	if i == -1 {
		return nil
	}
	return y.Values[i]
}

func (y *Node) index(field string) int {
	for i := range y.Fields {
		if y.Fields[i].String == field {
			return i
		}
	}
	return -1
}

// Set assigns val to field in an object node.  An existing field keeps
// its position and has its value replaced; otherwise the field is
// appended.  Set reports whether the field already existed.
func (y *Node) Set(field string, val *Node) bool {
	if y.Type != ObjectType {
		panic("ir: Set on " + y.Type.String())
	}
	if i := y.index(field); i != -1 {
		y.Values[i] = val
		return true
	}
	y.Fields = append(y.Fields, FromString(field))
	y.Values = append(y.Values, val)
	return false
}

// Delete removes field from an object node, reporting whether it was
// present.
func (y *Node) Delete(field string) bool {
	if y.Type != ObjectType {
		return false
	}
	i := y.index(field)
	if i == -1 {
		return false
	}
	y.Fields = slices.Delete(y.Fields, i, i+1)
	y.Values = slices.Delete(y.Values, i, i+1)
	return true
}

// Append adds val to the end of an array node.
func (y *Node) Append(val *Node) {
	if y.Type != ArrayType {
		panic("ir: Append on " + y.Type.String())
	}
	y.Values = append(y.Values, val)
}

// Keys returns the field names of an object node in order.
func (y *Node) Keys() []string {
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

func (y *Node) Len() int {
	return len(y.Values)
}

// Visit calls f on each node in pre and post order.  The children of a
// node are visited only if the pre order call returns true.  Object keys
// are not visited.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}
