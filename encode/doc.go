// Package encode encodes IR nodes to EON text.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	// {age: 30, name: "alice"}
//	output, err := encode.EncodeString(node)
//
//	// one member per line, indented by 2
//	err := encode.Encode(node, w, encode.EncodeIndent(2))
//
//	// JSON: every key quoted
//	output, err := encode.EncodeString(node, encode.EncodeFormat(format.JSONFormat))
//
// Floats which are NaN or infinite cannot be encoded and produce
// [ErrNonFinite].
//
// # Related Packages
//
//   - github.com/signadot/eon-format/go-eon/ir - IR representation
//   - github.com/signadot/eon-format/go-eon/parse - Parse text to IR
package encode
