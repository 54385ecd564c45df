// Package ir provides the in-memory value model for EON documents.
//
// # Overview
//
// Every EON value, whether parsed from text, built programmatically, or
// converted from Go values, is an *ir.Node.  The IR is a recursive tagged
// union: the Type field says which of the other fields carry the value.
//
//   - NullType: no payload
//   - BoolType: Bool
//   - NumberType: exactly one of Int64 (integral literals), Float64
//     (fractional literals) or Number (the literal text, when neither
//     can represent it)
//   - StringType: String
//   - ArrayType: Values, in order
//   - ObjectType: Fields[i] is the key of Values[i], in insertion order
//
// The model records values only: a bare key and a quoted key with the
// same text are the same key, and no source positions are kept (see the
// parse package for position tracking).
//
// # Structure Constraints
//
// For ObjectType nodes there are always as many Fields as Values, every
// field is a StringType node, and no two fields have the same String.
// Containers own their children exclusively: a node appears at most once
// in a tree, there are no parent pointers and no cycles.
//
// # Creating Nodes
//
//	obj := ir.Object()
//	obj.Set("name", ir.FromString("Alice"))
//	obj.Set("age", ir.FromInt(30))
//	obj.Set("skills", ir.FromSlice([]*ir.Node{
//	    ir.FromString("Go"),
//	}))
//
// # Comparison and Hashing
//
// [Equal] is structural equality.  Numbers compare by kind and magnitude,
// so 1 and 1.0 differ, and objects compare as key sets regardless of
// field order.  [Compare] is a total order which, unlike Equal, is
// sensitive to field order.  [Node.Hash] is consistent with Equal.
//
// # Paths
//
//	n, err := doc.GetPath("metadata.created_at")
//	n, err = doc.GetPath(`$.skills[0]`)
//	n, err = doc.GetPath(`$["odd key"]`)
//
// # Go Values
//
// [FromAny] and [ToAny] convert between nodes and dynamic Go values
// (map[string]any, []any, and scalars).  The IR itself is also
// representable in JSON through Node's MarshalJSON and UnmarshalJSON.
//
// # Thread Safety
//
// Nodes are not synchronized.  Reading a tree from several goroutines is
// safe; mutating one is not.
package ir
