// Package eval evaluates expressions over documents with
// github.com/expr-lang/expr.
//
// The top-level fields of an object document are variables of the
// expression, and the whole document is "doc":
//
//	res, err := eval.Query(node, `len(users) > 0 && doc.version >= 2`, nil)
//
// The functions getpath, haspath, eon and getenv are also available.
package eval
