package libdiff

import (
	"strconv"
	"unicode/utf8"

	"github.com/signadot/eon-format/go-eon/debug"
	"github.com/signadot/eon-format/go-eon/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff returns the changes which turn from into to.  It returns no
// changes exactly when ir.Equal(from, to).
func Diff(from, to *ir.Node) []Change {
	res := diff("$", from, to, nil)
	if debug.Diff() {
		debug.Logf("diff: %d changes", len(res))
	}
	return res
}

func diff(path string, from, to *ir.Node, res []Change) []Change {
	if from.Type != to.Type {
		return append(res, replace(path, from, to))
	}
	switch from.Type {
	case ir.ObjectType:
		return diffObject(path, from, to, res)
	case ir.ArrayType:
		return diffArray(path, from, to, res)
	default:
		if ir.Equal(from, to) {
			return res
		}
		return append(res, replace(path, from, to))
	}
}

// diffObject aligns the fields of from and to.  Fields which only moved
// are compared by value, as key order is not significant.
func diffObject(path string, from, to *ir.Node, res []Change) []Change {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes, fok := mapFields(fieldMap, runeMap, from)
	toRunes, tok := mapFields(fieldMap, runeMap, to)
	if !fok || !tok {
		return diffObjectKeys(path, from, to, res)
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		d := &diffs[i]
		for _, r := range d.Text {
			field := runeMap[r]
			fieldPath := path + ir.FieldSegment(field)
			switch d.Type {
			case diffpatch.DiffDelete:
				if toVal := ir.Get(to, field); toVal != nil {
					res = diff(fieldPath, from.Values[fi], toVal, res)
				} else {
					res = append(res, remove(fieldPath, from.Values[fi]))
				}
				fi++
			case diffpatch.DiffEqual:
				res = diff(fieldPath, from.Values[fi], to.Values[ti], res)
				fi++
				ti++
			case diffpatch.DiffInsert:
				if ir.Get(from, field) == nil {
					res = append(res, insert(fieldPath, to.Values[ti]))
				}
				ti++
			}
		}
	}
	return res
}

// diffObjectKeys compares from and to key by key, without alignment.
func diffObjectKeys(path string, from, to *ir.Node, res []Change) []Change {
	for i, f := range from.Fields {
		fieldPath := path + ir.FieldSegment(f.String)
		if toVal := ir.Get(to, f.String); toVal != nil {
			res = diff(fieldPath, from.Values[i], toVal, res)
		} else {
			res = append(res, remove(fieldPath, from.Values[i]))
		}
	}
	for i, f := range to.Fields {
		if ir.Get(from, f.String) == nil {
			res = append(res, insert(path+ir.FieldSegment(f.String), to.Values[i]))
		}
	}
	return res
}

func mapFields(fieldMap map[string]rune, runeMap map[rune]string, node *ir.Node) ([]rune, bool) {
	rs := make([]rune, len(node.Fields))
	for i, f := range node.Fields {
		r, ok := fieldMap[f.String]
		if !ok {
			if r, ok = symbol(len(fieldMap)); !ok {
				return nil, false
			}
			fieldMap[f.String] = r
			runeMap[r] = f.String
		}
		rs[i] = r
	}
	return rs, true
}

// symbol returns the rune standing for the n'th distinct key or summary.
// Surrogates are skipped since they do not survive conversion to string.
// It returns false when n is past the last rune.
func symbol(n int) (rune, bool) {
	if n >= 0xD800 {
		n += 0xE000 - 0xD800
	}
	if n > utf8.MaxRune {
		return 0, false
	}
	return rune(n), true
}

// diffArray aligns the elements of from and to by a summary of each
// element: containers match any container of the same type and are
// compared recursively, scalars match equal scalars.  A deletion followed
// by an insertion at the same index is a replacement.
func diffArray(path string, from, to *ir.Node, res []Change) []Change {
	m := map[string]rune{}
	fromRunes, fok := mapValues(m, from)
	toRunes, tok := mapValues(m, to)
	if !fok || !tok {
		return diffArrayIndex(path, from, to, res)
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	// ri is the index in the array as changed so far
	fi, ti, ri := 0, 0, 0
	for i := range diffs {
		d := &diffs[i]
		n := len([]rune(d.Text))
		switch d.Type {
		case diffpatch.DiffDelete:
			for range n {
				res = append(res, remove(path+ir.IndexSegment(ri), from.Values[fi]))
				fi++
			}
		case diffpatch.DiffEqual:
			for range n {
				res = diff(path+ir.IndexSegment(ri), from.Values[fi], to.Values[ti], res)
				fi++
				ti++
				ri++
			}
		case diffpatch.DiffInsert:
			for range n {
				if j := deleteAt(res, path, ri); j != -1 {
					del := res[j]
					res = diff(del.Path, del.From, to.Values[ti], res[:j])
				} else {
					res = append(res, insert(path+ir.IndexSegment(ri), to.Values[ti]))
				}
				ti++
				ri++
			}
		}
	}
	return res
}

// deleteAt returns the index in res of the last change if it is a delete
// at path[ri], otherwise -1.
func deleteAt(res []Change, path string, ri int) int {
	if len(res) == 0 {
		return -1
	}
	last := &res[len(res)-1]
	if last.Op != Delete || last.Path != path+ir.IndexSegment(ri) {
		return -1
	}
	return len(res) - 1
}

// diffArrayIndex compares from and to element by element, then deletes
// or inserts the tail.
func diffArrayIndex(path string, from, to *ir.Node, res []Change) []Change {
	n := min(len(from.Values), len(to.Values))
	for i := range n {
		res = diff(path+ir.IndexSegment(i), from.Values[i], to.Values[i], res)
	}
	for _, v := range from.Values[n:] {
		res = append(res, remove(path+ir.IndexSegment(n), v))
	}
	for i, v := range to.Values[n:] {
		res = append(res, insert(path+ir.IndexSegment(n+i), v))
	}
	return res
}

func mapValues(m map[string]rune, node *ir.Node) ([]rune, bool) {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			if r, ok = symbol(len(m)); !ok {
				return nil, false
			}
			m[sum] = r
		}
		rs[i] = r
	}
	return rs, true
}

func summaryStr(node *ir.Node) string {
	switch node.Type {
	case ir.ObjectType, ir.ArrayType, ir.NullType:
		return node.Type.String()
	case ir.BoolType:
		return node.Type.String() + "-" + strconv.FormatBool(node.Bool)
	case ir.StringType:
		return node.Type.String() + "-" + node.String
	case ir.NumberType:
		return node.Type.String() + "-" + strconv.FormatUint(node.Hash(), 16)
	default:
		return node.Type.String()
	}
}
