package eon

import (
	"testing"

	"github.com/signadot/eon-format/go-eon/encode"
	"github.com/signadot/eon-format/go-eon/ir"
)

type pathTest struct {
	Path  string
	Doc   string
	Res   string
	NoGet bool
}

var pathTests = []pathTest{
	{
		Path: "$",
		Doc:  "null",
		Res:  "null",
	},
	{
		Path: "$.f",
		Doc:  "{f: 1}",
		Res:  "1",
	},
	{
		Path: "$[0]",
		Doc:  "[1,2,3]",
		Res:  "1",
	},
	{
		Path: "$",
		Doc:  "[1,2,3]",
		Res:  "[1, 2, 3]",
	},
	{
		Path: "$[1].f",
		Doc:  `[0, {"f": 2, "g": 3}]`,
		Res:  "2",
	},
	{
		Path: "$.f[3]",
		Doc:  `{"a": [1,2], "f": [0,1,2,"three"]}`,
		Res:  `"three"`,
	},
	{
		Path: `$["f[3]"][2]`,
		Doc:  `{"a": [1,2], "f[3]": [0,1,2,"three"]}`,
		Res:  "2",
	},
	{
		Path: `$["$f[\"3]"][2]`,
		Doc:  `{"a": [1,2], "$f[\"3]": [0,1,2,"three"]}`,
		Res:  "2",
	},
	{
		NoGet: true,
		Path:  "$[*]",
		Doc:   "[1,2,3]",
		Res:   "[1, 2, 3]",
	},
	{
		NoGet: true,
		Path:  "$.a[*]",
		Doc:   "{b: [1,2,3]}",
		Res:   "[]",
	},
	{
		NoGet: true,
		Path:  "$.b[*]",
		Doc:   "{b: [1,2,3]}",
		Res:   "[1, 2, 3]",
	},
	{
		NoGet: true,
		Path:  "$.c.d.a",
		Doc:   "{a: \"b\", c: {d: 2, a: 3}}",
		Res:   "[]",
	},
	{
		NoGet: true,
		Path:  "$[*].a",
		Doc:   "{x: {a: 1}, y: {b: 2}, z: {a: 3}}",
		Res:   "[1, 3]",
	},
}

func TestPathGet(t *testing.T) {
	for i := range pathTests {
		pathTest := &pathTests[i]
		if pathTest.NoGet {
			continue
		}
		node, err := Loads(pathTest.Doc)
		if err != nil {
			t.Errorf("# doc\n%s\n---\n# %v\n", pathTest.Doc, err)
			continue
		}
		res, err := node.GetPath(pathTest.Path)
		if err != nil {
			t.Error(err)
			continue
		}
		pp, err := ir.ParsePath(pathTest.Path)
		if err != nil {
			t.Error(err)
			continue
		}
		t.Logf("got path %q -> %q", pathTest.Path, pp.String())
		out := encode.MustString(res)
		if out != pathTest.Res {
			t.Errorf("got %q want %q", out, pathTest.Res)
		}
	}
}

func TestPathList(t *testing.T) {
	for i := range pathTests {
		pathTest := &pathTests[i]
		in, err := Loads(pathTest.Doc)
		if err != nil {
			t.Errorf("# doc\n%s\n---\n# %v\n", pathTest.Doc, err)
			continue
		}
		lst, err := in.ListPath(pathTest.Path)
		if err != nil {
			t.Error(err)
			continue
		}
		if !pathTest.NoGet {
			get, err := in.GetPath(pathTest.Path)
			if err != nil {
				t.Error(err)
				continue
			}
			if len(lst) != 1 {
				t.Errorf("listed %d: %s for %q", len(lst), pathTest.Path, pathTest.Doc)
				continue
			}
			gs, ls := encode.MustString(get), encode.MustString(lst[0])
			if gs != ls {
				t.Errorf("# get\n%s---\n# lst\n%s", gs, ls)
			}
			continue
		}
		ls := encode.MustString(ir.FromSlice(lst))
		if ls != pathTest.Res {
			t.Errorf("# list gave\n%s\n---\n# want\n%s", ls, pathTest.Res)
		}
	}
}
