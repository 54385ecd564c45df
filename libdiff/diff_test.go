package libdiff

import (
	"strconv"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/eon-format/go-eon/ir"
	"github.com/signadot/eon-format/go-eon/parse"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.ParseString(s)
	if err != nil {
		t.Fatalf("%s: %v", s, err)
	}
	return node
}

type summary struct {
	Path string
	Op   Op
}

func summarize(cs []Change) []summary {
	res := make([]summary, len(cs))
	for i := range cs {
		res[i] = summary{Path: cs[i].Path, Op: cs[i].Op}
	}
	return res
}

var diffTests = []struct {
	from, to string
	want     []summary
}{
	{`{a: 1, b: [1, 2]}`, `{b: [1, 2], a: 1}`, []summary{}},
	{`{a: 1, b: 2}`, `{a: 1, b: 3, c: 4}`, []summary{{"$.b", Replace}, {"$.c", Insert}}},
	{`{a: 1, b: 2}`, `{b: 2}`, []summary{{"$.a", Delete}}},
	{`{"odd key": 1}`, `{"odd key": 2}`, []summary{{`$["odd key"]`, Replace}}},
	{`[1, 2, 3]`, `[1, 3]`, []summary{{"$[1]", Delete}}},
	{`[1, 2]`, `[1, 2, 3]`, []summary{{"$[2]", Insert}}},
	{`[1, 2, 3]`, `[1, 5, 3]`, []summary{{"$[1]", Replace}}},
	{`{a: [{x: 1}]}`, `{a: [{x: 2}]}`, []summary{{"$.a[0].x", Replace}}},
	{`1`, `"1"`, []summary{{"$", Replace}}},
	{`1`, `1.0`, []summary{{"$", Replace}}},
	{`[]`, `{}`, []summary{{"$", Replace}}},
}

func TestDiff(t *testing.T) {
	for _, tc := range diffTests {
		from, to := mustParse(t, tc.from), mustParse(t, tc.to)
		got := summarize(Diff(from, to))
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%s -> %s: (-want +got)\n%s", tc.from, tc.to, diff)
		}
	}
}

func TestApplyAndReverse(t *testing.T) {
	pairs := [][2]string{
		{`[1, 2, 3, 4]`, `[0, 1, 3, 5, 4, 6]`},
		{`[1, 2]`, `["a", "b", "c"]`},
		{`{a: [1, {b: 2}], c: "x"}`, `{c: "y", a: [{b: 3}, 1], d: null}`},
		{`{k: "hello world"}`, `{k: "hello there world"}`},
		{`[[1], [2], [3]]`, `[[3]]`},
		{`{a: 1}`, `[1]`},
	}
	for _, tc := range diffTests {
		pairs = append(pairs, [2]string{tc.from, tc.to})
	}
	for _, p := range pairs {
		from, to := mustParse(t, p[0]), mustParse(t, p[1])
		cs := Diff(from, to)
		got, err := Apply(from, cs)
		if err != nil {
			t.Errorf("%s -> %s: %v", p[0], p[1], err)
			continue
		}
		if !ir.Equal(got, to) {
			t.Errorf("%s -> %s: apply mismatch", p[0], p[1])
		}
		back, err := Apply(to, Reverse(cs))
		if err != nil {
			t.Errorf("%s <- %s: %v", p[0], p[1], err)
			continue
		}
		if !ir.Equal(back, from) {
			t.Errorf("%s <- %s: reverse mismatch", p[0], p[1])
		}
		if len(cs) == 0 != ir.Equal(from, to) {
			t.Errorf("%s, %s: %d changes", p[0], p[1], len(cs))
		}
	}
}

func TestSymbol(t *testing.T) {
	seen := map[rune]bool{}
	for _, n := range []int{0, 1, 0xD7FF, 0xD800, 0xD801, 0xDFFF, 0xE000, 0x10F7FF} {
		r, ok := symbol(n)
		if !ok {
			t.Errorf("%#x: no symbol", n)
			continue
		}
		if !utf8.ValidRune(r) || seen[r] {
			t.Errorf("%#x: bad symbol %#x", n, r)
		}
		if got := []rune(string(r)); len(got) != 1 || got[0] != r {
			t.Errorf("%#x: %#x does not survive a string", n, r)
		}
		seen[r] = true
	}
	if _, ok := symbol(0x10F800); ok {
		t.Error("expected no symbol past the last rune")
	}
}

func TestDiffManyKeys(t *testing.T) {
	const n = 0xD800 + 100
	kvs := make([]ir.KeyVal, n)
	vals := make([]*ir.Node, n)
	for i := range n {
		kvs[i] = ir.KeyVal{Key: ir.FromString("k" + strconv.Itoa(i)), Val: ir.FromInt(int64(i))}
		vals[i] = ir.FromString("v" + strconv.Itoa(i))
	}
	from := ir.FromKeyVals(kvs)
	to := from.Clone()
	to.Values[n-50] = ir.FromInt(-1)
	want := []summary{{"$.k" + strconv.Itoa(n-50), Replace}}
	if diff := cmp.Diff(want, summarize(Diff(from, to))); diff != "" {
		t.Errorf("object (-want +got)\n%s", diff)
	}

	arr := ir.FromSlice(vals)
	arr2 := arr.Clone()
	arr2.Values = append(arr2.Values[:n-50:n-50], arr2.Values[n-49:]...)
	want = []summary{{"$[" + strconv.Itoa(n-50) + "]", Delete}}
	if diff := cmp.Diff(want, summarize(Diff(arr, arr2))); diff != "" {
		t.Errorf("array (-want +got)\n%s", diff)
	}
}

func TestDiffUnaligned(t *testing.T) {
	pairs := [][2]string{
		{`{a: 1, b: [1], c: 3}`, `{c: 4, b: [1, 2], d: 5}`},
		{`[1, 2, 3]`, `[1, 5]`},
		{`[1]`, `[2, 3, {a: 1}]`},
	}
	for _, p := range pairs {
		from, to := mustParse(t, p[0]), mustParse(t, p[1])
		var cs []Change
		if from.Type == ir.ObjectType {
			cs = diffObjectKeys("$", from, to, nil)
		} else {
			cs = diffArrayIndex("$", from, to, nil)
		}
		got, err := Apply(from, cs)
		if err != nil {
			t.Errorf("%s -> %s: %v", p[0], p[1], err)
			continue
		}
		if !ir.Equal(got, to) {
			t.Errorf("%s -> %s: apply mismatch", p[0], p[1])
		}
	}
}

func TestApplyDoesNotModify(t *testing.T) {
	from := mustParse(t, `{a: [1, 2]}`)
	orig := from.Clone()
	if _, err := Apply(from, Diff(from, mustParse(t, `{a: [2]}`))); err != nil {
		t.Fatal(err)
	}
	if ir.Compare(from, orig) != 0 {
		t.Error("Apply modified its input")
	}
}

func TestApplyErrors(t *testing.T) {
	doc := mustParse(t, `{a: [1]}`)
	bad := [][]Change{
		{{Path: "$.b", Op: Delete, From: ir.Null()}},
		{{Path: "$.a[3]", Op: Insert, To: ir.Null()}},
		{{Path: "$.a.x", Op: Replace, From: ir.Null(), To: ir.Null()}},
		{{Path: "$", Op: Delete, From: ir.Null()}},
		{{Path: "$[", Op: Delete, From: ir.Null()}},
	}
	for _, cs := range bad {
		if _, err := Apply(doc, cs); err == nil {
			t.Errorf("%s %s: expected error", cs[0].Op, cs[0].Path)
		}
	}
}

func TestStringEdits(t *testing.T) {
	cs := Diff(ir.FromString("hello world"), ir.FromString("hello there world"))
	if len(cs) != 1 || cs[0].Edits == nil {
		t.Fatalf("got %v", cs)
	}
	if got := StringEditsText(cs[0].Edits); got != "hello {+there +}world" {
		t.Errorf("got %q", got)
	}
	if _, ok := DiffString("abc", "xyz"); ok {
		t.Error("unrelated strings should not have edits")
	}
	rev := Reverse(cs)
	if got := StringEditsText(rev[0].Edits); got != "hello [-there -]world" {
		t.Errorf("reversed %q", got)
	}
}

func TestChangeString(t *testing.T) {
	cs := Diff(mustParse(t, `{a: 1, b: 2}`), mustParse(t, `{a: 3, c: [true]}`))
	got := make([]string, len(cs))
	for i := range cs {
		got[i] = cs[i].String()
	}
	want := []string{"~ $.a: 1 -> 3", "- $.b: 2", "+ $.c: [true]"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Error(diff)
	}
}
