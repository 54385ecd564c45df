package eon

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signadot/eon-format/go-eon/ir"
	"github.com/signadot/eon-format/go-eon/libdiff"
)

func inf() float64 {
	return math.Inf(1)
}

func mustLoads(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := Loads(s)
	require.NoError(t, err, s)
	return node
}

func TestPatch(t *testing.T) {
	doc := mustLoads(t, `{name: "x", tags: ["a"], old: 1}`)
	ops := mustLoads(t, `[
		{op: "replace", path: "/name", value: "y"},
		{op: "add", path: "/tags/-", value: "b"},
		{op: "remove", path: "/old"},
		{op: "add", path: "/new", value: {n: 2}},
	]`)
	got, err := Patch(doc, ops)
	require.NoError(t, err)
	assert.Equal(t, `{name: "y", tags: ["a", "b"], new: {n: 2}}`, mustDumps(t, got))

	_, err = Patch(doc, mustLoads(t, `[{op: "remove", path: "/nope"}]`))
	assert.ErrorIs(t, err, ErrPatch)
	_, err = Patch(doc, mustLoads(t, `{op: "remove"}`))
	assert.ErrorIs(t, err, ErrPatch)
}

func TestMergePatch(t *testing.T) {
	doc := mustLoads(t, `{z: 1, a: {b: 2, c: 3}, k: [1]}`)
	got, err := MergePatch(doc, mustLoads(t, `{a: {c: null, d: 4}, k: [2, 3]}`))
	require.NoError(t, err)
	assert.Equal(t, `{z: 1, a: {b: 2, d: 4}, k: [2, 3]}`, mustDumps(t, got))
}

func TestDiff(t *testing.T) {
	from := mustLoads(t, `{a: 1, b: [1, 2]}`)
	to := mustLoads(t, `{a: 2, b: [1, 2, 3]}`)
	cs := Diff(from, to)
	require.Len(t, cs, 2)
	assert.Equal(t, libdiff.Replace, cs[0].Op)
	assert.Equal(t, "$.a", cs[0].Path)
	assert.Equal(t, libdiff.Insert, cs[1].Op)
	assert.Equal(t, "$.b[2]", cs[1].Path)
	assert.Empty(t, Diff(from, from.Clone()))
}

func mustDumps(t *testing.T, node *ir.Node) string {
	t.Helper()
	s, err := Dumps(node)
	require.NoError(t, err)
	return s
}
