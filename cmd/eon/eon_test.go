package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/signadot/eon-format/go-eon"
	"github.com/signadot/eon-format/go-eon/ir"
	"github.com/signadot/eon-format/go-eon/parse"

	"github.com/scott-cotton/cli"
)

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	y, err := parse.ParseString(s)
	if err != nil {
		t.Fatal(err)
	}
	return y
}

func TestArgPath(t *testing.T) {
	for _, p := range []string{"$.a", ".a", "a.b[0]", "$[*].x"} {
		if _, err := argPath(p); err != nil {
			t.Errorf("%q: %v", p, err)
		}
	}
	for _, p := range []string{"", "$.a[", "$[-1]"} {
		_, err := argPath(p)
		if !errors.Is(err, cli.ErrUsage) {
			t.Errorf("%q: got %v want usage error", p, err)
		}
	}
}

func TestWritePath(t *testing.T) {
	cfg := &MainConfig{}
	doc := mustParse(t, "{a: [{b: 1}, {b: 2}, {c: 3}]}")
	tests := []struct {
		path string
		list bool
		want string
	}{
		{"$.a[1]", false, "{b: 2}\n"},
		{"$.a[*].b", true, "[1, 2]\n"},
		{"$.x", true, "[]\n"},
	}
	for _, tc := range tests {
		p, err := argPath(tc.path)
		if err != nil {
			t.Fatal(err)
		}
		buf := &bytes.Buffer{}
		if err := writePath(cfg, buf, doc, p, tc.list, false); err != nil {
			t.Errorf("%s: %v", tc.path, err)
			continue
		}
		if got := buf.String(); got != tc.want {
			t.Errorf("%s: got %q want %q", tc.path, got, tc.want)
		}
	}
	p, _ := argPath("$.x")
	if err := writePath(cfg, &bytes.Buffer{}, doc, p, false, false); !errors.Is(err, ir.ErrNoPath) {
		t.Errorf("got %v want no path", err)
	}
}

func TestPrettySorted(t *testing.T) {
	cfg := &MainConfig{Pretty: true, Indent: 2, Sort: true}
	buf := &bytes.Buffer{}
	if err := writeDoc(cfg, buf, mustParse(t, "{b: 1, a: [true]}")); err != nil {
		t.Fatal(err)
	}
	want := "{\n  a: [\n    true\n  ],\n  b: 1\n}\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestVarFunc(t *testing.T) {
	vars := map[string]any{}
	if err := varFunc(vars, `n=3`); err != nil {
		t.Fatal(err)
	}
	if err := varFunc(vars, `s="x=y"`); err != nil {
		t.Fatal(err)
	}
	if vars["n"] != int64(3) || vars["s"] != "x=y" {
		t.Errorf("got %v", vars)
	}
	for _, a := range []string{"noeq", "=1", "x={"} {
		if err := varFunc(vars, a); !errors.Is(err, cli.ErrUsage) {
			t.Errorf("%q: got %v want usage error", a, err)
		}
	}
}

func TestCheckDoc(t *testing.T) {
	if err := checkDoc([]byte("{a: 1}")); err != nil {
		t.Fatal(err)
	}
	err := checkDoc([]byte("{a: 1}"), parse.StrictKeys())
	if err != nil {
		t.Fatal(err)
	}
	err = checkDoc([]byte("{a: 1, a: 2}"), parse.StrictKeys())
	if !errors.Is(err, parse.ErrDuplicateKey) {
		t.Fatalf("got %v want duplicate key", err)
	}
	buf := &bytes.Buffer{}
	reportCheck(buf, "x.eon", err)
	if !strings.HasPrefix(buf.String(), "x.eon: ") || !strings.HasSuffix(buf.String(), "\n") {
		t.Errorf("got %q", buf.String())
	}
}

func TestWriteChanges(t *testing.T) {
	from := mustParse(t, `{a: 1, s: "hello world", l: [1]}`)
	to := mustParse(t, `{a: 2, s: "hello there world", l: [1, 2]}`)
	buf := &bytes.Buffer{}
	if err := writeChanges(buf, eon.Diff(from, to), true, false); err != nil {
		t.Fatal(err)
	}
	want := "~ $.a: 1 -> 2\n" +
		"~ $.s: hello {+there +}world\n" +
		"+ $.l[1]: 2\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestApplyPatch(t *testing.T) {
	doc := mustParse(t, "{a: 1, b: 2}")
	res, err := applyPatch(doc, mustParse(t, `[{op: "remove", path: "/a"}]`), false)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(res, mustParse(t, "{b: 2}")) {
		t.Errorf("got %v", res)
	}
	res, err = applyPatch(doc, mustParse(t, "{a: null, c: 3}"), true)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(res, mustParse(t, "{b: 2, c: 3}")) {
		t.Errorf("got %v", res)
	}
}
