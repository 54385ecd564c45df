package main

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
)

func TestPositionConversion(t *testing.T) {
	content := "ab\ncé\U0001F600d"
	pos := lspPosition(content, strings.IndexByte(content, 'd'))
	if want := (protocol.Position{Line: 1, Character: 4}); pos != want {
		t.Errorf("got %v want %v", pos, want)
	}
	tests := []struct {
		pos  protocol.Position
		want int
	}{
		{protocol.Position{Line: 0, Character: 0}, 0},
		{protocol.Position{Line: 1, Character: 4}, 10},
		{protocol.Position{Line: 1, Character: 2}, 6},
		{protocol.Position{Line: 0, Character: 99}, 2},
		{protocol.Position{Line: 5, Character: 0}, len(content)},
	}
	for _, tc := range tests {
		if got := byteOffset(content, tc.pos); got != tc.want {
			t.Errorf("%v: got %d want %d", tc.pos, got, tc.want)
		}
	}
}

func TestValidateDocument(t *testing.T) {
	ok := newDocument("file:///ok.eon", "{a: 1}", 1)
	if ds := validateDocument(ok); len(ds) != 0 {
		t.Errorf("got %v", ds)
	}
	bad := newDocument("file:///bad.eon", "{a: 1,\n b: }", 1)
	ds := validateDocument(bad)
	if len(ds) != 1 {
		t.Fatalf("got %d diagnostics", len(ds))
	}
	want := protocol.Range{
		Start: protocol.Position{Line: 1, Character: 4},
		End:   protocol.Position{Line: 1, Character: 5},
	}
	if diff := cmp.Diff(want, ds[0].Range); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	if ds[0].Severity != protocol.DiagnosticSeverityError || ds[0].Source != "eon" {
		t.Errorf("got %+v", ds[0])
	}
}

func TestLocate(t *testing.T) {
	content := "{a: [1, {b: true}],\n \"c d\": null}"
	doc := newDocument("file:///x.eon", content, 1)
	if doc.node == nil {
		t.Fatal(doc.err)
	}
	tests := []struct {
		at   string
		path string
		key  bool
	}{
		{"{a", "$", false},
		{"a:", "$.a", true},
		{"1,", "$.a[0]", false},
		{"b:", "$.a[1].b", true},
		{"true", "$.a[1].b", false},
		{`"c d"`, `$["c d"]`, true},
		{"null", `$["c d"]`, false},
	}
	for _, tc := range tests {
		loc := doc.locate(strings.Index(content, tc.at))
		if loc == nil {
			t.Errorf("%q: nothing located", tc.at)
			continue
		}
		if loc.path != tc.path || loc.key != tc.key {
			t.Errorf("%q: got %s (key %t) want %s (key %t)", tc.at, loc.path, loc.key, tc.path, tc.key)
		}
	}
	loc := doc.locate(strings.Index(content, "true"))
	want := "**Path:** `$.a[1].b`\n\n**Type:** boolean\n\n**Value:** `true`"
	if got := buildHoverText(loc); got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestValueInfoTruncates(t *testing.T) {
	doc := newDocument("file:///x.eon", `"`+strings.Repeat("é", 40)+`"`, 1)
	if doc.node == nil {
		t.Fatal(doc.err)
	}
	got := valueInfo(doc.node)
	if !utf8.ValidString(got) {
		t.Errorf("invalid utf-8: %q", got)
	}
	want := "`\"" + strings.Repeat("é", 24) + "...`"
	if got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if got := valueInfo(newDocument("file:///y.eon", "12", 1).node); got != "`12`" {
		t.Errorf("got %q", got)
	}
}

func TestSemanticTokens(t *testing.T) {
	got := semanticTokens("{a: 1, # c\n\"s\": [true]}")
	want := []uint32{
		0, 1, 1, semProperty, 0,
		0, 3, 1, semNumber, 0,
		0, 3, 3, semComment, 0,
		1, 0, 3, semProperty, 0,
		0, 6, 4, semKeyword, 0,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got)\n%s", diff)
	}
	if !hasComments([]byte("[1] # x")) || hasComments([]byte(`["#"]`)) {
		t.Error("comment detection")
	}
}

func TestFormatEdits(t *testing.T) {
	doc := newDocument("file:///x.eon", "{b:1,a:[true]}", 1)
	edits := formatEdits(doc, protocol.FormattingOptions{})
	if len(edits) != 1 {
		t.Fatalf("got %d edits", len(edits))
	}
	want := "{\n  b: 1,\n  a: [\n    true\n  ]\n}\n"
	if edits[0].NewText != want {
		t.Errorf("got %q want %q", edits[0].NewText, want)
	}
	if end := edits[0].Range.End; end != (protocol.Position{Line: 0, Character: 14}) {
		t.Errorf("got end %v", end)
	}
	if edits := formatEdits(newDocument("file:///y.eon", want, 1), protocol.FormattingOptions{}); len(edits) != 0 {
		t.Errorf("formatted document got %v", edits)
	}
	if edits := formatEdits(newDocument("file:///z.eon", "{a: 1} # c", 1), protocol.FormattingOptions{}); edits != nil {
		t.Errorf("commented document got %v", edits)
	}
}

func labels(items []protocol.CompletionItem) []string {
	res := make([]string, len(items))
	for i := range items {
		res[i] = items[i].Label
	}
	return res
}

func TestCompletions(t *testing.T) {
	docs := newServer().docs
	docs.put("file:///x.eon", "{alpha: 1, beta: {gamma: 2}}", 1)
	content := "{alpha: 1, beta: {gamma: 2}, x"
	doc := docs.put("file:///x.eon", content, 2)
	if doc.node != nil || doc.lastGood == nil {
		t.Fatal("expected a failed parse with a previous good one")
	}
	got := labels(completions(doc, strings.IndexByte(content, 'x')))
	if diff := cmp.Diff([]string{"alpha", "beta", "gamma"}, got); diff != "" {
		t.Errorf("keys (-want +got)\n%s", diff)
	}
	values := []string{"null", "true", "false", "empty object", "empty array"}
	for _, prefix := range []string{"{a: ", "[1, ", "[\"]\", "} {
		got := labels(completions(newDocument("file:///v.eon", prefix, 1), len(prefix)))
		if diff := cmp.Diff(values, got); diff != "" {
			t.Errorf("%q (-want +got)\n%s", prefix, diff)
		}
	}
}
