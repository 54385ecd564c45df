package ir

import (
	"errors"
	"testing"
)

func TestGetPath(t *testing.T) {
	doc := obj(
		"user", obj(
			"name", FromString("Alice"),
			"skills", FromSlice([]*Node{FromString("Go"), FromString("Rust")}),
		),
		"odd key", obj("x]", FromInt(7)),
	)
	tests := []struct {
		path string
		want *Node
	}{
		{"$", doc},
		{"", doc},
		{"$.user.name", FromString("Alice")},
		{"user.name", FromString("Alice")},
		{"$.user.skills[1]", FromString("Rust")},
		{`$["odd key"]["x]"]`, FromInt(7)},
	}
	for _, tt := range tests {
		got, err := doc.GetPath(tt.path)
		if err != nil {
			t.Errorf("%q: %v", tt.path, err)
			continue
		}
		if !Equal(got, tt.want) {
			t.Errorf("%q: wrong node", tt.path)
		}
	}
}

func TestGetPathErrors(t *testing.T) {
	doc := obj("a", FromSlice([]*Node{FromInt(1)}))
	for _, p := range []string{"$.b", "$.a[3]", "$.a.x", "$.a[0][0]"} {
		if _, err := doc.GetPath(p); !errors.Is(err, ErrNoPath) {
			t.Errorf("%q: expected ErrNoPath, got %v", p, err)
		}
	}
	for _, p := range []string{"$.", "$[x]", "$[-1]", `$["a`, "$a"} {
		if _, err := doc.GetPath(p); !errors.Is(err, ErrBadPath) {
			t.Errorf("%q: expected ErrBadPath, got %v", p, err)
		}
	}
}

func TestPathString(t *testing.T) {
	for _, s := range []string{`$.a["b c"][2]`, `$[*]`, `$.items[*].id`, `$.m[*][*][0]`} {
		p, err := ParsePath(s)
		if err != nil {
			t.Fatal(err)
		}
		if got := p.String(); got != s {
			t.Errorf("got %s want %s", got, s)
		}
		q, err := ParsePath(p.String())
		if err != nil {
			t.Fatalf("%s: %v", p, err)
		}
		if q.String() != s {
			t.Errorf("reparse %s: got %s", s, q)
		}
	}
}

func TestListPath(t *testing.T) {
	doc := obj(
		"items", FromSlice([]*Node{
			obj("id", FromInt(1)),
			obj("id", FromInt(2)),
			obj("other", FromInt(3)),
		}),
		"m", obj("a", FromInt(4), "b", FromInt(5)),
	)
	tests := []struct {
		path string
		n    int
	}{
		{"$.items[*].id", 2},
		{"$.items[*]", 3},
		{"$.m[*]", 2},
		{"$.items[0].id", 1},
		{"$.nope[*]", 0},
		{"$.m.a[*]", 0},
	}
	for _, tt := range tests {
		got, err := doc.ListPath(tt.path)
		if err != nil {
			t.Errorf("%q: %v", tt.path, err)
			continue
		}
		if len(got) != tt.n {
			t.Errorf("%q: got %d nodes want %d", tt.path, len(got), tt.n)
		}
	}
	if _, err := doc.GetPath("$.items[*]"); !errors.Is(err, ErrBadPath) {
		t.Errorf("GetPath with wildcard: %v", err)
	}
	p, _ := ParsePath("$.items[*].id")
	if p.String() != "$.items[*].id" {
		t.Errorf("got %s", p)
	}
}
