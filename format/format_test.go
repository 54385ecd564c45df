package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"e": EONFormat, "eon": EONFormat, "EON": EONFormat,
		"j": JSONFormat, "json": JSONFormat,
		"y": YAMLFormat, "yaml": YAMLFormat, "yml": YAMLFormat,
	} {
		got, err := ParseFormat(in)
		if err != nil {
			t.Errorf("%q: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("%q: got %s want %s", in, got, want)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		path string
		f    Format
		ok   bool
	}{
		{"a/b.eon", EONFormat, true},
		{"x.json", JSONFormat, true},
		{"x.yml", YAMLFormat, true},
		{"x.txt", EONFormat, false},
		{"noext", EONFormat, false},
	}
	for _, tt := range tests {
		f, ok := FromPath(tt.path)
		if f != tt.f || ok != tt.ok {
			t.Errorf("%s: got (%s, %t)", tt.path, f, ok)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Errorf("got %s want %s", g, f)
		}
		if f.Suffix() == "" {
			t.Errorf("%s has no suffix", f)
		}
	}
}
