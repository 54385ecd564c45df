package token

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func types(toks []Token) []TokenType {
	res := make([]TokenType, len(toks))
	for i := range toks {
		res[i] = toks[i].Type
	}
	return res
}

func TestTokenizeTypes(t *testing.T) {
	tests := []struct {
		in   string
		want []TokenType
	}{
		{"", []TokenType{}},
		{"null", []TokenType{TNull}},
		{"{a: 1}", []TokenType{TLCurl, TIdent, TColon, TInteger, TRCurl}},
		{
			`{a: 1, "b c": [true, false, null], d: -2.5e3}`,
			[]TokenType{
				TLCurl, TIdent, TColon, TInteger, TComma,
				TString, TColon, TLSquare, TTrue, TComma, TFalse, TComma, TNull, TRSquare, TComma,
				TIdent, TColon, TFloat, TRCurl,
			},
		},
		{"# c\n[1, # x\n 2]", []TokenType{TLSquare, TInteger, TComma, TInteger, TRSquare}},
		{"\xEF\xBB\xBF[]", []TokenType{TLSquare, TRSquare}},
		{"0 -0 1e5 1E+5 2.5e-3 0.0", []TokenType{TInteger, TInteger, TFloat, TFloat, TFloat, TFloat}},
		{"trueish _x x1", []TokenType{TIdent, TIdent, TIdent}},
	}
	for _, tc := range tests {
		toks, err := Tokenize([]Token{}, []byte(tc.in))
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if diff := cmp.Diff(tc.want, types(toks)); diff != "" {
			t.Errorf("%q: (-want +got)\n%s", tc.in, diff)
		}
	}
}

func TestStringText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`""`, ""},
		{`"hello"`, "hello"},
		{`"a\"b\\c\/d"`, `a"b\c/d`},
		{`"\b\f\n\r\t"`, "\b\f\n\r\t"},
		{`"é"`, "é"},
		{`"\u00e9"`, "é"},
		{`"\ud83d\ude00"`, "😀"},
		{`"\ud800x"`, "\ufffdx"},
		{`"\ude00A"`, "\ufffdA"},
		{`"\ud83d\u0041"`, "\ufffdA"},
	}
	for _, tc := range tests {
		toks, err := Tokenize(nil, []byte(tc.in))
		if err != nil {
			t.Errorf("%s: %v", tc.in, err)
			continue
		}
		if len(toks) != 1 || toks[0].Type != TString {
			t.Errorf("%s: got %v", tc.in, types(toks))
			continue
		}
		if toks[0].Text != tc.want {
			t.Errorf("%s: got %q want %q", tc.in, toks[0].Text, tc.want)
		}
		if string(toks[0].Bytes) != tc.in {
			t.Errorf("%s: bytes %q", tc.in, toks[0].Bytes)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		in        string
		kind      ErrKind
		line, col int
	}{
		{`"abc`, UnterminatedString, 1, 1},
		{"[\"ab\ncd\"]", UnterminatedString, 1, 2},
		{`"abc\`, UnterminatedString, 1, 1},
		{`[1, "a\qb"]`, InvalidEscape, 1, 7},
		{`"\u12g4"`, InvalidEscape, 1, 2},
		{`"\u12"`, InvalidEscape, 1, 2},
		{"\"a\x01\"", UnexpectedCharacter, 1, 3},
		{"01", InvalidNumber, 1, 1},
		{"[1.]", InvalidNumber, 1, 2},
		{"1e", InvalidNumber, 1, 1},
		{"1e+", InvalidNumber, 1, 1},
		{"-", InvalidNumber, 1, 1},
		{"-x", InvalidNumber, 1, 1},
		{"12abc", InvalidNumber, 1, 1},
		{".5", UnexpectedCharacter, 1, 1},
		{"{\n  @}", UnexpectedCharacter, 2, 3},
		{"'a'", UnexpectedCharacter, 1, 1},
		{"\xff", UnexpectedCharacter, 1, 1},
	}
	for _, tc := range tests {
		_, err := Tokenize(nil, []byte(tc.in))
		if err == nil {
			t.Errorf("%q: expected error", tc.in)
			continue
		}
		var te *TokenizeErr
		if !errors.As(err, &te) {
			t.Errorf("%q: got %T", tc.in, err)
			continue
		}
		if te.Kind != tc.kind {
			t.Errorf("%q: kind %s want %s", tc.in, te.Kind, tc.kind)
		}
		if l, c := te.Pos.LineCol(); l != tc.line || c != tc.col {
			t.Errorf("%q: at %d:%d want %d:%d", tc.in, l, c, tc.line, tc.col)
		}
	}
}

func TestErrorSentinels(t *testing.T) {
	_, err := Tokenize(nil, []byte("007"))
	if !errors.Is(err, ErrNumber) || !errors.Is(err, ErrNumberLeadingZero) {
		t.Errorf("got %v", err)
	}
	_, err = Tokenize(nil, []byte(`"\x"`))
	if !errors.Is(err, ErrBadEscape) {
		t.Errorf("got %v", err)
	}
	_, err = Tokenize(nil, []byte(`"x`))
	if !errors.Is(err, ErrUnterminated) {
		t.Errorf("got %v", err)
	}
}

func TestNextSticky(t *testing.T) {
	tk := NewTokenizer([]byte("[1]"))
	for range 3 {
		if _, err := tk.Next(); err != nil {
			t.Fatal(err)
		}
	}
	eof, err := tk.Next()
	if err != nil || eof.Type != TEOF {
		t.Fatalf("got %v %v", eof, err)
	}
	again, err := tk.Next()
	if err != nil || again != eof {
		t.Errorf("eof not sticky: %v %v", again, err)
	}

	tk = NewTokenizer([]byte("[@"))
	if _, err := tk.Next(); err != nil {
		t.Fatal(err)
	}
	_, err1 := tk.Next()
	_, err2 := tk.Next()
	if err1 == nil || err1 != err2 {
		t.Errorf("error not sticky: %v %v", err1, err2)
	}
}

func TestTokenPositions(t *testing.T) {
	toks, err := Tokenize(nil, []byte("{\n  key: \"v\"\n}"))
	if err != nil {
		t.Fatal(err)
	}
	want := [][2]int{{1, 1}, {2, 3}, {2, 6}, {2, 8}, {3, 1}}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens", len(toks))
	}
	for i := range toks {
		l, c := toks[i].Pos.LineCol()
		if l != want[i][0] || c != want[i][1] {
			t.Errorf("token %d %s at %d:%d want %d:%d", i, toks[i].Type, l, c, want[i][0], want[i][1])
		}
	}
}

func TestPosLineCol(t *testing.T) {
	pd := NewPosDoc([]byte("a\nbc\n\nd"))
	tests := []struct{ off, line, col int }{
		{0, 1, 1},
		{1, 1, 2},
		{2, 2, 1},
		{3, 2, 2},
		{5, 3, 1},
		{6, 4, 1},
	}
	for _, tc := range tests {
		if l, c := pd.LineCol(tc.off); l != tc.line || c != tc.col {
			t.Errorf("offset %d: %d:%d want %d:%d", tc.off, l, c, tc.line, tc.col)
		}
	}
	p := pd.Pos(3)
	if p.String() != "`...a\\nbc\\n\\nd...` at offset 3 (line=2, col=2)" {
		t.Errorf("got %s", p)
	}
}

func TestQuote(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", `""`},
		{"abc", `"abc"`},
		{`a"b`, `"a\"b"`},
		{`a\b`, `"a\\b"`},
		{"a\nb\tc", `"a\nb\tc"`},
		{"\x01", `"\u0001"`},
		{"é😀", `"é😀"`},
	}
	for _, tc := range tests {
		got := Quote(tc.in)
		if got != tc.want {
			t.Errorf("Quote(%q) = %s want %s", tc.in, got, tc.want)
		}
		back, err := Unquote(got)
		if err != nil {
			t.Errorf("Unquote(%s): %v", got, err)
			continue
		}
		if back != tc.in {
			t.Errorf("Unquote(%s) = %q want %q", got, back, tc.in)
		}
	}
	if _, err := Unquote(`"a" `); err == nil {
		t.Error("expected trailing data error")
	}
}

func TestNeedsQuote(t *testing.T) {
	tests := map[string]bool{
		"name":    false,
		"_x1":     false,
		"True":    false,
		"":        true,
		"1a":      true,
		"a-b":     true,
		"a b":     true,
		"true":    true,
		"false":   true,
		"null":    true,
		"é":       true,
		"nullish": false,
	}
	for in, want := range tests {
		if got := NeedsQuote(in); got != want {
			t.Errorf("NeedsQuote(%q) = %t", in, got)
		}
	}
	if !IsIdent("true") || IsIdent("1") {
		t.Error("IsIdent")
	}
}
