package token

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Tokenizer produces the tokens of a document one at a time.
//
// Once Next has returned a TEOF token or an error, every following call
// returns the same token or error.
type Tokenizer struct {
	d      []byte
	i      int
	posDoc *PosDoc
	eof    *Token
	err    error
}

func NewTokenizer(d []byte) *Tokenizer {
	t := &Tokenizer{d: d, posDoc: NewPosDoc(d)}
	if bytes.HasPrefix(d, bom) {
		t.i = len(bom)
	}
	return t
}

func (t *Tokenizer) PosDoc() *PosDoc {
	return t.posDoc
}

func (t *Tokenizer) Next() (*Token, error) {
	if t.err != nil {
		return nil, t.err
	}
	if t.eof != nil {
		return t.eof, nil
	}
	tok, err := t.next()
	if err != nil {
		t.err = err
		return nil, err
	}
	if tok.Type == TEOF {
		t.eof = tok
	}
	return tok, nil
}

func (t *Tokenizer) skip() {
	d := t.d
	for t.i < len(d) {
		switch d[t.i] {
		case ' ', '\t', '\r', '\n':
			t.i++
		case '#':
			j := bytes.IndexByte(d[t.i:], '\n')
			if j == -1 {
				t.i = len(d)
				return
			}
			t.i += j + 1
		default:
			return
		}
	}
}

func (t *Tokenizer) next() (*Token, error) {
	t.skip()
	d := t.d
	start := t.i
	pos := t.posDoc.Pos(start)
	if start == len(d) {
		return &Token{Type: TEOF, Pos: pos}, nil
	}
	single := func(tt TokenType) (*Token, error) {
		t.i++
		return &Token{Type: tt, Pos: pos, Bytes: d[start:t.i]}, nil
	}
	c := d[start]
	switch c {
	case '{':
		return single(TLCurl)
	case '}':
		return single(TRCurl)
	case '[':
		return single(TLSquare)
	case ']':
		return single(TRSquare)
	case ':':
		return single(TColon)
	case ',':
		return single(TComma)
	case '"':
		text, n, err := quotedString(d[start:])
		if err != nil {
			return nil, NewTokenizeErr(err, t.posDoc.Pos(start+n))
		}
		t.i += n
		return &Token{Type: TString, Pos: pos, Bytes: d[start:t.i], Text: text}, nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		n, isFloat, err := number(d[start:])
		if err != nil {
			return nil, NewTokenizeErr(err, pos)
		}
		t.i += n
		tt := TInteger
		if isFloat {
			tt = TFloat
		}
		return &Token{Type: tt, Pos: pos, Bytes: d[start:t.i]}, nil
	}
	if identByte(c, false) {
		j := start + 1
		for j < len(d) && identByte(d[j], true) {
			j++
		}
		t.i = j
		text := string(d[start:j])
		tt, _ := keyword(text)
		return &Token{Type: tt, Pos: pos, Bytes: d[start:j], Text: text}, nil
	}
	r, sz := utf8.DecodeRune(d[start:])
	if r == utf8.RuneError && sz == 1 {
		return nil, NewTokenizeErr(ErrBadUTF8, pos)
	}
	return nil, UnexpectedErr(fmt.Sprintf("%q", r), pos)
}

// Tokenize appends all tokens of src, excluding the final TEOF, to dst.
func Tokenize(dst []Token, src []byte) ([]Token, error) {
	t := NewTokenizer(src)
	for {
		tok, err := t.Next()
		if err != nil {
			return nil, err
		}
		if tok.Type == TEOF {
			return dst, nil
		}
		dst = append(dst, *tok)
	}
}
