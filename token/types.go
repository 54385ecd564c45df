package token

import (
	"fmt"
)

type TokenType int

const (
	TEOF TokenType = iota
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TColon
	TComma
	TIdent
	TNull
	TTrue
	TFalse
	TString
	TInteger
	TFloat
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TEOF:     "TEOF",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TColon:   "TColon",
		TComma:   "TComma",
		TIdent:   "TIdent",
		TNull:    "TNull",
		TTrue:    "TTrue",
		TFalse:   "TFalse",
		TString:  "TString",
		TInteger: "TInteger",
		TFloat:   "TFloat",
	}[t]
}

// IsKey reports whether a token of type t may be used as an object key.
// The keywords true, false and null are identifiers in key position.
func (t TokenType) IsKey() bool {
	switch t {
	case TIdent, TString, TNull, TTrue, TFalse:
		return true
	default:
		return false
	}
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte

	// Text is the decoded value of a TString, and the name of an
	// identifier or keyword.
	Text string
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

func (t *Token) String() string {
	switch t.Type {
	case TString, TIdent, TNull, TTrue, TFalse:
		return t.Text
	case TEOF:
		return "end of input"
	default:
		return string(t.Bytes)
	}
}

// Describe returns a short human readable description of the token for
// error messages.
func (t *Token) Describe() string {
	switch t.Type {
	case TEOF:
		return "end of input"
	case TString:
		return "string " + string(t.Bytes)
	case TIdent:
		return fmt.Sprintf("identifier %q", t.Text)
	case TInteger, TFloat:
		return "number " + string(t.Bytes)
	default:
		return fmt.Sprintf("%q", t.Bytes)
	}
}
