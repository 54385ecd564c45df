package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated = errors.New("unterminated string")
	ErrBadEscape    = errors.New("invalid escape")
	ErrNumber       = errors.New("invalid number")
	ErrUnexpected   = errors.New("unexpected character")

	ErrBadUTF8           = fmt.Errorf("%w: bad utf8", ErrUnexpected)
	ErrUnicodeControl    = fmt.Errorf("%w: unescaped control character", ErrUnexpected)
	ErrNumberLeadingZero = fmt.Errorf("%w: leading zero", ErrNumber)
	ErrBadUnicode        = fmt.Errorf("%w: bad \\u escape", ErrBadEscape)
)

// ErrKind classifies tokenization failures.
type ErrKind int

const (
	UnexpectedCharacter ErrKind = iota + 1
	UnterminatedString
	InvalidEscape
	InvalidNumber
)

func (k ErrKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	case UnterminatedString:
		return "UnterminatedString"
	case InvalidEscape:
		return "InvalidEscape"
	case InvalidNumber:
		return "InvalidNumber"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

func kindOf(err error) ErrKind {
	switch {
	case errors.Is(err, ErrUnterminated):
		return UnterminatedString
	case errors.Is(err, ErrBadEscape):
		return InvalidEscape
	case errors.Is(err, ErrNumber):
		return InvalidNumber
	default:
		return UnexpectedCharacter
	}
}

type TokenizeErr struct {
	Kind ErrKind
	Err  error
	Pos  Pos
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Kind: kindOf(e), Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w %s", ErrUnexpected, what), p)
}
