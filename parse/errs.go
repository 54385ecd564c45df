package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/eon-format/go-eon/token"
)

var (
	ErrParse           = errors.New("parse error")
	ErrUnexpectedToken = fmt.Errorf("%w: unexpected", ErrParse)
	ErrUnexpectedEOF   = fmt.Errorf("%w: unexpected end of input", ErrParse)
	ErrTrailing        = fmt.Errorf("%w: trailing content", ErrParse)
	ErrDuplicateKey    = fmt.Errorf("%w: duplicate key", ErrParse)
	ErrTooDeep         = fmt.Errorf("%w: nesting too deep", ErrParse)
	ErrYAML            = fmt.Errorf("%w: yaml", ErrParse)
)

// ParseError is the error returned by Parse.  It always matches
// ErrParse with errors.Is, and wraps a *token.TokenizeErr when the input
// could not be tokenized.
type ParseError struct {
	Err error
	Pos *token.Pos
}

func (e *ParseError) Error() string {
	var te *token.TokenizeErr
	if errors.As(e.Err, &te) {
		return ErrParse.Error() + ": " + te.Error()
	}
	if e.Pos == nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// LineCol returns the 1-based line and column of the error, or 0, 0 if
// it has no position.
func (e *ParseError) LineCol() (int, int) {
	if e.Pos == nil {
		return 0, 0
	}
	return e.Pos.LineCol()
}

func lexErr(err error) error {
	var te *token.TokenizeErr
	if errors.As(err, &te) {
		return &ParseError{Err: err, Pos: &te.Pos}
	}
	return &ParseError{Err: fmt.Errorf("%w: %w", ErrParse, err)}
}

func unexpected(tok *token.Token, want string) error {
	if tok.Type == token.TEOF {
		return &ParseError{
			Err: fmt.Errorf("%w, expected %s", ErrUnexpectedEOF, want),
			Pos: tok.Pos,
		}
	}
	return &ParseError{
		Err: fmt.Errorf("%w %s, expected %s", ErrUnexpectedToken, tok.Describe(), want),
		Pos: tok.Pos,
	}
}
