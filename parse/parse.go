package parse

import (
	"fmt"
	"os"

	"github.com/signadot/eon-format/go-eon/debug"
	"github.com/signadot/eon-format/go-eon/format"
	"github.com/signadot/eon-format/go-eon/ir"
	"github.com/signadot/eon-format/go-eon/token"
)

// Parse parses a single document.  The returned error, if any, is a
// *ParseError.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.EONFormat, maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.format == format.YAMLFormat {
		return parseYAML(d, pOpts)
	}
	if debug.Tokens() {
		toks, err := token.Tokenize(nil, d)
		token.PrintTokens(os.Stderr, toks, "parse")
		if err != nil {
			debug.Logf("tokenize: %v", err)
		}
	}
	p := &parser{tk: token.NewTokenizer(d), opts: pOpts}
	res, err := p.value(0)
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse: %v", err)
		}
		return nil, err
	}
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok.Type != token.TEOF {
		return nil, &ParseError{
			Err: fmt.Errorf("%w: %s after value", ErrTrailing, tok.Describe()),
			Pos: tok.Pos,
		}
	}
	if debug.Parse() {
		debug.Logf("parsed %s from %d bytes", res.Type, len(d))
	}
	return res, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

type parser struct {
	tk     *token.Tokenizer
	peeked *token.Token
	opts   *parseOpts
}

func (p *parser) next() (*token.Token, error) {
	if p.peeked != nil {
		tok := p.peeked
		p.peeked = nil
		return tok, nil
	}
	tok, err := p.tk.Next()
	if err != nil {
		return nil, lexErr(err)
	}
	return tok, nil
}

func (p *parser) peek() (*token.Token, error) {
	if p.peeked == nil {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		p.peeked = tok
	}
	return p.peeked, nil
}

func (p *parser) trackPos(node *ir.Node, pos *token.Pos) {
	if p.opts.positions != nil && pos != nil {
		p.opts.positions[node] = pos
	}
}

func (p *parser) value(depth int) (*ir.Node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	var node *ir.Node
	switch tok.Type {
	case token.TLCurl:
		return p.object(tok, depth+1)
	case token.TLSquare:
		return p.array(tok, depth+1)
	case token.TString:
		node = ir.FromString(tok.Text)
	case token.TInteger, token.TFloat:
		node, err = ir.NumberFromText(string(tok.Bytes))
		if err != nil {
			return nil, &ParseError{Err: fmt.Errorf("%w: number %s: %w", ErrParse, tok.Bytes, err), Pos: tok.Pos}
		}
	case token.TTrue:
		node = ir.FromBool(true)
	case token.TFalse:
		node = ir.FromBool(false)
	case token.TNull:
		node = ir.Null()
	default:
		return nil, unexpected(tok, "value")
	}
	p.trackPos(node, tok.Pos)
	return node, nil
}

func (p *parser) checkDepth(open *token.Token, depth int) error {
	if p.opts.maxDepth > 0 && depth > p.opts.maxDepth {
		return &ParseError{
			Err: fmt.Errorf("%w: more than %d levels", ErrTooDeep, p.opts.maxDepth),
			Pos: open.Pos,
		}
	}
	return nil
}

func (p *parser) object(open *token.Token, depth int) (*ir.Node, error) {
	if err := p.checkDepth(open, depth); err != nil {
		return nil, err
	}
	res := ir.Object()
	p.trackPos(res, open.Pos)
	for {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.TRCurl {
			return res, nil
		}
		if !tok.Type.IsKey() {
			return nil, unexpected(tok, "object key or '}'")
		}
		key := tok.Text
		colon, err := p.next()
		if err != nil {
			return nil, err
		}
		if colon.Type != token.TColon {
			return nil, unexpected(colon, "':'")
		}
		val, err := p.value(depth)
		if err != nil {
			return nil, err
		}
		if p.opts.strictKeys && ir.Get(res, key) != nil {
			return nil, &ParseError{
				Err: fmt.Errorf("%w %q", ErrDuplicateKey, key),
				Pos: tok.Pos,
			}
		}
		if !res.Set(key, val) {
			p.trackPos(res.Fields[len(res.Fields)-1], tok.Pos)
		}
		sep, err := p.next()
		if err != nil {
			return nil, err
		}
		switch sep.Type {
		case token.TComma:
		case token.TRCurl:
			return res, nil
		default:
			return nil, unexpected(sep, "',' or '}'")
		}
	}
}

func (p *parser) array(open *token.Token, depth int) (*ir.Node, error) {
	if err := p.checkDepth(open, depth); err != nil {
		return nil, err
	}
	res := ir.Array()
	p.trackPos(res, open.Pos)
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.TRSquare {
			p.peeked = nil
			return res, nil
		}
		elt, err := p.value(depth)
		if err != nil {
			return nil, err
		}
		res.Append(elt)
		sep, err := p.next()
		if err != nil {
			return nil, err
		}
		switch sep.Type {
		case token.TComma:
		case token.TRSquare:
			return res, nil
		default:
			return nil, unexpected(sep, "',' or ']'")
		}
	}
}
