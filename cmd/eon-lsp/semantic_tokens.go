package main

import (
	"bytes"
	"context"
	"unicode/utf16"

	"github.com/signadot/eon-format/go-eon/token"
	"go.lsp.dev/protocol"
)

// tokenTypes is the semantic token legend; the index of a type is its
// code in the token data.
var tokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenProperty,
	protocol.SemanticTokenString,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenKeyword,
	protocol.SemanticTokenComment,
}

const (
	semProperty uint32 = iota
	semString
	semNumber
	semKeyword
	semComment
)

type span struct {
	start, end int
	typ        uint32
}

// lexSpans returns the highlighted spans of content in order.  Tokens
// after a lexical error are not highlighted.
func lexSpans(content []byte) []span {
	var (
		toks   []token.Token
		lexErr error
	)
	tk := token.NewTokenizer(content)
	for {
		tok, err := tk.Next()
		if err != nil {
			lexErr = err
			break
		}
		if tok.Type == token.TEOF {
			break
		}
		toks = append(toks, *tok)
	}
	var res []span
	prev := 0
	for i := range toks {
		tok := &toks[i]
		res = appendComments(res, content, prev, tok.Pos.I)
		prev = tok.Pos.I + len(tok.Bytes)
		typ, ok := spanType(tok.Type)
		if !ok {
			continue
		}
		if tok.Type.IsKey() && i+1 < len(toks) && toks[i+1].Type == token.TColon {
			typ = semProperty
		}
		res = append(res, span{start: tok.Pos.I, end: prev, typ: typ})
	}
	if lexErr == nil {
		res = appendComments(res, content, prev, len(content))
	}
	return res
}

func spanType(tt token.TokenType) (uint32, bool) {
	switch tt {
	case token.TString:
		return semString, true
	case token.TInteger, token.TFloat:
		return semNumber, true
	case token.TNull, token.TTrue, token.TFalse:
		return semKeyword, true
	case token.TIdent:
		return semProperty, true
	default:
		return 0, false
	}
}

// appendComments adds the comments in the whitespace content[from:to].
func appendComments(res []span, content []byte, from, to int) []span {
	for from < to {
		j := bytes.IndexByte(content[from:to], '#')
		if j == -1 {
			break
		}
		start := from + j
		end := to
		if k := bytes.IndexByte(content[start:to], '\n'); k != -1 {
			end = start + k
		}
		res = append(res, span{start: start, end: end, typ: semComment})
		from = end
	}
	return res
}

func hasComments(content []byte) bool {
	for _, sp := range lexSpans(content) {
		if sp.typ == semComment {
			return true
		}
	}
	return false
}

// semanticTokens encodes spans in the relative LSP format.
func semanticTokens(content string) []uint32 {
	data := []uint32{}
	var prevLine, prevChar uint32
	for _, sp := range lexSpans([]byte(content)) {
		pos := lspPosition(content, sp.start)
		length := uint32(0)
		for _, r := range content[sp.start:sp.end] {
			length += uint32(utf16.RuneLen(r))
		}
		deltaChar := pos.Character
		if pos.Line == prevLine {
			deltaChar -= prevChar
		}
		data = append(data, pos.Line-prevLine, deltaChar, length, sp.typ, 0)
		prevLine, prevChar = pos.Line, pos.Character
	}
	return data
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: semanticTokens(doc.content)}, nil
}

// SemanticTokensRange returns the tokens of the whole document, which
// clients accept for any range.
func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: semanticTokens(doc.content)}, nil
}
