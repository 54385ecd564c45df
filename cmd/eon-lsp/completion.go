package main

import (
	"context"
	"maps"
	"slices"
	"strings"

	"github.com/signadot/eon-format/go-eon/ir"
	"github.com/signadot/eon-format/go-eon/token"
	"go.lsp.dev/protocol"
)

func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        completions(doc, byteOffset(doc.content, params.Position)),
	}, nil
}

// completions suggests values after ':', '[' or ',' and, after '{', the
// keys used elsewhere in the document.
func completions(doc *document, off int) []protocol.CompletionItem {
	before := strings.TrimRight(doc.content[:off], " \t\r\n")
	if before == "" {
		return valueItems()
	}
	switch before[len(before)-1] {
	case ':', '[':
		return valueItems()
	case ',':
		if inArray(before) {
			return valueItems()
		}
		return keyItems(doc)
	case '{':
		return keyItems(doc)
	}
	return []protocol.CompletionItem{}
}

// inArray reports whether the innermost open bracket of prefix is '['.
// Brackets inside strings and comments are not counted.
func inArray(prefix string) bool {
	var open []byte
	inStr, esc, comment := false, false, false
	for i := 0; i < len(prefix); i++ {
		c := prefix[i]
		switch {
		case comment:
			comment = c != '\n'
		case inStr:
			switch {
			case esc:
				esc = false
			case c == '\\':
				esc = true
			case c == '"':
				inStr = false
			}
		case c == '"':
			inStr = true
		case c == '#':
			comment = true
		case c == '{', c == '[':
			open = append(open, c)
		case c == '}', c == ']':
			if len(open) != 0 {
				open = open[:len(open)-1]
			}
		}
	}
	return len(open) != 0 && open[len(open)-1] == '['
}

func valueItems() []protocol.CompletionItem {
	return []protocol.CompletionItem{
		{Label: "null", Kind: protocol.CompletionItemKindKeyword, InsertText: "null"},
		{Label: "true", Kind: protocol.CompletionItemKindKeyword, InsertText: "true"},
		{Label: "false", Kind: protocol.CompletionItemKindKeyword, InsertText: "false"},
		{Label: "empty object", Kind: protocol.CompletionItemKindSnippet, InsertText: "{}"},
		{Label: "empty array", Kind: protocol.CompletionItemKindSnippet, InsertText: "[]"},
	}
}

func keyItems(doc *document) []protocol.CompletionItem {
	items := []protocol.CompletionItem{}
	node := doc.node
	if node == nil {
		node = doc.lastGood
	}
	if node == nil {
		return items
	}
	seen := map[string]bool{}
	node.Visit(func(node *ir.Node, isPost bool) (bool, error) {
		if isPost || node.Type != ir.ObjectType {
			return true, nil
		}
		for _, f := range node.Keys() {
			seen[f] = true
		}
		return true, nil
	})
	for _, k := range slices.Sorted(maps.Keys(seen)) {
		items = append(items, protocol.CompletionItem{
			Label:      k,
			Kind:       protocol.CompletionItemKindProperty,
			InsertText: encodeKey(k) + ": ",
		})
	}
	return items
}

func encodeKey(k string) string {
	if token.NeedsQuote(k) {
		return token.Quote(k)
	}
	return k
}
