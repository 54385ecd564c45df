package main

import (
	"context"

	"github.com/signadot/eon-format/go-eon/encode"
	"go.lsp.dev/protocol"
)

const formatIndent = 2

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return formatEdits(doc, params.Options), nil
}

// formatEdits returns a single edit replacing the whole document with its
// indented encoding, or no edits if the document does not parse, has
// comments, or is already formatted.
func formatEdits(doc *document, opts protocol.FormattingOptions) []protocol.TextEdit {
	if doc.node == nil || hasComments([]byte(doc.content)) {
		return nil
	}
	indent := formatIndent
	if opts.TabSize > 0 {
		indent = int(opts.TabSize)
	}
	formatted, err := encode.EncodeString(doc.node, encode.EncodeIndent(indent))
	if err != nil {
		theLog.Warn("format", "uri", doc.uri, "err", err)
		return nil
	}
	formatted += "\n"
	if formatted == doc.content {
		return []protocol.TextEdit{}
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   lspPosition(doc.content, len(doc.content)),
			},
			NewText: formatted,
		},
	}
}
