package main

import (
	"sync"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/signadot/eon-format/go-eon/ir"
	"github.com/signadot/eon-format/go-eon/parse"
	"github.com/signadot/eon-format/go-eon/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri       string
	content   string
	version   int32
	node      *ir.Node
	err       error
	positions map[*ir.Node]*token.Pos

	// lastGood is the most recent successful parse while node is nil.
	lastGood *ir.Node
}

func newDocument(uri, content string, version int32) *document {
	positions := make(map[*ir.Node]*token.Pos)
	node, err := parse.ParseString(content, parse.ParsePositions(positions))
	return &document{
		uri:       uri,
		content:   content,
		version:   version,
		node:      node,
		err:       err,
		positions: positions,
	}
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := newDocument(uri, content, version)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if old := ds.docs[uri]; old != nil && doc.node == nil {
		doc.lastGood = old.node
		if doc.lastGood == nil {
			doc.lastGood = old.lastGood
		}
	}
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

// lspPosition converts a byte offset of content to a zero-based line and
// UTF-16 character position.
func lspPosition(content string, off int) protocol.Position {
	off = min(max(off, 0), len(content))
	var line, lineStart int
	for i := 0; i < off; i++ {
		if content[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	char := 0
	for _, r := range content[lineStart:off] {
		char += utf16.RuneLen(r)
	}
	return protocol.Position{Line: uint32(line), Character: uint32(char)}
}

// byteOffset is the inverse of lspPosition.  Positions past the end of a
// line clamp to the line end, and past the last line to len(content).
func byteOffset(content string, pos protocol.Position) int {
	i := 0
	for line := uint32(0); line < pos.Line; line++ {
		for i < len(content) && content[i] != '\n' {
			i++
		}
		if i == len(content) {
			return i
		}
		i++
	}
	for char := uint32(0); char < pos.Character && i < len(content) && content[i] != '\n'; {
		r, n := utf8.DecodeRuneInString(content[i:])
		char += uint32(utf16.RuneLen(r))
		i += n
	}
	return i
}
