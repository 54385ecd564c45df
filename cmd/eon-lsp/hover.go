package main

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/signadot/eon-format/go-eon/encode"
	"github.com/signadot/eon-format/go-eon/ir"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.node == nil {
		return nil, nil
	}
	loc := doc.locate(byteOffset(doc.content, params.Position))
	if loc == nil {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: buildHoverText(loc),
		},
	}, nil
}

// location is a parsed node with the path which reaches it.  For an
// object key, node is the value of the field.
type location struct {
	start int
	path  string
	node  *ir.Node
	key   bool
}

// locate finds the node whose first token starts last at or before off.
func (d *document) locate(off int) *location {
	var locs []location
	var visit func(string, *ir.Node)
	visit = func(path string, node *ir.Node) {
		if pos := d.positions[node]; pos != nil {
			locs = append(locs, location{start: pos.I, path: path, node: node})
		}
		for i, val := range node.Values {
			var p string
			if node.Type == ir.ObjectType {
				key := node.Fields[i]
				p = path + ir.FieldSegment(key.String)
				if pos := d.positions[key]; pos != nil {
					locs = append(locs, location{start: pos.I, path: p, node: val, key: true})
				}
			} else {
				p = path + ir.IndexSegment(i)
			}
			visit(p, val)
		}
	}
	visit("$", d.node)
	slices.SortStableFunc(locs, func(a, b location) int {
		return a.start - b.start
	})
	i, found := slices.BinarySearchFunc(locs, off, func(l location, off int) int {
		return l.start - off
	})
	if !found {
		if i == 0 {
			return nil
		}
		i--
	}
	return &locs[i]
}

func buildHoverText(loc *location) string {
	parts := []string{fmt.Sprintf("**Path:** `%s`", loc.path)}
	kind := typeInfo(loc.node)
	if loc.key {
		kind = "key of " + kind
	}
	parts = append(parts, fmt.Sprintf("**Type:** %s", kind))
	if v := valueInfo(loc.node); v != "" {
		parts = append(parts, fmt.Sprintf("**Value:** %s", v))
	}
	return strings.Join(parts, "\n\n")
}

func typeInfo(node *ir.Node) string {
	switch node.Type {
	case ir.NullType:
		return "null"
	case ir.BoolType:
		return "boolean"
	case ir.NumberType:
		if node.IsInt() {
			return "integer"
		}
		return "float"
	case ir.StringType:
		return "string"
	case ir.ArrayType:
		return "array"
	case ir.ObjectType:
		return "object"
	default:
		return "unknown"
	}
}

func valueInfo(node *ir.Node) string {
	switch node.Type {
	case ir.ArrayType:
		return fmt.Sprintf("array with %d elements", len(node.Values))
	case ir.ObjectType:
		return fmt.Sprintf("object with %d keys", len(node.Fields))
	}
	return "`" + truncate(encode.MustString(node), 50) + "`"
}

// truncate cuts s to at most n bytes on a rune boundary.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
