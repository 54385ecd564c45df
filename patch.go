package eon

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/signadot/eon-format/go-eon/debug"
	"github.com/signadot/eon-format/go-eon/encode"
	"github.com/signadot/eon-format/go-eon/format"
	"github.com/signadot/eon-format/go-eon/ir"
	"github.com/signadot/eon-format/go-eon/libdiff"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch error")

// Patch applies an RFC 6902 JSON Patch, given as a document holding an
// array of operations, to a copy of doc.  Fields of doc keep their order;
// added fields follow them.
func Patch(doc, ops *ir.Node) (*ir.Node, error) {
	opsJSON, err := toJSON(ops)
	if err != nil {
		return nil, err
	}
	patch, err := jsonpatch.DecodePatch(opsJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrPatch, err)
	}
	docJSON, err := toJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := patch.Apply(docJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: apply: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("patch: %d ops, %d bytes out", len(patch), len(out))
	}
	return fromJSON(out, doc)
}

// MergePatch applies an RFC 7386 JSON merge patch to a copy of doc.
func MergePatch(doc, patch *ir.Node) (*ir.Node, error) {
	docJSON, err := toJSON(doc)
	if err != nil {
		return nil, err
	}
	patchJSON, err := toJSON(patch)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(docJSON, patchJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: merge: %w", ErrPatch, err)
	}
	return fromJSON(out, doc)
}

// Diff returns the changes which turn from into to.
func Diff(from, to *ir.Node) []libdiff.Change {
	return libdiff.Diff(from, to)
}

func toJSON(node *ir.Node) ([]byte, error) {
	s, err := encode.EncodeString(node, encode.EncodeFormat(format.JSONFormat))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return []byte(s), nil
}

func fromJSON(d []byte, like *ir.Node) (*ir.Node, error) {
	if !json.Valid(d) {
		return nil, fmt.Errorf("%w: invalid JSON result", ErrPatch)
	}
	res, err := ir.FromJSON(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	orderLike(res, like)
	return res, nil
}

// orderLike reorders the fields of objects in node to follow their order
// in like.  Fields not in like keep their relative order at the end.
func orderLike(node, like *ir.Node) {
	if node.Type != like.Type {
		return
	}
	switch node.Type {
	case ir.ObjectType:
		fields := make([]*ir.Node, 0, len(node.Fields))
		values := make([]*ir.Node, 0, len(node.Values))
		taken := make([]bool, len(node.Fields))
		idx := make(map[string]int, len(node.Fields))
		for i, f := range node.Fields {
			idx[f.String] = i
		}
		for k, f := range like.Fields {
			i, ok := idx[f.String]
			if !ok {
				continue
			}
			orderLike(node.Values[i], like.Values[k])
			fields = append(fields, node.Fields[i])
			values = append(values, node.Values[i])
			taken[i] = true
		}
		for i := range node.Fields {
			if !taken[i] {
				fields = append(fields, node.Fields[i])
				values = append(values, node.Values[i])
			}
		}
		node.Fields, node.Values = fields, values
	case ir.ArrayType:
		for i := range min(len(node.Values), len(like.Values)) {
			orderLike(node.Values[i], like.Values[i])
		}
	}
}
