package parse

import (
	"github.com/signadot/eon-format/go-eon/format"
	"github.com/signadot/eon-format/go-eon/ir"
	"github.com/signadot/eon-format/go-eon/token"
)

// DefaultMaxDepth is the default limit on container nesting.
const DefaultMaxDepth = 1000

type parseOpts struct {
	format     format.Format
	positions  map[*ir.Node]*token.Pos
	strictKeys bool
	maxDepth   int
}

type ParseOption func(*parseOpts)

func ParseEON() ParseOption {
	return ParseFormat(format.EONFormat)
}
func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) { o.format = f }
}

// ParsePositions records the position of the first token of every parsed
// node, including object keys, in m.  Positions are not available for
// YAML input.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// StrictKeys makes a repeated object key an error.  Without it the last
// value wins and the key keeps its first position.
func StrictKeys() ParseOption {
	return func(o *parseOpts) { o.strictKeys = true }
}

// MaxDepth limits the nesting of containers.  n <= 0 removes the limit.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*ir.Node]*token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
