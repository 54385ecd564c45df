package libdiff

import (
	"fmt"
	"strings"

	"github.com/signadot/eon-format/go-eon/encode"
	"github.com/signadot/eon-format/go-eon/ir"
)

type Op int

const (
	Insert Op = iota + 1
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

func (o Op) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Change is one difference between two documents.
//
// Path locates the change in the document as it is when the change is
// applied: array indices account for the changes before it in the list.
// From is nil for an Insert and To is nil for a Delete.  Edits holds a
// character level diff when both sides of a Replace are similar strings.
type Change struct {
	Path  string
	Op    Op
	From  *ir.Node
	To    *ir.Node
	Edits []Edit `json:",omitempty"`
}

func (c *Change) String() string {
	b := &strings.Builder{}
	switch c.Op {
	case Insert:
		fmt.Fprintf(b, "+ %s: %s", c.Path, encode.MustString(c.To))
	case Delete:
		fmt.Fprintf(b, "- %s: %s", c.Path, encode.MustString(c.From))
	case Replace:
		fmt.Fprintf(b, "~ %s: %s -> %s", c.Path, encode.MustString(c.From), encode.MustString(c.To))
	}
	return b.String()
}

func insert(path string, to *ir.Node) Change {
	return Change{Path: path, Op: Insert, To: to.Clone()}
}

func remove(path string, from *ir.Node) Change {
	return Change{Path: path, Op: Delete, From: from.Clone()}
}

func replace(path string, from, to *ir.Node) Change {
	c := Change{Path: path, Op: Replace, From: from.Clone(), To: to.Clone()}
	if from.Type == ir.StringType && to.Type == ir.StringType {
		if edits, ok := DiffString(from.String, to.String); ok {
			c.Edits = edits
		}
	}
	return c
}

// Reverse returns the changes which undo cs.
func Reverse(cs []Change) []Change {
	res := make([]Change, len(cs))
	for i := range cs {
		c := cs[len(cs)-1-i]
		c.From, c.To = c.To, c.From
		switch c.Op {
		case Insert:
			c.Op = Delete
		case Delete:
			c.Op = Insert
		case Replace:
			c.Edits = reverseEdits(c.Edits)
		}
		res[i] = c
	}
	return res
}
