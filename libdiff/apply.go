package libdiff

import (
	"errors"
	"fmt"
	"slices"

	"github.com/signadot/eon-format/go-eon/ir"
)

var ErrApply = errors.New("cannot apply change")

// Apply applies cs in order to a copy of doc.
func Apply(doc *ir.Node, cs []Change) (*ir.Node, error) {
	res := doc.Clone()
	for i := range cs {
		c := &cs[i]
		var err error
		res, err = applyOne(res, c)
		if err != nil {
			return nil, fmt.Errorf("%w %d (%s %s): %w", ErrApply, i, c.Op, c.Path, err)
		}
	}
	return res, nil
}

func applyOne(doc *ir.Node, c *Change) (*ir.Node, error) {
	path, err := ir.ParsePath(c.Path)
	if err != nil {
		return nil, err
	}
	if path == nil {
		if c.Op != Replace {
			return nil, fmt.Errorf("%s at the root", c.Op)
		}
		return c.To.Clone(), nil
	}
	parent, last := doc, path
	var parentPath *ir.Path
	for last.Next != nil {
		parentPath = appendSeg(parentPath, last)
		last = last.Next
	}
	if parentPath != nil {
		parent, err = doc.GetParsedPath(parentPath)
		if err != nil {
			return nil, err
		}
	}
	switch {
	case last.Field != nil:
		if parent.Type != ir.ObjectType {
			return nil, fmt.Errorf("field %q of %s", *last.Field, parent.Type)
		}
		switch c.Op {
		case Insert, Replace:
			parent.Set(*last.Field, c.To.Clone())
		case Delete:
			if !parent.Delete(*last.Field) {
				return nil, fmt.Errorf("no field %q", *last.Field)
			}
		}
	case last.Index != nil:
		if parent.Type != ir.ArrayType {
			return nil, fmt.Errorf("index %d of %s", *last.Index, parent.Type)
		}
		i := *last.Index
		n := len(parent.Values)
		switch c.Op {
		case Insert:
			if i > n {
				return nil, fmt.Errorf("insert at %d of %d", i, n)
			}
			parent.Values = slices.Insert(parent.Values, i, c.To.Clone())
		case Delete:
			if i >= n {
				return nil, fmt.Errorf("delete at %d of %d", i, n)
			}
			parent.Values = slices.Delete(parent.Values, i, i+1)
		case Replace:
			if i >= n {
				return nil, fmt.Errorf("replace at %d of %d", i, n)
			}
			parent.Values[i] = c.To.Clone()
		}
	}
	return doc, nil
}

func appendSeg(p *ir.Path, seg *ir.Path) *ir.Path {
	s := &ir.Path{Field: seg.Field, Index: seg.Index}
	if p == nil {
		return s
	}
	last := p
	for last.Next != nil {
		last = last.Next
	}
	last.Next = s
	return p
}
