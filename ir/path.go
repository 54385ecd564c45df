package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Path is a parsed node path such as `$.user.skills[1]` or
// `$["odd key"].x`.  The leading `$` is optional when parsing.  A `[*]`
// segment matches every element of an array or value of an object, and
// is only usable with ListPath.
type Path struct {
	Field *string
	Index *int
	Wild  bool
	Next  *Path
}

func (p *Path) String() string {
	b := &strings.Builder{}
	b.WriteByte('$')
	for x := p; x != nil; x = x.Next {
		switch {
		case x.Field != nil:
			b.WriteString(FieldSegment(*x.Field))
		case x.Index != nil:
			b.WriteString(IndexSegment(*x.Index))
		case x.Wild:
			b.WriteString("[*]")
		}
	}
	return b.String()
}

// FieldSegment renders field as a path segment, quoting it unless it is
// an identifier.
func FieldSegment(field string) string {
	if isPathIdent(field) {
		return "." + field
	}
	return "[" + strconv.Quote(field) + "]"
}

func IndexSegment(i int) string {
	return "[" + strconv.Itoa(i) + "]"
}

func isPathIdent(v string) bool {
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		c := v[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// ParsePath parses p.  A nil *Path with a nil error denotes the root.
func ParsePath(p string) (*Path, error) {
	s := strings.TrimPrefix(p, "$")
	var (
		root, last *Path
		i          int
	)
	add := func(seg *Path) {
		if root == nil {
			root = seg
		} else {
			last.Next = seg
		}
		last = seg
	}
	for i < len(s) {
		switch s[i] {
		case '.':
			j := i + 1
			for j < len(s) && s[j] != '.' && s[j] != '[' {
				j++
			}
			if j == i+1 {
				return nil, fmt.Errorf("%w %q: empty field at offset %d", ErrBadPath, p, i)
			}
			f := s[i+1 : j]
			add(&Path{Field: &f})
			i = j
		case '[':
			j := strings.IndexByte(s[i:], ']')
			if j == -1 {
				return nil, fmt.Errorf("%w %q: unterminated [", ErrBadPath, p)
			}
			inner := s[i+1 : i+j]
			if strings.HasPrefix(inner, `"`) {
				// the quoted field may itself contain ']'
				end := closingQuote(s, i+1)
				if end == -1 || end+1 >= len(s) || s[end+1] != ']' {
					return nil, fmt.Errorf("%w %q: bad quoted field", ErrBadPath, p)
				}
				f, err := strconv.Unquote(s[i+1 : end+1])
				if err != nil {
					return nil, fmt.Errorf("%w %q: %w", ErrBadPath, p, err)
				}
				add(&Path{Field: &f})
				i = end + 2
				continue
			}
			if inner == "*" {
				add(&Path{Wild: true})
				i += j + 1
				continue
			}
			n, err := strconv.Atoi(inner)
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w %q: bad index %q", ErrBadPath, p, inner)
			}
			add(&Path{Index: &n})
			i += j + 1
		default:
			if i == 0 && len(p) == len(s) {
				// allow "a.b" as shorthand for "$.a.b"
				s = "." + s
				p = "$" + p
				continue
			}
			return nil, fmt.Errorf("%w %q: unexpected %q at offset %d", ErrBadPath, p, s[i], i)
		}
	}
	return root, nil
}

func closingQuote(s string, start int) int {
	esc := false
	for k := start + 1; k < len(s); k++ {
		switch {
		case esc:
			esc = false
		case s[k] == '\\':
			esc = true
		case s[k] == '"':
			return k
		}
	}
	return -1
}

// GetPath returns the node at path p below y.
func (y *Node) GetPath(p string) (*Node, error) {
	path, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	return y.GetParsedPath(path)
}

func (y *Node) GetParsedPath(path *Path) (*Node, error) {
	cur := y
	var done *Path
	for x := path; x != nil; x = x.Next {
		seg := &Path{Field: x.Field, Index: x.Index}
		switch {
		case x.Wild:
			return nil, fmt.Errorf("%w: wildcard after %s", ErrBadPath, done)
		case x.Field != nil:
			next := Get(cur, *x.Field)
			if next == nil {
				return nil, fmt.Errorf("%w: %s has no field %q", ErrNoPath, done, *x.Field)
			}
			cur = next
		case x.Index != nil:
			if cur.Type != ArrayType {
				return nil, fmt.Errorf("%w: %s is %s, not an array", ErrNoPath, done, cur.Type)
			}
			if *x.Index >= len(cur.Values) {
				return nil, fmt.Errorf("%w: %s has %d elements, index %d", ErrNoPath, done, len(cur.Values), *x.Index)
			}
			cur = cur.Values[*x.Index]
		}
		if done == nil {
			done = seg
		} else {
			last := done
			for last.Next != nil {
				last = last.Next
			}
			last.Next = seg
		}
	}
	return cur, nil
}

// ListPath returns the nodes matching path p below y, in document order.
// Paths without wildcards match at most one node.
func (y *Node) ListPath(p string) ([]*Node, error) {
	path, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	return y.ListParsedPath(path), nil
}

func (y *Node) ListParsedPath(path *Path) []*Node {
	cur := []*Node{y}
	for x := path; x != nil; x = x.Next {
		var next []*Node
		for _, n := range cur {
			switch {
			case x.Wild:
				if n.Type == ArrayType || n.Type == ObjectType {
					next = append(next, n.Values...)
				}
			case x.Field != nil:
				if v := Get(n, *x.Field); v != nil {
					next = append(next, v)
				}
			case x.Index != nil:
				if n.Type == ArrayType && *x.Index < len(n.Values) {
					next = append(next, n.Values[*x.Index])
				}
			}
		}
		cur = next
	}
	return cur
}
