package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/eon-format/go-eon/debug"
	"github.com/signadot/eon-format/go-eon/format"
	"github.com/signadot/eon-format/go-eon/ir"
	"github.com/signadot/eon-format/go-eon/token"
)

var (
	ErrEncoding  = errors.New("encoding error")
	ErrNonFinite = fmt.Errorf("%w: non-finite number", ErrEncoding)
)

type EncState struct {
	depth, indent int
	pretty        bool
	sortKeys      bool

	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w.  Nothing is written if node cannot be
// encoded.  No trailing newline is written.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if es.pretty && es.indent < 0 {
		return fmt.Errorf("%w: negative indent %d", ErrEncoding, es.indent)
	}
	buf := bytes.NewBuffer(nil)
	var err error
	if es.format == format.YAMLFormat {
		err = encodeYAML(node, buf, es)
	} else {
		err = encode(node, buf, es)
	}
	if err != nil {
		if debug.Encode() {
			debug.Logf("encode %s: %v", node.Type, err)
		}
		return err
	}
	_, err = w.Write(buf.Bytes())
	return err
}

func EncodeString(node *ir.Node, opts ...EncodeOption) (string, error) {
	buf := &strings.Builder{}
	if err := Encode(node, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func writeNL(w *bytes.Buffer, es *EncState) {
	w.WriteByte('\n')
	w.WriteString(strings.Repeat(" ", es.indent*es.depth))
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func encode(node *ir.Node, w *bytes.Buffer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		w.WriteString(applyColor(es, ir.StringType, ValueColor, token.Quote(node.String)))
		return nil
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.BoolType:
		w.WriteString(applyColor(es, ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
		return nil
	case ir.NullType:
		w.WriteString(applyColor(es, ir.NullType, ValueColor, "null"))
		return nil
	default:
		return fmt.Errorf("%w: unknown node type %d", ErrEncoding, int(node.Type))
	}
}

func writeSep(w *bytes.Buffer, es *EncState, cType ir.Type, sep string) {
	w.WriteString(applyColor(es, cType, SepColor, sep))
}

// writeItemSep writes what separates the items of a container: a comma
// and a space, or a comma and a new line.
func writeItemSep(w *bytes.Buffer, es *EncState, cType ir.Type) {
	writeSep(w, es, cType, ",")
	if es.pretty {
		writeNL(w, es)
		return
	}
	w.WriteByte(' ')
}

func encodeObject(node *ir.Node, w *bytes.Buffer, es *EncState) error {
	n := len(node.Fields)
	if n != len(node.Values) {
		return fmt.Errorf("%w: object with %d fields and %d values", ErrEncoding, n, len(node.Values))
	}
	if n == 0 {
		writeSep(w, es, ir.ObjectType, "{}")
		return nil
	}
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if es.sortKeys {
		slices.SortStableFunc(order, func(a, b int) int {
			return strings.Compare(node.Fields[a].String, node.Fields[b].String)
		})
	}
	writeSep(w, es, ir.ObjectType, "{")
	es.depth++
	if es.pretty {
		writeNL(w, es)
	}
	for i, j := range order {
		if i > 0 {
			writeItemSep(w, es, ir.ObjectType)
		}
		field := node.Fields[j]
		if field.Type != ir.StringType {
			return fmt.Errorf("%w: %s object key", ErrEncoding, field.Type)
		}
		writeField(w, field.String, es)
		if err := encode(node.Values[j], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if es.pretty {
		writeNL(w, es)
	}
	writeSep(w, es, ir.ObjectType, "}")
	return nil
}

func writeField(w *bytes.Buffer, f string, es *EncState) {
	if es.format.IsJSON() || token.NeedsQuote(f) {
		f = token.Quote(f)
	}
	w.WriteString(applyColor(es, ir.ObjectType, FieldColor, f))
	writeSep(w, es, ir.ObjectType, ":")
	w.WriteByte(' ')
}

func encodeArray(node *ir.Node, w *bytes.Buffer, es *EncState) error {
	if len(node.Values) == 0 {
		writeSep(w, es, ir.ArrayType, "[]")
		return nil
	}
	writeSep(w, es, ir.ArrayType, "[")
	es.depth++
	if es.pretty {
		writeNL(w, es)
	}
	for i, elt := range node.Values {
		if i > 0 {
			writeItemSep(w, es, ir.ArrayType)
		}
		if err := encode(elt, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if es.pretty {
		writeNL(w, es)
	}
	writeSep(w, es, ir.ArrayType, "]")
	return nil
}

func encodeNumber(node *ir.Node, w *bytes.Buffer, es *EncState) error {
	var v string
	switch {
	case node.Int64 != nil:
		v = strconv.FormatInt(*node.Int64, 10)
	case node.Float64 != nil:
		f, err := FormatFloat(*node.Float64)
		if err != nil {
			return err
		}
		v = f
	case node.Number != "":
		v = node.Number
	default:
		return fmt.Errorf("%w: number without a value", ErrEncoding)
	}
	w.WriteString(applyColor(es, ir.NumberType, ValueColor, v))
	return nil
}

// FormatFloat renders f in its shortest round trip form.  Integral
// values get a ".0" so they read back as floats, and exponent form is
// used only for very small or very large magnitudes.
func FormatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w %v", ErrNonFinite, f)
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64), nil
	}
	v := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(v, ".") {
		v += ".0"
	}
	return v, nil
}
