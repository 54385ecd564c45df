package encode

import "github.com/signadot/eon-format/go-eon/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// EncodeIndent selects multi-line output with n spaces per level.  A
// negative n makes Encode fail.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) {
		es.indent = n
		es.pretty = true
	}
}

// EncodeSortKeys emits object keys in sorted order instead of insertion
// order.
func EncodeSortKeys(v bool) EncodeOption {
	return func(es *EncState) { es.sortKeys = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
