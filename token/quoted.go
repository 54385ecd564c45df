package token

import (
	"encoding/hex"
	"unicode/utf16"
	"unicode/utf8"
)

// IsIdent reports whether v has identifier syntax, [A-Za-z_][A-Za-z0-9_]*.
func IsIdent(v string) bool {
	if v == "" {
		return false
	}
	for i := 0; i < len(v); i++ {
		if !identByte(v[i], i > 0) {
			return false
		}
	}
	return true
}

func identByte(c byte, mid bool) bool {
	switch {
	case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		return true
	case mid && c >= '0' && c <= '9':
		return true
	default:
		return false
	}
}

func keyword(v string) (TokenType, bool) {
	switch v {
	case "true":
		return TTrue, true
	case "false":
		return TFalse, true
	case "null":
		return TNull, true
	default:
		return TIdent, false
	}
}

// NeedsQuote reports whether object key v must be quoted to be read back
// as the same key.
func NeedsQuote(v string) bool {
	if !IsIdent(v) {
		return true
	}
	_, isKW := keyword(v)
	return isKW
}

// Quote returns v as a double quoted EON string.
func Quote(v string) string {
	return string(AppendQuote(make([]byte, 0, len(v)+2), v))
}

// AppendQuote appends the double quoted form of v to d.  Invalid UTF-8 is
// replaced by U+FFFD.
func AppendQuote(d []byte, v string) []byte {
	d = append(d, '"')
	ucs := []byte{0, 0}
	cps := []byte{0, 0, 0, 0}
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if r < 0x20 || r == 0x7f {
				ucs[0] = byte(r >> 8)
				ucs[1] = byte(r)
				cps = hex.AppendEncode(cps[:0], ucs)
				d = append(d, '\\', 'u', cps[0], cps[1], cps[2], cps[3])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	return append(d, '"')
}

// Unquote decodes a double quoted EON string.  The whole of v must be
// the quoted string.
func Unquote(v string) (string, error) {
	res, n, err := quotedString([]byte(v))
	if err != nil {
		return "", err
	}
	if n != len(v) {
		return "", ErrUnexpected
	}
	return res, nil
}

// quotedString decodes the string starting with the '"' at d[0].  It
// returns the decoded text and the number of bytes consumed.  On error
// the returned int is the offset of the offending byte.
func quotedString(d []byte) (string, int, error) {
	if len(d) == 0 || d[0] != '"' {
		return "", 0, ErrUnexpected
	}
	b := make([]byte, 0, len(d))
	i := 1
	for i < len(d) {
		c := d[i]
		switch {
		case c == '"':
			return string(b), i + 1, nil
		case c == '\\':
			r, sz, err := escape(d[i:])
			if err == ErrUnterminated {
				return "", 0, err
			}
			if err != nil {
				return "", i, err
			}
			b = utf8.AppendRune(b, r)
			i += sz
		case c == '\n':
			return "", 0, ErrUnterminated
		case c < 0x20:
			return "", i, ErrUnicodeControl
		case c < utf8.RuneSelf:
			b = append(b, c)
			i++
		default:
			r, sz := utf8.DecodeRune(d[i:])
			if r == utf8.RuneError && sz == 1 {
				return "", i, ErrBadUTF8
			}
			b = append(b, d[i:i+sz]...)
			i += sz
		}
	}
	return "", 0, ErrUnterminated
}

// escape decodes the escape sequence starting with the '\' at d[0].
func escape(d []byte) (rune, int, error) {
	if len(d) < 2 {
		return 0, 0, ErrUnterminated
	}
	switch d[1] {
	case '"', '\\', '/':
		return rune(d[1]), 2, nil
	case 'b':
		return '\b', 2, nil
	case 'f':
		return '\f', 2, nil
	case 'n':
		return '\n', 2, nil
	case 'r':
		return '\r', 2, nil
	case 't':
		return '\t', 2, nil
	case 'u':
		r, ok := hex4(d[2:])
		if !ok {
			return 0, 0, ErrBadUnicode
		}
		if !utf16.IsSurrogate(r) {
			return r, 6, nil
		}
		if len(d) >= 12 && d[6] == '\\' && d[7] == 'u' {
			if r2, ok := hex4(d[8:]); ok {
				if pr := utf16.DecodeRune(r, r2); pr != utf8.RuneError {
					return pr, 12, nil
				}
			}
		}
		// lone surrogate
		return utf8.RuneError, 6, nil
	default:
		return 0, 0, ErrBadEscape
	}
}

func hex4(d []byte) (rune, bool) {
	if len(d) < 4 {
		return 0, false
	}
	var r rune
	for _, c := range d[:4] {
		r <<= 4
		switch {
		case c >= '0' && c <= '9':
			r |= rune(c - '0')
		case c >= 'a' && c <= 'f':
			r |= rune(c-'a') + 10
		case c >= 'A' && c <= 'F':
			r |= rune(c-'A') + 10
		default:
			return 0, false
		}
	}
	return r, true
}
