// Package token provides tokenization of EON text.
//
// A [Tokenizer] produces tokens lazily from a complete input buffer;
// [Tokenize] is a convenience which collects all of them.  Whitespace and
// '#' line comments are skipped.  String tokens carry their decoded text,
// and numbers are split into [TInteger] and [TFloat] according to whether
// the literal has a fraction or exponent.
//
// Errors are *[TokenizeErr] values carrying an [ErrKind] and a [Pos].
//
// The package also provides quoting helpers used by the encoder:
// [Quote], [Unquote], [IsIdent] and [NeedsQuote].
package token
