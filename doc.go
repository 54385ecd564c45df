// Package eon reads and writes EON documents.
//
// EON is a JSON-like text format whose object keys may be bare
// identifiers:
//
//	{name: "eon", version: 1.0, tags: ["json", "like"], "quoted key": null}
//
// [Loads] and [Dumps] convert between text and *ir.Node values, [Load]
// and [Dump] work with readers and writers, and [LoadFile] and
// [DumpFile] with files.  [Unmarshal] and [Marshal] work with dynamic Go
// values.
//
// Failures to read or write are *[IOError] values.  Failures to parse
// satisfy errors.Is(err, parse.ErrParse) and are never *IOError.
//
// # Related Packages
//
//   - github.com/signadot/eon-format/go-eon/ir - IR representation
//   - github.com/signadot/eon-format/go-eon/parse - Parse text to IR
//   - github.com/signadot/eon-format/go-eon/encode - Encode IR to text
//   - github.com/signadot/eon-format/go-eon/libdiff - Structural diffs
package eon
