// Package parse parses EON text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{name: "alice", age: 30}`))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from string
//	node, err := parse.ParseString(`[1, 2, 3]`)
//
//	// Reject repeated keys
//	node, err := parse.Parse(data, parse.StrictKeys())
//
// EON is a superset of JSON, so JSON input parses with the default
// options.  YAML input is read with [ParseYAML].
//
// Errors are *[ParseError] values; errors.Is(err, [ErrParse]) holds for
// every parse failure.
//
// # Related Packages
//
//   - github.com/signadot/eon-format/go-eon/ir - IR representation
//   - github.com/signadot/eon-format/go-eon/encode - Encode IR to text
//   - github.com/signadot/eon-format/go-eon/token - Tokenization
package parse
