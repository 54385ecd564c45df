// Package format names the text formats EON documents can be read from
// and written to.
//
// EON is the native format. JSON is accepted on input as a subset of EON
// and produced on output with every key quoted. YAML is supported for
// conversion.
package format
