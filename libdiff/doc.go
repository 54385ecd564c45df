// Package libdiff computes structural differences between documents.
//
// # Usage
//
//	changes := libdiff.Diff(oldNode, newNode)
//	for i := range changes {
//	    fmt.Println(changes[i].String())
//	}
//
//	// Apply the changes
//	patched, err := libdiff.Apply(oldNode, changes)
//
// Object fields are aligned by key and arrays by element, both with
// the diff algorithm of github.com/sergi/go-diff.  Key order is not
// significant, as with [ir.Equal].
//
// # Related Packages
//
//   - github.com/signadot/eon-format/go-eon/ir - IR representation
package libdiff
