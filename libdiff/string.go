package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Edit is a piece of a character level string diff.
type Edit struct {
	Op   Op
	Text string
}

// DiffString computes a character level diff of two strings.  It reports
// false when the strings are too different for the diff to be useful.
func DiffString(from, to string) ([]Edit, bool) {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	diffSize := 0
	edits := make([]Edit, 0, len(diffs))
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			edits = append(edits, Edit{Op: Insert, Text: diff.Text})
			diffSize += len(diff.Text)
		case diffpatch.DiffDelete:
			edits = append(edits, Edit{Op: Delete, Text: diff.Text})
			diffSize += len(diff.Text)
		case diffpatch.DiffEqual:
			edits = append(edits, Edit{Text: diff.Text})
		}
	}
	if diffSize == 0 || diffSize > min(len(from), len(to)) {
		return nil, false
	}
	return edits, true
}

func reverseEdits(es []Edit) []Edit {
	if es == nil {
		return nil
	}
	res := make([]Edit, len(es))
	for i, e := range es {
		switch e.Op {
		case Insert:
			e.Op = Delete
		case Delete:
			e.Op = Insert
		}
		res[i] = e
	}
	return res
}

// StringEditsText renders edits as "[-deleted-]{+inserted+}" markup.
func StringEditsText(es []Edit) string {
	b := &strings.Builder{}
	for _, e := range es {
		switch e.Op {
		case Insert:
			b.WriteString("{+" + e.Text + "+}")
		case Delete:
			b.WriteString("[-" + e.Text + "-]")
		default:
			b.WriteString(e.Text)
		}
	}
	return b.String()
}
