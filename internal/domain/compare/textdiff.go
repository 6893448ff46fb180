package compare

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineOp marks a line in a line diff.
type LineOp int

const (
	LineRemoved LineOp = iota
	LineAdded
)

// DiffLine is one changed line between two rendered bodies.
type DiffLine struct {
	Op   LineOp
	Text string
}

// ChangedLines returns the lines removed from current and added in next,
// in document order.
func ChangedLines(current, next string) []DiffLine {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(current, next)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out []DiffLine
	for _, d := range diffs {
		var op LineOp
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = LineRemoved
		case diffmatchpatch.DiffInsert:
			op = LineAdded
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out = append(out, DiffLine{Op: op, Text: strings.TrimSuffix(line, "\n")})
		}
	}
	return out
}
