package fix

import (
	"errors"
	"fmt"
)

// ErrNotWhitespaceOnly is returned by DeriveEdits when before and after
// differ in something other than spaces and tabs.
var ErrNotWhitespaceOnly = errors.New("rewrite changes more than whitespace")

// DeriveEdits returns the minimal edits turning before into after, given
// that the two differ only in runs of spaces and tabs. Each differing run
// yields one edit replacing the whole run in before. Offsets are bytes into
// before.
func DeriveEdits(before, after string) ([]TextEdit, error) {
	builder := NewEditBuilder()
	i, j := 0, 0

	for i < len(before) || j < len(after) {
		gapEnd := skipBlank(before, i)
		newEnd := skipBlank(after, j)
		if before[i:gapEnd] != after[j:newEnd] {
			builder.ReplaceRange(i, gapEnd, after[j:newEnd])
		}
		i, j = gapEnd, newEnd

		if i == len(before) && j == len(after) {
			break
		}
		if i == len(before) || j == len(after) || before[i] != after[j] {
			return nil, fmt.Errorf("%w: mismatch at offset %d", ErrNotWhitespaceOnly, i)
		}
		i++
		j++
	}

	return builder.Edits, nil
}

func skipBlank(s string, pos int) int {
	for pos < len(s) && (s[pos] == ' ' || s[pos] == '\t') {
		pos++
	}
	return pos
}
