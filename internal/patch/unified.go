package patch

import (
	"fmt"
	"strings"

	"github.com/sourcegraph/go-diff/diff"
)

// FileDiff describes the changes of r as a zero-context unified diff of the
// file at path. Each rewritten line becomes its own hunk.
func (r *Result) FileDiff(path string) *diff.FileDiff {
	fd := &diff.FileDiff{
		OrigName: "a/" + strings.TrimPrefix(path, "/"),
		NewName:  "b/" + strings.TrimPrefix(path, "/"),
	}

	offset := 0
	for i, old := range r.orig {
		updated := r.lines[i]
		if updated == old {
			continue
		}
		newLines := strings.Split(updated, "\n")

		var body strings.Builder
		fmt.Fprintf(&body, "-%s\n", old)
		for _, l := range newLines {
			fmt.Fprintf(&body, "+%s\n", l)
		}

		fd.Hunks = append(fd.Hunks, &diff.Hunk{
			OrigStartLine: int32(i + 1),
			OrigLines:     1,
			NewStartLine:  int32(i + 1 + offset),
			NewLines:      int32(len(newLines)),
			Body:          []byte(body.String()),
		})
		offset += len(newLines) - 1
	}

	return fd
}

// UnifiedDiff renders FileDiff as text. It returns nil when nothing changed.
func (r *Result) UnifiedDiff(path string) ([]byte, error) {
	fd := r.FileDiff(path)
	if len(fd.Hunks) == 0 {
		return nil, nil
	}
	out, err := diff.PrintFileDiff(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to render diff for %s: %w", path, err)
	}
	return out, nil
}
