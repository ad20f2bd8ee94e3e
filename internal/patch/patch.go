// Package patch writes computed edge labels back into the original graph
// text. It never regenerates the file: only the empty label field of a
// matching edge line is replaced and every other byte is left as it was.
package patch

import (
	"context"
	"strings"

	"github.com/vk/dotlabel/internal/ctxlog"
	"github.com/vk/dotlabel/internal/dot"
)

const emptyLabel = `label=""`

// Result is the outcome of patching one text.
type Result struct {
	// Patched counts the edges whose label field was filled in.
	Patched int

	orig  []string
	lines []string
}

// Text returns the patched text.
func (r *Result) Text() string {
	return strings.Join(r.lines, "\n")
}

// Changed reports whether any line differs from the input.
func (r *Result) Changed() bool {
	return r.Patched > 0 && r.Text() != strings.Join(r.orig, "\n")
}

// Apply fills in the label of each link, in order, against the progressively
// updated text.
//
// For a link the first line containing "<from> -> <to>" is the target. If
// that line has an empty label field the first `label=""` on it becomes
// `label="<link.Label>"`; a line that already carries a label is left alone.
// Ids that are prefixes of other ids can make a link hit the wrong line, so
// inputs must keep "<from> -> <to>" unambiguous.
//
// A label containing newlines splits its line in two or more; later links
// see those pieces as separate lines.
func Apply(ctx context.Context, text string, links []dot.Link) *Result {
	logger := ctxlog.FromContext(ctx)

	orig := strings.Split(text, "\n")
	r := &Result{
		orig:  orig,
		lines: append([]string(nil), orig...),
	}

	for _, link := range links {
		if r.applyLink(link) {
			r.Patched++
		}
	}

	logger.Debug("Edge labels written.", "links", len(links), "patched", r.Patched)
	return r
}

func (r *Result) applyLink(link dot.Link) bool {
	search := link.From + " -> " + link.To

	for i, line := range r.lines {
		pieces := strings.Split(line, "\n")
		for j, piece := range pieces {
			if !strings.Contains(piece, search) {
				continue
			}
			if !strings.Contains(piece, emptyLabel) {
				return false
			}
			pieces[j] = strings.Replace(piece, emptyLabel, `label="`+link.Label+`"`, 1)
			r.lines[i] = strings.Join(pieces, "\n")
			return true
		}
	}
	return false
}
