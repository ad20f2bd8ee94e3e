package statediff

import (
	"context"
	"strings"

	"github.com/vk/dotlabel/internal/ctxlog"
	"github.com/vk/dotlabel/internal/dot"
)

// DefaultSeparator follows every variable name in an edge label.
const DefaultSeparator = " \n"

// Labeler fills in edge labels from state differences.
type Labeler struct {
	// Separator follows each variable name. Empty means DefaultSeparator.
	Separator string
}

// LabelEdges sets the label of every link in g to the variables that change
// between its endpoints.
//
// Nodes are visited in parse order and each one labels the links leaving it,
// so every link is labeled on its own whether or not it is reachable from the
// root. When ids repeat, the last node with the source id decides the label.
func (l *Labeler) LabelEdges(ctx context.Context, g *dot.Graph) error {
	logger := ctxlog.FromContext(ctx)

	if err := g.Validate(); err != nil {
		return err
	}

	outgoing := make(map[string][]int, len(g.Nodes))
	for i, link := range g.Links {
		outgoing[link.From] = append(outgoing[link.From], i)
	}

	labeled := 0
	for i := range g.Nodes {
		from := &g.Nodes[i]
		for _, li := range outgoing[from.ID] {
			link := &g.Links[li]
			to, _ := g.Node(link.To)

			changed, err := Diff(from, to)
			if err != nil {
				return err
			}
			link.Label = l.join(changed)
			labeled++
		}
	}

	logger.Debug("Edges labeled.", "links", len(g.Links), "labelings", labeled)
	return nil
}

func (l *Labeler) join(names []string) string {
	sep := l.Separator
	if sep == "" {
		sep = DefaultSeparator
	}

	var sb strings.Builder
	for _, name := range names {
		sb.WriteByte(' ')
		sb.WriteString(name)
		sb.WriteString(sep)
	}
	return strings.TrimSpace(sb.String())
}
