package dot

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/dotlabel/internal/ctxlog"
)

// DefaultHeaderLines is the length of the preamble the checker writes
// before the first node.
const DefaultHeaderLines = 4

// Graph holds the nodes and links of one file in parse order.
type Graph struct {
	Nodes []Node
	Links []Link

	index map[string]int
}

// NewGraph builds a Graph from already parsed records.
func NewGraph(nodes []Node, links []Link) *Graph {
	g := &Graph{Nodes: nodes, Links: links}
	g.reindex()
	return g
}

func (g *Graph) reindex() {
	g.index = make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		// First declaration wins on duplicate ids.
		if _, dup := g.index[n.ID]; !dup {
			g.index[n.ID] = i
		}
	}
}

// Node returns the node with the given id.
func (g *Graph) Node(id string) (*Node, bool) {
	if g.index == nil {
		g.reindex()
	}
	i, ok := g.index[id]
	if !ok {
		return nil, false
	}
	return &g.Nodes[i], true
}

// Validate checks that every link endpoint names a parsed node.
func (g *Graph) Validate() error {
	for _, l := range g.Links {
		if _, ok := g.Node(l.From); !ok {
			return fmt.Errorf("%w: %s -> %s: source %s", ErrDanglingEdge, l.From, l.To, l.From)
		}
		if _, ok := g.Node(l.To); !ok {
			return fmt.Errorf("%w: %s -> %s: target %s", ErrDanglingEdge, l.From, l.To, l.To)
		}
	}
	return nil
}

// Parse reads a whole file. The first headerLines lines are skipped without
// being looked at.
func (p *Parser) Parse(ctx context.Context, text string, headerLines int) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)

	lines := strings.Split(text, "\n")
	if headerLines > len(lines) {
		headerLines = len(lines)
	}

	var nodes []Node
	var links []Link
	for i, raw := range lines[headerLines:] {
		parsed, err := p.Classify(raw)
		if err != nil {
			return nil, &ParseError{Line: headerLines + i + 1, Text: raw, Err: err}
		}
		switch parsed.Kind {
		case KindEdge:
			links = append(links, *parsed.Link)
		case KindNode:
			if len(nodes) == 0 {
				parsed.Node.IsRoot = true
			}
			nodes = append(nodes, *parsed.Node)
		}
	}

	logger.Debug("Graph parsed.", "nodes", len(nodes), "links", len(links), "header_lines", headerLines)
	return NewGraph(nodes, links), nil
}
