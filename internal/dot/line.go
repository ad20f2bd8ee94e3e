package dot

import (
	"fmt"
	"strings"
)

// Parser classifies and parses individual lines.
type Parser struct {
	// IsEdge recognises edge lines. Nil means FixedOffsetArrow.
	IsEdge EdgePredicate
	// DefaultColor and DefaultFontColor fill in absent edge attributes.
	DefaultColor     string
	DefaultFontColor string
}

// NewParser returns a Parser with the checker's defaults.
func NewParser() *Parser {
	return &Parser{
		IsEdge:           FixedOffsetArrow,
		DefaultColor:     "black",
		DefaultFontColor: "black",
	}
}

// Classify decides what line declares and parses it. Brace lines and empty
// lines are structural. Anything that is not an edge is parsed as a node,
// and a node without a label is an error.
func (p *Parser) Classify(line string) (Line, error) {
	if line == "" || line[0] == '{' || line[0] == '}' {
		return Line{Kind: KindStructural}, nil
	}

	if link, ok := p.ParseEdge(line); ok {
		return Line{Kind: KindEdge, Link: link}, nil
	}

	node, err := ParseNode(line)
	if err != nil {
		return Line{}, err
	}
	return Line{Kind: KindNode, Node: node}, nil
}

// ParseEdge parses line as an edge declaration. It reports false when the
// line is not an edge according to the parser's predicate.
func (p *Parser) ParseEdge(line string) (*Link, bool) {
	sp := strings.IndexByte(line, ' ')
	if sp < 0 {
		return nil, false
	}
	from, rest := line[:sp], line[sp:]

	isEdge := p.IsEdge
	if isEdge == nil {
		isEdge = FixedOffsetArrow
	}
	pos, ok := isEdge(rest)
	if !ok || pos+len(arrow)+1 > len(rest) {
		return nil, false
	}
	rest = rest[pos+len(arrow)+1:]

	sp = strings.IndexByte(rest, ' ')
	if sp < 0 {
		return nil, false
	}
	to, attrs := rest[:sp], rest[sp:]

	return &Link{
		From:      from,
		To:        to,
		Label:     PropertyOr(attrs, "label", ""),
		Color:     PropertyOr(attrs, "color", p.DefaultColor),
		FontColor: PropertyOr(attrs, "fontcolor", p.DefaultFontColor),
	}, true
}

// ParseNode parses line as a node declaration.
func ParseNode(line string) (*Node, error) {
	sp := strings.IndexByte(line, ' ')
	if sp < 0 {
		return nil, fmt.Errorf("%w: node line has no attribute list", ErrAttributeNotFound)
	}
	id, rest := line[:sp], line[sp:]

	label, ok := Property(rest, "label")
	if !ok {
		return nil, fmt.Errorf("%w: node %s has no label", ErrAttributeNotFound, id)
	}

	assignments, err := Decompose(label)
	if err != nil {
		return nil, fmt.Errorf("node %s: %w", id, err)
	}

	return &Node{ID: id, Label: label, Assignments: assignments}, nil
}
