package config

import (
	"errors"
	"fmt"

	"github.com/vk/dotlabel/internal/dot"
	"github.com/vk/dotlabel/internal/statediff"
)

// DefaultMarker is the first line of a file that has already been processed.
const DefaultMarker = "//<processed>"

// Dialect is the unified description of one family of input files.
type Dialect struct {
	Name           string
	HeaderLines    int
	Marker         string
	EdgePredicate  string
	LabelSeparator string
	EdgeDefaults   map[string]string
}

// DefaultDialect returns the dialect of the model checker's dot output.
func DefaultDialect() *Dialect {
	return &Dialect{
		Name:           "default",
		HeaderLines:    dot.DefaultHeaderLines,
		Marker:         DefaultMarker,
		EdgePredicate:  "fixed-offset",
		LabelSeparator: statediff.DefaultSeparator,
		EdgeDefaults: map[string]string{
			"color":     "black",
			"fontcolor": "black",
		},
	}
}

// Validate checks the dialect for values the pipeline cannot work with.
func (d *Dialect) Validate() error {
	if d.HeaderLines < 0 {
		return fmt.Errorf("dialect %q: header_lines must not be negative, got %d", d.Name, d.HeaderLines)
	}
	if d.Marker == "" {
		return errors.New("dialect " + d.Name + ": marker must not be empty")
	}
	if _, err := dot.PredicateByName(d.EdgePredicate); err != nil {
		return fmt.Errorf("dialect %q: %w", d.Name, err)
	}
	for attr := range d.EdgeDefaults {
		if attr != "color" && attr != "fontcolor" {
			return fmt.Errorf("dialect %q: unsupported edge default %q", d.Name, attr)
		}
	}
	return nil
}

// Parser builds a line parser configured for the dialect.
func (d *Dialect) Parser() (*dot.Parser, error) {
	predicate, err := dot.PredicateByName(d.EdgePredicate)
	if err != nil {
		return nil, err
	}
	p := dot.NewParser()
	p.IsEdge = predicate
	if c, ok := d.EdgeDefaults["color"]; ok {
		p.DefaultColor = c
	}
	if c, ok := d.EdgeDefaults["fontcolor"]; ok {
		p.DefaultFontColor = c
	}
	return p, nil
}

// Labeler builds an edge labeler configured for the dialect.
func (d *Dialect) Labeler() *statediff.Labeler {
	return &statediff.Labeler{Separator: d.LabelSeparator}
}
