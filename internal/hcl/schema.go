package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level structure of a dialect file.
type fileRoot struct {
	Dialects []*dialectBlock `hcl:"dialect,block"`
	Remain   hcl.Body        `hcl:",remain"`
}

// dialectBlock is a `dialect` block. Pointer fields stay nil when the
// attribute is absent so the defaults can show through.
type dialectBlock struct {
	Name           string         `hcl:"name,label"`
	HeaderLines    *int           `hcl:"header_lines,optional"`
	Marker         *string        `hcl:"marker,optional"`
	EdgePredicate  *string        `hcl:"edge_predicate,optional"`
	LabelSeparator *string        `hcl:"label_separator,optional"`
	EdgeDefaults   hcl.Expression `hcl:"edge_defaults,optional"`
}
