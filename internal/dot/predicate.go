package dot

import (
	"fmt"
	"sort"
	"strings"
)

const arrow = "->"

// EdgePredicate decides whether the remainder of a line, everything after
// the first id, declares an edge. On success it returns the byte offset of
// the arrow within remainder. The target id is expected to start three bytes
// after that offset ("-> ").
type EdgePredicate func(remainder string) (int, bool)

// FixedOffsetArrow accepts a line only when the arrow sits right after the
// single space that ends the source id, which is the spacing the model
// checker emits. An arrow anywhere else does not make the line an edge.
func FixedOffsetArrow(remainder string) (int, bool) {
	pos := strings.Index(remainder, arrow)
	return pos, pos == 1
}

// AnyOffsetArrow accepts the first space-delimited arrow anywhere in the
// remainder, for files whose ids are padded or aligned.
func AnyOffsetArrow(remainder string) (int, bool) {
	pos := strings.Index(remainder, " "+arrow+" ")
	if pos < 0 {
		return -1, false
	}
	return pos + 1, true
}

var predicates = map[string]EdgePredicate{
	"fixed-offset": FixedOffsetArrow,
	"any-offset":   AnyOffsetArrow,
}

// PredicateByName returns a registered edge predicate.
func PredicateByName(name string) (EdgePredicate, error) {
	p, ok := predicates[name]
	if !ok {
		return nil, fmt.Errorf("unknown edge predicate %q (known: %s)", name, strings.Join(PredicateNames(), ", "))
	}
	return p, nil
}

// PredicateNames lists the registered predicate names in sorted order.
func PredicateNames() []string {
	names := make([]string, 0, len(predicates))
	for name := range predicates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
