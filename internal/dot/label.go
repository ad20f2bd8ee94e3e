package dot

import (
	"fmt"
	"strings"
)

// labelLineSep is the two-character escape the checker uses for a newline
// inside a quoted label.
const labelLineSep = `\n`

// assignSep separates a variable name from its value.
const assignSep = " = "

// Decompose splits a raw node label into its assignments, in label order.
//
// Each line of the label looks like `/\\ name = value`: the token up to the
// first space is a connective and is dropped, the value is kept verbatim.
func Decompose(label string) ([]Assignment, error) {
	tokens := strings.Split(label, labelLineSep)
	assignments := make([]Assignment, 0, len(tokens))

	for i, token := range tokens {
		_, body, ok := strings.Cut(token, " ")
		if !ok {
			return nil, fmt.Errorf("%w: token %d %q has no connective prefix", ErrMalformedLabel, i, token)
		}
		name, value, ok := strings.Cut(body, assignSep)
		if !ok {
			return nil, fmt.Errorf("%w: token %d %q has no %q separator", ErrMalformedLabel, i, token, assignSep)
		}
		assignments = append(assignments, Assignment{Var: name, Val: value})
	}

	return assignments, nil
}
