// Package statediff compares checker states and labels each transition with
// the variables it changed.
package statediff

import (
	"errors"
	"fmt"

	"github.com/vk/dotlabel/internal/dot"
)

// ErrUnknownVariable is returned when the target state lacks a variable the
// source state has. All states of one model share the same variables, so
// this means the input is inconsistent.
var ErrUnknownVariable = errors.New("variable missing in target state")

// Diff returns the names of the variables of from whose raw value differs
// in to, in from's order. Values are compared as text.
//
// Only from's variables are inspected; a variable that exists in to alone
// is never reported.
func Diff(from, to *dot.Node) ([]string, error) {
	var changed []string
	for _, a := range from.Assignments {
		b, ok := lookup(to.Assignments, a.Var)
		if !ok {
			return nil, fmt.Errorf("%w: %s (from %s to %s)", ErrUnknownVariable, a.Var, from.ID, to.ID)
		}
		if a.Val != b.Val {
			changed = append(changed, a.Var)
		}
	}
	return changed, nil
}

func lookup(assignments []dot.Assignment, name string) (dot.Assignment, bool) {
	for _, a := range assignments {
		if a.Var == name {
			return a, true
		}
	}
	return dot.Assignment{}, false
}
