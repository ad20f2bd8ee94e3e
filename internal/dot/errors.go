package dot

import (
	"errors"
	"fmt"
)

var (
	// ErrAttributeNotFound is returned when a mandatory attribute is absent.
	ErrAttributeNotFound = errors.New("attribute not found")
	// ErrMalformedLabel is returned when a label token lacks its prefix or " = " separator.
	ErrMalformedLabel = errors.New("malformed label token")
	// ErrDanglingEdge is returned when an edge references an id with no parsed node.
	ErrDanglingEdge = errors.New("edge references unknown node")
)

// ParseError reports a failure on a specific input line.
type ParseError struct {
	Line int // 1-based line number in the original text.
	Text string
	Err  error
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
