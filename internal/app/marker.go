package app

import "strings"

// hasMarker reports whether the first line of text is exactly marker. A
// trailing carriage return on that line is ignored.
func hasMarker(text, marker string) bool {
	first, _, _ := strings.Cut(text, "\n")
	return strings.TrimSuffix(first, "\r") == marker
}

// withMarker prepends the marker line to text.
func withMarker(text, marker string) string {
	return marker + "\n" + text
}
