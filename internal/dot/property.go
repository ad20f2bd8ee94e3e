package dot

import "strings"

// Property returns the raw quoted value of the attribute `name` in line.
//
// The first occurrence of name is taken and is expected to be followed
// directly by `="`. The value runs up to the next `"` that is not preceded by
// a backslash; escape sequences are returned verbatim. A `\\"` sequence is
// still treated as an escaped quote.
//
// The search is a plain substring match, so looking up "color" on a line that
// only carries fontcolor returns the fontcolor value.
func Property(line, name string) (string, bool) {
	pos := strings.Index(line, name)
	if pos < 0 {
		return "", false
	}

	start := pos + len(name) + len(`="`)
	if start > len(line) {
		return "", false
	}
	rest := line[start:]

	from := 0
	for {
		i := strings.IndexByte(rest[from:], '"')
		if i < 0 {
			return "", false
		}
		end := from + i
		if i > 0 && rest[end-1] == '\\' {
			from = end + 1
			continue
		}
		return rest[:end], true
	}
}

// PropertyOr returns the value of the attribute or def when it is absent.
func PropertyOr(line, name, def string) string {
	if v, ok := Property(line, name); ok {
		return v
	}
	return def
}
