package bulk

import "strings"

// Layout describes how a CSV document is laid out: the index of the first
// data row and the column-name→field-index map built from the header.
// An empty Columns map means "no header detected, use positional defaults".
type Layout struct {
	Start   int
	Columns map[string]int
}

// Headered reports whether a header row was detected.
func (l Layout) Headered() bool { return len(l.Columns) > 0 }

// DetectLayout decides whether the first line is a header row. If any
// expected column name appears as a substring of the lower-cased first
// line, the line is treated as a header: data starts at index 1 and each
// expected column maps to the index of the first header field matching it
// exactly (case-insensitive). Otherwise data starts at index 0 with an
// empty column map, and callers fall back to the agreed positional order.
func DetectLayout(lines []string, expected []string) Layout {
	layout := Layout{Start: 0, Columns: map[string]int{}}
	if len(lines) == 0 {
		return layout
	}

	first := strings.ToLower(lines[0])
	isHeader := false
	for _, col := range expected {
		if strings.Contains(first, strings.ToLower(col)) {
			isHeader = true
			break
		}
	}
	if !isHeader {
		return layout
	}

	layout.Start = 1
	fields := ParseLine(first)
	for _, col := range expected {
		for i, f := range fields {
			if strings.EqualFold(strings.TrimSpace(f), col) {
				layout.Columns[col] = i
				break
			}
		}
	}
	return layout
}
