// Package bulk implements the bulk ingestion/export and batch-mutation
// engine: CSV tokenization, header detection, a generic per-entity import
// pipeline with duplicate detection and per-row error isolation, CSV/JSON
// export serialization, and a sequential batch engine with per-id outcome
// tracking.
//
// The CSV quoting scheme is intentionally simplified and not RFC 4180
// complete: ParseLine toggles the in-quotes flag on every double quote and
// does not undo the doubled quotes EscapeField produces. Round-tripping is
// exact for fields that contain no embedded quote character, which covers
// the documents this backend itself exports.
package bulk

import "strings"

// ParseLine splits a single CSV line into trimmed fields. A double quote
// toggles the "inside quoted field" flag; a comma outside quotes ends the
// current field; everything else accumulates.
func ParseLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, strings.TrimSpace(cur.String()))

	return fields
}

// ParseLines splits file content into its non-blank lines. Both LF and
// CRLF line endings are accepted; whitespace-only lines are dropped.
func ParseLines(content string) []string {
	raw := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")

	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines = append(lines, l)
	}
	return lines
}

// EscapeField prepares one value for CSV serialization. Values containing
// a comma, quote, or line break are wrapped in double quotes with internal
// quotes doubled; everything else passes through bare.
func EscapeField(value string) string {
	if value == "" {
		return ""
	}
	if !strings.ContainsAny(value, ",\"\n\r") {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}
