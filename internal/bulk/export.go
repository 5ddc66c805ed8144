package bulk

import (
	"encoding/json"
	"strings"
)

// Document renders a complete CSV document: one header line followed by
// one line per row, every field passed through EscapeField. The output is
// parseable by this package's own ParseLine (modulo the documented
// quoting limitation for fields with embedded quotes).
func Document(header []string, rows [][]string) string {
	var b strings.Builder
	b.WriteString(joinEscaped(header))
	b.WriteByte('\n')
	for _, row := range rows {
		b.WriteString(joinEscaped(row))
		b.WriteByte('\n')
	}
	return b.String()
}

func joinEscaped(fields []string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = EscapeField(f)
	}
	return strings.Join(escaped, ",")
}

// PrettyJSON marshals v as indented JSON for export responses.
func PrettyJSON(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}
