package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Normalize prepares a value for duplicate detection:
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - strips diacritics (NFD decompose, drop combining marks)
//   - compresses runs of spaces into one
//
// "Prusament" and "prusament ", or "Övervåning" and "overvaning",
// produce the same dedup key.
func Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return ""
	}

	decomposed := norm.NFD.String(text)

	var b strings.Builder
	b.Grow(len(decomposed))
	prevSpace := false
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
