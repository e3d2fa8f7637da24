package match

import (
	"strings"
	"unicode"
)

// maxQueryLen caps sanitized queries at 100 characters.
const maxQueryLen = 100

// Sanitize strips disallowed characters from a raw query and truncates
// it to maxQueryLen characters. Allowed are letters, digits, whitespace,
// and the punctuation set - . , & : ; ' " ( ) /
//
// Sanitize is pure and total: any input yields a valid query string,
// and an empty input yields an empty string.
func Sanitize(raw string) string {
	var b strings.Builder
	kept := 0
	for _, r := range raw {
		if !allowedRune(r) {
			continue
		}
		b.WriteRune(r)
		kept++
		if kept == maxQueryLen {
			break
		}
	}
	return b.String()
}

func allowedRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case unicode.IsSpace(r):
		return true
	}
	switch r {
	case '-', '.', ',', '&', ':', ';', '\'', '"', '(', ')', '/':
		return true
	}
	return false
}
