package stylesync

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// isAlphanumeric matches the characters that may not touch a style reference
func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// isBoundary checks the characters around s[start:end]
func isBoundary(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if isAlphanumeric(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if isAlphanumeric(r) {
			return false
		}
	}
	return true
}

// IndexBoundary returns the byte offset of the first occurrence of token in s
// that is not surrounded by alphanumeric characters, or -1.
// "sampleRed" matches in ".sampleRed)" but not in "sampleRedLight".
// An empty token never matches.
func IndexBoundary(s, token string) int {
	return indexBoundaryFrom(s, token, 0)
}

func indexBoundaryFrom(s, token string, from int) int {
	if token == "" {
		return -1
	}

	for from <= len(s)-len(token) {
		i := strings.Index(s[from:], token)
		if i < 0 {
			return -1
		}
		i += from

		if isBoundary(s, i, i+len(token)) {
			return i
		}

		// Step past the first rune of the rejected candidate
		_, size := utf8.DecodeRuneInString(s[i:])
		from = i + size
	}

	return -1
}

// ContainsBoundary reports whether s holds a boundary-valid occurrence of token
func ContainsBoundary(s, token string) bool {
	return IndexBoundary(s, token) >= 0
}

// ReplaceBoundary replaces every boundary-valid occurrence of from with to
// and returns the new string with the number of replacements.
// Scanning resumes after each inserted replacement, so a replacement that
// itself contains from is never re-matched.
func ReplaceBoundary(s, from, to string) (string, int) {
	i := IndexBoundary(s, from)
	if i < 0 {
		return s, 0
	}

	var b strings.Builder
	b.Grow(len(s))

	count := 0
	last := 0
	for i >= 0 {
		b.WriteString(s[last:i])
		b.WriteString(to)
		count++
		last = i + len(from)
		i = indexBoundaryFrom(s, from, last)
	}
	b.WriteString(s[last:])

	return b.String(), count
}
