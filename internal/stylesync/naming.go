package stylesync

import (
	"fmt"
	"strings"
	"unicode"
)

// Naming conventions for generated variable names
const (
	NamingCamel  = "camel"  // "Sample Red" -> "sampleRed"
	NamingPascal = "pascal" // "Sample Red" -> "SampleRed"
	NamingSnake  = "snake"  // "Sample Red" -> "sample_red"
)

// VariableNamer converts a style name into a code-safe variable name
type VariableNamer func(name string) string

// NamerFor returns the namer of a naming convention
func NamerFor(naming string) (VariableNamer, error) {
	switch naming {
	case "", NamingCamel:
		return Camelcased, nil
	case NamingPascal:
		return Capitalized, nil
	case NamingSnake:
		return LowercasedWithUnderscores, nil
	default:
		return nil, fmt.Errorf("unknown naming convention %q (want camel, pascal or snake)", naming)
	}
}

// nameWords splits a style name into words on whitespace, underscores,
// hyphens and other punctuation. A word that is entirely uppercase is
// lowercased so "CAMEL CASED" behaves like "camel cased".
func nameWords(name string) []string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !isAlphanumeric(r)
	})

	for i, word := range words {
		if strings.ToUpper(word) == word {
			words[i] = strings.ToLower(word)
		}
	}

	return words
}

func upperFirst(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(word)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func lowerFirst(word string) string {
	if word == "" {
		return word
	}
	runes := []rune(word)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// Camelcased converts "Camel Cased" to "camelCased".
// A single word keeps its inner casing: "camelCased" stays "camelCased".
func Camelcased(name string) string {
	words := nameWords(name)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(lowerFirst(words[0]))
	for _, word := range words[1:] {
		b.WriteString(upperFirst(word))
	}
	return b.String()
}

// Capitalized converts "capitalized space" to "CapitalizedSpace"
func Capitalized(name string) string {
	var b strings.Builder
	for _, word := range nameWords(name) {
		b.WriteString(upperFirst(word))
	}
	return b.String()
}

// LowercasedWithUnderscores converts "Lowercased Underscored" to "lowercased_underscored"
func LowercasedWithUnderscores(name string) string {
	words := nameWords(name)
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, "_")
}

// RemoveTrailingWhitespace trims spaces and tabs from the end of s only
func RemoveTrailingWhitespace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// RemoveEscapeCharacters drops shell escapes: `a\ b` -> `a b`, `a\\b` -> `a\b`
func RemoveEscapeCharacters(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	escaped := false
	for _, r := range s {
		if r == '\\' && !escaped {
			escaped = true
			continue
		}
		escaped = false
		b.WriteRune(r)
	}

	return b.String()
}
