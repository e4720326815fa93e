package stylesync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamingConventions(t *testing.T) {
	tests := []struct {
		name  string
		namer VariableNamer
		input string
		want  string
	}{
		{name: "camel unchanged", namer: Camelcased, input: "camelCased", want: "camelCased"},
		{name: "camel capitalized words", namer: Camelcased, input: "Camel Cased", want: "camelCased"},
		{name: "camel lowercased words", namer: Camelcased, input: "camel cased", want: "camelCased"},
		{name: "camel uppercased words", namer: Camelcased, input: "CAMEL CASED", want: "camelCased"},
		{name: "camel trailing space", namer: Camelcased, input: "camel cased ", want: "camelCased"},

		{name: "snake unchanged", namer: LowercasedWithUnderscores, input: "lowercased_underscored", want: "lowercased_underscored"},
		{name: "snake capitalized words", namer: LowercasedWithUnderscores, input: "Lowercased Underscored", want: "lowercased_underscored"},
		{name: "snake lowercased words", namer: LowercasedWithUnderscores, input: "lowercased underscored", want: "lowercased_underscored"},
		{name: "snake uppercased words", namer: LowercasedWithUnderscores, input: "LOWERCASED UNDERSCORED", want: "lowercased_underscored"},
		{name: "snake trailing space", namer: LowercasedWithUnderscores, input: "lowercased underscored ", want: "lowercased_underscored"},
		{name: "snake underscore surrounded by spaces", namer: LowercasedWithUnderscores, input: "lowercased _ underscored", want: "lowercased_underscored"},
		{name: "snake underscore after each word", namer: LowercasedWithUnderscores, input: "lowercased_ underscored_", want: "lowercased_underscored"},

		{name: "pascal unchanged", namer: Capitalized, input: "CapitalizedSpace", want: "CapitalizedSpace"},
		{name: "pascal capitalized words", namer: Capitalized, input: "Capitalized Space", want: "CapitalizedSpace"},
		{name: "pascal lowercased words", namer: Capitalized, input: "capitalized space", want: "CapitalizedSpace"},
		{name: "pascal uppercased words", namer: Capitalized, input: "CAPITALIZED SPACE", want: "CapitalizedSpace"},
		{name: "pascal trailing space", namer: Capitalized, input: "capitalized space ", want: "CapitalizedSpace"},

		{name: "empty name", namer: Camelcased, input: "  ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.namer(tt.input))
		})
	}
}

func TestNamerFor(t *testing.T) {
	for naming, want := range map[string]string{
		"":       "sampleRed",
		"camel":  "sampleRed",
		"pascal": "SampleRed",
		"snake":  "sample_red",
	} {
		namer, err := NamerFor(naming)
		require.NoError(t, err, naming)
		assert.Equal(t, want, namer("Sample Red"), naming)
	}

	_, err := NamerFor("kebab")
	require.Error(t, err)
}

func TestRemoveTrailingWhitespace(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"a\t", "a"},
		{"a ", "a"},
		{"\ta", "\ta"},
		{" a", " a"},
		{"a\tb", "a\tb"},
		{"a b", "a b"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RemoveTrailingWhitespace(tt.input), "%q", tt.input)
	}
}

func TestRemoveEscapeCharacters(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`a\ b`, "a b"},
		{`a\\b`, `a\b`},
		{"a💖b", "a💖b"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RemoveEscapeCharacters(tt.input), "%q", tt.input)
	}
}
