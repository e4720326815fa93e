package stylesync

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestionnaire_Defaults(t *testing.T) {
	var out bytes.Buffer
	q := NewQuestionnaire(strings.NewReader(strings.Repeat("\n", 6)), &out)

	answers, err := q.Run(DefaultInitAnswers())
	require.NoError(t, err)

	assert.Equal(t, DefaultInitAnswers(), answers)
	assert.Contains(t, out.String(), "Path of the design document (.json or .css) [design/styles.json]\n")
	assert.Contains(t, out.String(), "Template for color styles (empty for the built-in Go template) [built-in]\n")
}

func TestQuestionnaire_Answers(t *testing.T) {
	input := strings.Join([]string{
		`design/My\ Styles.json   `,
		"app",
		"kebab",
		"pascal",
		"templates/ColorStyles.swift.tmpl",
		"",
		"Sources/Styles",
	}, "\n") + "\n"

	var out bytes.Buffer
	answers, err := NewQuestionnaire(strings.NewReader(input), &out).Run(DefaultInitAnswers())
	require.NoError(t, err)

	assert.Equal(t, InitAnswers{
		Document:      "design/My Styles.json",
		Project:       "app",
		Naming:        NamingPascal,
		ColorTemplate: "templates/ColorStyles.swift.tmpl",
		OutputDir:     "Sources/Styles",
	}, answers)
	assert.Contains(t, out.String(), `"kebab" is not a valid answer`)
	assert.Equal(t, 2, strings.Count(out.String(), "Variable naming (camel, pascal, snake)"))
}

func TestQuestionnaire_EndOfInput(t *testing.T) {
	var out bytes.Buffer
	answers, err := NewQuestionnaire(strings.NewReader("styles.css"), &out).Run(DefaultInitAnswers())
	require.NoError(t, err)

	want := DefaultInitAnswers()
	want.Document = "styles.css"
	assert.Equal(t, want, answers)
}

func TestQuestionnaire_InvalidAtEndOfInput(t *testing.T) {
	var out bytes.Buffer
	answers, err := NewQuestionnaire(strings.NewReader("\n\nkebab"), &out).Run(DefaultInitAnswers())
	require.NoError(t, err)

	assert.Equal(t, DefaultInitAnswers(), answers)
	assert.Contains(t, out.String(), `"kebab" is not a valid answer`)
}
