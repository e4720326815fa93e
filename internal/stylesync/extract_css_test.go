package stylesync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStylesheet = `
/* Brand palette */
:root {
  /* @id: C1 */
  --sample-red: #d0021b;
  --sample-blue: #4a90e2;
}

:hover {
  --ignored: #ffffff;
}

@media (prefers-color-scheme: dark) {
  .heading-dark { font-size: 30px; }
}

/* @id: T1 */
.heading-large {
  font-family: "Helvetica";
  font-size: 24px;
  letter-spacing: 0.5px;
  line-height: 28px;
  color: var(--sample-red);
}

.body {
  font-family: 'Georgia';
  font-size: 14px;
  color: var(--sample-blue);
}

.card { padding: 1rem; }

.btn.primary { font-size: 12px; }
`

func TestParseTokenStylesheet(t *testing.T) {
	raw := parseTokenStylesheet(sampleStylesheet)

	require.Len(t, raw.Colors, 2)
	assert.Equal(t, rawColor{ID: "C1", Name: "Sample Red", Hex: "#d0021b"}, raw.Colors[0])
	assert.Equal(t, rawColor{ID: "--sample-blue", Name: "Sample Blue", Hex: "#4a90e2"}, raw.Colors[1])

	require.Len(t, raw.TextStyles, 2)
	assert.Equal(t, rawText{
		ID:         "T1",
		Name:       "Heading Large",
		Font:       "Helvetica",
		Size:       24,
		Kerning:    0.5,
		LineHeight: 28,
		Color:      "C1",
	}, raw.TextStyles[0])
	assert.Equal(t, rawText{
		ID:    ".body",
		Name:  "Body",
		Font:  "Georgia",
		Size:  14,
		Color: "--sample-blue",
	}, raw.TextStyles[1])
}

func TestExtractDocument_CSS(t *testing.T) {
	path := writeDocument(t, "tokens.css", sampleStylesheet)

	doc, err := ExtractDocument(path, Capitalized, DiscardLogger())
	require.NoError(t, err)

	require.Len(t, doc.Colors, 2)
	assert.Equal(t, "SampleRed", doc.Colors[0].VariableName)
	require.Len(t, doc.Texts, 2)
	assert.Equal(t, "HeadingLarge", doc.Texts[0].VariableName)
	assert.Equal(t, "C1", doc.Texts[0].Text.ColorID)
}

func TestExtractID(t *testing.T) {
	tests := []struct {
		comment string
		want    string
	}{
		{"/* @id: C1 */", "C1"},
		{"/* @id C2 */", "C2"},
		{"/*@id:T-1*/", "T-1"},
		{"/* plain comment */", ""},
		{"/* @id: */", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, extractID(tt.comment), tt.comment)
	}
}

func TestParseLength(t *testing.T) {
	assert.InDelta(t, 24.0, parseLength("24px"), 1e-9)
	assert.InDelta(t, 0.5, parseLength(" 0.5em"), 1e-9)
	assert.InDelta(t, -1.0, parseLength("-1"), 1e-9)
	assert.InDelta(t, 0.0, parseLength("normal"), 1e-9)
	assert.InDelta(t, 0.0, parseLength(""), 1e-9)
}
