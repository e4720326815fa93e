package stylesync

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineOutputFormat(t *testing.T) {
	tests := []struct {
		name       string
		formatFlag string
		expected   OutputFormat
	}{
		{name: "default", formatFlag: "", expected: OutputSummary},
		{name: "explicit summary format", formatFlag: "summary", expected: OutputSummary},
		{name: "explicit issues format", formatFlag: "issues", expected: OutputIssues},
		{name: "explicit json format", formatFlag: "json", expected: OutputJSON},
		{name: "unknown format falls back", formatFlag: "markdown", expected: OutputSummary},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetermineOutputFormat(tt.formatFlag))
		})
	}
}

func TestWriteSyncJSON(t *testing.T) {
	removed := colorStyle("C3", "sampleGreen", 0)
	deprecated := colorStyle("C4", "sampleGray", 0).AsDeprecated()
	result := &Result{
		Version: Version{Major: 2},
		Kinds: []KindResult{{
			Kind:          KindColor,
			GeneratedFile: "internal/styles/color_styles.gen.go",
			Added:         []Style{colorStyle("C5", "sampleTeal", 0)},
			Renamed: []MigrationPair{{
				Old: colorStyle("C1", "sampleRed", 1),
				New: colorStyle("C1", "brandRed", 1),
			}},
			Removed: []Style{removed},
			Styles:  []Style{colorStyle("C1", "brandRed", 1), colorStyle("C5", "sampleTeal", 0), deprecated},
		}},
		FilesScanned:    3,
		MutatedFiles:    []string{"ui/a.go"},
		DeprecatedUsage: []DeprecatedUsage{{Style: deprecated, Files: []string{"ui/b.go"}}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSyncJSON(&buf, result))

	var output JSONSyncOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, JSONSchemaVersion, output.Schema)
	assert.NotEmpty(t, output.Timestamp)
	assert.Equal(t, "2.0.0", output.Version)
	assert.Empty(t, output.PreviousVersion)
	assert.Equal(t, JSONSyncSummary{Added: 1, Renamed: 1, Removed: 1, FilesScanned: 3, FilesUpdated: 1}, output.Summary)

	require.Len(t, output.Kinds, 1)
	kind := output.Kinds[0]
	assert.Equal(t, "color", kind.Kind)
	assert.Equal(t, 3, kind.Styles)
	assert.Equal(t, []string{"sampleTeal"}, kind.Added)
	assert.Equal(t, []string{}, kind.Modified)
	assert.Equal(t, []JSONRename{{Identifier: "C1", From: "sampleRed", To: "brandRed"}}, kind.Renamed)
	assert.Equal(t, []string{"sampleGreen"}, kind.Removed)

	assert.Equal(t, []JSONDeprecated{{
		Kind:         "color",
		Identifier:   "C4",
		VariableName: "sampleGray",
		Files:        []string{"ui/b.go"},
	}}, output.Deprecated)
	assert.Equal(t, []string{"ui/a.go"}, output.MutatedFiles)
	assert.Equal(t, []string{}, output.Warnings)
}

func TestWriteCheckJSON(t *testing.T) {
	v := Version{Major: 1, Minor: 2}
	result := &CheckResult{
		Version:      &v,
		Deprecated:   []Style{colorStyle("C2", "sampleRed", 0).AsDeprecated()},
		Issues:       sampleIssues()[:1],
		FilesScanned: 4,
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCheckJSON(&buf, result))

	var output JSONCheckOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "1.2.0", output.Version)
	assert.Equal(t, 1, output.Deprecated)
	assert.Equal(t, 4, output.FilesScanned)
	assert.Equal(t, []JSONIssue{{
		File:     "ui/b.go",
		Line:     4,
		Column:   15,
		Severity: SeverityWarning,
		Message:  `deprecated color style "sampleRed" is still referenced`,
		Linter:   LinterName,
		Source:   "\tbg := styles.sampleRed",
	}}, output.Issues)
}

func TestWriteCheckOutput_Issues(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "")

	var buf bytes.Buffer
	WriteCheckOutput(&buf, &CheckResult{Issues: sampleIssues()}, OutputIssues, CheckConfig{})

	out := buf.String()
	assert.Contains(t, out, "ui/a.go:2:6: deprecated color style \"sampleRed\" is still referenced (stylesync)\n")
	assert.Contains(t, out, "2 issues:\n")
}
