package stylesync

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	firstDocument = `{
  "colors": [
    {"id": "C1", "name": "Sample Red", "hex": "#d0021b"},
    {"id": "C2", "name": "Sample Blue", "hex": "#4a90e2"}
  ],
  "textStyles": [
    {"id": "T1", "name": "Heading Large", "font": "Helvetica", "size": 24, "lineHeight": 28, "color": "C1"}
  ]
}`
	renamedDocument = `{
  "colors": [
    {"id": "C1", "name": "Brand Red", "hex": "#d0021b"},
    {"id": "C2", "name": "Sample Blue", "hex": "#4a90e2"}
  ],
  "textStyles": [
    {"id": "T1", "name": "Heading Large", "font": "Helvetica", "size": 24, "lineHeight": 28, "color": "C1"}
  ]
}`
	removedDocument = `{
  "colors": [
    {"id": "C1", "name": "Sample Red", "hex": "#d0021b"}
  ],
  "textStyles": [
    {"id": "T1", "name": "Heading Large", "font": "Helvetica", "size": 24, "lineHeight": 28, "color": "C1"}
  ]
}`
	screenSource = "package ui\n\nvar bg = styles.sampleRed\nvar light = styles.sampleRedLight\nvar title = styles.headingLarge\n"
)

// testProject is a project tree with a design document and one source file
type testProject struct {
	root   string
	config Config
}

func newTestProject(t *testing.T, files map[string]string) testProject {
	t.Helper()
	root := t.TempDir()
	writeTree(t, root, files)

	return testProject{
		root: root,
		config: Config{
			DocumentPath:   filepath.Join(root, "design", "styles.json"),
			ProjectDir:     root,
			ColorOutputDir: filepath.Join(root, "internal", "styles"),
			SnapshotDir:    filepath.Join(root, ".stylesync"),
			Workers:        2,
		},
	}
}

func (p testProject) sync(t *testing.T, document string) *Result {
	t.Helper()
	p.write(t, "design/styles.json", document)

	result, err := Sync(p.config, nil)
	require.NoError(t, err)
	return result
}

func (p testProject) write(t *testing.T, rel, content string) {
	t.Helper()
	writeTree(t, p.root, map[string]string{rel: content})
}

func (p testProject) read(t *testing.T, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(p.root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func (p testProject) snapshot(t *testing.T, kind Kind) Previous {
	t.Helper()
	previous, err := LoadSnapshot(filepath.Join(p.config.SnapshotDir, SnapshotFileName(kind)), kind)
	require.NoError(t, err)
	return previous
}

func TestSync_FirstRun(t *testing.T) {
	project := newTestProject(t, map[string]string{"ui/screen.go": screenSource})

	result := project.sync(t, firstDocument)

	assert.Nil(t, result.PreviousVersion)
	assert.Equal(t, "1.0.0", result.Version.String())
	assert.Empty(t, result.MutatedFiles)
	assert.Equal(t, Changes{Added: 3}, result.Changes())

	colors := project.read(t, "internal/styles/color_styles.gen.go")
	assert.Contains(t, colors, "// Styles version: 1.0.0")
	assert.Contains(t, colors, "sampleRed = color.NRGBA{R: 208, G: 2, B: 27, A: 255}")
	assert.Contains(t, colors, "sampleBlue = color.NRGBA{R: 74, G: 144, B: 226, A: 255}")

	texts := project.read(t, "internal/styles/text_styles.gen.go")
	assert.Contains(t, texts, "headingLarge = TextStyle{")
	assert.Contains(t, texts, `FontName:   "Helvetica",`)

	snapshot := project.snapshot(t, KindColor)
	assert.Equal(t, FirstVersion, snapshot.Version())
	assert.Len(t, snapshot.Styles(), 2)
	assert.Equal(t, "go", snapshot.Styles()[0].FileType)

	assert.Equal(t, screenSource, project.read(t, "ui/screen.go"))
}

func TestSync_Rename(t *testing.T) {
	project := newTestProject(t, map[string]string{"ui/screen.go": screenSource})
	project.sync(t, firstDocument)

	result := project.sync(t, renamedDocument)

	require.NotNil(t, result.PreviousVersion)
	assert.Equal(t, "1.0.0", result.PreviousVersion.String())
	assert.Equal(t, "1.0.1", result.Version.String())
	assert.Equal(t, Changes{Renamed: 1}, result.Changes())
	assert.Equal(t, []string{"ui/screen.go"}, result.MutatedFiles)

	screen := project.read(t, "ui/screen.go")
	assert.Contains(t, screen, "var bg = styles.brandRed\n")
	assert.Contains(t, screen, "var light = styles.sampleRedLight\n")

	colors := project.read(t, "internal/styles/color_styles.gen.go")
	assert.Contains(t, colors, "brandRed = color.NRGBA")
	assert.NotContains(t, colors, "sampleRed ")
}

func sharedNameDocument(textName string) string {
	return `{
  "colors": [
    {"id": "C1", "name": "Primary", "hex": "#d0021b"}
  ],
  "textStyles": [
    {"id": "T1", "name": "` + textName + `", "font": "Helvetica", "size": 16, "lineHeight": 20, "color": "C1"}
  ]
}`
}

func TestSync_ColorAndTextShareName(t *testing.T) {
	project := newTestProject(t, nil)

	first := project.sync(t, sharedNameDocument("Primary"))

	colors := project.read(t, "internal/styles/color_styles.gen.go")
	assert.Contains(t, colors, "primary = color.NRGBA")
	texts := project.read(t, "internal/styles/text_styles.gen.go")
	assert.Contains(t, texts, "primary2 = TextStyle{")
	assert.NotContains(t, texts, "primary = TextStyle{")
	assert.Contains(t, strings.Join(first.Warnings, "\n"), `text style "Primary" renamed to primary2`)

	project.write(t, "ui/screen.go", "a := styles.primary2\nb := styles.primary\n")
	result := project.sync(t, sharedNameDocument("Title"))

	assert.Equal(t, Changes{Renamed: 1}, result.Changes())
	assert.Equal(t, "a := styles.title\nb := styles.primary\n", project.read(t, "ui/screen.go"))
}

func TestSync_ColorAndTextShareNameInSeparateDirs(t *testing.T) {
	project := newTestProject(t, map[string]string{"ui/screen.go": "a := colors.primary\n"})
	project.config.TextOutputDir = filepath.Join(project.root, "internal", "texts")

	first := project.sync(t, sharedNameDocument("Primary"))
	assert.Contains(t, project.read(t, "internal/texts/text_styles.gen.go"), "primary = TextStyle{")
	assert.NotContains(t, strings.Join(first.Warnings, "\n"), "renamed to")

	result := project.sync(t, sharedNameDocument("Title"))

	assert.Contains(t, strings.Join(result.Warnings, "\n"), "are both referenced as primary; only color references are rewritten")
	assert.Equal(t, "a := colors.primary\n", project.read(t, "ui/screen.go"))
}

func TestSync_SnakeCasePrefixNames(t *testing.T) {
	document := func(name string) string {
		return `{
  "colors": [
    {"id": "C1", "name": "` + name + `", "hex": "#d0021b"},
    {"id": "C2", "name": "Sample Red", "hex": "#ff0000"}
  ]
}`
	}
	project := newTestProject(t, map[string]string{"ui/screen.go": "a := sample_red\nb := sample\n"})
	project.config.Naming = NamingSnake
	project.sync(t, document("Sample"))

	result := project.sync(t, document("Base"))

	assert.Equal(t, Changes{Renamed: 1}, result.Changes())
	assert.Equal(t, "a := sample_red\nb := base\n", project.read(t, "ui/screen.go"))
}

func TestSync_SwappedNames(t *testing.T) {
	project := newTestProject(t, map[string]string{
		"ui/screen.go": "var a, b = styles.sampleRed, styles.sampleBlue\n",
	})
	project.sync(t, firstDocument)

	swapped := `{
  "colors": [
    {"id": "C1", "name": "Sample Blue", "hex": "#d0021b"},
    {"id": "C2", "name": "Sample Red", "hex": "#4a90e2"}
  ]
}`
	result := project.sync(t, swapped)

	assert.Equal(t, "var a, b = styles.sampleBlue, styles.sampleRed\n", project.read(t, "ui/screen.go"))
	assert.Equal(t, 2, result.Changes().Renamed)
}

func TestSync_Added(t *testing.T) {
	project := newTestProject(t, nil)
	project.sync(t, removedDocument)

	result := project.sync(t, firstDocument)

	assert.Equal(t, "1.1.0", result.Version.String())
	require.Len(t, result.Kinds[0].Added, 1)
	assert.Equal(t, "sampleBlue", result.Kinds[0].Added[0].VariableName)
}

func TestSync_RemovedButReferenced(t *testing.T) {
	project := newTestProject(t, map[string]string{
		"ui/screen.go": "var bg = styles.sampleBlue\n",
	})
	project.sync(t, firstDocument)

	result := project.sync(t, removedDocument)

	assert.Equal(t, "2.0.0", result.Version.String())
	assert.Equal(t, Changes{Removed: 1}, result.Changes())
	require.Len(t, result.DeprecatedUsage, 1)
	assert.Equal(t, "sampleBlue", result.DeprecatedUsage[0].Style.VariableName)
	assert.Equal(t, []string{"ui/screen.go"}, result.DeprecatedUsage[0].Files)

	styles := result.Kinds[0].Styles
	require.Len(t, styles, 2)
	assert.Equal(t, "sampleRed", styles[0].VariableName)
	assert.True(t, styles[1].Deprecated)

	colors := project.read(t, "internal/styles/color_styles.gen.go")
	assert.Contains(t, colors, "// Deprecated: Sample Blue was removed from the design document.")
	assert.Contains(t, colors, "sampleBlue = color.NRGBA")

	// Once the last reference is gone the deprecated style is dropped
	// without another major bump.
	project.write(t, "ui/screen.go", "var bg = styles.sampleRed\n")
	result = project.sync(t, removedDocument)

	assert.Equal(t, "2.0.0", result.Version.String())
	assert.Empty(t, result.DeprecatedUsage)
	assert.NotContains(t, project.read(t, "internal/styles/color_styles.gen.go"), "sampleBlue")
	assert.Len(t, project.snapshot(t, KindColor).Styles(), 1)
}

func TestSync_RemovedAndUnreferenced(t *testing.T) {
	project := newTestProject(t, map[string]string{"ui/screen.go": screenSource})
	project.sync(t, firstDocument)

	result := project.sync(t, removedDocument)

	assert.Equal(t, "2.0.0", result.Version.String())
	assert.Empty(t, result.DeprecatedUsage)
	assert.Len(t, result.Kinds[0].Styles, 1)
}

func TestSync_DryRun(t *testing.T) {
	project := newTestProject(t, map[string]string{"ui/screen.go": screenSource})
	project.sync(t, firstDocument)
	before := project.read(t, "internal/styles/color_styles.gen.go")

	project.config.DryRun = true
	result := project.sync(t, renamedDocument)

	assert.True(t, result.DryRun)
	assert.Equal(t, "1.0.1", result.Version.String())
	assert.Equal(t, []string{"ui/screen.go"}, result.MutatedFiles)
	assert.Contains(t, result.Previews["ui/screen.go"], "+var bg = styles.brandRed\n")

	assert.Equal(t, screenSource, project.read(t, "ui/screen.go"))
	assert.Equal(t, before, project.read(t, "internal/styles/color_styles.gen.go"))
	assert.Equal(t, FirstVersion, project.snapshot(t, KindColor).Version())
}

func TestSync_MismatchingVersions(t *testing.T) {
	project := newTestProject(t, nil)
	require.NoError(t, SaveSnapshot(filepath.Join(project.config.SnapshotDir, ColorSnapshotFile),
		Snapshot{Version: Version{Major: 1}}))
	require.NoError(t, SaveSnapshot(filepath.Join(project.config.SnapshotDir, TextSnapshotFile),
		Snapshot{Version: Version{Major: 1, Minor: 2}}))

	result := project.sync(t, firstDocument)

	assert.Contains(t, result.Warnings, "[snapshot] Mismatching versions: 1.2.0 (Text) and 1.0.0 (Color)")
	assert.Equal(t, "1.3.0", result.Version.String())
}

func TestSync_CorruptSnapshot(t *testing.T) {
	project := newTestProject(t, nil)
	project.write(t, ".stylesync/color-styles.json", "{not json")

	result := project.sync(t, firstDocument)

	assert.Equal(t, "1.0.0", result.Version.String())
	require.Len(t, result.Warnings, 1)
	assert.Contains(t, result.Warnings[0], "treating color styles as a first export")
}

func TestSync_Errors(t *testing.T) {
	t.Run("unknown naming", func(t *testing.T) {
		project := newTestProject(t, nil)
		project.config.Naming = "kebab"
		project.write(t, "design/styles.json", firstDocument)

		_, err := Sync(project.config, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown naming convention")
	})

	t.Run("missing document", func(t *testing.T) {
		project := newTestProject(t, nil)

		_, err := Sync(project.config, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read design document")
	})

	t.Run("missing template", func(t *testing.T) {
		project := newTestProject(t, nil)
		project.config.ColorTemplate = filepath.Join(project.root, "missing.swift.tmpl")
		project.write(t, "design/styles.json", firstDocument)

		_, err := Sync(project.config, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read color template")
	})
}
