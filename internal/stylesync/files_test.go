package stylesync

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files below root; paths use forward slashes
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func relativeAll(root string, paths []string) []string {
	rels := make([]string, len(paths))
	for i, path := range paths {
		rels[i] = relativeTo(root, path)
	}
	return rels
}

func TestProjectFilesList(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"main.go":                       "package main",
		"ui/header.go":                  "package ui",
		"ui/header_test.go":             "package ui",
		"vendor/lib/lib.go":             "package lib",
		"build/out.txt":                 "generated",
		"notes.log":                     "log",
		".git/config":                   "[core]",
		".hidden.go":                    "package hidden",
		"internal/styles/colors.gen.go": "package styles",
		".gitignore":                    "build/\n*.log\n",
	})

	files, stats, err := ProjectFiles{
		Root:     root,
		Excludes: []string{"vendor/**", "**/*_test.go"},
		Ignored:  []string{filepath.Join(root, "internal", "styles", "colors.gen.go")},
	}.List()
	require.NoError(t, err)

	assert.Equal(t, []string{"main.go", "ui/header.go"}, relativeAll(root, files))
	assert.Equal(t, 2, stats.FilesListed)
	assert.Empty(t, stats.Errors)
}

func TestProjectFilesList_Errors(t *testing.T) {
	root := t.TempDir()

	_, _, err := ProjectFiles{Root: filepath.Join(root, "missing")}.List()
	require.Error(t, err)

	_, _, err = ProjectFiles{Root: root, Excludes: []string{"[unclosed"}}.List()
	require.Error(t, err)

	file := filepath.Join(root, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	_, _, err = ProjectFiles{Root: file}.List()
	require.Error(t, err)
}

func TestReadTextFile(t *testing.T) {
	dir := t.TempDir()

	text := filepath.Join(dir, "text.go")
	require.NoError(t, os.WriteFile(text, []byte("color := sampleRed"), 0o644))
	content, err := readTextFile(text)
	require.NoError(t, err)
	assert.Equal(t, "color := sampleRed", content)

	binary := filepath.Join(dir, "image.png")
	require.NoError(t, os.WriteFile(binary, []byte{0x89, 'P', 'N', 'G', 0x00, 0x01}, 0o644))
	_, err = readTextFile(binary)
	assert.ErrorIs(t, err, errNotText)

	latin1 := filepath.Join(dir, "latin1.txt")
	require.NoError(t, os.WriteFile(latin1, []byte{'c', 0xe9}, 0o644))
	_, err = readTextFile(latin1)
	assert.ErrorIs(t, err, errNotText)
}

func TestWriteTextFileKeepsMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.sh")
	require.NoError(t, os.WriteFile(path, []byte("echo sampleRed"), 0o755))

	require.NoError(t, writeTextFile(path, "echo brandRed"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}
