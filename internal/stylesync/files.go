package stylesync

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks project enumeration statistics
type ScanStats struct {
	FilesDiscovered int     // Regular files found under the root
	FilesListed     int     // Files kept after filtering
	FilesSkipped    int     // Hidden, gitignored, excluded or generated files
	Errors          []error // Entries that could not be read; skipped
}

// ProjectFiles enumerates the files of a project tree that may hold style
// references.
type ProjectFiles struct {
	Root     string
	Excludes []string // Doublestar patterns relative to Root: "vendor/**"
	Ignored  []string // Files never listed, typically the generated outputs
}

// List walks the tree. Hidden entries, gitignored paths, excluded patterns
// and ignored files are skipped. An unreadable root is fatal; unreadable
// entries below it are reported in ScanStats.Errors.
func (p ProjectFiles) List() ([]string, ScanStats, error) {
	var stats ScanStats

	info, err := os.Stat(p.Root)
	if err != nil {
		return nil, stats, fmt.Errorf("project root: %w", err)
	}
	if !info.IsDir() {
		return nil, stats, fmt.Errorf("project root %s is not a directory", p.Root)
	}

	for _, pattern := range p.Excludes {
		if !doublestar.ValidatePattern(pattern) {
			return nil, stats, fmt.Errorf("exclude pattern %q is invalid", pattern)
		}
	}

	ignored := make(map[string]bool, len(p.Ignored))
	for _, path := range p.Ignored {
		ignored[absClean(path)] = true
	}

	gitIgnore := loadGitIgnore(p.Root)

	var files []string
	walkErr := filepath.WalkDir(p.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == p.Root {
				return err
			}
			stats.Errors = append(stats.Errors, err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if path == p.Root {
			return nil
		}

		if isHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			stats.FilesDiscovered++
			stats.FilesSkipped++
			return nil
		}

		rel, err := filepath.Rel(p.Root, path)
		if err != nil {
			stats.Errors = append(stats.Errors, err)
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if gitIgnore != nil && gitIgnore.MatchesPath(rel+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		stats.FilesDiscovered++
		if p.shouldSkip(rel, path, gitIgnore, ignored) {
			stats.FilesSkipped++
			return nil
		}

		files = append(files, path)
		return nil
	})
	if walkErr != nil {
		return nil, stats, fmt.Errorf("walk project root: %w", walkErr)
	}

	sort.Strings(files)
	stats.FilesListed = len(files)

	return files, stats, nil
}

// shouldSkip applies the per-file filters
func (p ProjectFiles) shouldSkip(rel, path string, gitIgnore *ignore.GitIgnore, ignored map[string]bool) bool {
	if ignored[absClean(path)] {
		return true
	}

	if gitIgnore != nil && gitIgnore.MatchesPath(rel) {
		return true
	}

	for _, pattern := range p.Excludes {
		matched, err := doublestar.Match(pattern, rel)
		if err == nil && matched {
			return true
		}
	}

	return false
}

// loadGitIgnore loads root/.gitignore. No .gitignore is fine.
func loadGitIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}

// isHidden reports dot-files and dot-directories
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}

func absClean(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// errNotText marks files whose content is not text
var errNotText = errors.New("not a text file")

// decodeText returns the content of a file that can be treated as text:
// valid UTF-8 without NUL bytes.
func decodeText(data []byte) (string, error) {
	if bytes.IndexByte(data, 0) >= 0 || !utf8.Valid(data) {
		return "", errNotText
	}
	return string(data), nil
}

// readTextFile reads a whole file and decodes it as text
func readTextFile(path string) (string, error) {
	// #nosec G304 - path comes from the enumerated project tree
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return decodeText(data)
}

// writeTextFile writes content back, keeping the file's permissions
func writeTextFile(path, content string) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(path, []byte(content), mode)
}

// relativeTo returns path relative to root in slash form, or path itself
func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
