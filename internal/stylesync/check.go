package stylesync

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// CheckResult contains the deprecated reference check outcome
type CheckResult struct {
	Version      *Version // Version of the persisted export; nil when nothing was exported yet
	Deprecated   []Style  // Deprecated styles found in the snapshots
	Issues       []Issue
	FilesScanned int
	Warnings     []string
}

// GeneratedPaths returns the files a sync run writes: generated code and
// snapshots. They declare deprecated styles and are never checked.
func GeneratedPaths(config Config) ([]string, error) {
	config = applyDefaults(config)

	var paths []string
	for _, kind := range Kinds {
		templatePath, outputDir := config.ColorTemplate, config.ColorOutputDir
		if kind == KindText {
			templatePath, outputDir = config.TextTemplate, config.TextOutputDir
		}

		generator, err := NewGenerator(templatePath, kind)
		if err != nil {
			return nil, err
		}
		paths = append(paths,
			filepath.Join(outputDir, generator.FileName()),
			filepath.Join(config.SnapshotDir, SnapshotFileName(kind)))
	}
	return paths, nil
}

// Check reads the persisted snapshots and reports every reference to a
// deprecated style left in the project, one issue per occurrence.
func Check(config CheckConfig, logger *Logger) (*CheckResult, error) {
	if logger == nil {
		logger = DiscardLogger()
	}
	if config.ProjectDir == "" {
		config.ProjectDir = DefaultProjectDir
	}
	if config.SnapshotDir == "" {
		config.SnapshotDir = DefaultSnapshotDir
	}

	result := &CheckResult{}

	for _, kind := range Kinds {
		path := filepath.Join(config.SnapshotDir, SnapshotFileName(kind))
		previous, err := LoadSnapshot(path, kind)
		if err != nil {
			if !errors.Is(err, ErrNoSnapshot) {
				logger.Warnf(ContextSnapshot, "%v", err)
			}
			continue
		}

		v := previous.Version()
		if result.Version == nil || kind == KindText {
			result.Version = &v
		}
		for _, style := range previous.Styles() {
			if style.Deprecated && style.VariableName != "" {
				result.Deprecated = append(result.Deprecated, style)
			}
		}
	}

	if len(result.Deprecated) == 0 {
		result.Warnings = logger.Warnings()
		return result, nil
	}

	files, stats, err := ProjectFiles{
		Root:     config.ProjectDir,
		Excludes: config.Excludes,
		Ignored:  config.GeneratedFiles,
	}.List()
	if err != nil {
		return nil, err
	}
	for _, err := range stats.Errors {
		logger.Errorf(ContextFiles, err)
	}

	type fileIssues struct {
		issues []Issue
		text   bool
		err    error
	}

	outputs := parallelMap(files, DefaultWorkers, func(path string) fileIssues {
		content, err := readTextFile(path)
		if err != nil {
			if errors.Is(err, errNotText) {
				return fileIssues{}
			}
			return fileIssues{err: FileError{Path: path, Err: err}}
		}
		return fileIssues{
			issues: findReferences(relativeTo(config.ProjectDir, path), content, result.Deprecated),
			text:   true,
		}
	})

	for _, out := range outputs {
		if out.err != nil {
			logger.Errorf(ContextFiles, out.err)
			continue
		}
		if out.text {
			result.FilesScanned++
		}
		result.Issues = append(result.Issues, out.issues...)
	}

	severity := SeverityWarning
	if config.Strict {
		severity = SeverityError
	}
	for i := range result.Issues {
		result.Issues[i].Severity = severity
	}

	sortIssues(result.Issues)
	result.Warnings = logger.Warnings()

	return result, nil
}

// findReferences returns one issue per boundary-valid occurrence of a
// deprecated variable name
func findReferences(filename, content string, deprecated []Style) []Issue {
	var issues []Issue

	for lineNum, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		for _, style := range deprecated {
			for from := 0; ; {
				idx := indexBoundaryFrom(line, style.VariableName, from)
				if idx < 0 {
					break
				}
				issues = append(issues, Issue{
					FromLinter:  LinterName,
					Text:        fmt.Sprintf(IssueDeprecatedReference, style.Kind, style.VariableName),
					SourceLines: []string{line},
					Pos: IssuePos{
						Filename: filename,
						Line:     lineNum + 1,
						Column:   idx + 1,
					},
					Style: style,
				})
				from = idx + len(style.VariableName)
			}
		}
	}

	return issues
}

// sortIssues orders issues by file, then line, then column
func sortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
}
