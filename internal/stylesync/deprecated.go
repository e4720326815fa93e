package stylesync

import (
	"errors"
	"sort"
)

// Usage maps a deprecated style to the files still referencing it
type Usage map[StyleKey][]string

// ContentReader returns the current content of a project file
type ContentReader func(path string) (string, error)

// usageOutput is the partial result of scanning one file
type usageOutput struct {
	path string
	used []StyleKey
	err  error
}

// referencedStyles returns the styles whose variable name appears in content
func referencedStyles(content string, styles []Style) []StyleKey {
	var used []StyleKey
	for _, style := range styles {
		if ContainsBoundary(content, style.VariableName) {
			used = append(used, style.Key())
		}
	}
	return used
}

// FindUsage scans files for the variable name of every deprecated style.
// It must run after the rewrite so that it sees the rewritten contents.
// Files are scanned concurrently; per-file results are merged afterwards.
func FindUsage(deprecated []Style, files []string, read ContentReader, workers int) (Usage, []FileError) {
	usage := make(Usage)
	if len(deprecated) == 0 {
		return usage, nil
	}

	outputs := parallelMap(files, workers, func(path string) usageOutput {
		content, err := read(path)
		if err != nil {
			if errors.Is(err, errNotText) {
				return usageOutput{path: path}
			}
			return usageOutput{path: path, err: err}
		}
		return usageOutput{path: path, used: referencedStyles(content, deprecated)}
	})

	var fileErrors []FileError
	for _, out := range outputs {
		if out.err != nil {
			fileErrors = append(fileErrors, FileError{Path: out.path, Err: out.err})
			continue
		}
		for _, key := range out.used {
			usage[key] = appendUnique(usage[key], out.path)
		}
	}

	for key := range usage {
		sort.Strings(usage[key])
	}

	return usage, fileErrors
}

func appendUnique(paths []string, path string) []string {
	for _, p := range paths {
		if p == path {
			return paths
		}
	}
	return append(paths, path)
}

// PruneDeprecated decides which deprecated styles survive the run:
//
//   - a style referenced nowhere is dropped;
//   - a style whose variable name is taken by a latest style of the same
//     kind and file type is dropped even when referenced, with a warning,
//     so the generated code never declares the same symbol twice.
//
// Survivors are returned ordered by variable name.
func PruneDeprecated(deprecated []Style, usage Usage, latest []Style, logger *Logger) []Style {
	type scope struct {
		kind         Kind
		fileType     string
		variableName string
	}

	taken := make(map[scope]bool, len(latest))
	for _, style := range latest {
		taken[scope{style.Kind, style.FileType, style.VariableName}] = true
	}

	var survivors []Style
	for _, style := range deprecated {
		if taken[scope{style.Kind, style.FileType, style.VariableName}] {
			logger.Warnf(ContextStyles,
				"style %q was removed and a style with the same name was added; dropping the deprecated %s style",
				style.VariableName, style.Kind)
			continue
		}

		if len(usage[style.Key()]) == 0 {
			continue
		}

		survivors = append(survivors, style)
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].VariableName < survivors[j].VariableName
	})

	return survivors
}
