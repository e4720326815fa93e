package stylesync

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// RenderPreview renders the change of one file. With colors the inline
// character diff is returned; otherwise the changed lines prefixed with
// "-" and "+".
func RenderPreview(original, rewritten string, useColors bool) string {
	if original == rewritten {
		return ""
	}

	dmp := diffmatchpatch.New()

	if useColors {
		diffs := dmp.DiffMain(original, rewritten, false)
		return dmp.DiffPrettyText(dmp.DiffCleanupSemantic(diffs))
	}

	a, b, lines := dmp.DiffLinesToChars(original, rewritten)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var out strings.Builder
	for _, diff := range diffs {
		var prefix string
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(prefix + strings.TrimSuffix(line, "\n") + "\n")
		}
	}

	return out.String()
}

// RenderPreviews renders every mutated file of a rewrite, keyed by path
// relative to root
func RenderPreviews(root string, rewrite RewriteResult, useColors bool) map[string]string {
	previews := make(map[string]string, len(rewrite.Mutated))
	for _, path := range rewrite.Mutated {
		previews[relativeTo(root, path)] = RenderPreview(rewrite.Originals[path], rewrite.Contents[path], useColors)
	}
	return previews
}
