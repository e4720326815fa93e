package stylesync

import (
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Reference is a literal replacement applied by the rewriter. From is never
// a regular expression; matches are boundary-valid substrings.
type Reference struct {
	From string
	To   string
}

// Placeholder delimiters
const (
	placeholderOpen  = "⟦stylesync"
	placeholderClose = "⟧"
)

// Placeholder returns the token a style's references are parked on between
// the two rewrite phases. Inside the delimiters it is one alphanumeric run.
// Phase 1 never matches inside a parked placeholder, so not even a name equal
// to that run can touch it.
func Placeholder(style Style) string {
	return placeholderOpen + string(style.Kind) + hex.EncodeToString([]byte(style.Identifier)) + placeholderClose
}

// RewritePlan holds the references of both rewrite phases
type RewritePlan struct {
	ToPlaceholders   []Reference // Phase 1: old variable name -> placeholder
	FromPlaceholders []Reference // Phase 2: placeholder -> new variable name
}

// NewRewritePlan builds the two phases from migration pairs. Unchanged pairs
// are included: parking and restoring a name must leave the text as it was.
func NewRewritePlan(pairs []MigrationPair) RewritePlan {
	var plan RewritePlan
	for _, pair := range pairs {
		if pair.Old.VariableName == "" || pair.New.VariableName == "" {
			continue
		}
		placeholder := Placeholder(pair.New)
		plan.ToPlaceholders = append(plan.ToPlaceholders, Reference{From: pair.Old.VariableName, To: placeholder})
		plan.FromPlaceholders = append(plan.FromPlaceholders, Reference{From: placeholder, To: pair.New.VariableName})
	}
	sortLongestFirst(plan.ToPlaceholders)
	return plan
}

// Merge appends the references of another plan
func (p RewritePlan) Merge(other RewritePlan) RewritePlan {
	merged := RewritePlan{
		ToPlaceholders:   append(append([]Reference(nil), p.ToPlaceholders...), other.ToPlaceholders...),
		FromPlaceholders: append(append([]Reference(nil), p.FromPlaceholders...), other.FromPlaceholders...),
	}
	sortLongestFirst(merged.ToPlaceholders)
	return merged
}

// sortLongestFirst orders phase 1 so that "sample_red" is parked before
// "sample" can match inside it. Equal lengths sort by name; equal names keep
// their order. The outcome never depends on document order.
func sortLongestFirst(refs []Reference) {
	sort.SliceStable(refs, func(i, j int) bool {
		if len(refs[i].From) != len(refs[j].From) {
			return len(refs[i].From) > len(refs[j].From)
		}
		return refs[i].From < refs[j].From
	})
}

// IsEmpty reports whether the plan has nothing to rewrite
func (p RewritePlan) IsEmpty() bool {
	return len(p.ToPlaceholders) == 0
}

// ApplyReferences applies references in order and returns the new content
// with the total number of replacements
func ApplyReferences(content string, refs []Reference) (string, int) {
	total := 0
	for _, ref := range refs {
		var n int
		content, n = ReplaceBoundary(content, ref.From, ref.To)
		total += n
	}
	return content, total
}

// ParkReferences applies phase 1 references. Text inside placeholders parked
// by earlier references is left alone.
func ParkReferences(content string, refs []Reference) (string, int) {
	total := 0
	for _, ref := range refs {
		var n int
		content, n = replaceOutsidePlaceholders(content, ref.From, ref.To)
		total += n
	}
	return content, total
}

func replaceOutsidePlaceholders(content, from, to string) (string, int) {
	if !strings.Contains(content, placeholderOpen) {
		return ReplaceBoundary(content, from, to)
	}

	var b strings.Builder
	b.Grow(len(content))

	total := 0
	for {
		start := strings.Index(content, placeholderOpen)
		end := -1
		if start >= 0 {
			end = strings.Index(content[start:], placeholderClose)
		}
		if end < 0 {
			rest, n := ReplaceBoundary(content, from, to)
			b.WriteString(rest)
			return b.String(), total + n
		}
		end += start + len(placeholderClose)

		// Delimiters are not alphanumeric, so cutting at them keeps every
		// boundary decision of the surrounding text.
		before, n := ReplaceBoundary(content[:start], from, to)
		b.WriteString(before)
		b.WriteString(content[start:end])
		total += n
		content = content[end:]
	}
}

// ReferenceConflict is a variable name referenced by styles of two kinds
// while at least one of them is renamed. Only the references of First are
// rewritten.
type ReferenceConflict struct {
	Name   string
	First  MigrationPair
	Second MigrationPair
}

// FindReferenceConflicts returns the old variable names shared by pairs of
// different kinds. Pairs must be in merged plan order: colors first.
func FindReferenceConflicts(pairs []MigrationPair) []ReferenceConflict {
	first := make(map[string]MigrationPair, len(pairs))

	var conflicts []ReferenceConflict
	for _, pair := range pairs {
		name := pair.Old.VariableName
		if name == "" {
			continue
		}
		other, seen := first[name]
		if !seen {
			first[name] = pair
			continue
		}
		if other.Old.Kind != pair.Old.Kind && (other.IsRename() || pair.IsRename()) {
			conflicts = append(conflicts, ReferenceConflict{Name: name, First: other, Second: pair})
		}
	}
	return conflicts
}

// RewriteContent runs both phases on a single text. Rewriting a whole tree
// must go through Rewriter so that phase 1 completes everywhere first.
func RewriteContent(content string, plan RewritePlan) string {
	parked, _ := ParkReferences(content, plan.ToPlaceholders)
	restored, _ := ApplyReferences(parked, plan.FromPlaceholders)
	return restored
}

// FileError is a per-file failure; the file is skipped and the run continues
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// RewriteResult is the merged outcome of both phases
type RewriteResult struct {
	Scanned   int               // Text files read in phase 1
	Mutated   []string          // Files whose content changed, sorted
	Originals map[string]string // Content before rewriting, for mutated files
	Contents  map[string]string // Content after rewriting, for mutated files
	Errors    []FileError       // Files skipped because of read or write failures
}

// ReadFile returns the post-rewrite content of a file: the rewritten text for
// mutated files (even on a dry run), the text on disk otherwise.
func (r RewriteResult) ReadFile(path string) (string, error) {
	if content, ok := r.Contents[path]; ok {
		return content, nil
	}
	return readTextFile(path)
}

// Rewriter rewrites style references across a set of files
type Rewriter struct {
	Workers int  // Files processed concurrently within a phase
	DryRun  bool // Compute new contents without writing them
}

// phaseOutput is the partial result of one file in one phase
type phaseOutput struct {
	path     string
	original string
	content  string
	replaced int
	text     bool
	err      error
}

// Rewrite runs phase 1 over every file, waits for all of them, then runs
// phase 2. Placeholders only ever live in memory: a file is written once,
// after phase 2, and only if its content changed.
func (r Rewriter) Rewrite(files []string, plan RewritePlan) RewriteResult {
	result := RewriteResult{
		Originals: make(map[string]string),
		Contents:  make(map[string]string),
	}

	if plan.IsEmpty() {
		return result
	}

	// Phase 1: old names -> placeholders
	parked := parallelMap(files, r.Workers, func(path string) phaseOutput {
		return parkReferences(path, plan.ToPlaceholders)
	})

	// Barrier: parallelMap returns only when every file went through phase 1
	var pending []phaseOutput
	for _, out := range parked {
		switch {
		case out.err != nil:
			result.Errors = append(result.Errors, FileError{Path: out.path, Err: out.err})
		case !out.text:
			// Binary files do not participate
		default:
			result.Scanned++
			if out.replaced > 0 {
				pending = append(pending, out)
			}
		}
	}

	// Phase 2: placeholders -> new names
	restored := parallelMap(pending, r.Workers, func(in phaseOutput) phaseOutput {
		return r.restoreReferences(in, plan.FromPlaceholders)
	})

	for _, out := range restored {
		if out.err != nil {
			result.Errors = append(result.Errors, FileError{Path: out.path, Err: out.err})
			continue
		}
		if out.content == out.original {
			continue
		}
		result.Mutated = append(result.Mutated, out.path)
		result.Originals[out.path] = out.original
		result.Contents[out.path] = out.content
	}

	sort.Strings(result.Mutated)
	sort.Slice(result.Errors, func(i, j int) bool {
		return result.Errors[i].Path < result.Errors[j].Path
	})

	return result
}

// parkReferences reads a file and applies phase 1 in memory
func parkReferences(path string, refs []Reference) phaseOutput {
	out := phaseOutput{path: path}

	content, err := readTextFile(path)
	if err != nil {
		if errors.Is(err, errNotText) {
			return out
		}
		out.err = fmt.Errorf("read: %w", err)
		return out
	}

	out.text = true
	out.original = content
	out.content, out.replaced = ParkReferences(content, refs)
	return out
}

// restoreReferences applies phase 2 and writes the file when it changed
func (r Rewriter) restoreReferences(in phaseOutput, refs []Reference) phaseOutput {
	out := in
	out.content, _ = ApplyReferences(in.content, refs)

	if out.content == out.original || r.DryRun {
		return out
	}

	if err := writeTextFile(out.path, out.content); err != nil {
		out.err = fmt.Errorf("write: %w", err)
	}
	return out
}
