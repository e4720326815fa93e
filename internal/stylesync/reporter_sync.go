package stylesync

import (
	"fmt"
	"io"
	"sort"

	"github.com/dustin/go-humanize"
)

// SyncReporter prints the human-readable summary of a sync run
type SyncReporter struct {
	w         io.Writer
	useColors bool
}

// NewSyncReporter creates a sync reporter
func NewSyncReporter(w io.Writer, useColors bool) *SyncReporter {
	return &SyncReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintVersion outputs the version line
func (r *SyncReporter) PrintVersion(result Result) {
	fmt.Fprintln(r.w, "")

	line := fmt.Sprintf("Exported styles v%s", result.Version)
	if result.PreviousVersion != nil {
		if *result.PreviousVersion == result.Version {
			line = fmt.Sprintf("Styles unchanged at v%s", result.Version)
		} else {
			line = fmt.Sprintf("Exported styles v%s (was v%s)", result.Version, result.PreviousVersion)
		}
	}
	if result.DryRun {
		line += " [dry run]"
	}

	fmt.Fprintln(r.w, RenderStyle(StyleCyan, line, r.useColors))
}

// PrintChanges lists added, modified, renamed and removed styles per kind
func (r *SyncReporter) PrintChanges(result Result) {
	for _, kr := range result.Kinds {
		if len(kr.Added)+len(kr.Modified)+len(kr.Renamed)+len(kr.Removed) == 0 {
			continue
		}

		fmt.Fprintln(r.w, "")
		title := fmt.Sprintf("%s styles (%s)", capitalizeKind(kr.Kind), kr.GeneratedFile)
		fmt.Fprintln(r.w, RenderStyle(StyleCyan, title, r.useColors))
		fmt.Fprintln(r.w, "------------------------")

		for _, style := range kr.Added {
			fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleGreen, "+", r.useColors), style.VariableName)
		}
		for _, pair := range kr.Modified {
			fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleYellow, "~", r.useColors), pair.New.VariableName)
		}
		for _, pair := range kr.Renamed {
			fmt.Fprintf(r.w, "%s %s → %s\n", RenderStyle(StyleYellow, "→", r.useColors), pair.Old.VariableName, pair.New.VariableName)
		}
		for _, style := range kr.Removed {
			fmt.Fprintf(r.w, "%s %s\n", RenderStyle(StyleRed, "-", r.useColors), style.VariableName)
		}
	}
}

// PrintDeprecated shows deprecated styles kept because code still uses them
func (r *SyncReporter) PrintDeprecated(result Result) {
	if len(result.DeprecatedUsage) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Deprecated styles still in use", r.useColors))
	fmt.Fprintln(r.w, "------------------------------")

	for _, usage := range result.DeprecatedUsage {
		fmt.Fprintf(r.w, "• %s (%s)\n", usage.Style.VariableName, usage.Style.Kind)
		for _, file := range usage.Files {
			fmt.Fprintf(r.w, "  📁 %s\n", file)
		}
	}
}

// PrintFiles shows the rewritten project files, with previews on a dry run
func (r *SyncReporter) PrintFiles(result Result) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintf(r.w, "Files Scanned:  %s\n", humanize.Comma(int64(result.FilesScanned)))
	fmt.Fprintf(r.w, "Files Updated:  %s\n", humanize.Comma(int64(len(result.MutatedFiles))))

	for _, file := range result.MutatedFiles {
		fmt.Fprintf(r.w, "  %s\n", file)
	}

	if len(result.Previews) == 0 {
		return
	}

	paths := make([]string, 0, len(result.Previews))
	for path := range result.Previews {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, path := range paths {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleCyan, path, r.useColors))
		fmt.Fprint(r.w, result.Previews[path])
	}
}

// PrintWarnings shows warnings recorded during the run
func (r *SyncReporter) PrintWarnings(result Result) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

func capitalizeKind(kind Kind) string {
	return upperFirst(string(kind))
}
