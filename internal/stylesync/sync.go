package stylesync

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Default configuration values
const (
	DefaultDocument    = "design/styles.json"
	DefaultProjectDir  = "."
	DefaultOutputDir   = "internal/styles"
	DefaultSnapshotDir = ".stylesync"
	DefaultPackage     = "styles"
)

// applyDefaults fills unset configuration fields
func applyDefaults(config Config) Config {
	if config.DocumentPath == "" {
		config.DocumentPath = DefaultDocument
	}
	if config.ProjectDir == "" {
		config.ProjectDir = DefaultProjectDir
	}
	if config.ColorOutputDir == "" {
		config.ColorOutputDir = DefaultOutputDir
	}
	if config.TextOutputDir == "" {
		config.TextOutputDir = config.ColorOutputDir
	}
	if config.SnapshotDir == "" {
		config.SnapshotDir = DefaultSnapshotDir
	}
	if config.PackageName == "" {
		config.PackageName = DefaultPackage
	}
	if config.Workers <= 0 {
		config.Workers = DefaultWorkers
	}
	return config
}

// kindRun carries one kind of style through a run
type kindRun struct {
	kind       Kind
	generator  *Generator
	outputPath string
	snapshot   string
	previous   Previous
	latest     []Style
	diff       DiffResult
	survivors  []Style
}

// styles returns the list handed to code generation: latest styles in
// document order, then surviving deprecated styles by variable name
func (k *kindRun) styles() []Style {
	styles := make([]Style, 0, len(k.latest)+len(k.survivors))
	styles = append(styles, k.latest...)
	styles = append(styles, k.survivors...)
	return styles
}

// Sync extracts the latest styles, diffs them against the previous export,
// rewrites references across the project, prunes deprecated styles nobody
// uses and regenerates the style code.
//
// Template, output folder, design document and project root failures are
// fatal. Per-file problems and a missing or corrupt snapshot are logged and
// the run continues.
func Sync(config Config, logger *Logger) (*Result, error) {
	if logger == nil {
		logger = DiscardLogger()
	}
	config = applyDefaults(config)

	namer, err := NamerFor(config.Naming)
	if err != nil {
		return nil, err
	}

	// 1. Parse templates
	runs := make([]*kindRun, 0, len(Kinds))
	for _, kind := range Kinds {
		templatePath, outputDir := config.ColorTemplate, config.ColorOutputDir
		if kind == KindText {
			templatePath, outputDir = config.TextTemplate, config.TextOutputDir
		}

		generator, err := NewGenerator(templatePath, kind)
		if err != nil {
			return nil, err
		}

		runs = append(runs, &kindRun{
			kind:       kind,
			generator:  generator,
			outputPath: filepath.Join(outputDir, generator.FileName()),
			snapshot:   filepath.Join(config.SnapshotDir, SnapshotFileName(kind)),
		})
	}

	// 2. Create output folders
	if !config.DryRun {
		for _, run := range runs {
			if err := os.MkdirAll(filepath.Dir(run.outputPath), 0o755); err != nil {
				return nil, fmt.Errorf("create output folder: %w", err)
			}
		}
	}

	// 3. Extract latest styles
	doc, err := ExtractDocument(config.DocumentPath, namer, logger)
	if err != nil {
		return nil, err
	}
	if absClean(config.ColorOutputDir) == absClean(config.TextOutputDir) {
		doc = resolveKindCollisions(doc, logger)
	}

	// 4. Load previous exports
	for _, run := range runs {
		run.previous = loadPrevious(run.snapshot, run.kind, logger)
	}
	base := versionBase(runs[0].previous, runs[1].previous, logger)
	if base.Found() {
		logger.Infof("Found previously exported styles at v%s", base.Version())
	}

	// 5. Diff
	var plan RewritePlan
	var pairs []MigrationPair
	var deprecated []Style
	for _, run := range runs {
		fileType := run.generator.FileType()
		for _, style := range doc.Styles(run.kind) {
			run.latest = append(run.latest, style.WithFileType(fileType))
		}

		run.diff = Diff(run.latest, run.previous)
		for i, style := range run.diff.Deprecated {
			run.diff.Deprecated[i] = style.WithFileType(fileType)
		}

		plan = plan.Merge(NewRewritePlan(run.diff.Pairs))
		pairs = append(pairs, run.diff.Pairs...)
		deprecated = append(deprecated, run.diff.Deprecated...)
	}
	for _, conflict := range FindReferenceConflicts(pairs) {
		logger.Warnf(ContextStyles, "%s style %q and %s style %q are both referenced as %s; only %s references are rewritten",
			conflict.First.New.Kind, conflict.First.New.Name, conflict.Second.New.Kind, conflict.Second.New.Name,
			conflict.Name, conflict.First.New.Kind)
	}

	// 6. Rewrite references
	ignored := []string{config.DocumentPath}
	for _, run := range runs {
		ignored = append(ignored, run.outputPath, run.snapshot)
	}
	if config.ColorTemplate != "" {
		ignored = append(ignored, config.ColorTemplate)
	}
	if config.TextTemplate != "" {
		ignored = append(ignored, config.TextTemplate)
	}

	files, stats, err := ProjectFiles{
		Root:     config.ProjectDir,
		Excludes: config.Excludes,
		Ignored:  ignored,
	}.List()
	if err != nil {
		return nil, err
	}
	for _, err := range stats.Errors {
		logger.Errorf(ContextFiles, err)
	}
	logger.Verbosef("Listed %d project files (%d skipped)", stats.FilesListed, stats.FilesSkipped)

	logger.Infof("Updating references to styles in your project")
	rewrite := Rewriter{Workers: config.Workers, DryRun: config.DryRun}.Rewrite(files, plan)
	for _, fileErr := range rewrite.Errors {
		logger.Errorf(ContextFiles, fileErr)
	}

	// 7. Find deprecated styles still in use
	usage, usageErrors := FindUsage(deprecated, files, rewrite.ReadFile, config.Workers)
	for _, fileErr := range usageErrors {
		logger.Errorf(ContextFiles, fileErr)
	}

	result := &Result{
		FilesScanned: stats.FilesListed,
		DryRun:       config.DryRun,
	}

	var changes Changes
	for _, run := range runs {
		run.survivors = PruneDeprecated(run.diff.Deprecated, usage, run.latest, logger)
		changes = changes.Add(run.diff.Changes())

		for _, style := range run.survivors {
			refs := make([]string, 0, len(usage[style.Key()]))
			for _, path := range usage[style.Key()] {
				refs = append(refs, relativeTo(config.ProjectDir, path))
			}
			result.DeprecatedUsage = append(result.DeprecatedUsage, DeprecatedUsage{Style: style, Files: refs})
		}
	}

	// 8. Version
	result.Version = NextVersion(base, changes)
	if base.Found() {
		v := base.Version()
		result.PreviousVersion = &v
	}

	// 9. Generate code and snapshots
	logger.Infof("Generating styling code")
	colorStyles := runs[0].styles()
	for _, run := range runs {
		styles := run.styles()

		code, err := run.generator.Generate(styles, colorStyles, result.Version, config.PackageName)
		if err != nil {
			return nil, err
		}

		if !config.DryRun {
			if err := os.WriteFile(run.outputPath, []byte(code), 0o644); err != nil {
				return nil, fmt.Errorf("write generated %s styles: %w", run.kind, err)
			}
			if err := SaveSnapshot(run.snapshot, Snapshot{Version: result.Version, Styles: styles}); err != nil {
				logger.Errorf(ContextSnapshot, err)
			}
		}

		added := append([]Style(nil), run.diff.Added...)
		for _, pair := range run.diff.Revived() {
			added = append(added, pair.New)
		}

		result.Kinds = append(result.Kinds, KindResult{
			Kind:          run.kind,
			Added:         added,
			Modified:      run.diff.Modified(),
			Renamed:       run.diff.Renamed(),
			Removed:       run.diff.Removed,
			Styles:        styles,
			GeneratedFile: run.outputPath,
		})
	}

	for _, path := range rewrite.Mutated {
		result.MutatedFiles = append(result.MutatedFiles, relativeTo(config.ProjectDir, path))
	}
	if config.DryRun {
		result.Previews = RenderPreviews(config.ProjectDir, rewrite, logger.UseColors())
	}
	result.Warnings = logger.Warnings()

	return result, nil
}

// loadPrevious reads one snapshot; a missing or corrupt file is the first run
func loadPrevious(path string, kind Kind, logger *Logger) Previous {
	previous, err := LoadSnapshot(path, kind)
	switch {
	case err == nil:
	case errors.Is(err, ErrNoSnapshot):
		logger.Verbosef("No previous %s snapshot at %s", kind, path)
	default:
		logger.Warnf(ContextSnapshot, "%v; treating %s styles as a first export", err, kind)
	}
	return previous
}

// versionBase picks the previous version the next one is derived from.
// When both snapshots exist with different versions the text version wins.
func versionBase(color, text Previous, logger *Logger) Previous {
	switch {
	case color.Found() && text.Found():
		if color.Version() != text.Version() {
			logger.Warnf(ContextSnapshot, "Mismatching versions: %s (Text) and %s (Color)", text.Version(), color.Version())
		}
		return text
	case text.Found():
		return text
	default:
		return color
	}
}
