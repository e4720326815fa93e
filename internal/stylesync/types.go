package stylesync

// Kind separates color styles from text styles. Identifiers, variable names
// and generated files are all scoped by kind.
type Kind string

// Style kinds
const (
	KindColor Kind = "color"
	KindText  Kind = "text"
)

// Kinds lists every style kind in processing order
var Kinds = []Kind{KindColor, KindText}

// Color holds the four channels of a color style, each in [0, 1]
type Color struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
	Alpha float64 `json:"alpha"`
}

// TextAttributes holds the payload of a text style
type TextAttributes struct {
	FontName   string  `json:"fontName"`
	PointSize  float64 `json:"pointSize"`
	Kerning    float64 `json:"kerning"`
	LineHeight float64 `json:"lineHeight"`
	ColorID    string  `json:"colorIdentifier"` // Identifier of a color style
}

// Style is a named design value. Styles are value snapshots: a new version
// of a style is a new Style, never a mutation of an existing one.
type Style struct {
	Identifier   string          `json:"identifier"`   // Stable across renames, never reused
	Name         string          `json:"name"`         // "Sample Red"
	VariableName string          `json:"variableName"` // "sampleRed"
	Kind         Kind            `json:"kind"`
	FileType     string          `json:"fileType,omitempty"` // Extension of the generated file: "swift", "go"
	Color        *Color          `json:"color,omitempty"`
	Text         *TextAttributes `json:"text,omitempty"`
	Deprecated   bool            `json:"deprecated,omitempty"` // Removed from the document but still referenced
}

// StyleKey identifies a style across versions
type StyleKey struct {
	Kind       Kind
	Identifier string
}

// Key returns the cross-version identity of the style
func (s Style) Key() StyleKey {
	return StyleKey{Kind: s.Kind, Identifier: s.Identifier}
}

// SameValue reports whether two styles carry the same semantic payload.
// Names are not part of the comparison.
func (s Style) SameValue(other Style) bool {
	return equalValue(s.Color, other.Color) && equalValue(s.Text, other.Text)
}

func equalValue[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// WithVariableName returns a copy of the style using a different variable name
func (s Style) WithVariableName(name string) Style {
	s.VariableName = name
	return s
}

// WithFileType returns a copy of the style scoped to a generated file type
func (s Style) WithFileType(fileType string) Style {
	s.FileType = fileType
	return s
}

// AsDeprecated returns a copy of the style flagged as deprecated
func (s Style) AsDeprecated() Style {
	s.Deprecated = true
	return s
}

// MigrationPair holds the previous and latest snapshot of one identifier
type MigrationPair struct {
	Old Style
	New Style
}

// IsRename reports whether the pair changes the variable name
func (p MigrationPair) IsRename() bool {
	return p.Old.VariableName != p.New.VariableName
}

// IsValueChange reports whether the pair only changes the style's value
func (p MigrationPair) IsValueChange() bool {
	return !p.IsRename() && !p.Old.SameValue(p.New)
}

// IsRevived reports whether a previously deprecated style is back in the document
func (p MigrationPair) IsRevived() bool {
	return p.Old.Deprecated
}

// DeprecatedUsage lists the files still referencing a deprecated style
type DeprecatedUsage struct {
	Style Style
	Files []string // Relative to the project root, sorted
}

// Config holds sync configuration
type Config struct {
	DocumentPath   string   // Design document: "design/styles.json"
	ProjectDir     string   // Root of the tree whose references are rewritten
	ColorTemplate  string   // Template for color code; empty uses the built-in Go template
	TextTemplate   string   // Template for text style code; empty uses the built-in Go template
	ColorOutputDir string   // Directory for generated color code
	TextOutputDir  string   // Directory for generated text style code
	SnapshotDir    string   // Directory holding color-styles.json and text-styles.json
	PackageName    string   // Package name passed to templates
	Naming         string   // Variable naming: "camel", "pascal", "snake"
	Excludes       []string // Doublestar patterns (relative to ProjectDir) never rewritten
	Workers        int      // File workers per phase (default: 4)
	DryRun         bool     // Compute everything, write nothing
	Verbose        bool
}

// CheckConfig holds configuration of the deprecated reference check
type CheckConfig struct {
	ProjectDir     string
	SnapshotDir    string
	Excludes       []string
	Strict         bool // Exit with code 1 if any deprecated style is still referenced
	PrintLines     bool // Show source lines with issues
	UseColors      bool
	GeneratedFiles []string // Generated code files never scanned
}

// KindResult describes what happened to one kind of style during a run
type KindResult struct {
	Kind          Kind
	Added         []Style
	Modified      []MigrationPair
	Renamed       []MigrationPair
	Removed       []Style
	Styles        []Style // Exactly what was handed to code generation
	GeneratedFile string
}

// Result contains sync outcome and statistics
type Result struct {
	PreviousVersion *Version // nil on the first run
	Version         Version
	Kinds           []KindResult
	FilesScanned    int
	MutatedFiles    []string          // Relative to ProjectDir, sorted
	DeprecatedUsage []DeprecatedUsage // Deprecated styles kept because they are still referenced
	Previews        map[string]string // Relative path -> rendered diff (dry run only)
	Warnings        []string
	DryRun          bool
}

// Changes summarizes a run across every kind
func (r *Result) Changes() Changes {
	var total Changes
	for _, kr := range r.Kinds {
		total.Added += len(kr.Added)
		total.Modified += len(kr.Modified)
		total.Renamed += len(kr.Renamed)
		total.Removed += len(kr.Removed)
	}
	return total
}
