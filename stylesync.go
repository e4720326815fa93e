// Package stylesync exports design styles to code and keeps a project's
// references to them in step across renames.
//
// # Sync
//
// Colors and text styles are read from a design document (JSON or a CSS
// design-token stylesheet) and matched against the previous export by their
// stable identifier, never by name:
//
//	config := stylesync.Config{
//		DocumentPath: "design/styles.json",
//		ProjectDir:   ".",
//		Naming:       "camel",
//	}
//	result, err := stylesync.Sync(config, stylesync.NewLogger(os.Stderr, false, false))
//
// A style renamed from "Sample Red" to "Brand Red" rewrites every boundary-valid
// reference to sampleRed into brandRed, in two phases so that swapped names
// never collide. Styles removed from the document but still referenced stay in
// the generated code as deprecated until nothing uses them.
//
// # Versioning
//
// Each export carries a semantic version: removals bump the major version,
// additions the minor version, renames and value changes the patch version.
// The first export is 1.0.0.
//
// # Check
//
// Check reports the remaining references to deprecated styles in
// golangci-lint format:
//
//	result, err := stylesync.Check(stylesync.CheckConfig{ProjectDir: "."}, nil)
//
// # CLI Tool
//
// stylesync also provides a CLI tool. Install with:
//
//	go install github.com/yacobolo/stylesync/cmd/stylesync@latest
package stylesync

import (
	"io"

	"github.com/yacobolo/stylesync/internal/stylesync"
)

// Public types
type (
	Config      = stylesync.Config
	CheckConfig = stylesync.CheckConfig
	Result      = stylesync.Result
	CheckResult = stylesync.CheckResult
	Style       = stylesync.Style
	Version     = stylesync.Version
	Logger      = stylesync.Logger
	Issue       = stylesync.Issue
)

// NewLogger creates a logger writing progress and warnings to w
func NewLogger(w io.Writer, useColors, verbose bool) *Logger {
	return stylesync.NewLogger(w, useColors, verbose)
}

// Sync runs one export. A nil logger discards output but still records
// warnings in the result.
func Sync(config Config, logger *Logger) (*Result, error) {
	return stylesync.Sync(config, logger)
}

// Check reports references to deprecated styles
func Check(config CheckConfig, logger *Logger) (*CheckResult, error) {
	return stylesync.Check(config, logger)
}
