package stylesync

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// LogContext tags a log line with the part of the run that produced it
type LogContext string

// Log contexts
const (
	ContextFiles    LogContext = "files"
	ContextSnapshot LogContext = "snapshot"
	ContextTemplate LogContext = "template"
	ContextStyles   LogContext = "styles"
	ContextExtract  LogContext = "extract"
)

// Logger writes progress and recoverable problems of a run. It is passed
// explicitly to every step; there is no package-level logger.
// A Logger is not safe for concurrent use: workers hand their problems back
// to the coordinating goroutine, which logs them.
type Logger struct {
	w         io.Writer
	useColors bool
	verbose   bool
	quiet     bool
	warnings  []string
}

// NewLogger creates a logger writing to w
func NewLogger(w io.Writer, useColors, verbose bool) *Logger {
	return &Logger{w: w, useColors: useColors, verbose: verbose}
}

// DiscardLogger returns a logger that only records warnings
func DiscardLogger() *Logger {
	return &Logger{w: io.Discard}
}

// SetQuiet suppresses every line while still recording warnings
func (l *Logger) SetQuiet(quiet bool) {
	l.quiet = quiet
}

// UseColors returns whether colors are enabled
func (l *Logger) UseColors() bool {
	return l.useColors
}

// Infof prints a progress line
func (l *Logger) Infof(format string, args ...any) {
	if l.quiet {
		return
	}
	fmt.Fprintf(l.w, format+"\n", args...)
}

// Verbosef prints a progress line in verbose mode only
func (l *Logger) Verbosef(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.Infof(format, args...)
}

// Warnf records and prints a warning
func (l *Logger) Warnf(ctx LogContext, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	l.warnings = append(l.warnings, fmt.Sprintf("[%s] %s", ctx, msg))
	l.print(StyleYellow, "Warning", ctx, msg)
}

// Errorf records and prints a recoverable error; the run continues
func (l *Logger) Errorf(ctx LogContext, err error) {
	l.warnings = append(l.warnings, fmt.Sprintf("[%s] %v", ctx, err))
	l.print(StyleRed, "Error", ctx, err.Error())
}

func (l *Logger) print(style lipgloss.Style, label string, ctx LogContext, msg string) {
	if l.quiet {
		return
	}
	prefix := label + ":"
	tag := fmt.Sprintf("(%s)", ctx)
	prefix = RenderStyle(style, prefix, l.useColors)
	tag = RenderStyle(StyleGray, tag, l.useColors)
	fmt.Fprintf(l.w, "%s %s %s\n", prefix, msg, tag)
}

// Warnings returns every warning and recoverable error recorded so far
func (l *Logger) Warnings() []string {
	return append([]string(nil), l.warnings...)
}
