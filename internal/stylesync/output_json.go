package stylesync

import (
	"encoding/json"
	"io"
	"time"
)

// JSONSchemaVersion is the version of the JSON report layout
const JSONSchemaVersion = "1.0"

// JSONSyncOutput represents the structured JSON export of a sync run
type JSONSyncOutput struct {
	Schema          string            `json:"schema"`
	Timestamp       string            `json:"timestamp"`
	Version         string            `json:"version"`
	PreviousVersion string            `json:"previous_version,omitempty"`
	DryRun          bool              `json:"dry_run"`
	Summary         JSONSyncSummary   `json:"summary"`
	Kinds           []JSONKind        `json:"kinds"`
	Deprecated      []JSONDeprecated  `json:"deprecated"`
	MutatedFiles    []string          `json:"mutated_files"`
	Previews        map[string]string `json:"previews,omitempty"`
	Warnings        []string          `json:"warnings"`
}

// JSONSyncSummary contains change counts across every kind
type JSONSyncSummary struct {
	Added        int `json:"added"`
	Modified     int `json:"modified"`
	Renamed      int `json:"renamed"`
	Removed      int `json:"removed"`
	FilesScanned int `json:"files_scanned"`
	FilesUpdated int `json:"files_updated"`
}

// JSONKind holds the changes of one kind of style
type JSONKind struct {
	Kind          string       `json:"kind"`
	GeneratedFile string       `json:"generated_file"`
	Styles        int          `json:"styles"`
	Added         []string     `json:"added"`
	Modified      []string     `json:"modified"`
	Renamed       []JSONRename `json:"renamed"`
	Removed       []string     `json:"removed"`
}

// JSONRename is one renamed style
type JSONRename struct {
	Identifier string `json:"identifier"`
	From       string `json:"from"`
	To         string `json:"to"`
}

// JSONDeprecated is a deprecated style kept because it is still referenced
type JSONDeprecated struct {
	Kind         string   `json:"kind"`
	Identifier   string   `json:"identifier"`
	VariableName string   `json:"variable_name"`
	Files        []string `json:"files"`
}

// JSONCheckOutput represents the structured JSON export of a check run
type JSONCheckOutput struct {
	Schema       string      `json:"schema"`
	Timestamp    string      `json:"timestamp"`
	Version      string      `json:"version,omitempty"`
	Deprecated   int         `json:"deprecated"`
	FilesScanned int         `json:"files_scanned"`
	Issues       []JSONIssue `json:"issues"`
}

// JSONIssue represents a single deprecated reference
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // Optional source line
}

// WriteSyncJSON writes the sync result as JSON
func WriteSyncJSON(w io.Writer, result *Result) error {
	return writeJSON(w, buildSyncJSON(result))
}

// WriteCheckJSON writes the check result as JSON
func WriteCheckJSON(w io.Writer, result *CheckResult) error {
	return writeJSON(w, buildCheckJSON(result))
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// buildSyncJSON converts Result to JSONSyncOutput
func buildSyncJSON(result *Result) JSONSyncOutput {
	changes := result.Changes()

	output := JSONSyncOutput{
		Schema:    JSONSchemaVersion,
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   result.Version.String(),
		DryRun:    result.DryRun,
		Summary: JSONSyncSummary{
			Added:        changes.Added,
			Modified:     changes.Modified,
			Renamed:      changes.Renamed,
			Removed:      changes.Removed,
			FilesScanned: result.FilesScanned,
			FilesUpdated: len(result.MutatedFiles),
		},
		Kinds:        make([]JSONKind, 0, len(result.Kinds)),
		Deprecated:   make([]JSONDeprecated, 0, len(result.DeprecatedUsage)),
		MutatedFiles: append([]string{}, result.MutatedFiles...),
		Previews:     result.Previews,
		Warnings:     append([]string{}, result.Warnings...),
	}
	if result.PreviousVersion != nil {
		output.PreviousVersion = result.PreviousVersion.String()
	}

	for _, kr := range result.Kinds {
		jk := JSONKind{
			Kind:          string(kr.Kind),
			GeneratedFile: kr.GeneratedFile,
			Styles:        len(kr.Styles),
			Added:         variableNames(kr.Added),
			Modified:      make([]string, 0, len(kr.Modified)),
			Renamed:       make([]JSONRename, 0, len(kr.Renamed)),
			Removed:       variableNames(kr.Removed),
		}
		for _, pair := range kr.Modified {
			jk.Modified = append(jk.Modified, pair.New.VariableName)
		}
		for _, pair := range kr.Renamed {
			jk.Renamed = append(jk.Renamed, JSONRename{
				Identifier: pair.New.Identifier,
				From:       pair.Old.VariableName,
				To:         pair.New.VariableName,
			})
		}
		output.Kinds = append(output.Kinds, jk)
	}

	for _, usage := range result.DeprecatedUsage {
		output.Deprecated = append(output.Deprecated, JSONDeprecated{
			Kind:         string(usage.Style.Kind),
			Identifier:   usage.Style.Identifier,
			VariableName: usage.Style.VariableName,
			Files:        append([]string{}, usage.Files...),
		})
	}

	return output
}

// buildCheckJSON converts CheckResult to JSONCheckOutput
func buildCheckJSON(result *CheckResult) JSONCheckOutput {
	output := JSONCheckOutput{
		Schema:       JSONSchemaVersion,
		Timestamp:    time.Now().Format(time.RFC3339),
		Deprecated:   len(result.Deprecated),
		FilesScanned: result.FilesScanned,
		Issues:       make([]JSONIssue, len(result.Issues)),
	}
	if result.Version != nil {
		output.Version = result.Version.String()
	}

	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		output.Issues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	return output
}

func variableNames(styles []Style) []string {
	names := make([]string, 0, len(styles))
	for _, style := range styles {
		names = append(names, style.VariableName)
	}
	return names
}
