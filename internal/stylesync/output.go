package stylesync

import (
	"io"
	"os"
)

// OutputFormat represents the report format of a command
type OutputFormat string

const (
	// OutputSummary shows the version line, changes, deprecated usage and warnings
	OutputSummary OutputFormat = "summary"
	// OutputIssues shows deprecated references in golangci-lint format (check only)
	OutputIssues OutputFormat = "issues"
	// OutputJSON exports the result as JSON for tooling
	OutputJSON OutputFormat = "json"
)

// DetermineOutputFormat selects the sync report format; unknown values fall
// back to the summary
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "json":
		return OutputJSON
	case "issues":
		return OutputIssues
	default:
		return OutputSummary
	}
}

// WriteSyncOutput writes the sync result in the specified format
func WriteSyncOutput(w io.Writer, result *Result, format OutputFormat, useColors bool) {
	switch format {
	case OutputJSON:
		if err := WriteSyncJSON(w, result); err != nil {
			// Log error but don't crash
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}

	default:
		reporter := NewSyncReporter(w, useColors)
		reporter.PrintVersion(*result)
		reporter.PrintChanges(*result)
		reporter.PrintDeprecated(*result)
		reporter.PrintFiles(*result)
		reporter.PrintWarnings(*result)
	}
}

// WriteCheckOutput writes the check result in the specified format
func WriteCheckOutput(w io.Writer, result *CheckResult, format OutputFormat, config CheckConfig) {
	switch format {
	case OutputJSON:
		if err := WriteCheckJSON(w, result); err != nil {
			os.Stderr.WriteString("Error writing JSON: " + err.Error() + "\n")
		}

	default:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(*result)
	}
}
