package stylesync

// Issue represents a single deprecated reference in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "stylesync"
	Text        string   `json:"Text"`        // "deprecated style \"sampleRed\" is still referenced"
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos `json:"Pos"`         // File location
	Style       Style    `json:"-"`           // Deprecated style behind the issue
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "internal/ui/header.go", relative to the project root
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 15 (1-based byte offset of the reference)
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// LinterName is reported as the issue source
const LinterName = "stylesync"

// IssueDeprecatedReference is the text of a deprecated reference issue
const IssueDeprecatedReference = "deprecated %s style %q is still referenced"
