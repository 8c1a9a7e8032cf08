package fontcss

// Issue represents a single check violation in golangci-lint format
type Issue struct {
	FromLinter  string       `json:"FromLinter"`  // "fontcss"
	Text        string       `json:"Text"`        // "font \"Roboto/Roboto-Bold\" 700 italic has no declaration"
	Severity    string       `json:"Severity"`    // "warning", "error"
	SourceLines []string     `json:"SourceLines"` // Stylesheet lines involved
	Pos         IssuePos     `json:"Pos"`         // File location
	Replacement *Replacement `json:"Replacement"` // Optional fix suggestion
}

// IssuePos specifies the location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "src/scss/fonts.scss"
	Line     int    `json:"Line"`     // 0 when the issue is about the file as a whole
	Column   int    `json:"Column"`
}

// Replacement is the text `fontcss sync` would write
type Replacement struct {
	NewText string
}

// LinterName tags every issue
const LinterName = "fontcss"

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue messages
const (
	IssueMissingImport        = "stylesheet does not start with %s"
	IssueUndeclaredFont       = "font %q %d %s has no declaration"
	IssueStaleDeclaration     = "declared font %q has no font file under %s"
	IssueDuplicateDeclaration = "font %q %s %s is already declared on line %d"
)
