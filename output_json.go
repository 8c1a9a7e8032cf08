package fontcss

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Issues    []JSONIssue `json:"issues"`
	Warnings  []string    `json:"warnings,omitempty"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	Stylesheet      string `json:"stylesheet"`
	TotalIssues     int    `json:"total_issues"`
	Errors          int    `json:"errors"`
	Warnings        int    `json:"warnings"`
	Truncated       int    `json:"truncated"`
	FamiliesScanned int    `json:"families_scanned"`
	FontsFound      int    `json:"fonts_found"`
	Declarations    int    `json:"declarations"`
}

// JSONIssue represents a single check issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // Optional source line
	Fix      string `json:"fix,omitempty"`    // Line sync would write
}

// WriteJSON writes the check result as JSON
func WriteJSON(w io.Writer, result *CheckResult) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts CheckResult to JSONOutput
func buildJSONOutput(result *CheckResult) JSONOutput {
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		fix := ""
		if issue.Replacement != nil {
			fix = issue.Replacement.NewText
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
			Fix:      fix,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			Stylesheet:      result.Stylesheet,
			TotalIssues:     len(result.Issues),
			Errors:          result.ErrorCount,
			Warnings:        result.WarningCount,
			Truncated:       result.TruncatedCount,
			FamiliesScanned: result.FamiliesScanned,
			FontsFound:      result.FontsFound,
			Declarations:    result.Declarations,
		},
		Issues:   jsonIssues,
		Warnings: result.Warnings,
	}
}
