package fontcss

import (
	"fmt"
	"io"

	fc "github.com/yacobolo/fontcss/internal/fontcss"
)

// DetermineOutputFormat selects the output format from the flag value.
// Unknown values fall back to issues.
func DetermineOutputFormat(formatFlag string) OutputFormat {
	switch formatFlag {
	case "json":
		return fc.OutputJSON
	default:
		return fc.OutputIssues
	}
}

// WriteOutput writes the check result in the specified format
func WriteOutput(w io.Writer, result *CheckResult, format OutputFormat, config Config) error {
	switch format {
	case fc.OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}
	default:
		reporter := fc.NewReporter(w, config)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues, result.TruncatedCount)
	}
	return nil
}
