package fontcss

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCaretIndicator(t *testing.T) {
	reporter := &Reporter{}

	tests := []struct {
		name       string
		sourceLine string
		column     int
		want       string
	}{
		{
			name:       "spaces only",
			sourceLine: `  @include font-face("A", "A/A" 400, "normal");`,
			column:     3,
			want:       "  ^",
		},
		{
			name:       "tabs and spaces",
			sourceLine: "\t @include font-face(\"A\", \"A/A\" 400, \"normal\");",
			column:     3,
			want:       "\t ^",
		},
		{
			name:       "start of line",
			sourceLine: "@include",
			column:     1,
			want:       "^",
		},
		{
			name:       "column 0 fallback",
			sourceLine: "some line",
			column:     0,
			want:       "^",
		},
		{
			name:       "column beyond line length",
			sourceLine: "short",
			column:     100,
			want:       "     ^", // Pads to line length only
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := reporter.buildCaretIndicator(tt.sourceLine, tt.column)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSortIssues(t *testing.T) {
	issues := []Issue{
		{Text: "c", Pos: IssuePos{Filename: "b.scss", Line: 1}},
		{Text: "b", Pos: IssuePos{Filename: "a.scss", Line: 3, Column: 5}},
		{Text: "a", Pos: IssuePos{Filename: "a.scss", Line: 3, Column: 1}},
		{Text: "z", Pos: IssuePos{Filename: "a.scss"}},
	}
	SortIssues(issues)

	var order []string
	for _, issue := range issues {
		order = append(order, issue.Text)
	}
	assert.Equal(t, []string{"z", "a", "b", "c"}, order)
}

func TestPrintIssues(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{w: &buf, printLines: true, printLinterName: true}

	r.PrintIssues([]Issue{
		{
			FromLinter:  LinterName,
			Text:        "stylesheet does not start with @import 'mixins';",
			Severity:    SeverityError,
			SourceLines: []string{"// fonts"},
			Pos:         IssuePos{Filename: "fonts.scss", Line: 1, Column: 1},
			Replacement: &Replacement{NewText: ImportLine},
		},
		{
			FromLinter:  LinterName,
			Text:        "undeclared",
			Severity:    SeverityError,
			Pos:         IssuePos{Filename: "fonts.scss"},
			Replacement: &Replacement{NewText: "@include font-face(x);"},
		},
	})

	want := "fonts.scss:1:1: stylesheet does not start with @import 'mixins'; (fontcss)\n" +
		"\t// fonts\n" +
		"\t^\n" +
		"\t+ @import 'mixins';\n" +
		"fonts.scss: undeclared (fontcss)\n" +
		"\t+ @include font-face(x);\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintSummary(t *testing.T) {
	tests := []struct {
		name      string
		issues    []Issue
		truncated int
		want      string
	}{
		{
			name: "clean",
			want: "\n0 issues\n",
		},
		{
			name:   "mixed",
			issues: []Issue{{Severity: SeverityError}, {Severity: SeverityWarning}, {Severity: SeverityWarning}},
			want:   "\n3 issues (1 error, 2 warnings)\nHint: Run `fontcss sync` to add missing declarations\n",
		},
		{
			name:      "warnings truncated",
			issues:    []Issue{{Severity: SeverityWarning}},
			truncated: 4,
			want:      "\n1 issue (4 issues truncated)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := &Reporter{w: &buf}
			r.PrintSummary(tt.issues, tt.truncated)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
