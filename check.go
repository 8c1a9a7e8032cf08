package fontcss

import (
	"context"
	"fmt"
	"strings"

	fc "github.com/yacobolo/fontcss/internal/fontcss"
)

// CheckResult contains check analysis results
type CheckResult struct {
	Stylesheet      string
	FamiliesScanned int
	FontsFound      int
	Declarations    int // font-face includes found in the stylesheet

	Issues         []fc.Issue
	ErrorCount     int
	WarningCount   int
	TruncatedCount int // Issues removed due to MaxIssues

	Warnings []string
}

// Check compares the stylesheet with the font directory without writing anything
func Check(ctx context.Context, config Config, con *Console) (*CheckResult, error) {
	if con == nil {
		con = fc.DiscardConsole()
	}
	if config.StylesheetFile == "" {
		con.ConfigError("styles.fonts")
		return nil, fc.ErrStylesheetNotDefined
	}

	// Step 1: Read the stylesheet
	text, err := fc.ReadStylesheet(config.StylesheetFile)
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}

	// Step 2: Scan the fonts
	scan, err := scanModel(ctx, config, con)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	model := fc.Reconcile(scan.model, text)
	decls := fc.ParseDeclarations(text)

	result := &CheckResult{
		Stylesheet:      config.StylesheetFile,
		FamiliesScanned: len(model.Families),
		FontsFound:      model.FontCount(),
		Declarations:    len(decls),
		Warnings:        scan.warnings(),
	}

	// Step 3: Collect issues
	var issues []fc.Issue
	issues = append(issues, checkImport(config.StylesheetFile, text)...)
	issues = append(issues, checkUndeclared(config.StylesheetFile, model)...)
	if scan.listErr == nil {
		issues = append(issues, checkStale(config.StylesheetFile, model, scan.scanner, decls)...)
	}
	issues = append(issues, checkDuplicates(config.StylesheetFile, decls)...)

	fc.SortIssues(issues)

	// Step 4: Apply issue limiting if configured
	result.Issues, result.TruncatedCount = limitIssues(issues, config.MaxIssues)
	for _, issue := range result.Issues {
		switch issue.Severity {
		case fc.SeverityError:
			result.ErrorCount++
		case fc.SeverityWarning:
			result.WarningCount++
		}
	}

	return result, nil
}

// Failed reports whether the check should fail the build.
// Errors always fail; warnings fail in strict mode.
func (r *CheckResult) Failed(strict bool) bool {
	if r.ErrorCount > 0 {
		return true
	}
	return strict && r.WarningCount > 0
}

func checkImport(path, text string) []fc.Issue {
	if strings.HasPrefix(text, fc.ImportLine) {
		return nil
	}
	first := fc.SplitLines(text)[0]
	return []fc.Issue{{
		FromLinter:  fc.LinterName,
		Text:        fmt.Sprintf(fc.IssueMissingImport, fc.ImportLine),
		Severity:    fc.SeverityError,
		SourceLines: []string{first},
		Pos:         fc.IssuePos{Filename: path, Line: 1, Column: 1},
		Replacement: &fc.Replacement{NewText: fc.ImportLine},
	}}
}

// checkUndeclared reports every font Sync would append
func checkUndeclared(path string, model fc.FontModel) []fc.Issue {
	var issues []fc.Issue
	seen := make(map[string]bool)

	for _, fam := range model.Families {
		for _, rec := range fam.Fonts {
			line := rec.Declaration(fam.Name)
			if rec.AlreadyDeclared || seen[line] {
				continue
			}
			seen[line] = true
			issues = append(issues, fc.Issue{
				FromLinter:  fc.LinterName,
				Text:        fmt.Sprintf(fc.IssueUndeclaredFont, fam.Name+"/"+rec.PostScriptName, rec.Weight, rec.Style),
				Severity:    fc.SeverityError,
				Pos:         fc.IssuePos{Filename: path},
				Replacement: &fc.Replacement{NewText: line},
			})
		}
	}

	return issues
}

// checkStale reports declarations whose font file is gone. Declarations of
// ignored families and of ignored font files are left alone.
func checkStale(path string, model fc.FontModel, scanner *fc.Scanner, decls []fc.FontDeclaration) []fc.Issue {
	onDisk := make(map[string]bool)
	families := make([]string, 0, len(model.Families))
	for _, fam := range model.Families {
		families = append(families, fam.Name)
		for _, rec := range fam.Fonts {
			onDisk[fam.Name+"/"+rec.PostScriptName] = true
		}
	}
	ignored := scanner.IgnoredNames(families)

	var issues []fc.Issue
	for _, d := range decls {
		if onDisk[d.File] || ignored[d.File] || scanner.Ignore.Family(d.Family) {
			continue
		}
		issues = append(issues, fc.Issue{
			FromLinter:  fc.LinterName,
			Text:        fmt.Sprintf(fc.IssueStaleDeclaration, d.File, model.Root),
			Severity:    fc.SeverityWarning,
			SourceLines: []string{d.Text},
			Pos:         fc.IssuePos{Filename: path, Line: d.Line, Column: d.Column},
		})
	}
	return issues
}

func checkDuplicates(path string, decls []fc.FontDeclaration) []fc.Issue {
	firstLine := make(map[string]int)

	var issues []fc.Issue
	for _, d := range decls {
		first, dup := firstLine[d.Key()]
		if !dup {
			firstLine[d.Key()] = d.Line
			continue
		}
		issues = append(issues, fc.Issue{
			FromLinter:  fc.LinterName,
			Text:        fmt.Sprintf(fc.IssueDuplicateDeclaration, d.File, d.Weight, d.Style, first),
			Severity:    fc.SeverityWarning,
			SourceLines: []string{d.Text},
			Pos:         fc.IssuePos{Filename: path, Line: d.Line, Column: d.Column},
		})
	}
	return issues
}

// limitIssues applies the max-issues constraint
func limitIssues(issues []fc.Issue, maxIssues int) ([]fc.Issue, int) {
	if maxIssues <= 0 || len(issues) <= maxIssues {
		return issues, 0
	}
	return issues[:maxIssues], len(issues) - maxIssues
}
