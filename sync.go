package fontcss

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	fc "github.com/yacobolo/fontcss/internal/fontcss"
)

// SyncResult contains sync stats
type SyncResult struct {
	FamiliesScanned int
	FontsFound      int
	AlreadyDeclared int
	Added           []string // Declaration lines appended (or planned, for Plan)
	Bootstrap       fc.BootstrapResult
	Model           fc.FontModel // Reconciled model
	Warnings        []string
}

// Sync is the main entry point: bootstrap, scan, reconcile, merge.
// A nil console discards all diagnostics.
func Sync(ctx context.Context, config Config, con *Console) (*SyncResult, error) {
	if con == nil {
		con = fc.DiscardConsole()
	}
	result := &SyncResult{}

	// 1. Make sure both files exist and are linked
	boot, err := fc.Bootstrap(config.MixinsFile, config.StylesheetFile, con)
	result.Bootstrap = boot
	if err != nil {
		return nil, fmt.Errorf("bootstrap failed: %w", err)
	}
	if boot.MixinsSkipped {
		result.Warnings = append(result.Warnings, "mixins file not defined, font-face mixin not checked")
	}

	// 2. Scan font families
	scan, err := scanModel(ctx, config, con)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.Warnings = append(result.Warnings, scan.warnings()...)

	// 3. Reconcile against the stylesheet
	text, err := fc.ReadStylesheet(config.StylesheetFile)
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	model := fc.Reconcile(scan.model, text)
	result.fill(model)

	con.Verbosef("Found %d fonts in %d families (%d already declared)",
		result.FontsFound, result.FamiliesScanned, result.AlreadyDeclared)

	// 4. Append what is missing
	added, err := fc.Merge(config.StylesheetFile, model)
	if err != nil {
		return nil, fmt.Errorf("merge failed: %w", err)
	}
	result.Added = added

	for _, line := range added {
		con.Verbosef("+ %s", line)
	}

	return result, nil
}

// Plan reports what Sync would append without writing anything.
// A stylesheet that does not exist yet counts as empty.
func Plan(ctx context.Context, config Config, con *Console) (*SyncResult, error) {
	if con == nil {
		con = fc.DiscardConsole()
	}
	if config.StylesheetFile == "" {
		con.ConfigError("styles.fonts")
		return nil, fc.ErrStylesheetNotDefined
	}

	result := &SyncResult{}

	scan, err := scanModel(ctx, config, con)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	result.Warnings = scan.warnings()

	text, err := fc.ReadStylesheet(config.StylesheetFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	model := fc.Reconcile(scan.model, text)
	result.fill(model)
	result.Added = fc.MissingLines(model)

	return result, nil
}

func (r *SyncResult) fill(model fc.FontModel) {
	r.Model = model
	r.FamiliesScanned = len(model.Families)
	r.FontsFound = model.FontCount()
	r.AlreadyDeclared = model.DeclaredCount()
}

// scanOutcome is the model plus what the pipeline needs to know about how it was built
type scanOutcome struct {
	model   fc.FontModel
	scanner *fc.Scanner
	listErr error // Font root could not be listed; model is empty
}

func (o scanOutcome) warnings() []string {
	if o.listErr == nil {
		return nil
	}
	return []string{fmt.Sprintf("font directory %s not scanned: %v", o.model.Root, o.listErr)}
}

// scanModel lists and scans the font families. A font root that cannot be
// listed is reported and yields an empty model; extraction errors are returned.
func scanModel(ctx context.Context, config Config, con *Console) (scanOutcome, error) {
	scanner, err := fc.NewScanner(config, con)
	if err != nil {
		return scanOutcome{}, err
	}
	out := scanOutcome{model: fc.FontModel{Root: config.FontsDir}, scanner: scanner}

	families, err := scanner.Families()
	if err != nil {
		con.Errorf("cannot list font directory: %v", err)
		out.listErr = err
		return out, nil
	}

	out.model, err = scanner.Scan(ctx, families)
	if err != nil {
		return scanOutcome{}, err
	}
	return out, nil
}
