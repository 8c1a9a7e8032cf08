package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/fontcss"
	ifc "github.com/yacobolo/fontcss/internal/fontcss"
)

// errCheckFailed makes the process exit 1 after issues were printed
var errCheckFailed = errors.New("check failed")

var checkCmd = &cobra.Command{
	Use:     "check",
	Aliases: []string{"lint"},
	Short:   "Report undeclared, stale and duplicate font-face declarations",
	Long: `Compare the stylesheet with the font directory without writing anything.
Undeclared fonts and a missing mixins import are errors; declarations without a
font file and duplicate declarations are warnings.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.Bool("strict", false, "Exit 1 on warnings too (CI mode)")
	f.String("output-format", "issues", "Output format: issues|json")
	f.Int("max-issues", 0, "Max issues to show (0=unlimited)")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	config := buildConfig()
	con := ifc.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr(), config)

	result, err := fontcss.Check(cmd.Context(), config, con)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	format := fontcss.DetermineOutputFormat(getString("check.output-format", "issues"))
	if !config.Quiet {
		if err := fontcss.WriteOutput(cmd.OutOrStdout(), result, format, config); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	// Soft gate: only errors fail unless strict
	if result.Failed(config.Strict) {
		return errCheckFailed
	}
	return nil
}
