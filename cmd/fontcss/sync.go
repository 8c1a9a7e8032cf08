package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/yacobolo/fontcss"
	ifc "github.com/yacobolo/fontcss/internal/fontcss"
)

var syncCmd = &cobra.Command{
	Use:     "sync",
	Aliases: []string{"gen"},
	Short:   "Append missing font-face declarations to the stylesheet",
	Long: `Create the mixins file and the stylesheet when missing, scan the font
directory and append one @include font-face(...) line per undeclared font.
Running sync twice never duplicates a line.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runSync(cmd)
	},
}

func init() {
	syncCmd.Flags().Bool("dry-run", false, "Print the declarations that would be added without writing")
}

// runSync is shared between `fontcss sync`, the root command and watch.
func runSync(cmd *cobra.Command) error {
	config := buildConfig()
	con := ifc.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr(), config)

	if getBool("dry-run", false) {
		result, err := fontcss.Plan(cmd.Context(), config, con)
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		if !config.Quiet {
			printPlan(cmd.OutOrStdout(), config, result)
		}
		return nil
	}

	result, err := fontcss.Sync(cmd.Context(), config, con)
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	if !config.Quiet {
		printSyncResult(cmd.OutOrStdout(), config, result, con.UseColors())
	}
	return nil
}

func printSyncResult(w io.Writer, config fontcss.Config, result *fontcss.SyncResult, useColors bool) {
	fmt.Fprintf(w, "Synced %s\n", config.StylesheetFile)
	fmt.Fprintf(w, "  Families scanned: %d\n", result.FamiliesScanned)
	fmt.Fprintf(w, "  Fonts found: %d\n", result.FontsFound)
	fmt.Fprintf(w, "  Already declared: %d\n", result.AlreadyDeclared)
	fmt.Fprintf(w, "  Declarations added: %s\n",
		ifc.RenderStyle(ifc.StyleGreen, fmt.Sprint(len(result.Added)), useColors && len(result.Added) > 0))

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "  Warning: %s\n", warning)
	}
}

func printPlan(w io.Writer, config fontcss.Config, result *fontcss.SyncResult) {
	if len(result.Added) == 0 {
		fmt.Fprintf(w, "%s is up to date (%d fonts)\n", config.StylesheetFile, result.FontsFound)
	} else {
		fmt.Fprintf(w, "Would add %d declarations to %s:\n", len(result.Added), config.StylesheetFile)
		for _, line := range result.Added {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "  Warning: %s\n", warning)
	}
}
