package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fontcss",
	Short: "Keep SCSS font-face declarations in sync with a font directory",
	Long: `Scan a font directory (one subdirectory per family) and append an
@include font-face(...) line to the stylesheet for every font not declared yet.
Existing lines are never changed or removed.`,
	// Default behavior: run sync when no subcommand is given.
	// We must call loadConfig here because PreRunE of syncCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runSync(cmd)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	pf := rootCmd.PersistentFlags()
	pf.BoolP("verbose", "v", false, "Enable verbose logging")
	pf.Bool("quiet", false, "Suppress all output except errors")
	pf.Bool("color", false, "Force color output")
	pf.String("config", defaultConfigFile, "Config file path")

	// Paths shared by sync, check and watch
	pf.String("fonts-dir", "src/fonts", "Font root: one subdirectory per font family")
	pf.String("stylesheet", "src/scss/fonts.scss", "Stylesheet receiving the font-face declarations")
	pf.String("mixins", "src/scss/_mixins.scss", "SCSS file defining the font-face mixin")
	pf.String("ignore-file", ".fontignore", "Gitignore-style file in the font root")
	pf.StringSlice("pattern", nil, "Font file globs inside a family directory (default *.{ttf,otf,ttc,woff,woff2})")

	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
