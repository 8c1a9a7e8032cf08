package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .fontcss.yaml config file",
	Long:  `Create a .fontcss.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# fontcss configuration
# Docs: https://github.com/yacobolo/fontcss

verbose: false

# Font root: one subdirectory per font family
fonts:
  dir: src/fonts
  ignore-file: .fontignore   # gitignore syntax, relative to fonts.dir
  patterns:
    - "*.{ttf,otf,ttc,woff,woff2}"

# Stylesheets
styles:
  fonts: src/scss/fonts.scss     # receives @include font-face(...) lines
  mixins: src/scss/_mixins.scss  # defines the font-face mixin

# Check settings
check:
  strict: false            # exit 1 on warnings too
  output-format: issues    # issues | json
  max-issues: 0            # 0 = unlimited

# Watch settings
watch:
  debounce: 300ms
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
