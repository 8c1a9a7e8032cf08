// Package fontcss keeps an SCSS stylesheet of font-face declarations in sync
// with a directory of font files.
//
// Every subdirectory of the font root is a font family. Each font file inside
// it becomes one mixin include:
//
//	@include font-face("Roboto", "Roboto/Roboto-Italic" 400, "italic");
//
// # Sync
//
// Sync makes sure the mixins file and the stylesheet exist, scans the fonts
// and appends the declarations the stylesheet does not contain yet:
//
//	config := fontcss.Config{
//		FontsDir:       "src/fonts",
//		StylesheetFile: "src/scss/fonts.scss",
//		MixinsFile:     "src/scss/_mixins.scss",
//	}
//	result, err := fontcss.Sync(ctx, config, nil)
//
// Sync only ever appends. Running it twice leaves the stylesheet unchanged the
// second time.
//
// # Check
//
// Check reports undeclared fonts, declarations without font files and
// duplicate declarations without touching any file.
//
// # CLI Tool
//
//	go install github.com/yacobolo/fontcss/cmd/fontcss@latest
package fontcss

import fc "github.com/yacobolo/fontcss/internal/fontcss"

// Config holds sync and check configuration
type Config = fc.Config

// Console prints human-readable diagnostics
type Console = fc.Console

// OutputFormat selects how check results are written
type OutputFormat = fc.OutputFormat
