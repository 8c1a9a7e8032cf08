package fontcss

// Style is the CSS font-style of a font variant
type Style string

// Font styles emitted into declarations
const (
	StyleNormal Style = "normal"
	StyleItalic Style = "italic"
)

// StyleFromItalic maps the extractor's italic flag to a CSS font-style
func StyleFromItalic(italic bool) Style {
	if italic {
		return StyleItalic
	}
	return StyleNormal
}

// FontMetadata is what the extractor reports for one font face
type FontMetadata struct {
	PostScriptName string // "Roboto-Italic"
	Weight         int    // OS/2 usWeightClass: 400, 700
	Italic         bool
}

// FontRecord is one font variant of a family, annotated against the stylesheet
type FontRecord struct {
	PostScriptName  string
	Weight          int
	Style           Style
	AlreadyDeclared bool // Declaration line found in the stylesheet
}

// FontFamily is one subdirectory of the font root
type FontFamily struct {
	Name  string // Directory name, used as the CSS font-family
	Fonts []FontRecord
}

// FontModel is everything discovered under the font root in a single run
type FontModel struct {
	Root     string
	Families []FontFamily
}

// FontCount returns the number of records across all families
func (m FontModel) FontCount() int {
	n := 0
	for _, fam := range m.Families {
		n += len(fam.Fonts)
	}
	return n
}

// DeclaredCount returns the number of records already present in the stylesheet
func (m FontModel) DeclaredCount() int {
	n := 0
	for _, fam := range m.Families {
		for _, f := range fam.Fonts {
			if f.AlreadyDeclared {
				n++
			}
		}
	}
	return n
}

// Config holds sync and check configuration
type Config struct {
	FontsDir       string   // "src/fonts"
	StylesheetFile string   // "src/scss/fonts.scss" (declarations are appended here)
	MixinsFile     string   // "src/scss/_mixins.scss" (holds the font-face mixin)
	IgnoreFile     string   // Gitignore-style file inside FontsDir (default: .fontignore)
	Patterns       []string // Font file globs relative to a family dir
	Verbose        bool     // Enable debug logging
	Quiet          bool     // Errors only
	UseColors      bool     // Force color output (default: auto-detect)

	// Check settings
	Strict    bool // Exit with code 1 on warnings too
	MaxIssues int  // 0 = unlimited

	// Extractor overrides the default SFNT extractor (tests)
	Extractor Extractor
}

// DefaultPatterns are the font files picked up inside a family directory
var DefaultPatterns = []string{"*.{ttf,otf,ttc,woff,woff2}"}

// DefaultIgnoreFile is looked up inside the font root
const DefaultIgnoreFile = ".fontignore"

// OutputFormat represents the checker output format
type OutputFormat string

const (
	// OutputIssues shows errors/warnings in golangci-lint format
	OutputIssues OutputFormat = "issues"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)
