package fontcss

import "fmt"

// ConfigString renders the mixin arguments for one font variant:
//
//	"Roboto", "Roboto/Roboto-Italic" 400, "italic"
//
// The output is a pure function of its inputs; reconciliation depends on it
// rendering byte-identical text across runs.
func ConfigString(family, postscriptName string, weight int, style Style) string {
	return fmt.Sprintf(`"%s", "%s/%s" %d, "%s"`, family, family, postscriptName, weight, style)
}

// DeclarationLine wraps a config string into the stylesheet line
func DeclarationLine(config string) string {
	return "@include font-face(" + config + ");"
}

// Declaration returns the stylesheet line for this record in the given family
func (r FontRecord) Declaration(family string) string {
	return DeclarationLine(ConfigString(family, r.PostScriptName, r.Weight, r.Style))
}
