package fontcss

import "strings"

// SplitLines drops carriage returns and splits on line feeds
func SplitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
}

// lineSet indexes stylesheet lines for exact-match lookups
func lineSet(text string) map[string]bool {
	lines := SplitLines(text)
	set := make(map[string]bool, len(lines))
	for _, line := range lines {
		set[line] = true
	}
	return set
}

// Reconcile marks every record whose declaration line is already one of the
// stylesheet's lines. Matching is exact: no trimming, no case folding.
// The input model is not modified.
func Reconcile(model FontModel, stylesheet string) FontModel {
	present := lineSet(stylesheet)

	out := FontModel{
		Root:     model.Root,
		Families: make([]FontFamily, 0, len(model.Families)),
	}
	for _, fam := range model.Families {
		fonts := make([]FontRecord, len(fam.Fonts))
		for i, rec := range fam.Fonts {
			rec.AlreadyDeclared = present[rec.Declaration(fam.Name)]
			fonts[i] = rec
		}
		out.Families = append(out.Families, FontFamily{Name: fam.Name, Fonts: fonts})
	}

	return out
}
