package fontcss

import (
	"fmt"
	"strings"
)

// MissingLines returns the declaration lines of undeclared records in
// declaration order: family order as scanned, then record order.
// A font shipped in several formats (.woff and .woff2) renders the same line;
// it is returned once.
func MissingLines(model FontModel) []string {
	var lines []string
	seen := make(map[string]bool)

	for _, fam := range model.Families {
		for _, rec := range fam.Fonts {
			if rec.AlreadyDeclared {
				continue
			}
			line := rec.Declaration(fam.Name)
			if seen[line] {
				continue
			}
			seen[line] = true
			lines = append(lines, line)
		}
	}

	return lines
}

// Merge appends the missing declarations of a reconciled model to the stylesheet.
//
// The file is re-read right before writing so that anything written since the
// model was reconciled is kept, and lines that appeared in the meantime are not
// added twice. All additions go out in one overwrite. Existing content is never
// removed or reordered.
func Merge(path string, model FontModel) ([]string, error) {
	missing := MissingLines(model)
	if len(missing) == 0 {
		return nil, nil
	}

	current, err := readText(path)
	if err != nil {
		return nil, fmt.Errorf("read stylesheet: %w", err)
	}
	present := lineSet(current)

	var b strings.Builder
	b.WriteString(current)

	added := make([]string, 0, len(missing))
	for _, line := range missing {
		if present[line] {
			continue
		}
		b.WriteString("\n")
		b.WriteString(line)
		added = append(added, line)
	}

	if len(added) == 0 {
		return nil, nil
	}

	if err := writeText(path, b.String()); err != nil {
		return nil, fmt.Errorf("write stylesheet: %w", err)
	}

	return added, nil
}
