package fontcss

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Scanner walks a font root: one subdirectory per family, font files inside
type Scanner struct {
	Root      string
	Patterns  []string // Globs relative to a family dir (default: DefaultPatterns)
	Extractor Extractor
	Ignore    *Ignore
	Console   *Console
}

// NewScanner builds a scanner from configuration, loading the ignore file
func NewScanner(config Config, con *Console) (*Scanner, error) {
	ign, err := LoadIgnore(config.FontsDir, ignoreFileName(config))
	if err != nil {
		return nil, fmt.Errorf("load ignore file: %w", err)
	}

	patterns := config.Patterns
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	var ex Extractor = SFNTExtractor{}
	if config.Extractor != nil {
		ex = config.Extractor
	}

	return &Scanner{
		Root:      config.FontsDir,
		Patterns:  patterns,
		Extractor: ex,
		Ignore:    ign,
		Console:   con,
	}, nil
}

func ignoreFileName(config Config) string {
	if config.IgnoreFile == "" {
		return DefaultIgnoreFile
	}
	return config.IgnoreFile
}

// Families lists the immediate subdirectories of the root in directory order.
// Errors reading the root are returned as is.
func (s *Scanner) Families() ([]string, error) {
	entries, err := os.ReadDir(s.Root)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() || s.Ignore.Family(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// FontFiles lists the font files directly inside a family directory
func (s *Scanner) FontFiles(family string) ([]string, error) {
	files, _, err := s.listFiles(family)
	return files, err
}

// IgnoredFiles lists the font files of a family excluded by the ignore file
func (s *Scanner) IgnoredFiles(family string) ([]string, error) {
	_, ignored, err := s.listFiles(family)
	return ignored, err
}

// IgnoredNames returns "family/postscriptName" for every face of the ignored
// font files. Files that cannot be read are skipped.
func (s *Scanner) IgnoredNames(families []string) map[string]bool {
	names := make(map[string]bool)
	for _, family := range families {
		files, err := s.IgnoredFiles(family)
		if err != nil {
			continue
		}
		for _, file := range files {
			metas, err := s.Extractor.Extract(filepath.Join(s.Root, family, file))
			if err != nil {
				continue
			}
			for _, m := range metas {
				names[family+"/"+m.PostScriptName] = true
			}
		}
	}
	return names
}

// listFiles splits the pattern matches of a family into kept and ignored files
func (s *Scanner) listFiles(family string) (files, ignored []string, err error) {
	dir := filepath.Join(s.Root, family)
	fsys := os.DirFS(dir)

	seen := make(map[string]bool)
	for _, pattern := range s.Patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			info, err := os.Stat(filepath.Join(dir, m))
			if err != nil || info.IsDir() {
				continue
			}
			seen[m] = true
			if s.Ignore.File(family, m) {
				ignored = append(ignored, m)
				continue
			}
			files = append(files, m)
		}
	}

	sort.Strings(files)
	sort.Strings(ignored)
	return files, ignored, nil
}

// ScanFamily extracts every record of one family
func (s *Scanner) ScanFamily(family string) (FontFamily, error) {
	result := FontFamily{Name: family}

	files, err := s.FontFiles(family)
	if err != nil {
		return result, err
	}

	for _, file := range files {
		path := filepath.Join(s.Root, family, file)
		metas, err := s.Extractor.Extract(path)
		if err != nil {
			return result, fmt.Errorf("extract %s: %w", path, err)
		}
		for _, m := range metas {
			result.Fonts = append(result.Fonts, FontRecord{
				PostScriptName: m.PostScriptName,
				Weight:         m.Weight,
				Style:          StyleFromItalic(m.Italic),
			})
		}
	}

	return result, nil
}

// Scan builds the font model family by family. Extraction errors abort the
// whole scan.
func (s *Scanner) Scan(ctx context.Context, families []string) (FontModel, error) {
	model := FontModel{Root: s.Root, Families: make([]FontFamily, 0, len(families))}

	for _, name := range families {
		if err := ctx.Err(); err != nil {
			return model, err
		}

		fam, err := s.ScanFamily(name)
		if err != nil {
			return model, fmt.Errorf("family %q: %w", name, err)
		}
		if s.Console != nil {
			s.Console.Verbosef("Scanned %s: %d fonts", name, len(fam.Fonts))
		}
		model.Families = append(model.Families, fam)
	}

	return model, nil
}
