package fontcss

import (
	"os"
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
)

// Ignore filters families and font files with gitignore syntax.
// Paths are relative to the font root: "Legacy/", "Roboto/*.otf".
type Ignore struct {
	gi *ignore.GitIgnore
}

// LoadIgnore compiles name inside root. A missing file yields an Ignore that
// matches nothing.
func LoadIgnore(root, name string) (*Ignore, error) {
	if name == "" {
		return &Ignore{}, nil
	}

	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, name)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Ignore{}, nil
	}

	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil, err
	}
	return &Ignore{gi: gi}, nil
}

// NewIgnore compiles patterns given inline
func NewIgnore(lines ...string) *Ignore {
	return &Ignore{gi: ignore.CompileIgnoreLines(lines...)}
}

// Family reports whether a whole family directory is ignored
func (i *Ignore) Family(name string) bool {
	if i == nil || i.gi == nil {
		return false
	}
	return i.gi.MatchesPath(name) || i.gi.MatchesPath(name+"/")
}

// File reports whether a font file inside a family is ignored
func (i *Ignore) File(family, file string) bool {
	if i == nil || i.gi == nil {
		return false
	}
	return i.gi.MatchesPath(family + "/" + file)
}
