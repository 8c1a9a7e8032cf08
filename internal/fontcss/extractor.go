package fontcss

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/font"
	"golang.org/x/image/font/sfnt"
)

// Extractor reads the metadata of every face stored in one font file
type Extractor interface {
	Extract(path string) ([]FontMetadata, error)
}

// ExtractorFunc adapts a function to the Extractor interface
type ExtractorFunc func(path string) ([]FontMetadata, error)

// Extract calls f(path)
func (f ExtractorFunc) Extract(path string) ([]FontMetadata, error) {
	return f(path)
}

// SFNTExtractor reads TrueType, OpenType, collections, WOFF and WOFF2 files.
//
// The PostScript name comes from the name table, the weight from OS/2
// usWeightClass and the italic flag from OS/2 fsSelection or head.macStyle.
type SFNTExtractor struct{}

const (
	fsSelectionItalic = 1 << 0
	macStyleItalic    = 1 // bit index into head.macStyle

	defaultWeight = 400
)

// Extract implements Extractor
func (SFNTExtractor) Extract(path string) ([]FontMetadata, error) {
	// #nosec G304 - path comes from scanning the configured font root
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}

	data, err := font.ToSFNT(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	faces, err := parseFaces(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	fallback := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var buf sfnt.Buffer
	result := make([]FontMetadata, 0, len(faces))
	for i, f := range faces {
		name, err := f.Name(&buf, sfnt.NameIDPostScript)
		if errors.Is(err, sfnt.ErrNotFound) || (err == nil && name == "") {
			name = fallback
		} else if err != nil {
			return nil, fmt.Errorf("postscript name of %s: %w", path, err)
		}

		tables, err := font.ParseSFNT(data, i)
		if err != nil {
			return nil, fmt.Errorf("read tables of %s: %w", path, err)
		}
		weight, italic := faceStyle(tables)

		result = append(result, FontMetadata{
			PostScriptName: name,
			Weight:         weight,
			Italic:         italic,
		})
	}

	return result, nil
}

// faceStyle reads the weight class and italic flag of a parsed face.
// A missing OS/2 table or a zero weight class yields 400.
func faceStyle(f *font.SFNT) (weight int, italic bool) {
	weight = defaultWeight
	if f.OS2 != nil {
		if f.OS2.UsWeightClass > 0 {
			weight = int(f.OS2.UsWeightClass)
		}
		italic = f.OS2.FsSelection&fsSelectionItalic != 0
	}
	if f.Head != nil && f.Head.MacStyle[macStyleItalic] {
		italic = true
	}
	return weight, italic
}

// parseFaces parses a single font or every face of a collection
func parseFaces(b []byte) ([]*sfnt.Font, error) {
	if !bytes.HasPrefix(b, []byte("ttcf")) {
		f, err := sfnt.Parse(b)
		if err != nil {
			return nil, err
		}
		return []*sfnt.Font{f}, nil
	}

	c, err := sfnt.ParseCollection(b)
	if err != nil {
		return nil, err
	}
	faces := make([]*sfnt.Font, 0, c.NumFonts())
	for i := 0; i < c.NumFonts(); i++ {
		f, err := c.Font(i)
		if err != nil {
			return nil, err
		}
		faces = append(faces, f)
	}
	return faces, nil
}
