package fontcss

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

func extractBytes(t *testing.T, name string, data []byte) FontMetadata {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))

	metas, err := SFNTExtractor{}.Extract(path)
	require.NoError(t, err)
	require.Len(t, metas, 1)
	return metas[0]
}

func TestSFNTExtractorGoFonts(t *testing.T) {
	regular := extractBytes(t, "Go-Regular.ttf", goregular.TTF)
	bold := extractBytes(t, "Go-Bold.ttf", gobold.TTF)
	italic := extractBytes(t, "Go-Italic.ttf", goitalic.TTF)

	for _, m := range []FontMetadata{regular, bold, italic} {
		assert.NotEmpty(t, m.PostScriptName)
		assert.NotContains(t, m.PostScriptName, " ")
	}
	assert.NotEqual(t, regular.PostScriptName, bold.PostScriptName)

	assert.False(t, regular.Italic)
	assert.False(t, bold.Italic)
	assert.True(t, italic.Italic)

	assert.Equal(t, 400, regular.Weight)
	assert.Equal(t, 600, bold.Weight)
	assert.Equal(t, 400, italic.Weight)
}

func TestFaceStyle(t *testing.T) {
	tests := []struct {
		name       string
		data       []byte
		wantWeight int
		wantItalic bool
	}{
		{name: "regular", data: goregular.TTF, wantWeight: 400},
		{name: "bold", data: gobold.TTF, wantWeight: 600},
		{name: "italic", data: goitalic.TTF, wantWeight: 400, wantItalic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// ParseSFNT touches the head table while verifying checksums
			data := append([]byte(nil), tt.data...)
			f, err := font.ParseSFNT(data, 0)
			require.NoError(t, err)

			weight, italic := faceStyle(f)
			assert.Equal(t, tt.wantWeight, weight)
			assert.Equal(t, tt.wantItalic, italic)
		})
	}
}

func TestSFNTExtractorErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := SFNTExtractor{}.Extract(filepath.Join(dir, "missing.ttf"))
	require.Error(t, err)

	garbage := filepath.Join(dir, "garbage.ttf")
	require.NoError(t, os.WriteFile(garbage, []byte("definitely not a font"), 0644))
	_, err = SFNTExtractor{}.Extract(garbage)
	require.Error(t, err)

	woff := filepath.Join(dir, "broken.woff2")
	require.NoError(t, os.WriteFile(woff, []byte("wOF2 and nothing else"), 0644))
	_, err = SFNTExtractor{}.Extract(woff)
	require.Error(t, err)
}
