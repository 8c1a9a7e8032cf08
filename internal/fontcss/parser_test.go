package fontcss

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeclarations(t *testing.T) {
	content := `@import 'mixins';
@include font-face("Roboto", "Roboto/Roboto-Regular" 400, "normal");
  @include font-face("Roboto", "Roboto/Roboto-Italic" 400, "italic");
@include font-face('Inter', 'Inter/Inter-Bold', 700);
@include font-face("Mono", "Mono/Mono-Regular");
`

	got := ParseDeclarations(content)
	require.Len(t, got, 4)

	assert.Equal(t, FontDeclaration{
		Family: "Roboto",
		File:   "Roboto/Roboto-Regular",
		Weight: "400",
		Style:  "normal",
		Line:   2,
		Column: 1,
		Text:   `@include font-face("Roboto", "Roboto/Roboto-Regular" 400, "normal");`,
	}, got[0])

	assert.Equal(t, "italic", got[1].Style)
	assert.Equal(t, 3, got[1].Line)
	assert.Equal(t, 3, got[1].Column)

	// Weight passed as its own argument
	assert.Equal(t, "Inter/Inter-Bold", got[2].File)
	assert.Equal(t, "700", got[2].Weight)
	assert.Equal(t, "normal", got[2].Style)

	// Mixin defaults
	assert.Equal(t, "400", got[3].Weight)
	assert.Equal(t, "normal", got[3].Style)
}

func TestParseDeclarationsSkipsComments(t *testing.T) {
	content := `// @include font-face("Old", "Old/Old-Regular" 400, "normal");
/* @include font-face("Old", "Old/Old-Bold" 700, "normal"); */
@include font-face("New", "New/New-Regular" 400, "normal"); // trailing
`

	got := ParseDeclarations(content)
	require.Len(t, got, 1)
	assert.Equal(t, "New", got[0].Family)
	assert.Equal(t, 3, got[0].Line)
}

func TestParseDeclarationsIgnoresOtherIncludes(t *testing.T) {
	content := `@include breakpoint(md) { color: red; }
@include font-face;
@include font-face("Broken"
.a { b: c; }
`
	assert.Empty(t, ParseDeclarations(content))
}

func TestFontDeclarationKey(t *testing.T) {
	a := FontDeclaration{Family: "Inter", File: "Inter/Inter-Bold", Weight: "700", Style: "normal", Line: 1}
	b := a
	b.Line = 9
	b.Text = "  spaced  "
	assert.Equal(t, a.Key(), b.Key())

	b.Style = "italic"
	assert.NotEqual(t, a.Key(), b.Key())
}
