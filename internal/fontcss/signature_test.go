package fontcss

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclaration(t *testing.T) {
	tests := []struct {
		name   string
		family string
		rec    FontRecord
		want   string
	}{
		{
			name:   "bold",
			family: "Inter",
			rec:    FontRecord{PostScriptName: "Inter-Bold", Weight: 700, Style: StyleNormal},
			want:   `@include font-face("Inter", "Inter/Inter-Bold" 700, "normal");`,
		},
		{
			name:   "italic",
			family: "Roboto",
			rec:    FontRecord{PostScriptName: "Roboto-Italic", Weight: 400, Style: StyleItalic},
			want:   `@include font-face("Roboto", "Roboto/Roboto-Italic" 400, "italic");`,
		},
		{
			name:   "family with spaces",
			family: "Open Sans",
			rec:    FontRecord{PostScriptName: "OpenSans-Light", Weight: 300, Style: StyleNormal},
			want:   `@include font-face("Open Sans", "Open Sans/OpenSans-Light" 300, "normal");`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.rec.Declaration(tt.family))
		})
	}
}

func TestConfigString(t *testing.T) {
	got := ConfigString("Roboto", "Roboto-Regular", 400, StyleNormal)
	assert.Equal(t, `"Roboto", "Roboto/Roboto-Regular" 400, "normal"`, got)
	assert.Equal(t, "@include font-face("+got+");", DeclarationLine(got))
}

func TestStyleFromItalic(t *testing.T) {
	assert.Equal(t, StyleItalic, StyleFromItalic(true))
	assert.Equal(t, StyleNormal, StyleFromItalic(false))
}

func TestDeclarationLinesIgnoreRecordOrder(t *testing.T) {
	recs := []FontRecord{
		{PostScriptName: "Roboto-Regular", Weight: 400, Style: StyleNormal},
		{PostScriptName: "Roboto-Italic", Weight: 400, Style: StyleItalic},
		{PostScriptName: "Roboto-Bold", Weight: 700, Style: StyleNormal},
	}
	reversed := []FontRecord{recs[2], recs[1], recs[0]}

	lines := func(fonts []FontRecord) []string {
		l := MissingLines(FontModel{Families: []FontFamily{{Name: "Roboto", Fonts: fonts}}})
		sort.Strings(l)
		return l
	}

	require.Equal(t, lines(recs), lines(reversed))
}
