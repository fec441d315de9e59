package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"

	"github.com/ytget/unbase64/internal/highlight"
)

func TestCompactThemeSizes(t *testing.T) {
	th := NewCompactTheme()

	assert.Equal(t, float32(13), th.Size(theme.SizeNameText))
	assert.Equal(t, float32(3), th.Size(theme.SizeNamePadding))
	// Unlisted sizes come from the default theme
	assert.Equal(t, theme.DefaultTheme().Size(theme.SizeNameInlineIcon), th.Size(theme.SizeNameInlineIcon))
}

func TestCompactThemeHighlightColoursDiffer(t *testing.T) {
	th := NewCompactTheme()
	classes := []highlight.Class{
		highlight.ClassTag,
		highlight.ClassAttribute,
		highlight.ClassString,
		highlight.ClassComment,
		highlight.ClassPlain,
	}

	seen := map[color.RGBA]fyne.ThemeColorName{}
	for _, class := range classes {
		name := spanColorName(class)
		c := color.RGBAModel.Convert(th.Color(name, theme.VariantLight)).(color.RGBA)
		if other, ok := seen[c]; ok {
			t.Errorf("%s and %s share a colour", name, other)
		}
		seen[c] = name
	}
}

func TestCompactThemeMarkupPalette(t *testing.T) {
	th := NewCompactTheme()

	assert.Equal(t, ColorNameMarkupTag, spanColorName(highlight.ClassTag))
	assert.Equal(t, color.Color(PaletteTag), th.Color(ColorNameMarkupTag, theme.VariantLight))
	assert.Equal(t, color.Color(PaletteTagDark), th.Color(ColorNameMarkupTag, theme.VariantDark))
	assert.Equal(t, color.Color(PaletteComment), th.Color(ColorNameMarkupComment, theme.VariantDark))
	assert.Equal(t, color.Color(PaletteDanger), th.Color(theme.ColorNameError, theme.VariantLight))
	assert.Equal(t, color.Color(PaletteCodeDark), th.Color(theme.ColorNameInputBackground, theme.VariantDark))

	// Plain text follows the stock foreground
	assert.Equal(t, theme.DefaultTheme().Color(theme.ColorNameForeground, theme.VariantLight),
		th.Color(spanColorName(highlight.ClassPlain), theme.VariantLight))
}
