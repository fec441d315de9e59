package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Colour names for highlighted markup in the code panel.
const (
	ColorNameMarkupTag       fyne.ThemeColorName = "unbase64MarkupTag"
	ColorNameMarkupAttribute fyne.ThemeColorName = "unbase64MarkupAttribute"
	ColorNameMarkupString    fyne.ThemeColorName = "unbase64MarkupString"
	ColorNameMarkupComment   fyne.ThemeColorName = "unbase64MarkupComment"
)

// Palette shared by alert strips and the markup highlighter.
var (
	PaletteSuccess = color.NRGBA{R: 46, G: 160, B: 67, A: 255}
	PaletteDanger  = color.NRGBA{R: 183, G: 28, B: 28, A: 255}
	PaletteWarning = color.NRGBA{R: 255, G: 193, B: 7, A: 255}
	PaletteInfo    = color.NRGBA{R: 25, G: 118, B: 210, A: 255}

	PaletteTag       = color.NRGBA{R: 21, G: 101, B: 192, A: 255}
	PaletteTagDark   = color.NRGBA{R: 100, G: 181, B: 246, A: 255}
	PaletteAttribute = color.NRGBA{R: 173, G: 20, B: 87, A: 255}
	PaletteAttrDark  = color.NRGBA{R: 240, G: 98, B: 146, A: 255}
	PaletteString    = color.NRGBA{R: 46, G: 125, B: 50, A: 255}
	PaletteStrDark   = color.NRGBA{R: 129, G: 199, B: 132, A: 255}
	PaletteComment   = color.NRGBA{R: 117, G: 117, B: 117, A: 255}

	PaletteCodeLight = color.NRGBA{R: 245, G: 245, B: 245, A: 255}
	PaletteCodeDark  = color.NRGBA{R: 33, G: 33, B: 33, A: 255}
)

// CompactTheme trims padding and text sizes and adds the markup palette.
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	dark := variant == theme.VariantDark

	switch name {
	case ColorNameMarkupTag:
		return pick(dark, PaletteTagDark, PaletteTag)
	case ColorNameMarkupAttribute:
		return pick(dark, PaletteAttrDark, PaletteAttribute)
	case ColorNameMarkupString:
		return pick(dark, PaletteStrDark, PaletteString)
	case ColorNameMarkupComment:
		return PaletteComment
	case theme.ColorNameSuccess:
		return PaletteSuccess
	case theme.ColorNameError:
		return PaletteDanger
	case theme.ColorNameWarning:
		return PaletteWarning
	case theme.ColorNamePrimary:
		return PaletteInfo
	case theme.ColorNameInputBackground:
		return pick(dark, PaletteCodeDark, PaletteCodeLight)
	}

	return theme.DefaultTheme().Color(name, variant)
}

func pick(dark bool, darkColor, lightColor color.NRGBA) color.Color {
	if dark {
		return darkColor
	}
	return lightColor
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2 // tighter rows for highlighted source
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameCaptionText:
		return 10 // size and page-count lines under previews
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}
