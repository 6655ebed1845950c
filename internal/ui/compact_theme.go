package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme is a tighter variant of the default theme with a splash-screen
// palette: deep indigo surfaces in dark mode and a violet accent.
type CompactTheme struct {
	base fyne.Theme
}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{base: theme.DefaultTheme()}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	dark := variant == theme.VariantDark
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return color.NRGBA{R: 124, G: 77, B: 255, A: 255}
	case theme.ColorNameSuccess:
		return color.NRGBA{R: 67, G: 160, B: 71, A: 255}
	case theme.ColorNameError:
		return color.NRGBA{R: 229, G: 57, B: 53, A: 255}
	case theme.ColorNameWarning:
		return color.NRGBA{R: 255, G: 179, B: 0, A: 255}
	case theme.ColorNameBackground:
		if dark {
			return color.NRGBA{R: 20, G: 18, B: 38, A: 255}
		}
		return color.NRGBA{R: 246, G: 244, B: 252, A: 255}
	case theme.ColorNameInputBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		if dark {
			return color.NRGBA{R: 32, G: 29, B: 56, A: 255}
		}
	}
	return t.base.Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 17
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 4
	}
	return t.base.Size(name)
}
