// theme/theme.go
package theme

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"automation-toolkit/assets"
)

var (
	// --- icon resources ---
	sunResource  = &fyne.StaticResource{StaticName: "sun.svg", StaticContent: assets.IconSunSVG}
	moonResource = &fyne.StaticResource{StaticName: "moon.svg", StaticContent: assets.IconMoonSVG}

	// NewThemedResource keeps the icons legible in both variants.
	SunIcon  fyne.Resource = theme.NewThemedResource(sunResource)
	MoonIcon fyne.Resource = theme.NewThemedResource(moonResource)
)

// accent shared by both variants
var primaryColor = color.NRGBA{R: 0, G: 120, B: 215, A: 255}

// --- dark theme ---

type darkTheme struct {
	fyne.Theme
}

func (t *darkTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNamePrimary {
		return primaryColor
	}
	if name == theme.ColorNameBackground {
		return color.NRGBA{R: 32, G: 32, B: 32, A: 255}
	}
	return t.Theme.Color(name, variant)
}

func NewDarkTheme() fyne.Theme {
	return &darkTheme{theme.DarkTheme()}
}

// --- light theme ---

type lightTheme struct {
	fyne.Theme
}

func (t *lightTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if name == theme.ColorNamePrimary {
		return primaryColor
	}
	return t.Theme.Color(name, variant)
}

func NewLightTheme() fyne.Theme {
	return &lightTheme{theme.LightTheme()}
}
