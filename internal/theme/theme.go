// Package theme holds the color themes and the palette builder. A theme is
// derived entirely from a base hue, so the whole catalog stays harmonious:
// block palettes, sky gradient, player and HUD colors are all offsets of
// the same hue in HLS space.
package theme

import (
	"math"

	"github.com/tilemine/tilemine/internal/core"
)

// Theme is the full color scheme applied to the front end. Themes are
// immutable configuration values, built once and shared by reference.
type Theme struct {
	Name    string
	BaseHue float64

	BackgroundTop    core.Color
	BackgroundBottom core.Color
	Crosshair        core.Color
	CrosshairOutline core.Color
	Player           core.Color
	HUDShadow        core.Color
	HUDText          core.Color
	HUDPanel         core.Color
	SelectionGlow    core.Color
}

// New derives a complete theme from a name and base hue.
func New(name string, baseHue float64) Theme {
	return Theme{
		Name:             name,
		BaseHue:          baseHue,
		BackgroundTop:    hueColor(baseHue, -0.03, 0.92, 0.18),
		BackgroundBottom: hueColor(baseHue, 0.05, 0.68, 0.22),
		Crosshair:        hueColor(baseHue, 0.07, 0.86, 0.24),
		CrosshairOutline: hueColor(baseHue, 0.07, 0.60, 0.32),
		Player:           hueColor(baseHue, -0.02, 0.35, 0.38),
		HUDShadow:        hueColor(baseHue, -0.01, 0.28, 0.34),
		HUDText:          hueColor(baseHue, 0.12, 0.93, 0.16),
		HUDPanel:         hueColor(baseHue, -0.02, 0.23, 0.40),
		SelectionGlow:    hueColor(baseHue, 0.18, 0.78, 0.25),
	}
}

// Catalog returns the built-in themes, in cycle order.
func Catalog() []Theme {
	return []Theme{
		New("Azure Coast", 0.58),
		New("Rose Dawn", 0.01),
		New("Amber Drift", 0.09),
		New("Sunlit Meadow", 0.16),
		New("Verdant Mist", 0.28),
		New("Indigo Veil", 0.67),
		New("Violet Bloom", 0.78),
	}
}

// ByName finds a theme in the catalog by its display name; falls back to
// the first catalog entry when the name is unknown.
func ByName(name string) Theme {
	catalog := Catalog()
	for _, t := range catalog {
		if t.Name == name {
			return t
		}
	}
	return catalog[0]
}

// hueColor converts an HLS color offset from the base hue into RGB.
func hueColor(baseHue, offset, lightness, saturation float64) core.Color {
	return hlsColor(baseHue+offset, lightness, saturation)
}

// hlsColor converts HLS components to a Color. The hue wraps around 1.0.
func hlsColor(hue, lightness, saturation float64) core.Color {
	r, g, b := hlsToRGB(math.Mod(math.Mod(hue, 1.0)+1.0, 1.0), lightness, saturation)
	return core.NewColor(
		uint8(math.Round(r*255)),
		uint8(math.Round(g*255)),
		uint8(math.Round(b*255)),
	)
}

// hlsToRGB implements the standard HLS to RGB conversion with all
// components in [0, 1].
func hlsToRGB(h, l, s float64) (float64, float64, float64) {
	if s == 0 {
		return l, l, l
	}
	var m2 float64
	if l <= 0.5 {
		m2 = l * (1 + s)
	} else {
		m2 = l + s - l*s
	}
	m1 := 2*l - m2
	return hlsValue(m1, m2, h+1.0/3.0), hlsValue(m1, m2, h), hlsValue(m1, m2, h-1.0/3.0)
}

func hlsValue(m1, m2, hue float64) float64 {
	hue = math.Mod(math.Mod(hue, 1.0)+1.0, 1.0)
	switch {
	case hue < 1.0/6.0:
		return m1 + (m2-m1)*hue*6
	case hue < 0.5:
		return m2
	case hue < 2.0/3.0:
		return m1 + (m2-m1)*(2.0/3.0-hue)*6
	default:
		return m1
	}
}
