package core

import "fmt"

// Color is a 24-bit RGB color for a screen cell. The zero value is
// "unset", which renders as the terminal default.
type Color struct {
	R, G, B uint8
	Valid   bool
}

// NewColor creates a set color from RGB components.
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Valid: true}
}

// Hex returns the color as a "#rrggbb" string for terminal styling.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Blend linearly interpolates between c and other. t is clamped to [0, 1];
// t=0 yields c, t=1 yields other.
func (c Color) Blend(other Color, t float64) Color {
	t = ClampF(t, 0, 1)
	lerp := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return Color{
		R:     lerp(c.R, other.R),
		G:     lerp(c.G, other.G),
		B:     lerp(c.B, other.B),
		Valid: c.Valid || other.Valid,
	}
}
