package theme

import (
	"github.com/tilemine/tilemine/internal/core"
	"github.com/tilemine/tilemine/internal/world"
)

// DefaultBaseHue is a calming teal, used when no theme is selected.
const DefaultBaseHue = 0.58

// BuildPalette creates the five buildable block kinds tinted by the base
// hue. The kinds and their order never change between themes; only the
// colors do, which is what lets World.Retheme swap palettes by name.
func BuildPalette(baseHue float64) *world.Palette {
	soft := func(offset, lightness, saturation float64) core.Color {
		return hueColor(baseHue, offset, lightness, saturation)
	}
	return world.NewPalette([]world.PaletteEntry{
		{Key: "cloudstone", Block: &world.BlockType{
			Name: "Cloudstone", Color: soft(-0.05, 0.74, 0.22), Solid: true,
		}},
		{Key: "petal_clay", Block: &world.BlockType{
			Name: "Petal Clay", Color: soft(0, 0.63, 0.28), Solid: true,
		}},
		{Key: "moss_brick", Block: &world.BlockType{
			Name: "Moss Brick", Color: soft(0.07, 0.58, 0.26), Solid: true,
		}},
		{Key: "glass_tile", Block: &world.BlockType{
			Name: "Glass Tile", Color: soft(0.14, 0.68, 0.18), Solid: true,
		}},
		{Key: "dune_sand", Block: &world.BlockType{
			Name: "Dune Sand", Color: soft(-0.12, 0.82, 0.18), Solid: true,
		}},
	})
}
