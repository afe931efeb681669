package sim

import (
	"github.com/tilemine/tilemine/internal/core"
	"github.com/tilemine/tilemine/internal/world"
)

// testPalette builds the standard five buildable kinds with stand-in colors.
func testPalette() *world.Palette {
	names := []struct {
		key  string
		name string
	}{
		{"cloudstone", "Cloudstone"},
		{"petal_clay", "Petal Clay"},
		{"moss_brick", "Moss Brick"},
		{"glass_tile", "Glass Tile"},
		{"dune_sand", "Dune Sand"},
	}
	entries := make([]world.PaletteEntry, len(names))
	for i, n := range names {
		entries[i] = world.PaletteEntry{
			Key: n.key,
			Block: &world.BlockType{
				Name:  n.name,
				Color: core.NewColor(uint8(i * 40), uint8(i * 40), uint8(i * 40)),
				Solid: true,
			},
		}
	}
	return world.NewPalette(entries)
}

// testWorld builds a world without random crystals so tests control every
// solid tile they interact with.
func testWorld(seed int64) *world.World {
	params := world.DefaultParams(seed)
	params.CrystalChance = 0
	return world.New(testPalette(), params)
}

// testPlayer spawns a default-sized player with its top-left at the given
// world position.
func testPlayer(x, y float64) *Player {
	return NewPlayer(core.Vec2{X: x, Y: y}, BlockSize*0.6, BlockSize*0.9)
}

// solidBlock is a convenience block for hand-built terrain.
var solidBlock = &world.BlockType{Name: "Test Stone", Color: core.NewColor(100, 100, 100), Solid: true}
