package sim

import (
	"github.com/tilemine/tilemine/internal/core"
	"github.com/tilemine/tilemine/internal/world"
)

// DefaultBuildRadius is the Chebyshev tile distance within which the
// player can place or remove blocks.
const DefaultBuildRadius = 2

// WithinBuildRadius reports whether the target tile lies inside the square
// build radius around the player tile.
func WithinBuildRadius(playerX, playerY, targetX, targetY, radius int) bool {
	dx := core.Abs(playerX - targetX)
	dy := core.Abs(playerY - targetY)
	return core.Max(dx, dy) <= radius
}

// ClampToBuildRadius snaps an arbitrary target tile to the nearest tile
// inside the build radius, used to pin the crosshair.
func ClampToBuildRadius(playerX, playerY, targetX, targetY, radius int) (int, int) {
	dx := core.Clamp(targetX-playerX, -radius, radius)
	dy := core.Clamp(targetY-playerY, -radius, radius)
	return playerX + dx, playerY + dy
}

// tileIntersectsPlayer reports whether the tile's square overlaps the
// player's bounding box.
func tileIntersectsPlayer(p *Player, tx, ty int) bool {
	tile := core.AABB{
		X: float64(tx) * BlockSize,
		Y: float64(ty) * BlockSize,
		W: BlockSize,
		H: BlockSize,
	}
	return p.Bounds().Intersects(tile)
}

// Place writes the block into the target cell. It is a silent no-op when
// the target is outside the build radius, already occupied, or would
// overlap the player. Returns true when the world changed.
func Place(w *world.World, p *Player, block *world.BlockType, tx, ty, radius int) bool {
	if block == nil {
		return false
	}
	px, py := p.Tile()
	if !WithinBuildRadius(px, py, tx, ty, radius) {
		return false
	}
	if tileIntersectsPlayer(p, tx, ty) {
		return false
	}
	if w.Get(tx, ty) != nil {
		return false
	}
	w.Set(tx, ty, block)
	return true
}

// Remove clears the target cell. It is a silent no-op when the target is
// outside the build radius or already empty. Returns true when the world
// changed.
func Remove(w *world.World, p *Player, tx, ty, radius int) bool {
	px, py := p.Tile()
	if !WithinBuildRadius(px, py, tx, ty, radius) {
		return false
	}
	if w.Get(tx, ty) == nil {
		return false
	}
	w.Set(tx, ty, nil)
	return true
}
