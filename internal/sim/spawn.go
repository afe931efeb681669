package sim

import (
	"github.com/tilemine/tilemine/internal/core"
	"github.com/tilemine/tilemine/internal/world"
)

// PlaceOnSurface drops the player onto the first surface that supports the
// whole bounding box, scanning the spawn column from the top of the
// materialized extent downward. A spawn embedded in terrain is lifted onto
// the surface above it. If no row in the current extent supports the
// player, the position is left untouched with OnGround false.
func PlaceOnSurface(w *world.World, p *Player) {
	xStart := core.FloorDiv(p.Pos.X, BlockSize)
	xEnd := core.FloorDiv(p.Pos.X+p.Width-1, BlockSize)

	for tileY := w.Top(); tileY <= w.Bottom(); tileY++ {
		supported := true
		for tileX := xStart; tileX <= xEnd; tileX++ {
			if !w.IsSolid(tileX, tileY) {
				supported = false
				break
			}
		}
		if !supported {
			continue
		}
		p.Pos.Y = float64(tileY)*BlockSize - p.Height
		p.Vel.Y = 0
		p.OnGround = true
		return
	}
	p.OnGround = false
}
