package sim

import (
	"github.com/tilemine/tilemine/internal/core"
	"github.com/tilemine/tilemine/internal/world"
)

// Move advances the player's position against the world, resolving the
// horizontal axis fully before the vertical one. Keeping the axes separate
// is what makes tile collision tractable: each axis resolves against a
// static world within the same tick, so the player can never tunnel
// diagonally through the corner where two solid tiles meet.
func Move(w *world.World, p *Player, dt float64) {
	updateStance(w, p)

	// Horizontal sub-step.
	p.Pos.X += p.Vel.X * dt
	yStart := core.FloorDiv(p.Pos.Y, BlockSize)
	yEnd := core.FloorDiv(p.Pos.Y+p.Height-1, BlockSize)
	if p.Vel.X > 0 {
		tileX := core.FloorDiv(p.Pos.X+p.Width, BlockSize)
		for tileY := yStart; tileY <= yEnd; tileY++ {
			if w.IsSolid(tileX, tileY) {
				p.Pos.X = float64(tileX)*BlockSize - p.Width
				p.Vel.X = 0
				break
			}
		}
	} else if p.Vel.X < 0 {
		tileX := core.FloorDiv(p.Pos.X, BlockSize)
		for tileY := yStart; tileY <= yEnd; tileY++ {
			if w.IsSolid(tileX, tileY) {
				p.Pos.X = float64(tileX+1) * BlockSize
				p.Vel.X = 0
				break
			}
		}
	}

	// Vertical sub-step, against the already-committed x.
	p.Pos.Y += p.Vel.Y * dt
	p.OnGround = false
	xStart := core.FloorDiv(p.Pos.X, BlockSize)
	xEnd := core.FloorDiv(p.Pos.X+p.Width-1, BlockSize)
	if p.Vel.Y > 0 {
		tileY := core.FloorDiv(p.Pos.Y+p.Height, BlockSize)
		for tileX := xStart; tileX <= xEnd; tileX++ {
			if w.IsSolid(tileX, tileY) {
				p.Pos.Y = float64(tileY)*BlockSize - p.Height
				p.Vel.Y = 0
				p.OnGround = true
				break
			}
		}
	} else if p.Vel.Y < 0 {
		tileY := core.FloorDiv(p.Pos.Y, BlockSize)
		for tileX := xStart; tileX <= xEnd; tileX++ {
			if w.IsSolid(tileX, tileY) {
				p.Pos.Y = float64(tileY+1) * BlockSize
				p.Vel.Y = 0
				break
			}
		}
	}
}

// updateStance resizes the collision box to match the crouch state.
// Shrinking keeps the feet planted; standing back up needs headroom, and
// without it the crouch persists.
func updateStance(w *world.World, p *Player) {
	target := p.StandingHeight
	if p.Crouching {
		target = p.CrouchHeight
	}
	if diff := p.Height - target; diff < 1e-5 && diff > -1e-5 {
		return
	}

	bottom := p.Pos.Y + p.Height

	if target < p.Height {
		p.Height = target
		p.Pos.Y = bottom - p.Height
		return
	}

	newTop := bottom - target
	if areaIntersectsSolid(w, p.Pos.X, newTop, p.Width, target) {
		p.Crouching = true
		return
	}
	p.Height = target
	p.Pos.Y = newTop
}

// areaIntersectsSolid reports whether any tile overlapped by the given box
// is solid. Far edges back off by an epsilon so a box flush against a tile
// boundary does not register the next tile over.
func areaIntersectsSolid(w *world.World, left, top, width, height float64) bool {
	xStart := core.FloorDiv(left, BlockSize)
	xEnd := core.FloorDiv(left+width-1, BlockSize)
	yStart := core.FloorDiv(top, BlockSize)
	yEnd := core.FloorDiv(top+height-1, BlockSize)
	for tileX := xStart; tileX <= xEnd; tileX++ {
		for tileY := yStart; tileY <= yEnd; tileY++ {
			if w.IsSolid(tileX, tileY) {
				return true
			}
		}
	}
	return false
}
