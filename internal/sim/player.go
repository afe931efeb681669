// Package sim owns the mutable simulation state (player, inventory) and
// the physics integrator that advances it against the world each tick.
// Everything here is pure logic with no platform dependencies.
package sim

import "github.com/tilemine/tilemine/internal/core"

// BlockSize is the side length of one world tile in world units. Physics
// constants are tuned against it.
const BlockSize = 24.0

// CrouchHeightFactor is the fraction of standing height used while
// crouching: a gentle squeeze so ducking under blocks stays responsive.
const CrouchHeightFactor = 0.6

// Player tracks the player's physical state. Position and velocity are
// continuous world-unit vectors with y growing downward; Pos is the
// top-left corner of the bounding box.
//
// The integrator is the only writer; renderers and the HUD just read.
type Player struct {
	Pos core.Vec2
	Vel core.Vec2

	Width  float64
	Height float64

	// StandingHeight and CrouchHeight bound the collision box as the
	// stance changes; Width never changes.
	StandingHeight float64
	CrouchHeight   float64

	OnGround   bool
	Crouching  bool
	FlightMode bool
}

// NewPlayer creates a player with the given spawn position and standing
// bounding box.
func NewPlayer(pos core.Vec2, width, height float64) *Player {
	return &Player{
		Pos:            pos,
		Width:          width,
		Height:         height,
		StandingHeight: height,
		CrouchHeight:   height * CrouchHeightFactor,
	}
}

// Bounds returns the current collision box.
func (p *Player) Bounds() core.AABB {
	return core.AABB{X: p.Pos.X, Y: p.Pos.Y, W: p.Width, H: p.Height}
}

// ToggleFlight flips flight mode and returns the new state. Entering
// flight zeroes vertical velocity so the player hangs instead of carrying
// fall speed upward.
func (p *Player) ToggleFlight() bool {
	p.FlightMode = !p.FlightMode
	if p.FlightMode {
		p.Vel.Y = 0
	}
	return p.FlightMode
}

// Tile returns the tile coordinates of the player's center.
func (p *Player) Tile() (int, int) {
	return core.FloorDiv(p.Pos.X+p.Width/2, BlockSize),
		core.FloorDiv(p.Pos.Y+p.Height/2, BlockSize)
}
