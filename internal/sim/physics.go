package sim

import (
	"fmt"
	"math"

	"github.com/tilemine/tilemine/internal/world"
)

// PhysicsParams are the movement tuning constants, in world units per
// second. Values are overridable through the YAML config.
type PhysicsParams struct {
	Gravity           float64 // downward acceleration while not flying
	MoveSpeed         float64 // instantaneous walk speed
	FlightSpeed       float64 // speed in flight mode, both axes
	JumpSpeed         float64 // upward launch speed, roughly a four block leap
	MaxFallSpeed      float64 // terminal velocity
	CrouchSpeedFactor float64 // walk speed multiplier while crouching
}

// DefaultPhysics returns the classic tuning.
func DefaultPhysics() PhysicsParams {
	return PhysicsParams{
		Gravity:           1200.0,
		MoveSpeed:         180.0,
		FlightSpeed:       200.0,
		JumpSpeed:         480.0,
		MaxFallSpeed:      900.0,
		CrouchSpeedFactor: 0.5,
	}
}

// Intent is the per-tick input: which directions are held, whether crouch
// is held, and whether a jump was pressed this tick. Jump is edge
// triggered — the platform sets it once per key press, so holding the key
// never re-fires the impulse.
type Intent struct {
	Left   bool
	Right  bool
	Up     bool
	Down   bool
	Crouch bool
	Jump   bool
}

// ApplyInput updates the player's velocity from the intent and elapsed
// time. The y axis grows downward: jumping sets a negative velocity and
// gravity adds a positive acceleration. Flight mode suppresses gravity and
// steers vertical velocity directly.
func ApplyInput(p *Player, in Intent, phys PhysicsParams, dt float64) {
	p.Crouching = in.Crouch && !p.FlightMode

	moveDir := 0.0
	if in.Left {
		moveDir--
	}
	if in.Right {
		moveDir++
	}
	speed := phys.MoveSpeed
	if p.Crouching {
		speed *= phys.CrouchSpeedFactor
	}
	if p.FlightMode {
		speed = phys.FlightSpeed
	}
	p.Vel.X = moveDir * speed

	if p.FlightMode {
		verticalDir := 0.0
		if in.Up {
			verticalDir--
		}
		if in.Down {
			verticalDir++
		}
		p.Vel.Y = verticalDir * phys.FlightSpeed
		return
	}

	if in.Jump && p.OnGround {
		p.Vel.Y = -phys.JumpSpeed
		p.OnGround = false
		return
	}
	p.Vel.Y = math.Min(p.Vel.Y+phys.Gravity*dt, phys.MaxFallSpeed)
}

// Advance runs one full integration step: velocity update from input, then
// axis-separated movement against the world. It mutates the player in
// place and never fails.
//
// dt must be finite and non-negative; anything else is a caller bug and
// panics rather than silently corrupting the simulation.
func Advance(w *world.World, p *Player, in Intent, phys PhysicsParams, dt float64) {
	if math.IsNaN(dt) || math.IsInf(dt, 0) || dt < 0 {
		panic(fmt.Sprintf("sim: invalid dt %v", dt))
	}
	ApplyInput(p, in, phys, dt)
	Move(w, p, dt)
}
