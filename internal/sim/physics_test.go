package sim

import (
	"math"
	"testing"
)

const testDt = 1.0 / 60.0

func TestWalkVelocity(t *testing.T) {
	phys := DefaultPhysics()

	p := testPlayer(0, 0)
	ApplyInput(p, Intent{Right: true}, phys, testDt)
	if p.Vel.X != phys.MoveSpeed {
		t.Errorf("walking right: Vel.X = %v, want %v", p.Vel.X, phys.MoveSpeed)
	}

	ApplyInput(p, Intent{Left: true}, phys, testDt)
	if p.Vel.X != -phys.MoveSpeed {
		t.Errorf("walking left: Vel.X = %v, want %v", p.Vel.X, -phys.MoveSpeed)
	}

	// Opposing directions cancel.
	ApplyInput(p, Intent{Left: true, Right: true}, phys, testDt)
	if p.Vel.X != 0 {
		t.Errorf("both directions held: Vel.X = %v, want 0", p.Vel.X)
	}

	// Releasing the keys stops instantly.
	ApplyInput(p, Intent{}, phys, testDt)
	if p.Vel.X != 0 {
		t.Errorf("no input: Vel.X = %v, want 0", p.Vel.X)
	}
}

func TestCrouchHalvesWalkSpeed(t *testing.T) {
	phys := DefaultPhysics()
	p := testPlayer(0, 0)

	ApplyInput(p, Intent{Right: true, Crouch: true}, phys, testDt)
	want := phys.MoveSpeed * phys.CrouchSpeedFactor
	if p.Vel.X != want {
		t.Errorf("crouched walk: Vel.X = %v, want %v", p.Vel.X, want)
	}
	if !p.Crouching {
		t.Error("Crouching flag not set while crouch held")
	}
}

func TestGravityAccumulatesAndClamps(t *testing.T) {
	phys := DefaultPhysics()
	p := testPlayer(0, 0)

	ApplyInput(p, Intent{}, phys, testDt)
	if p.Vel.Y <= 0 {
		t.Fatalf("gravity should pull downward, Vel.Y = %v", p.Vel.Y)
	}
	first := p.Vel.Y

	ApplyInput(p, Intent{}, phys, testDt)
	if p.Vel.Y <= first {
		t.Errorf("fall speed should grow: %v then %v", first, p.Vel.Y)
	}

	// Long fall reaches terminal velocity and stays there.
	for i := 0; i < 120; i++ {
		ApplyInput(p, Intent{}, phys, testDt)
		if p.Vel.Y > phys.MaxFallSpeed {
			t.Fatalf("fall speed %v exceeds terminal %v", p.Vel.Y, phys.MaxFallSpeed)
		}
	}
	if p.Vel.Y != phys.MaxFallSpeed {
		t.Errorf("after a long fall Vel.Y = %v, want terminal %v", p.Vel.Y, phys.MaxFallSpeed)
	}
}

func TestJumpRequiresGround(t *testing.T) {
	phys := DefaultPhysics()

	p := testPlayer(0, 0)
	p.OnGround = true
	ApplyInput(p, Intent{Jump: true}, phys, testDt)
	if p.Vel.Y != -phys.JumpSpeed {
		t.Errorf("grounded jump: Vel.Y = %v, want %v", p.Vel.Y, -phys.JumpSpeed)
	}
	if p.OnGround {
		t.Error("jump should clear the grounded flag")
	}

	// Airborne jump does nothing but fall.
	airborne := testPlayer(0, 0)
	ApplyInput(airborne, Intent{Jump: true}, phys, testDt)
	if airborne.Vel.Y < 0 {
		t.Errorf("airborne jump launched upward: Vel.Y = %v", airborne.Vel.Y)
	}
}

func TestFlightSteering(t *testing.T) {
	phys := DefaultPhysics()
	p := testPlayer(0, 0)
	p.ToggleFlight()

	ApplyInput(p, Intent{Up: true}, phys, testDt)
	if p.Vel.Y != -phys.FlightSpeed {
		t.Errorf("flying up: Vel.Y = %v, want %v", p.Vel.Y, -phys.FlightSpeed)
	}

	ApplyInput(p, Intent{Down: true}, phys, testDt)
	if p.Vel.Y != phys.FlightSpeed {
		t.Errorf("flying down: Vel.Y = %v, want %v", p.Vel.Y, phys.FlightSpeed)
	}

	// Hovering: no input, no gravity.
	ApplyInput(p, Intent{}, phys, testDt)
	if p.Vel.Y != 0 {
		t.Errorf("hovering: Vel.Y = %v, want 0", p.Vel.Y)
	}

	ApplyInput(p, Intent{Right: true}, phys, testDt)
	if p.Vel.X != phys.FlightSpeed {
		t.Errorf("flying right: Vel.X = %v, want %v", p.Vel.X, phys.FlightSpeed)
	}
}

func TestCrouchIgnoredInFlight(t *testing.T) {
	p := testPlayer(0, 0)
	p.ToggleFlight()

	ApplyInput(p, Intent{Crouch: true}, DefaultPhysics(), testDt)
	if p.Crouching {
		t.Error("crouch should have no effect in flight mode")
	}
}

func TestToggleFlightZeroesFallSpeed(t *testing.T) {
	p := testPlayer(0, 0)
	p.Vel.Y = 500

	if !p.ToggleFlight() {
		t.Fatal("first toggle should enable flight")
	}
	if p.Vel.Y != 0 {
		t.Errorf("entering flight kept Vel.Y = %v", p.Vel.Y)
	}
	if p.ToggleFlight() {
		t.Error("second toggle should disable flight")
	}
}

func TestAdvanceRejectsBadDt(t *testing.T) {
	w := testWorld(1)
	phys := DefaultPhysics()

	for _, dt := range []float64{-1, math.NaN(), math.Inf(1)} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Advance accepted dt=%v", dt)
				}
			}()
			Advance(w, testPlayer(0, 0), Intent{}, phys, dt)
		}()
	}

	// Zero dt is a legal no-op tick.
	p := testPlayer(100, 100)
	Advance(w, p, Intent{}, phys, 0)
}
