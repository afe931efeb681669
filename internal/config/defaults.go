package config

import (
	_ "embed"
)

//go:embed defaults/tilemine.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		World: WorldConfig{
			Height:          30,
			SubsurfaceDepth: 6,
			PlatformPeriod:  9,
			CrystalChance:   0.1,
			StackChance:     0.5,
		},
		Physics: PhysicsConfig{
			Gravity:           1200.0,
			MoveSpeed:         180.0,
			FlightSpeed:       200.0,
			JumpSpeed:         480.0,
			MaxFallSpeed:      900.0,
			CrouchSpeedFactor: 0.5,
		},
		Player: PlayerConfig{
			Width:       0.6,
			Height:      0.9,
			SpawnColumn: 3,
		},
		Build: BuildConfig{
			Radius: 2,
		},
		Theme: "Azure Coast",
	}
}
