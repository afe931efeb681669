// Package config provides YAML-based configuration loading for the
// sandbox: physics tuning, world generation parameters, and presentation
// defaults.
package config

// Config is the root configuration document.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Build   BuildConfig   `yaml:"build"`
	Theme   string        `yaml:"theme"`
}

// WorldConfig tunes terrain generation.
type WorldConfig struct {
	Height          int     `yaml:"height"`
	SubsurfaceDepth int     `yaml:"subsurface_depth"`
	PlatformPeriod  int     `yaml:"platform_period"`
	CrystalChance   float64 `yaml:"crystal_chance"`
	StackChance     float64 `yaml:"stack_chance"`
}

// PhysicsConfig tunes player movement, in world units per second.
type PhysicsConfig struct {
	Gravity           float64 `yaml:"gravity"`
	MoveSpeed         float64 `yaml:"move_speed"`
	FlightSpeed       float64 `yaml:"flight_speed"`
	JumpSpeed         float64 `yaml:"jump_speed"`
	MaxFallSpeed      float64 `yaml:"max_fall_speed"`
	CrouchSpeedFactor float64 `yaml:"crouch_speed_factor"`
}

// PlayerConfig sets the bounding box, as fractions of the tile size.
type PlayerConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpawnColumn int     `yaml:"spawn_column"`
}

// BuildConfig bounds block placement and removal.
type BuildConfig struct {
	Radius int `yaml:"radius"`
}
