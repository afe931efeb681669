package sim

import (
	"math"

	"github.com/tilemine/tilemine/internal/core"
	"github.com/tilemine/tilemine/internal/world"
)

// Params bundles everything needed to start a session.
type Params struct {
	World        world.Params
	Physics      PhysicsParams
	PlayerWidth  float64 // world units; default 0.6 tiles
	PlayerHeight float64 // world units; default 0.9 tiles
	BuildRadius  int
	SpawnColumn  int
}

// DefaultParams returns session parameters for the given seed.
func DefaultParams(seed int64) Params {
	return Params{
		World:        world.DefaultParams(seed),
		Physics:      DefaultPhysics(),
		PlayerWidth:  BlockSize * 0.6,
		PlayerHeight: BlockSize * 0.9,
		BuildRadius:  DefaultBuildRadius,
		SpawnColumn:  3,
	}
}

// Stats counts what happened during a session, persisted by the platform
// when the session ends.
type Stats struct {
	Ticks         uint64
	BlocksPlaced  int
	BlocksRemoved int
	MaxDistance   float64 // farthest horizontal distance from spawn, in tiles
}

// Session is the single owner of one running simulation: the world, the
// player, and the inventory. The platform layer feeds it one Intent per
// tick and reads state back for rendering; nothing else mutates the parts.
type Session struct {
	world  *world.World
	player *Player
	inv    *Inventory
	phys   PhysicsParams
	radius int
	spawnX float64
	stats  Stats
}

// NewSession builds a world from the palette and parameters, spawns the
// player on the surface at the spawn column, and fills the inventory from
// the palette.
func NewSession(palette *world.Palette, params Params) *Session {
	w := world.New(palette, params.World)

	// Warm up the neighborhood around spawn so the opening view renders
	// without a generation burst on the first frame.
	w.EnsureRange(params.SpawnColumn-40, 80)

	spawnX := float64(params.SpawnColumn) * BlockSize
	player := NewPlayer(
		core.Vec2{X: spawnX, Y: BlockSize * 3},
		params.PlayerWidth,
		params.PlayerHeight,
	)
	PlaceOnSurface(w, player)

	return &Session{
		world:  w,
		player: player,
		inv:    NewInventory(palette.Blocks()),
		phys:   params.Physics,
		radius: params.BuildRadius,
		spawnX: spawnX,
	}
}

// Step advances the simulation by dt seconds with the given input.
// dt must be finite and non-negative (see Advance).
func (s *Session) Step(in Intent, dt float64) {
	Advance(s.world, s.player, in, s.phys, dt)
	s.stats.Ticks++
	distance := math.Abs(s.player.Pos.X-s.spawnX) / BlockSize
	if distance > s.stats.MaxDistance {
		s.stats.MaxDistance = distance
	}
}

// Place puts the selected inventory block at the target tile, honoring the
// build radius and occupancy rules.
func (s *Session) Place(tx, ty int) bool {
	if Place(s.world, s.player, s.inv.Selected(), tx, ty, s.radius) {
		s.stats.BlocksPlaced++
		return true
	}
	return false
}

// Remove clears the target tile, honoring the build radius.
func (s *Session) Remove(tx, ty int) bool {
	if Remove(s.world, s.player, tx, ty, s.radius) {
		s.stats.BlocksRemoved++
		return true
	}
	return false
}

// Retheme swaps the active palette: the world re-renders under the new
// colors and the inventory is rebuilt, keeping the selection clamped.
func (s *Session) Retheme(palette *world.Palette) {
	s.world.Retheme(palette)
	s.inv.Replace(palette.Blocks())
}

// ToggleFlight flips the player's flight mode and returns the new state.
func (s *Session) ToggleFlight() bool {
	return s.player.ToggleFlight()
}

// World returns the session's world.
func (s *Session) World() *world.World {
	return s.world
}

// Player returns the session's player state. Read-only for callers.
func (s *Session) Player() *Player {
	return s.player
}

// Inventory returns the session's inventory.
func (s *Session) Inventory() *Inventory {
	return s.inv
}

// BuildRadius returns the configured build radius in tiles.
func (s *Session) BuildRadius() int {
	return s.radius
}

// Stats returns a snapshot of the session counters.
func (s *Session) Stats() Stats {
	return s.stats
}
