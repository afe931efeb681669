package world

import "math/rand"

// columnSeed mixes the world seed with a column index using the splitmix64
// finalizer. Each column gets its own generator seeded from (seed, x)
// alone, so decoration rolls are independent of access order and of every
// other column.
func columnSeed(seed int64, x int) int64 {
	h := uint64(seed) ^ (uint64(int64(x)) * 0x9E3779B97F4A7C15)
	h ^= h >> 30
	h *= 0xBF58476D1CE4E5B9
	h ^= h >> 27
	h *= 0x94D049BB133111EB
	h ^= h >> 31
	return int64(h)
}

// posMod returns x mod m in [0, m), flooring like Python's % rather than
// truncating like Go's. The platform pattern must continue seamlessly into
// negative x.
func posMod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

// floorDiv returns x/m rounded toward negative infinity.
func floorDiv(x, m int) int {
	q := x / m
	if (x%m != 0) && ((x < 0) != (m < 0)) {
		q--
	}
	return q
}

// columnPlan holds every per-column procedural decision, computed once per
// column as a pure function of (seed, x).
type columnPlan struct {
	platform      bool // column carries part of a floating platform
	platformY     int
	platformBlock *BlockType

	crystal      bool // crystal outcrop at horizon-1
	crystalBlock *BlockType
	stack        bool // second crystal stacked at horizon-2
	stackBlock   *BlockType

	stair  bool // spawn staircase template covers this column
	stairY int
}

// planColumn rolls the decoration decisions for column x.
func (w *World) planColumn(x int) columnPlan {
	var plan columnPlan

	// Spawn template: a handcrafted staircase around the origin so every
	// seed spawns onto the same safe slope. Takes precedence over both
	// decoration passes.
	if x >= -2 && x <= 8 {
		step := 8 - x
		if step < 0 {
			step = 0
		}
		plan.stair = true
		plan.stairY = w.horizon - 1 - step
	}

	// Floating platforms: a periodic pattern, three columns wide, with a
	// vertical offset cycling by pattern index.
	period := w.params.PlatformPeriod
	patternIndex := floorDiv(x, period)
	phase := posMod(x, period)
	if phase <= 2 {
		heightOffset := posMod(patternIndex, 3)
		plan.platform = true
		plan.platformY = w.horizon - 4 - heightOffset*2
		plan.platformBlock = w.palette.At(patternIndex)
	}

	// Crystal outcrops: sparse random features just above the grass,
	// rolled from a generator owned by this column alone.
	rng := rand.New(rand.NewSource(columnSeed(w.params.Seed, x)))
	plan.crystal = rng.Float64() < w.params.CrystalChance
	if plan.crystal {
		plan.stack = rng.Float64() < w.params.StackChance
		plan.crystalBlock = w.palette.At(x)
		plan.stackBlock = w.palette.At(x + 1)
	}

	return plan
}

// generateCell produces the block for (x, y) from the column plan.
// Precedence: spawn template, then platforms, then crystals, then base
// terrain. Decorations may override base blocks within their own column
// but never reach into neighbors.
func (w *World) generateCell(plan columnPlan, x, y int) *BlockType {
	if plan.stair && y == plan.stairY {
		return w.stone
	}

	if plan.platform && y == plan.platformY && plan.platformBlock != nil {
		return plan.platformBlock
	}

	if plan.crystal {
		if y == w.horizon-1 && plan.crystalBlock != nil {
			return plan.crystalBlock
		}
		if plan.stack && y == w.horizon-2 && plan.stackBlock != nil {
			return plan.stackBlock
		}
	}

	// Base terrain is a pure function of y: a flat horizon with grass on
	// top, soil beneath, and stone at depth.
	if y < w.horizon {
		return nil
	}
	depth := y - w.horizon
	switch {
	case depth == 0:
		return w.grass
	case depth < w.params.SubsurfaceDepth:
		return w.soil
	default:
		return w.stone
	}
}
