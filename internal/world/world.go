package world

import "github.com/tilemine/tilemine/internal/core"

// Params configures terrain generation for a new world.
type Params struct {
	// Height is the initial vertical extent in tiles. The horizon sits at
	// Height/2+4, matching the classic viewport framing. The extent grows
	// on demand and never shrinks.
	Height int

	// Seed fixes every procedural choice.
	Seed int64

	// SubsurfaceDepth is how many rows of soil lie below the grass line
	// before stone takes over.
	SubsurfaceDepth int

	// PlatformPeriod is the horizontal period of the floating platform
	// pattern.
	PlatformPeriod int

	// CrystalChance is the per-column probability of a crystal outcrop.
	CrystalChance float64

	// StackChance is the probability that a crystal gets a second block
	// stacked on top, rolled only when the outcrop itself appears.
	StackChance float64
}

// DefaultParams returns generation parameters matching the classic terrain.
func DefaultParams(seed int64) Params {
	return Params{
		Height:          30,
		Seed:            seed,
		SubsurfaceDepth: 6,
		PlatformPeriod:  9,
		CrystalChance:   0.1,
		StackChance:     0.5,
	}
}

// World is the infinite tile grid. Columns materialize lazily as they are
// queried and the vertical extent expands in lockstep across all
// materialized columns. The zero x column is the spawn area.
//
// World is exclusively owned by the simulation: all access is synchronous
// and single-threaded, so there is no locking.
type World struct {
	params  Params
	top     int
	bottom  int
	horizon int

	// Sparse index over dense per-column storage. Every slice spans
	// exactly [top, bottom]; nil entries are air.
	columns map[int][]*BlockType

	palette       *Palette
	paletteBlocks []*BlockType

	grass *BlockType
	soil  *BlockType
	stone *BlockType
}

// New creates a world themed by the given palette.
func New(palette *Palette, params Params) *World {
	if params.Height <= 0 {
		params.Height = DefaultParams(params.Seed).Height
	}
	w := &World{
		params:  params,
		top:     0,
		bottom:  params.Height - 1,
		horizon: params.Height/2 + 4,
		columns: make(map[int][]*BlockType),
		grass:   &BlockType{Name: "Grass", Color: core.NewColor(118, 158, 108), Solid: true},
		soil:    &BlockType{Name: "Soil", Color: core.NewColor(124, 98, 76), Solid: true},
		stone:   &BlockType{Name: "Stone", Color: core.NewColor(105, 110, 125), Solid: true},
	}
	w.Retheme(palette)
	return w
}

// Top returns the highest materialized row index.
func (w *World) Top() int {
	return w.top
}

// Bottom returns the lowest materialized row index.
func (w *World) Bottom() int {
	return w.bottom
}

// Height returns the current vertical extent in tiles.
func (w *World) Height() int {
	return w.bottom - w.top + 1
}

// Horizon returns the row separating sky from ground in base terrain.
func (w *World) Horizon() int {
	return w.horizon
}

// Seed returns the generation seed.
func (w *World) Seed() int64 {
	return w.params.Seed
}

// Get returns the block at tile coordinates, materializing the column and
// expanding the vertical extent as needed. It never fails for any integer
// coordinate; nil means air.
func (w *World) Get(x, y int) *BlockType {
	w.ensureVerticalBounds(y)
	w.ensureColumn(x)
	return w.columns[x][y-w.top]
}

// Set overwrites a cell with the given block (nil clears it). The write is
// a permanent player edit: later vertical expansion and retheming never
// regenerate it away. Setting the same value twice is idempotent.
func (w *World) Set(x, y int, block *BlockType) {
	w.ensureVerticalBounds(y)
	w.ensureColumn(x)
	w.columns[x][y-w.top] = block
}

// IsSolid reports whether the block at tile coordinates obstructs movement.
func (w *World) IsSolid(x, y int) bool {
	block := w.Get(x, y)
	return block != nil && block.Solid
}

// Column returns the materialized column at x, spanning [Top, Bottom].
// The returned slice is the live storage; callers must not mutate it.
func (w *World) Column(x int) []*BlockType {
	w.ensureColumn(x)
	return w.columns[x]
}

// EnsureRange materializes width columns starting at startX.
func (w *World) EnsureRange(startX, width int) {
	for x := startX; x < startX+width; x++ {
		w.ensureColumn(x)
	}
}

// EnsureVerticalRange expands the vertical extent to cover height rows
// starting at startY.
func (w *World) EnsureVerticalRange(startY, height int) {
	w.ensureVerticalBounds(startY)
	w.ensureVerticalBounds(startY + height - 1)
}

// Retheme swaps the palette used for block attribute lookup. Every cell
// holding a block whose name exists in the new palette is repointed to the
// new block of the same name, so layout and kinds survive while colors
// change. Cells outside the palette (terrain, player edits of terrain
// kinds) are untouched. Future generation uses the new palette.
func (w *World) Retheme(palette *Palette) {
	w.palette = palette
	w.paletteBlocks = palette.Blocks()

	replacements := make(map[string]*BlockType, len(w.paletteBlocks))
	for _, b := range w.paletteBlocks {
		replacements[b.Name] = b
	}
	for _, column := range w.columns {
		for i, block := range column {
			if block == nil {
				continue
			}
			if repl, ok := replacements[block.Name]; ok {
				column[i] = repl
			}
		}
	}
}

// Palette returns the palette currently used for generation and retheming.
func (w *World) Palette() *Palette {
	return w.palette
}

// ensureColumn materializes column x if it is missing.
func (w *World) ensureColumn(x int) {
	if _, ok := w.columns[x]; ok {
		return
	}
	plan := w.planColumn(x)
	column := make([]*BlockType, w.Height())
	for y := w.top; y <= w.bottom; y++ {
		column[y-w.top] = w.generateCell(plan, x, y)
	}
	w.columns[x] = column
}

// ensureVerticalBounds grows [top, bottom] to include y, extending every
// materialized column in lockstep. Existing rows are never recomputed.
func (w *World) ensureVerticalBounds(y int) {
	if y >= w.top && y <= w.bottom {
		return
	}
	newTop := core.Min(w.top, y)
	newBottom := core.Max(w.bottom, y)

	for x, column := range w.columns {
		plan := w.planColumn(x)
		if newTop < w.top {
			prepend := make([]*BlockType, 0, w.top-newTop)
			for row := newTop; row < w.top; row++ {
				prepend = append(prepend, w.generateCell(plan, x, row))
			}
			w.columns[x] = append(prepend, column...)
			column = w.columns[x]
		}
		if newBottom > w.bottom {
			for row := w.bottom + 1; row <= newBottom; row++ {
				column = append(column, w.generateCell(plan, x, row))
			}
			w.columns[x] = column
		}
	}
	w.top = newTop
	w.bottom = newBottom
}
