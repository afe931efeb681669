package world

import (
	"testing"

	"github.com/tilemine/tilemine/internal/core"
)

// testPalette builds a five-kind palette matching the buildable block
// names used in the game, with obvious stand-in colors.
func testPalette() *Palette {
	names := []struct {
		key  string
		name string
	}{
		{"cloudstone", "Cloudstone"},
		{"petal_clay", "Petal Clay"},
		{"moss_brick", "Moss Brick"},
		{"glass_tile", "Glass Tile"},
		{"dune_sand", "Dune Sand"},
	}
	entries := make([]PaletteEntry, len(names))
	for i, n := range names {
		entries[i] = PaletteEntry{
			Key: n.key,
			Block: &BlockType{
				Name:  n.name,
				Color: core.NewColor(uint8(i*40), uint8(i*40), uint8(i*40)),
				Solid: true,
			},
		}
	}
	return NewPalette(entries)
}

// quietParams disables the random decorations so base terrain and the
// deterministic patterns can be checked in isolation.
func quietParams(seed int64) Params {
	p := DefaultParams(seed)
	p.CrystalChance = 0
	return p
}

func TestBaseTerrainLayout(t *testing.T) {
	w := New(testPalette(), quietParams(1))
	horizon := w.Horizon()

	// Column 21 carries no platform (phase 3 of the period) and sits
	// outside the spawn staircase.
	x := 21

	if got := w.Get(x, horizon-1); got != nil {
		t.Errorf("expected air above the horizon, got %q", got.Name)
	}
	if got := w.Get(x, horizon); got == nil || got.Name != "Grass" {
		t.Errorf("expected Grass at the horizon, got %v", got)
	}
	for depth := 1; depth < 6; depth++ {
		if got := w.Get(x, horizon+depth); got == nil || got.Name != "Soil" {
			t.Errorf("expected Soil at depth %d, got %v", depth, got)
		}
	}
	if got := w.Get(x, horizon+6); got == nil || got.Name != "Stone" {
		t.Errorf("expected Stone below the soil band, got %v", got)
	}
}

func TestHorizonPosition(t *testing.T) {
	w := New(testPalette(), quietParams(7))
	want := DefaultParams(7).Height/2 + 4
	if w.Horizon() != want {
		t.Errorf("Horizon() = %d, want %d", w.Horizon(), want)
	}
}

func TestPlatformPattern(t *testing.T) {
	pal := testPalette()
	w := New(pal, quietParams(2))
	horizon := w.Horizon()

	// Pattern index 1 covers columns 9-11 with a platform two tiles lower
	// than the pattern's highest offset.
	wantY := horizon - 4 - 1*2
	wantBlock := pal.At(1)
	for x := 9; x <= 11; x++ {
		if got := w.Get(x, wantY); got != wantBlock {
			t.Errorf("column %d: expected platform block %q at y=%d, got %v", x, wantBlock.Name, wantY, got)
		}
	}

	// The gap columns of the same pattern stay empty at platform height.
	for x := 12; x <= 17; x++ {
		if got := w.Get(x, wantY); got != nil {
			t.Errorf("column %d: expected air at y=%d, got %q", x, wantY, got.Name)
		}
	}

	// Pattern index cycles the height offset with period three.
	if got := w.Get(9*4, horizon-4-1*2); got != pal.At(4) {
		t.Errorf("pattern 4: expected %q, got %v", pal.At(4).Name, got)
	}
}

func TestPlatformPatternContinuesIntoNegativeX(t *testing.T) {
	pal := testPalette()
	w := New(pal, quietParams(3))
	horizon := w.Horizon()

	// Pattern index -1 covers columns -9..-7: phase 0..2 with height
	// offset 2 (floor modulo keeps the cycle seamless across zero).
	wantY := horizon - 4 - 2*2
	wantBlock := pal.At(-1)
	for x := -9; x <= -7; x++ {
		if got := w.Get(x, wantY); got != wantBlock {
			t.Errorf("column %d: expected platform block %q at y=%d, got %v", x, wantBlock.Name, wantY, got)
		}
	}
}

func TestSpawnStaircase(t *testing.T) {
	w := New(testPalette(), quietParams(4))
	horizon := w.Horizon()

	// The staircase descends one tile per column from x=-2 to x=8, which
	// carries step zero.
	cases := []struct {
		x     int
		stepY int
	}{
		{8, horizon - 1},
		{7, horizon - 2},
		{3, horizon - 6},
		{0, horizon - 9},
		{-2, horizon - 11},
	}
	for _, c := range cases {
		got := w.Get(c.x, c.stepY)
		if got == nil || got.Name != "Stone" {
			t.Errorf("column %d: expected Stone step at y=%d, got %v", c.x, c.stepY, got)
		}
	}

	// Columns outside the template carry no step.
	if got := w.Get(9, horizon-1); got != nil {
		t.Errorf("column 9: expected no staircase, got %q", got.Name)
	}
}

func TestGenerationIndependentOfVisitOrder(t *testing.T) {
	seed := int64(42)
	pal := testPalette()

	w1 := New(pal, DefaultParams(seed))
	w2 := New(pal, DefaultParams(seed))

	// Visit the same columns in opposite orders, interleaved with
	// vertical expansion on one side only.
	for x := -50; x <= 50; x++ {
		w1.Column(x)
	}
	w2.EnsureVerticalRange(-20, 10)
	for x := 50; x >= -50; x-- {
		w2.Column(x)
	}

	for x := -50; x <= 50; x++ {
		for y := 0; y < 30; y++ {
			b1, b2 := w1.Get(x, y), w2.Get(x, y)
			n1, n2 := "", ""
			if b1 != nil {
				n1 = b1.Name
			}
			if b2 != nil {
				n2 = b2.Name
			}
			if n1 != n2 {
				t.Fatalf("cell (%d,%d) differs between visit orders: %q vs %q", x, y, n1, n2)
			}
		}
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	pal := testPalette()
	w1 := New(pal, DefaultParams(1))
	w2 := New(pal, DefaultParams(2))
	horizon := w1.Horizon()

	same := true
	for x := 100; x < 400; x++ {
		if (w1.Get(x, horizon-1) != nil) != (w2.Get(x, horizon-1) != nil) {
			same = false
			break
		}
	}
	if same {
		t.Error("crystal layout identical across 300 columns for different seeds")
	}
}

func TestEditsSurviveExpansion(t *testing.T) {
	pal := testPalette()
	w := New(pal, quietParams(5))
	horizon := w.Horizon()

	placed := pal.At(0)
	w.Set(30, horizon-3, placed)
	w.Set(31, horizon, nil) // mine the grass

	// Force vertical expansion in both directions.
	w.Get(30, -40)
	w.Get(30, 120)

	if got := w.Get(30, horizon-3); got != placed {
		t.Errorf("placed block lost after expansion: got %v", got)
	}
	if got := w.Get(31, horizon); got != nil {
		t.Errorf("mined cell regenerated after expansion: got %q", got.Name)
	}
}

func TestSetIdempotent(t *testing.T) {
	pal := testPalette()
	w := New(pal, quietParams(6))
	horizon := w.Horizon()

	block := pal.At(2)
	w.Set(15, horizon-2, block)
	w.Set(15, horizon-2, block)

	if got := w.Get(15, horizon-2); got != block {
		t.Errorf("double Set changed the cell: got %v", got)
	}
}

func TestColumnsExpandInLockstep(t *testing.T) {
	w := New(testPalette(), quietParams(8))

	for x := -5; x <= 5; x++ {
		w.Column(x)
	}
	w.EnsureVerticalRange(-10, 60)

	want := w.Height()
	for x := -5; x <= 5; x++ {
		if got := len(w.Column(x)); got != want {
			t.Errorf("column %d length %d, want %d", x, got, want)
		}
	}
	if w.Bottom()-w.Top()+1 != want {
		t.Errorf("extent [%d,%d] inconsistent with Height %d", w.Top(), w.Bottom(), want)
	}
}

func TestRethemeSwapsColorsKeepsLayout(t *testing.T) {
	palA := testPalette()
	w := New(palA, DefaultParams(9))
	horizon := w.Horizon()

	// Materialize terrain and make an edit with a palette block.
	w.EnsureRange(-20, 60)
	edited := palA.At(3)
	w.Set(25, horizon-5, edited)

	// Same kinds, new colors.
	entries := make([]PaletteEntry, 0, palA.Len())
	for i, name := range palA.Names() {
		old, _ := palA.Lookup(name)
		entries = append(entries, PaletteEntry{
			Key: name,
			Block: &BlockType{
				Name:  old.Name,
				Color: core.NewColor(uint8(200+i), 0, 0),
				Solid: true,
			},
		})
	}
	palB := NewPalette(entries)
	w.Retheme(palB)

	got := w.Get(25, horizon-5)
	if got == nil || got.Name != edited.Name {
		t.Fatalf("edit lost its kind after retheme: got %v", got)
	}
	if got == edited {
		t.Error("edit still points at the old palette block after retheme")
	}
	if got.Color == edited.Color {
		t.Error("retheme did not change the block color")
	}

	// Terrain blocks keep their identity.
	if grass := w.Get(40, horizon); grass == nil || grass.Name != "Grass" {
		t.Errorf("terrain changed kind after retheme: got %v", grass)
	}
}

func TestIsSolid(t *testing.T) {
	w := New(testPalette(), quietParams(10))
	horizon := w.Horizon()

	if w.IsSolid(21, horizon-1) {
		t.Error("air reported solid")
	}
	if !w.IsSolid(21, horizon) {
		t.Error("grass reported passable")
	}
}

func TestFarNegativeCoordinates(t *testing.T) {
	w := New(testPalette(), quietParams(11))
	horizon := w.Horizon()

	// x=-1000 has platform phase 8, so the horizon row is plain grass.
	if got := w.Get(-1000, horizon); got == nil || got.Name != "Grass" {
		t.Errorf("expected Grass far in the negative direction, got %v", got)
	}
	if got := w.Get(-1000, horizon-1); got != nil {
		t.Errorf("expected air above the horizon at x=-1000, got %q", got.Name)
	}
}
