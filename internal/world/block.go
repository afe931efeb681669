// Package world implements the procedural terrain engine: an unbounded 2D
// grid of blocks generated column by column, cached in memory, and mutable
// at runtime. Generation is a pure function of the world seed and the
// column index, so any cell can be rebuilt identically regardless of the
// order in which the player explores.
package world

import "github.com/tilemine/tilemine/internal/core"

// BlockType describes a single kind of block. Instances are immutable and
// shared by pointer across every grid cell of the same kind; nil means air.
type BlockType struct {
	// Name is the human-readable kind shown in the hotbar. It doubles as
	// the identity used by Retheme to swap visual attributes.
	Name string

	// Color is the visual attribute; it plays no role in collision.
	Color core.Color

	// Solid blocks obstruct the player.
	Solid bool
}

// PaletteEntry pairs a stable string key with its block type.
type PaletteEntry struct {
	Key   string
	Block *BlockType
}

// Palette is the ordered catalog of buildable block types. Insertion order
// is preserved so inventory listings stay predictable across rebuilds.
type Palette struct {
	keys   []string
	blocks map[string]*BlockType
}

// NewPalette builds a palette from ordered entries.
func NewPalette(entries []PaletteEntry) *Palette {
	p := &Palette{
		keys:   make([]string, 0, len(entries)),
		blocks: make(map[string]*BlockType, len(entries)),
	}
	for _, e := range entries {
		if _, exists := p.blocks[e.Key]; !exists {
			p.keys = append(p.keys, e.Key)
		}
		p.blocks[e.Key] = e.Block
	}
	return p
}

// Lookup returns the block registered under key.
func (p *Palette) Lookup(key string) (*BlockType, bool) {
	b, ok := p.blocks[key]
	return b, ok
}

// Names returns the palette keys in insertion order.
func (p *Palette) Names() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

// Blocks returns the block types in insertion order.
func (p *Palette) Blocks() []*BlockType {
	out := make([]*BlockType, 0, len(p.keys))
	for _, k := range p.keys {
		out = append(out, p.blocks[k])
	}
	return out
}

// At returns the block at the given insertion index, wrapping around.
// Used by the generator to pick decoration blocks by pattern index.
func (p *Palette) At(index int) *BlockType {
	if len(p.keys) == 0 {
		return nil
	}
	i := index % len(p.keys)
	if i < 0 {
		i += len(p.keys)
	}
	return p.blocks[p.keys[i]]
}

// Len returns the number of block types in the palette.
func (p *Palette) Len() int {
	return len(p.keys)
}
