package sim

import "github.com/tilemine/tilemine/internal/world"

// Inventory is a fixed-size ordered list of selectable block kinds with a
// selection cursor. Cycling clamps at the ends rather than wrapping.
type Inventory struct {
	slots    []*world.BlockType
	selected int
}

// NewInventory builds an inventory holding the given blocks, with the
// first slot selected.
func NewInventory(blocks []*world.BlockType) *Inventory {
	slots := make([]*world.BlockType, len(blocks))
	copy(slots, blocks)
	return &Inventory{slots: slots}
}

// Select moves the cursor to index i. Out-of-range indices are ignored and
// reported false.
func (inv *Inventory) Select(i int) bool {
	if i < 0 || i >= len(inv.slots) {
		return false
	}
	inv.selected = i
	return true
}

// Next advances the cursor, clamping at the last slot.
func (inv *Inventory) Next() {
	if inv.selected < len(inv.slots)-1 {
		inv.selected++
	}
}

// Prev retreats the cursor, clamping at the first slot.
func (inv *Inventory) Prev() {
	if inv.selected > 0 {
		inv.selected--
	}
}

// Selected returns the block under the cursor, or nil for an empty
// inventory.
func (inv *Inventory) Selected() *world.BlockType {
	if len(inv.slots) == 0 {
		return nil
	}
	return inv.slots[inv.selected]
}

// SelectedIndex returns the cursor position.
func (inv *Inventory) SelectedIndex() int {
	return inv.selected
}

// Slots returns the ordered blocks. The slice is a copy.
func (inv *Inventory) Slots() []*world.BlockType {
	out := make([]*world.BlockType, len(inv.slots))
	copy(out, inv.slots)
	return out
}

// Len returns the number of slots.
func (inv *Inventory) Len() int {
	return len(inv.slots)
}

// Replace swaps the slot contents for a new palette's blocks, keeping the
// cursor where it was (clamped if the new list is shorter).
func (inv *Inventory) Replace(blocks []*world.BlockType) {
	inv.slots = make([]*world.BlockType, len(blocks))
	copy(inv.slots, blocks)
	if inv.selected >= len(inv.slots) {
		inv.selected = len(inv.slots) - 1
	}
	if inv.selected < 0 {
		inv.selected = 0
	}
}
