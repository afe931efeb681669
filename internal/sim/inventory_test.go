package sim

import "testing"

func TestInventorySelection(t *testing.T) {
	inv := NewInventory(testPalette().Blocks())

	if inv.SelectedIndex() != 0 {
		t.Errorf("fresh inventory selects slot %d, want 0", inv.SelectedIndex())
	}

	if !inv.Select(3) {
		t.Error("selecting a valid slot failed")
	}
	if inv.SelectedIndex() != 3 {
		t.Errorf("SelectedIndex = %d, want 3", inv.SelectedIndex())
	}

	// Out-of-range selections are rejected and leave the cursor alone.
	if inv.Select(-1) || inv.Select(inv.Len()) {
		t.Error("out-of-range select should be rejected")
	}
	if inv.SelectedIndex() != 3 {
		t.Errorf("rejected select moved the cursor to %d", inv.SelectedIndex())
	}
}

func TestInventoryCyclingClampsAtEnds(t *testing.T) {
	inv := NewInventory(testPalette().Blocks())

	inv.Prev()
	if inv.SelectedIndex() != 0 {
		t.Errorf("Prev at the first slot moved to %d", inv.SelectedIndex())
	}

	for i := 0; i < inv.Len()+3; i++ {
		inv.Next()
	}
	if inv.SelectedIndex() != inv.Len()-1 {
		t.Errorf("Next past the last slot landed on %d, want %d", inv.SelectedIndex(), inv.Len()-1)
	}
}

func TestInventoryReplaceClampsSelection(t *testing.T) {
	inv := NewInventory(testPalette().Blocks())
	inv.Select(4)

	// Swap in a shorter catalog: the cursor clamps to the new last slot.
	inv.Replace(testPalette().Blocks()[:2])
	if inv.SelectedIndex() != 1 {
		t.Errorf("SelectedIndex = %d after shrinking replace, want 1", inv.SelectedIndex())
	}
	if inv.Selected() == nil {
		t.Error("Selected returned nil for a non-empty inventory")
	}
}

func TestEmptyInventory(t *testing.T) {
	inv := NewInventory(nil)
	if inv.Selected() != nil {
		t.Error("empty inventory should select nothing")
	}
	inv.Next()
	inv.Prev()
	if inv.Select(0) {
		t.Error("selecting in an empty inventory should fail")
	}
}
