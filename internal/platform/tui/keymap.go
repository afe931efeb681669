package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tilemine/tilemine/internal/core"
	"github.com/tilemine/tilemine/internal/sim"
)

// holdTTL is how long a movement key counts as held after its last press.
// Terminals report key repeats, not releases, so a key is treated as held
// while repeats keep arriving and decays shortly after they stop.
const holdTTL = 250 * time.Millisecond

// doubleTapWindow is the maximum gap between two space presses that
// toggles flight mode instead of queueing a second jump.
const doubleTapWindow = 300 * time.Millisecond

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case " ":
		return core.ActionJump, false
	case "c", "shift+down":
		return core.ActionCrouch, false
	case "f":
		return core.ActionToggleFlight, false
	case "t":
		return core.ActionCycleTheme, false
	case "]", "e":
		return core.ActionNextSlot, false
	case "[":
		return core.ActionPrevSlot, false
	}

	return core.ActionNone, false
}

// SlotKey maps a digit key to an inventory slot index.
// Returns -1 if the key is not a slot selector.
func (km *KeyMapper) SlotKey(msg tea.KeyMsg) int {
	key := msg.String()
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return int(key[0] - '1')
	}
	return -1
}

// holdSet tracks which directional actions are currently held. Each press
// refreshes the action's deadline; the action reads as held until the
// deadline passes.
type holdSet struct {
	deadlines map[core.Action]time.Time
}

func newHoldSet() *holdSet {
	return &holdSet{deadlines: make(map[core.Action]time.Time)}
}

// Press marks an action as held from now.
func (h *holdSet) Press(a core.Action, now time.Time) {
	h.deadlines[a] = now.Add(holdTTL)
}

// Held reports whether the action is still considered held.
func (h *holdSet) Held(a core.Action, now time.Time) bool {
	deadline, ok := h.deadlines[a]
	return ok && now.Before(deadline)
}

// Clear drops all held actions.
func (h *holdSet) Clear() {
	for a := range h.deadlines {
		delete(h.deadlines, a)
	}
}

// Frame assembles the per-tick input frame from currently held keys.
// Jump is edge-triggered and set separately by the caller.
func (h *holdSet) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for _, a := range []core.Action{
		core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown, core.ActionCrouch,
	} {
		if h.Held(a, now) {
			frame.Set(a)
		}
	}
	return frame
}

// frameIntent translates an input frame into the simulation's intent.
func frameIntent(frame core.InputFrame) sim.Intent {
	return sim.Intent{
		Left:   frame.Has(core.ActionLeft),
		Right:  frame.Has(core.ActionRight),
		Up:     frame.Has(core.ActionUp),
		Down:   frame.Has(core.ActionDown),
		Crouch: frame.Has(core.ActionCrouch),
		Jump:   frame.Has(core.ActionJump),
	}
}
