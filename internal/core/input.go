package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys and mouse buttons to actions; the
// simulation consumes them without knowing the input source.
type Action int

const (
	ActionNone         Action = iota
	ActionLeft                // A, Left arrow - walk left
	ActionRight               // D, Right arrow - walk right
	ActionUp                  // W, Up arrow - ascend in flight mode
	ActionDown                // S, Down arrow - descend in flight mode
	ActionJump                // Space - jump (edge-triggered)
	ActionCrouch              // C - crouch while held
	ActionToggleFlight        // double Space - flip flight mode (edge-triggered)
	ActionCycleTheme          // T - switch to the next color theme
	ActionNextSlot            // ] - select next inventory slot
	ActionPrevSlot            // [ - select previous inventory slot
	ActionQuit                // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionJump:
		return "Jump"
	case ActionCrouch:
		return "Crouch"
	case ActionToggleFlight:
		return "ToggleFlight"
	case ActionCycleTheme:
		return "CycleTheme"
	case ActionNextSlot:
		return "NextSlot"
	case ActionPrevSlot:
		return "PrevSlot"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
