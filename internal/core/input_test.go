package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionJump) {
		t.Error("fresh frame should have no actions")
	}

	f.Set(ActionJump)
	f.Set(ActionLeft)
	if !f.Has(ActionJump) || !f.Has(ActionLeft) {
		t.Error("set actions not reported")
	}
	if f.Has(ActionRight) {
		t.Error("unset action reported")
	}

	f.Clear()
	if f.Has(ActionJump) || f.Has(ActionLeft) {
		t.Error("Clear left actions behind")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionCrouch)

	clone := f.Clone()
	f.Clear()

	if !clone.Has(ActionCrouch) {
		t.Error("clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	cases := map[Action]string{
		ActionNone:         "None",
		ActionJump:         "Jump",
		ActionToggleFlight: "ToggleFlight",
		ActionCycleTheme:   "CycleTheme",
		Action(999):        "Unknown",
	}
	for a, want := range cases {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, want %q", a, got, want)
		}
	}
}
