package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := InputOf(ActionForward, ActionTurnLeft)

	if !f.Has(ActionForward) || !f.Has(ActionTurnLeft) {
		t.Fatal("InputOf should set all given actions")
	}
	if f.Has(ActionConfirm) {
		t.Error("Confirm should not be set")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionForward) {
		t.Error("Clear should reset actions")
	}
	if !clone.Has(ActionForward) {
		t.Error("Clone should not share state with the original")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should report no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionTurnRight.String() != "TurnRight" {
		t.Errorf("String() = %q", ActionTurnRight.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("String() for unknown = %q", Action(99).String())
	}
}
