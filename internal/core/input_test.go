package core

import "testing"

func TestInputFrameKeepsMoveOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRight)
	f.Set(ActionDown)
	f.Set(ActionRight)
	f.Set(ActionPause)
	f.Set(ActionNone)

	want := []Action{ActionRight, ActionDown, ActionRight}
	if len(f.Moves) != len(want) {
		t.Fatalf("Moves = %v, expected %v", f.Moves, want)
	}
	for i := range want {
		if f.Moves[i] != want[i] {
			t.Errorf("Moves[%d] = %s, expected %s", i, f.Moves[i], want[i])
		}
	}
	if !f.Has(ActionPause) || !f.Has(ActionDown) {
		t.Error("Has() should report recorded actions")
	}
	if f.Has(ActionNone) {
		t.Error("ActionNone should never be recorded")
	}

	f.Clear()
	if len(f.Moves) != 0 || f.Has(ActionRight) {
		t.Error("Clear() should drop all actions")
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Set() on zero frame should work")
	}
}

func TestActionIsMove(t *testing.T) {
	moves := map[Action]bool{
		ActionUp:      true,
		ActionDown:    true,
		ActionLeft:    true,
		ActionRight:   true,
		ActionNone:    false,
		ActionConfirm: false,
		ActionQuit:    false,
	}
	for a, expected := range moves {
		if a.IsMove() != expected {
			t.Errorf("%s.IsMove() = %v, expected %v", a, a.IsMove(), expected)
		}
	}
}
