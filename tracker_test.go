package cubesim

import "testing"

func TestTrackerStartsSolved(t *testing.T) {
	tr := NewTracker()
	if !tr.IsSolved() {
		t.Error("New tracker should start solved")
	}
}

func TestTrackerApplyAndReset(t *testing.T) {
	tr := NewTracker()
	tr.Apply(R)
	if tr.IsSolved() {
		t.Error("Tracker should not be solved after move")
	}
	if tr.Notation() != "R" {
		t.Errorf("Notation = %q, want R", tr.Notation())
	}

	tr.Reset()
	if !tr.IsSolved() {
		t.Error("Tracker should be solved after reset")
	}
	if len(tr.Moves()) != 0 {
		t.Error("Reset should clear history")
	}
}

func TestTrackerUndo(t *testing.T) {
	tr := NewTracker()
	if tr.Undo() {
		t.Error("Undo on empty history should return false")
	}

	tr.ApplyMoves(R, U, FPrime)
	if !tr.Undo() || !tr.Undo() || !tr.Undo() {
		t.Fatal("Undo should succeed three times")
	}
	if !tr.IsSolved() {
		t.Error("Undoing every move should restore solved")
		t.Log(tr.Cube().String())
	}
}

func TestTrackerSolvedCallback(t *testing.T) {
	tr := NewTracker()
	fired := 0
	tr.SetSolvedCallback(func() { fired++ })

	tr.Apply(R)
	if fired != 0 {
		t.Error("callback should not fire while scrambled")
	}
	tr.Apply(RPrime)
	if fired != 1 {
		t.Errorf("callback fired %d times, want 1", fired)
	}
}

func TestTrackerFrom(t *testing.T) {
	start := New().Apply(R)
	tr := NewTrackerFrom(start)
	if tr.IsSolved() {
		t.Error("tracker from scrambled snapshot should not be solved")
	}
	tr.Apply(RPrime)
	if !tr.IsSolved() {
		t.Error("R' should solve an R-scrambled tracker")
	}
}
