package cubesim

// Tracker wraps a sequence of cube snapshots and the move history that
// produced them. It is the intended driver surface for a presentation
// layer: one move in, one new snapshot out, with undo support. The
// tracker itself is not safe for concurrent use; callers must apply at
// most one move at a time.
type Tracker struct {
	current *Cube
	history []Move

	solvedCallback func()
}

// NewTracker creates a tracker starting from a solved cube.
func NewTracker() *Tracker {
	return &Tracker{current: New()}
}

// NewTrackerFrom creates a tracker starting from an existing snapshot.
func NewTrackerFrom(c *Cube) *Tracker {
	return &Tracker{current: c}
}

// SetSolvedCallback sets a callback that fires when a move brings the
// cube into the solved state.
func (t *Tracker) SetSolvedCallback(cb func()) {
	t.solvedCallback = cb
}

// Reset resets the tracker to a solved cube and clears the history.
func (t *Tracker) Reset() {
	t.current = New()
	t.history = nil
}

// Apply applies a move, records it, and returns the new snapshot.
func (t *Tracker) Apply(m Move) *Cube {
	t.current = t.current.Apply(m)
	t.history = append(t.history, m)
	if t.solvedCallback != nil && t.current.IsSolved() {
		t.solvedCallback()
	}
	return t.current
}

// ApplyMoves applies multiple moves in order.
func (t *Tracker) ApplyMoves(moves ...Move) *Cube {
	for _, m := range moves {
		t.Apply(m)
	}
	return t.current
}

// Undo reverts the most recent move by applying its inverse.
// Returns false if there is nothing to undo.
func (t *Tracker) Undo() bool {
	if len(t.history) == 0 {
		return false
	}
	last := t.history[len(t.history)-1]
	t.current = t.current.Apply(last.Inverse())
	t.history = t.history[:len(t.history)-1]
	return true
}

// Cube returns the current snapshot.
func (t *Tracker) Cube() *Cube {
	return t.current
}

// Moves returns a copy of the move history.
func (t *Tracker) Moves() []Move {
	out := make([]Move, len(t.history))
	copy(out, t.history)
	return out
}

// Notation returns the move history as a notation string.
func (t *Tracker) Notation() string {
	return FormatMoves(t.history)
}

// IsSolved returns true if the current snapshot is solved.
func (t *Tracker) IsSolved() bool {
	return t.current.IsSolved()
}
