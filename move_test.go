package cubesim

import (
	"errors"
	"testing"
)

// The letter-to-kernel sign table is the most error-prone piece of the
// whole engine: a wrong sign still produces a plausible-looking cube.
// Every letter gets its own explicit expectation here.
func TestPredefinedMoveSigns(t *testing.T) {
	cases := []struct {
		name string
		move Move
		want Move
	}{
		{"U", U, Move{AxisY, 1, CCW}},
		{"D", D, Move{AxisY, -1, CW}},
		{"L", L, Move{AxisX, -1, CW}},
		{"R", R, Move{AxisX, 1, CCW}},
		{"F", F, Move{AxisZ, 1, CCW}},
		{"B", B, Move{AxisZ, -1, CW}},
		{"M", M, Move{AxisX, 0, CW}},
		{"E", E, Move{AxisY, 0, CW}},
		{"S", S, Move{AxisZ, 0, CCW}},
	}
	for _, c := range cases {
		if c.move != c.want {
			t.Errorf("%s = %+v, want %+v", c.name, c.move, c.want)
		}
		if c.move.Notation() != c.name {
			t.Errorf("%s.Notation() = %q", c.name, c.move.Notation())
		}
		inv := c.move.Inverse()
		if inv.Notation() != c.name+"'" {
			t.Errorf("%s.Inverse().Notation() = %q", c.name, inv.Notation())
		}
	}
}

// Each letter's visual clockwise sends a characteristic edge cell to a
// known destination: U takes the front edge to the left, R takes the
// front edge up, and so on.
func TestLetterDestinations(t *testing.T) {
	cases := []struct {
		name string
		move Move
		from Pos
		to   Pos
	}{
		{"U", U, Pos{0, 1, 1}, Pos{-1, 1, 0}},   // F -> L
		{"D", D, Pos{0, -1, 1}, Pos{1, -1, 0}},  // F -> R
		{"L", L, Pos{-1, 1, 0}, Pos{-1, 0, 1}},  // U -> F
		{"R", R, Pos{1, 0, 1}, Pos{1, 1, 0}},    // F -> U
		{"F", F, Pos{0, 1, 1}, Pos{1, 0, 1}},    // U -> R
		{"B", B, Pos{0, 1, -1}, Pos{-1, 0, -1}}, // U -> L
		{"M", M, Pos{0, 1, 0}, Pos{0, 0, 1}},    // U -> F
		{"E", E, Pos{0, 0, 1}, Pos{1, 0, 0}},    // F -> R
		{"S", S, Pos{0, 1, 0}, Pos{1, 0, 0}},    // U -> R
	}
	for _, c := range cases {
		start := New()
		before, ok := start.CellAt(c.from)
		if !ok {
			t.Fatalf("%s: no cell at %v", c.name, c.from)
		}
		after := start.Apply(c.move)
		got, ok := after.CellAt(c.to)
		if !ok {
			t.Fatalf("%s: no cell at %v after move", c.name, c.to)
		}
		if got.ID != before.ID {
			t.Errorf("%s: cell at %v is #%d, want #%d (from %v)",
				c.name, c.to, got.ID, before.ID, c.from)
		}
	}
}

func TestNewMoveValidation(t *testing.T) {
	if _, err := NewMove(AxisX, 1, CCW); err != nil {
		t.Errorf("valid move rejected: %v", err)
	}

	bad := []struct {
		axis  Axis
		layer int
		turn  Turn
	}{
		{Axis(3), 0, CW},
		{Axis(-1), 0, CW},
		{AxisY, 2, CW},
		{AxisY, -2, CCW},
		{AxisZ, 0, Turn(0)},
		{AxisZ, 0, Turn(2)},
	}
	for _, c := range bad {
		if _, err := NewMove(c.axis, c.layer, c.turn); !errors.Is(err, ErrInvalidMove) {
			t.Errorf("NewMove(%v, %d, %d): err = %v, want ErrInvalidMove", c.axis, c.layer, c.turn, err)
		}
	}
}

func TestParseMoveRoundTrip(t *testing.T) {
	all := []Move{
		U, UPrime, D, DPrime, L, LPrime, R, RPrime, F, FPrime, B, BPrime,
		M, MPrime, E, EPrime, S, SPrime,
	}
	for _, m := range all {
		got, err := ParseMove(m.Notation())
		if err != nil {
			t.Errorf("ParseMove(%q): %v", m.Notation(), err)
			continue
		}
		if got != m {
			t.Errorf("ParseMove(%q) = %+v, want %+v", m.Notation(), got, m)
		}
	}
}

func TestParseMoveInvalid(t *testing.T) {
	for _, s := range []string{"", "X", "R2", "R''", "RU"} {
		if _, err := ParseMove(s); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q): err = %v, want ErrInvalidNotation", s, err)
		}
	}
}

func TestParseMoves(t *testing.T) {
	moves, err := ParseMoves("R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	want := []Move{R, U, RPrime, UPrime}
	if len(moves) != len(want) {
		t.Fatalf("got %d moves, want %d", len(moves), len(want))
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("moves[%d] = %v, want %v", i, moves[i], want[i])
		}
	}
}

func TestParseMovesExpandsHalfTurns(t *testing.T) {
	moves, err := ParseMoves("R2 U F'")
	if err != nil {
		t.Fatal(err)
	}
	want := []Move{R, R, U, FPrime}
	if len(moves) != len(want) {
		t.Fatalf("got %v, want %v", moves, want)
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("moves[%d] = %v, want %v", i, moves[i], want[i])
		}
	}
}

func TestParseMovesHalfTurnPrimeVariants(t *testing.T) {
	// R2, R2' and R2` all mean the same half turn.
	for _, s := range []string{"R2", "R2'", "R2`"} {
		moves, err := ParseMoves(s)
		if err != nil {
			t.Fatalf("ParseMoves(%q): %v", s, err)
		}
		if len(moves) != 2 || moves[0] != R || moves[1] != R {
			t.Errorf("ParseMoves(%q) = %v, want [R R]", s, moves)
		}
	}
}

func TestParseMovesRejectsInvalidToken(t *testing.T) {
	if _, err := ParseMoves("R U X' F"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("err = %v, want ErrInvalidNotation", err)
	}
}

func TestFormatMoves(t *testing.T) {
	if got := FormatMoves(nil); got != "" {
		t.Errorf("FormatMoves(nil) = %q", got)
	}
	if got := FormatMoves([]Move{R, U, RPrime, UPrime}); got != "R U R' U'" {
		t.Errorf("FormatMoves = %q", got)
	}
}
