package cubesim

import (
	"fmt"
	"strings"
)

// Turn represents the direction of a quarter turn about a move's axis,
// viewed from the positive end of that axis. CW applies one +90 degree
// kernel step; CCW applies three.
type Turn int

const (
	CW  Turn = 1  // +90 degrees (right-hand rule)
	CCW Turn = -1 // -90 degrees
)

// Move is a single quarter turn of one layer about one axis.
//
// Layer selects the slice along Axis (-1, 0, or 1). Turn is expressed in
// kernel terms, not in face-letter terms: the "clockwise" of standard
// notation (viewed from outside the face) maps to CW for D, L, B and the
// M and E slices, but to CCW for U, R, F and the S slice. Use the
// predefined move variables or ParseMove to get the conventional moves
// with the correct signs.
type Move struct {
	Axis  Axis
	Layer int
	Turn  Turn
}

// NewMove constructs a Move, rejecting values outside the declared
// domains: axis X/Y/Z, layer -1/0/1, turn CW/CCW.
func NewMove(a Axis, layer int, turn Turn) (Move, error) {
	if a < AxisX || a > AxisZ {
		return Move{}, fmt.Errorf("%w: axis %d", ErrInvalidMove, int(a))
	}
	if layer < -1 || layer > 1 {
		return Move{}, fmt.Errorf("%w: layer %d", ErrInvalidMove, layer)
	}
	if turn != CW && turn != CCW {
		return Move{}, fmt.Errorf("%w: turn %d", ErrInvalidMove, int(turn))
	}
	return Move{Axis: a, Layer: layer, Turn: turn}, nil
}

// Inverse returns the inverse of this move (same axis and layer,
// opposite direction).
func (m Move) Inverse() Move {
	m.Turn = -m.Turn
	return m
}

// letter returns the standard notation letter for an axis/layer pair.
func letter(a Axis, layer int) byte {
	letters := [3][3]byte{
		{'L', 'M', 'R'}, // X: layer -1, 0, 1
		{'D', 'E', 'U'}, // Y
		{'B', 'S', 'F'}, // Z
	}
	return letters[a][layer+1]
}

// letterCW returns the kernel turn that realizes the letter's visual
// clockwise (viewed from outside the face). Faces on the negative end of
// their axis rotate with the kernel; faces on the positive end against
// it. M and E follow L and D; S follows F.
func letterCW(a Axis, layer int) Turn {
	switch {
	case layer == 1:
		return CCW
	case layer == -1:
		return CW
	case a == AxisZ:
		return CCW
	default:
		return CW
	}
}

// Notation returns the standard notation string for this move.
// Examples: R, R', U, U', M, S'
func (m Move) Notation() string {
	if m.Turn == letterCW(m.Axis, m.Layer) {
		return string(letter(m.Axis, m.Layer))
	}
	return string(letter(m.Axis, m.Layer)) + "'"
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// moveForLetter maps a notation letter to its axis and layer.
func moveForLetter(ch byte) (Axis, int, bool) {
	switch ch {
	case 'R', 'r':
		return AxisX, 1, true
	case 'L', 'l':
		return AxisX, -1, true
	case 'M', 'm':
		return AxisX, 0, true
	case 'U', 'u':
		return AxisY, 1, true
	case 'D', 'd':
		return AxisY, -1, true
	case 'E', 'e':
		return AxisY, 0, true
	case 'F', 'f':
		return AxisZ, 1, true
	case 'B', 'b':
		return AxisZ, -1, true
	case 'S', 's':
		return AxisZ, 0, true
	default:
		return 0, 0, false
	}
}

// ParseMove parses a single quarter turn in standard notation.
// Examples: R, R', U, U', M, S'
// Half turns ("R2") are not a single Move; ParseMoves expands them.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	axis, layer, ok := moveForLetter(s[0])
	if !ok {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	turn := letterCW(axis, layer)
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			turn = -turn
		default:
			return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
	}

	return Move{Axis: axis, Layer: layer, Turn: turn}, nil
}

// ParseMoves parses a space-separated move sequence.
// Example: "R U R' U'"
// Half turns are expanded into two quarter turns, so the result applies
// solver output ("R2 U F' ...") directly. Any invalid token fails the
// whole parse.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		if n := len(part); n > 1 && (part[n-1] == '2' || strings.HasSuffix(part, "2'") || strings.HasSuffix(part, "2`")) {
			m, err := ParseMove(strings.TrimSuffix(strings.TrimSuffix(strings.TrimSuffix(part, "'"), "`"), "2"))
			if err != nil {
				return nil, err
			}
			moves = append(moves, m, m)
			continue
		}
		m, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}

	return moves, nil
}

// FormatMoves formats a move sequence as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
