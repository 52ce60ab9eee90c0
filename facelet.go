package cubesim

import (
	"fmt"
	"strings"
)

// Face identifies one of the six fixed faces, in canonical facelet-string
// order U, R, F, D, L, B.
type Face int

const (
	FaceU Face = 0 // Up    (+Y)
	FaceR Face = 1 // Right (+X)
	FaceF Face = 2 // Front (+Z)
	FaceD Face = 3 // Down  (-Y)
	FaceL Face = 4 // Left  (-X)
	FaceB Face = 5 // Back  (-Z)
)

func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceR:
		return "R"
	case FaceF:
		return "F"
	case FaceD:
		return "D"
	case FaceL:
		return "L"
	case FaceB:
		return "B"
	default:
		return "?"
	}
}

// faceDir returns the outward direction of a face's stickers.
func faceDir(f Face) Dir {
	switch f {
	case FaceU:
		return DirPosY
	case FaceR:
		return DirPosX
	case FaceF:
		return DirPosZ
	case FaceD:
		return DirNegY
	case FaceL:
		return DirNegX
	default:
		return DirNegZ
	}
}

// centerPos returns the position of a face's center cell.
func centerPos(f Face) Pos {
	switch f {
	case FaceU:
		return Pos{0, 1, 0}
	case FaceR:
		return Pos{1, 0, 0}
	case FaceF:
		return Pos{0, 0, 1}
	case FaceD:
		return Pos{0, -1, 0}
	case FaceL:
		return Pos{-1, 0, 0}
	default:
		return Pos{0, 0, -1}
	}
}

// faceColor returns the canonical color of a face when solved.
func faceColor(f Face) Color {
	switch f {
	case FaceU:
		return White
	case FaceR:
		return Red
	case FaceF:
		return Green
	case FaceD:
		return Yellow
	case FaceL:
		return Orange
	default:
		return Blue
	}
}

// scanPositions returns the 9 cell positions of a face in facelet order:
// row-major as seen from outside the cube, matching the layout the
// two-phase solver expects. Index 4 is always the face center.
func scanPositions(f Face) [9]Pos {
	var out [9]Pos
	i := 0
	switch f {
	case FaceU:
		for z := -1; z <= 1; z++ {
			for x := -1; x <= 1; x++ {
				out[i] = Pos{x, 1, z}
				i++
			}
		}
	case FaceR:
		for y := 1; y >= -1; y-- {
			for z := 1; z >= -1; z-- {
				out[i] = Pos{1, y, z}
				i++
			}
		}
	case FaceF:
		for y := 1; y >= -1; y-- {
			for x := -1; x <= 1; x++ {
				out[i] = Pos{x, y, 1}
				i++
			}
		}
	case FaceD:
		for z := 1; z >= -1; z-- {
			for x := -1; x <= 1; x++ {
				out[i] = Pos{x, -1, z}
				i++
			}
		}
	case FaceL:
		for y := 1; y >= -1; y-- {
			for z := -1; z <= 1; z++ {
				out[i] = Pos{-1, y, z}
				i++
			}
		}
	case FaceB:
		for y := 1; y >= -1; y-- {
			for x := 1; x >= -1; x-- {
				out[i] = Pos{x, y, -1}
				i++
			}
		}
	}
	return out
}

// centerLabels builds the color-to-label map from the six center cells.
// A missing center cell or two centers sharing a color means the state
// invariant has been violated somewhere; both fail hard.
func (c *Cube) centerLabels() (map[Color]byte, error) {
	labels := make(map[Color]byte, 6)
	for f := FaceU; f <= FaceB; f++ {
		cell, ok := c.CellAt(centerPos(f))
		if !ok {
			return nil, fmt.Errorf("%w: no cell at %s center %v", ErrInvalidState, f, centerPos(f))
		}
		color := cell.Stickers[faceDir(f)]
		if prev, dup := labels[color]; dup {
			return nil, fmt.Errorf("%w: faces %c and %s share center color %s",
				ErrInvalidState, prev, f, color)
		}
		labels[color] = f.String()[0]
	}
	return labels, nil
}

// Encode serializes the cube into the canonical 54-character facelet
// string: faces in U, R, F, D, L, B order, 9 stickers per face, each
// sticker written as the label of the face whose center shares its
// color. Any inconsistency (missing cell, duplicate center color, a
// sticker color with no center) is an invariant violation and is
// reported rather than defaulted.
func (c *Cube) Encode() (string, error) {
	labels, err := c.centerLabels()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(54)
	for f := FaceU; f <= FaceB; f++ {
		d := faceDir(f)
		for _, p := range scanPositions(f) {
			cell, ok := c.CellAt(p)
			if !ok {
				return "", fmt.Errorf("%w: no cell at %v", ErrInvalidState, p)
			}
			label, ok := labels[cell.Stickers[d]]
			if !ok {
				return "", fmt.Errorf("%w: sticker %s at %v matches no center color",
					ErrInvalidState, cell.Stickers[d], p)
			}
			b.WriteByte(label)
		}
	}
	return b.String(), nil
}

// Decode reconstructs a cube from a 54-symbol facelet string by
// inverting the Encode scan. The string must be exactly 54 bytes using
// exactly 6 distinct symbols, 9 occurrences each, with pairwise distinct
// center symbols; each block's center symbol is mapped to the canonical
// color of that block's face. Interior sticker slots come back as None.
//
// Decode inverts Encode textually, not physically: it does not check
// that the sticker arrangement is reachable by legal moves.
func Decode(s string) (*Cube, error) {
	if len(s) != 54 {
		return nil, fmt.Errorf("%w: length %d, want 54", ErrInvalidFacelets, len(s))
	}

	counts := make(map[byte]int, 6)
	for i := 0; i < len(s); i++ {
		counts[s[i]]++
	}
	if len(counts) != 6 {
		return nil, fmt.Errorf("%w: %d distinct symbols, want 6", ErrInvalidFacelets, len(counts))
	}
	for sym, n := range counts {
		if n != 9 {
			return nil, fmt.Errorf("%w: symbol %q appears %d times, want 9", ErrInvalidFacelets, sym, n)
		}
	}

	// Anchor each block's center symbol to its face's canonical color.
	colors := make(map[byte]Color, 6)
	for f := FaceU; f <= FaceB; f++ {
		sym := s[int(f)*9+4]
		if _, dup := colors[sym]; dup {
			return nil, fmt.Errorf("%w: symbol %q is the center of two faces", ErrInvalidFacelets, sym)
		}
		colors[sym] = faceColor(f)
	}

	c := &Cube{}
	id := 0
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				c.cells[id] = Cell{
					ID:       id,
					Pos:      Pos{x, y, z},
					Stickers: [6]Color{None, None, None, None, None, None},
				}
				id++
			}
		}
	}

	for f := FaceU; f <= FaceB; f++ {
		d := faceDir(f)
		for i, p := range scanPositions(f) {
			for j := range c.cells {
				if c.cells[j].Pos == p {
					c.cells[j].Stickers[d] = colors[s[int(f)*9+i]]
					break
				}
			}
		}
	}
	return c, nil
}
