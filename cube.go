package cubesim

import "strings"

// Cube represents the logical state of a 3x3 puzzle as 27 positioned
// cells. A Cube is an immutable snapshot: Apply and ApplyMoves return a
// new Cube and never touch the receiver, so a stale reference always
// observes a frozen state.
type Cube struct {
	cells [27]Cell
}

// New creates a solved cube with standard orientation:
// White on top, Green in front. Cell IDs are assigned in a fixed
// position-scan order and remain stable across moves.
func New() *Cube {
	c := &Cube{}
	id := 0
	for x := -1; x <= 1; x++ {
		for y := -1; y <= 1; y++ {
			for z := -1; z <= 1; z++ {
				p := Pos{x, y, z}
				c.cells[id] = Cell{ID: id, Pos: p, Stickers: solvedStickers(p)}
				id++
			}
		}
	}
	return c
}

// Apply returns the cube after a single quarter turn. Cells in the
// selected layer rotate position and sticker vector together; all other
// cells pass through unchanged.
func (c *Cube) Apply(m Move) *Cube {
	steps := 1
	if m.Turn == CCW {
		steps = 3
	}

	next := *c
	for i := range next.cells {
		cell := &next.cells[i]
		if cell.Pos.along(m.Axis) != m.Layer {
			continue
		}
		for s := 0; s < steps; s++ {
			cell.Pos = rotatePos(cell.Pos, m.Axis)
			cell.Stickers = rotateStickers(cell.Stickers, m.Axis)
		}
	}
	return &next
}

// ApplyMoves applies a sequence of moves and returns the final snapshot.
func (c *Cube) ApplyMoves(moves ...Move) *Cube {
	for _, m := range moves {
		c = c.Apply(m)
	}
	return c
}

// ApplyNotation applies a space-separated notation sequence.
// Example: "R U R' U'"
func (c *Cube) ApplyNotation(s string) (*Cube, error) {
	moves, err := ParseMoves(s)
	if err != nil {
		return nil, err
	}
	return c.ApplyMoves(moves...), nil
}

// CellAt returns the cell currently occupying the given position.
func (c *Cube) CellAt(p Pos) (Cell, bool) {
	for _, cell := range c.cells {
		if cell.Pos == p {
			return cell, true
		}
	}
	return Cell{}, false
}

// Cells returns a copy of the 27 cells in stable ID order.
func (c *Cube) Cells() []Cell {
	out := make([]Cell, len(c.cells))
	copy(out, c.cells[:])
	return out
}

// Sticker returns the sticker color of the cell at position p in
// direction d, or None if no cell occupies p.
func (c *Cube) Sticker(p Pos, d Dir) Color {
	cell, ok := c.CellAt(p)
	if !ok {
		return None
	}
	return cell.Stickers[d]
}

// IsSolved returns true if every cell's sticker vector matches the
// solved assignment for the position it currently occupies.
func (c *Cube) IsSolved() bool {
	for _, cell := range c.cells {
		if cell.Stickers != solvedStickers(cell.Pos) {
			return false
		}
	}
	return true
}

// Equal reports whether two snapshots hold the same cell positions and
// sticker vectors (cell IDs included).
func (c *Cube) Equal(o *Cube) bool {
	return c.cells == o.cells
}

// Face returns the 9 sticker colors of a face, scanned row-major as seen
// from outside the cube. Interior inconsistencies are not checked here;
// a missing cell reads as None. Use Encode for validated serialization.
func (c *Cube) Face(f Face) [9]Color {
	var out [9]Color
	d := faceDir(f)
	for i, p := range scanPositions(f) {
		out[i] = c.Sticker(p, d)
	}
	return out
}

// String returns an unfolded-net text representation of the cube.
func (c *Cube) String() string {
	var b strings.Builder

	u := c.Face(FaceU)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(u[row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B side by side
	l, f, r, back := c.Face(FaceL), c.Face(FaceF), c.Face(FaceR), c.Face(FaceB)
	for row := 0; row < 3; row++ {
		for _, face := range [][9]Color{l, f, r, back} {
			for col := 0; col < 3; col++ {
				b.WriteString(face[row*3+col].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	d := c.Face(FaceD)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(d[row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}
