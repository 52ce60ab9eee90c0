package cubesim

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
	None   Color = 6 // Interior sticker slot
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	case None:
		return "."
	default:
		return "?"
	}
}

// Dir identifies one of the six face directions of a cell.
// Sticker vectors are indexed by Dir in the fixed order
// +X, -X, +Y, -Y, +Z, -Z.
type Dir int

const (
	DirPosX Dir = 0 // +X (Right)
	DirNegX Dir = 1 // -X (Left)
	DirPosY Dir = 2 // +Y (Up)
	DirNegY Dir = 3 // -Y (Down)
	DirPosZ Dir = 4 // +Z (Front)
	DirNegZ Dir = 5 // -Z (Back)
)

func (d Dir) String() string {
	switch d {
	case DirPosX:
		return "+X"
	case DirNegX:
		return "-X"
	case DirPosY:
		return "+Y"
	case DirNegY:
		return "-Y"
	case DirPosZ:
		return "+Z"
	case DirNegZ:
		return "-Z"
	default:
		return "?"
	}
}

// Pos is an integer coordinate of a cell relative to the cube center.
// Each component is -1, 0, or 1.
type Pos struct {
	X, Y, Z int
}

// along returns the position component along the given axis.
func (p Pos) along(a Axis) int {
	switch a {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	default:
		return p.Z
	}
}

// Cell is one of the 27 unit pieces composing the puzzle.
// ID is a stable identity assigned at creation, for display-layer keying
// only; logical state is carried entirely by Pos and Stickers.
type Cell struct {
	ID       int
	Pos      Pos
	Stickers [6]Color
}

// solvedStickers derives a cell's sticker vector from its position:
// outward faces get their canonical face color, interior slots get None.
func solvedStickers(p Pos) [6]Color {
	s := [6]Color{None, None, None, None, None, None}
	if p.X == 1 {
		s[DirPosX] = Red
	}
	if p.X == -1 {
		s[DirNegX] = Orange
	}
	if p.Y == 1 {
		s[DirPosY] = White
	}
	if p.Y == -1 {
		s[DirNegY] = Yellow
	}
	if p.Z == 1 {
		s[DirPosZ] = Green
	}
	if p.Z == -1 {
		s[DirNegZ] = Blue
	}
	return s
}
