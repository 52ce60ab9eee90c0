package cubesim

// Axis identifies a principal rotation axis.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "?"
	}
}

// rotatePos rotates a position +90 degrees about the given axis,
// right-hand rule:
//
//	X: (x, y, z) -> (x, -z, y)
//	Y: (x, y, z) -> (z, y, -x)
//	Z: (x, y, z) -> (-y, x, z)
func rotatePos(p Pos, a Axis) Pos {
	switch a {
	case AxisX:
		return Pos{p.X, -p.Z, p.Y}
	case AxisY:
		return Pos{p.Z, p.Y, -p.X}
	default:
		return Pos{-p.Y, p.X, p.Z}
	}
}

// rotateStickers rotates a sticker vector +90 degrees about the given axis.
// The four slots perpendicular to the axis cycle with the rotation; the two
// slots parallel to it are unchanged. Each assignment mirrors rotatePos: the
// slot a sticker lands in is the rotated image of the direction it faced.
func rotateStickers(s [6]Color, a Axis) [6]Color {
	out := s
	switch a {
	case AxisX:
		out[DirPosZ] = s[DirPosY] // +Y faces +Z after the turn
		out[DirNegY] = s[DirPosZ]
		out[DirNegZ] = s[DirNegY]
		out[DirPosY] = s[DirNegZ]
	case AxisY:
		out[DirNegZ] = s[DirPosX] // +X faces -Z after the turn
		out[DirNegX] = s[DirNegZ]
		out[DirPosZ] = s[DirNegX]
		out[DirPosX] = s[DirPosZ]
	default:
		out[DirPosY] = s[DirPosX] // +X faces +Y after the turn
		out[DirNegX] = s[DirPosY]
		out[DirNegY] = s[DirNegX]
		out[DirPosX] = s[DirNegY]
	}
	return out
}
