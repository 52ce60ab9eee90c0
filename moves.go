package cubesim

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually; the Turn signs
// already reconcile face-letter clockwise with the rotation kernel.
//
// Example:
//
//	state = state.ApplyMoves(cubesim.R, cubesim.U, cubesim.RPrime, cubesim.UPrime)
var (
	// Right face moves (axis X, layer +1)
	R      = Move{Axis: AxisX, Layer: 1, Turn: CCW} // Right clockwise
	RPrime = Move{Axis: AxisX, Layer: 1, Turn: CW}  // Right counter-clockwise

	// Left face moves (axis X, layer -1)
	L      = Move{Axis: AxisX, Layer: -1, Turn: CW}  // Left clockwise
	LPrime = Move{Axis: AxisX, Layer: -1, Turn: CCW} // Left counter-clockwise

	// Up face moves (axis Y, layer +1)
	U      = Move{Axis: AxisY, Layer: 1, Turn: CCW} // Up clockwise
	UPrime = Move{Axis: AxisY, Layer: 1, Turn: CW}  // Up counter-clockwise

	// Down face moves (axis Y, layer -1)
	D      = Move{Axis: AxisY, Layer: -1, Turn: CW}  // Down clockwise
	DPrime = Move{Axis: AxisY, Layer: -1, Turn: CCW} // Down counter-clockwise

	// Front face moves (axis Z, layer +1)
	F      = Move{Axis: AxisZ, Layer: 1, Turn: CCW} // Front clockwise
	FPrime = Move{Axis: AxisZ, Layer: 1, Turn: CW}  // Front counter-clockwise

	// Back face moves (axis Z, layer -1)
	B      = Move{Axis: AxisZ, Layer: -1, Turn: CW}  // Back clockwise
	BPrime = Move{Axis: AxisZ, Layer: -1, Turn: CCW} // Back counter-clockwise

	// Slice moves: M follows L, E follows D, S follows F
	M      = Move{Axis: AxisX, Layer: 0, Turn: CW}
	MPrime = Move{Axis: AxisX, Layer: 0, Turn: CCW}
	E      = Move{Axis: AxisY, Layer: 0, Turn: CW}
	EPrime = Move{Axis: AxisY, Layer: 0, Turn: CCW}
	S      = Move{Axis: AxisZ, Layer: 0, Turn: CCW}
	SPrime = Move{Axis: AxisZ, Layer: 0, Turn: CW}
)

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{R, U, RPrime, UPrime}

// Inverse sexy move: U R U' R'
var InverseSexyMove = []Move{U, R, UPrime, RPrime}

// T-Perm: R U R' U' R' F R2 U' R' U' R U R' F' - swaps two adjacent
// corners and two edges. The R2 is written as two quarter turns.
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R, R, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
