// Package cubesim provides the state engine for a 3x3x3 twisty puzzle:
// a cell-based cube model, the quarter-turn move algebra, and the
// canonical facelet-string codec used to talk to an external solver.
//
// # Cube model
//
// The cube is 27 cells, each with an integer position in {-1,0,1}^3 and
// a 6-slot sticker vector indexed by face direction. A move rotates the
// cells of one layer: positions and sticker slots transform together
// through the same +90 degree kernel, so a cell's stickers always face
// the right way for wherever it ends up. Snapshots are immutable; every
// move returns a new Cube.
//
//	state := cubesim.New()
//	state = state.ApplyMoves(cubesim.R, cubesim.U, cubesim.RPrime, cubesim.UPrime)
//	fmt.Println("Solved:", state.IsSolved())
//
// # Notation
//
// Moves carry an axis, a layer, and a kernel-signed turn direction. The
// usual face letters (and the M/E/S slices) are predefined with the
// correct signs, and notation strings round-trip through ParseMoves and
// FormatMoves:
//
//	state, err := cubesim.New().ApplyNotation("F B2 L' D")
//
// # Facelet serialization
//
// Encode produces the 54-character facelet string (face order U, R, F,
// D, L, B, 9 stickers per face, labeled by center color) consumed by
// two-phase solvers; Decode is its inverse. Both fail loudly on any
// state that violates the cube invariants instead of papering over it.
//
//	facelets, err := state.Encode()
//
// # Driving the engine
//
// A presentation layer (TUI, GUI, or headless client) feeds discrete
// moves to a Tracker and reads snapshots back for display. The engine
// is synchronous and pure; animation, input handling, and solving are
// the caller's concern.
package cubesim
