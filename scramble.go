package cubesim

import "math/rand/v2"

// outerMoves is the scramble vocabulary: the 12 outer-layer quarter turns.
var outerMoves = []Move{
	R, RPrime, L, LPrime,
	U, UPrime, D, DPrime,
	F, FPrime, B, BPrime,
}

// Scramble generates a random scramble of n quarter turns using the
// default shared random source. Consecutive moves never turn the same
// layer, so no pair trivially cancels or merges.
func Scramble(n int) []Move {
	return scramble(n, rand.IntN)
}

// ScrambleSeeded generates a deterministic scramble for a seed.
// Useful for reproducing a session.
func ScrambleSeeded(n int, seed uint64) []Move {
	rng := rand.New(rand.NewPCG(seed, seed))
	return scramble(n, rng.IntN)
}

func scramble(n int, intN func(int) int) []Move {
	moves := make([]Move, 0, n)
	for len(moves) < n {
		m := outerMoves[intN(len(outerMoves))]
		if len(moves) > 0 {
			prev := moves[len(moves)-1]
			if prev.Axis == m.Axis && prev.Layer == m.Layer {
				continue
			}
		}
		moves = append(moves, m)
	}
	return moves
}
