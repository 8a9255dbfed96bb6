package puzzle

// Parity returns 0 when the permutation taking each cell's current occupant
// to its solved cell is even, and 1 when it is odd. The gap counts as an
// occupant whose solved cell is the bottom right corner.
//
// The parity is computed from the cycle decomposition: a cycle of length L
// contributes L-1 transpositions.
func Parity(p Puzzle) int {
	n := p.size.Area()
	seen := make([]bool, n)
	transpositions := 0
	for i := 0; i < n; i++ {
		if seen[i] {
			continue
		}
		length := 0
		for j := i; !seen[j]; j = p.SolvedPos(p.pieces[j]) {
			seen[j] = true
			length++
		}
		transpositions += length - 1
	}
	return transpositions % 2
}

// Solvable reports whether p can reach the solved state. A state is solvable
// exactly when the permutation parity and the parity of the gap's taxicab
// distance from its solved corner agree: every slide flips both at once, and
// the solved state has both even.
func Solvable(p Puzzle) bool {
	gx, gy := p.GapXY()
	gapDist := (p.size.w - 1 - gx) + (p.size.h - 1 - gy)
	return (Parity(p)+gapDist)%2 == 0
}
