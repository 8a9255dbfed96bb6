// Package solver finds optimal solutions to sliding puzzles with
// iterative-deepening A*.
package solver

import (
	"errors"
	"fmt"

	"github.com/benwh1/slidy/internal/puzzle"
)

// ErrUnknownHeuristic is returned by ParseHeuristic for unrecognized names.
var ErrUnknownHeuristic = errors.New("solver: unknown heuristic")

// Heuristic selects the lower-bound function used to prune the search. Both
// heuristics are admissible and consistent: they never overestimate the
// number of single-tile moves left, and a single move never changes the
// bound by more than one.
type Heuristic int

const (
	// ManhattanDistance sums each piece's taxicab distance to its solved
	// cell. The gap is not counted.
	ManhattanDistance Heuristic = iota

	// LinearConflict adds a conflict penalty to Manhattan distance. For
	// each row, among the pieces whose solved cell is in that row, the
	// largest group already ordered by solved column can slide home
	// without leaving the row; every other such piece must leave the row
	// and re-enter, which costs two extra moves. Columns contribute
	// symmetrically. Row conflicts charge vertical moves and column
	// conflicts horizontal moves, so the two penalties count disjoint
	// moves.
	LinearConflict
)

// ParseHeuristic reads a heuristic name as used on the command line.
func ParseHeuristic(s string) (Heuristic, error) {
	switch s {
	case "manhattan", "md":
		return ManhattanDistance, nil
	case "linear-conflict", "lc":
		return LinearConflict, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownHeuristic, s)
	}
}

// String returns the canonical heuristic name.
func (h Heuristic) String() string {
	if h == LinearConflict {
		return "linear-conflict"
	}
	return "manhattan"
}

// Bound returns a lower bound on the number of single-tile moves needed to
// solve p. The bound is 0 exactly when p is solved.
func (h Heuristic) Bound(p puzzle.Puzzle) int {
	s := p.Size()
	pieces := make([]int, s.Area())
	for i := range pieces {
		pieces[i] = p.Piece(i)
	}
	return h.bound(pieces, s.Width(), s.Height())
}

// bound is the raw-board form of Bound shared with the search loop.
func (h Heuristic) bound(pieces []int, w, hgt int) int {
	b := manhattan(pieces, w)
	if h == LinearConflict {
		b += conflicts(pieces, w, hgt)
	}
	return b
}

func manhattan(pieces []int, w int) int {
	sum := 0
	for i, p := range pieces {
		if p == 0 {
			continue
		}
		solved := p - 1
		dx := i%w - solved%w
		if dx < 0 {
			dx = -dx
		}
		dy := i/w - solved/w
		if dy < 0 {
			dy = -dy
		}
		sum += dx + dy
	}
	return sum
}

// conflicts returns the linear conflict penalty: two moves for every piece
// that has to leave its solved line to let the others through.
func conflicts(pieces []int, w, h int) int {
	total := 0
	seq := make([]int, 0, w)

	for y := 0; y < h; y++ {
		seq = seq[:0]
		for x := 0; x < w; x++ {
			p := pieces[y*w+x]
			if p != 0 && (p-1)/w == y {
				seq = append(seq, (p-1)%w)
			}
		}
		total += 2 * (len(seq) - longestIncreasing(seq))
	}

	for x := 0; x < w; x++ {
		seq = seq[:0]
		for y := 0; y < h; y++ {
			p := pieces[y*w+x]
			if p != 0 && (p-1)%w == x {
				seq = append(seq, (p-1)/w)
			}
		}
		total += 2 * (len(seq) - longestIncreasing(seq))
	}

	return total
}

// longestIncreasing returns the length of the longest strictly increasing
// subsequence. Lines are short, so the quadratic form is fine.
func longestIncreasing(seq []int) int {
	if len(seq) == 0 {
		return 0
	}
	best := make([]int, len(seq))
	max := 0
	for i := range seq {
		best[i] = 1
		for j := 0; j < i; j++ {
			if seq[j] < seq[i] && best[j]+1 > best[i] {
				best[i] = best[j] + 1
			}
		}
		if best[i] > max {
			max = best[i]
		}
	}
	return max
}
