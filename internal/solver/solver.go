package solver

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/benwh1/slidy/internal/algorithm"
	"github.com/benwh1/slidy/internal/puzzle"
)

// Sentinel errors returned by Solve. ErrBudgetExceeded means the search gave
// up within its configured limits; the puzzle may still have a solution.
// ErrUnsolvable means no solution exists at all.
var (
	ErrUnsolvable     = errors.New("solver: puzzle is unsolvable")
	ErrBudgetExceeded = errors.New("solver: search budget exceeded")
)

// DefaultMaxBound caps how deep the iterative deepening may go when no
// explicit limit is configured.
const DefaultMaxBound = 255

// found signals a solution below the recursion.
const found = -1

// Option configures a Solver.
type Option func(*Solver)

// WithHeuristic selects the lower-bound function. The default is
// ManhattanDistance.
func WithHeuristic(h Heuristic) Option {
	return func(s *Solver) { s.heuristic = h }
}

// WithMaxBound caps the depth bound the search may reach. Solve fails with
// ErrBudgetExceeded once the next bound would exceed n.
func WithMaxBound(n int) Option {
	return func(s *Solver) { s.maxBound = n }
}

// WithNodeBudget caps the total number of expanded nodes across all
// iterations. Zero means no limit.
func WithNodeBudget(n uint64) Option {
	return func(s *Solver) { s.nodeBudget = n }
}

// Iteration records one depth-bound pass of the search.
type Iteration struct {
	Bound int
	Nodes uint64
}

// Stats describes the effort spent by the most recent Solve call.
type Stats struct {
	// Nodes is the total number of expanded nodes.
	Nodes uint64
	// Iterations lists every attempted bound in order. Bounds grow
	// monotonically, and a successful solve ends with a bound equal to
	// the solution length.
	Iterations []Iteration
	// Duration is the wall-clock time of the solve.
	Duration time.Duration
}

// Solver finds shortest solutions, measured in single-tile moves, using
// iterative-deepening A*. The bound starts at the heuristic value of the
// start state and advances to the smallest pruned f value after each failed
// pass; the search never explores a branch whose cost bound is exceeded and
// never immediately undoes the previous move.
//
// A Solver can be reused for several puzzles but not concurrently.
type Solver struct {
	heuristic  Heuristic
	maxBound   int
	nodeBudget uint64

	// Working state of the current solve. The board is a mutable scratch
	// copy, so Puzzle values handed to Solve are never modified.
	pieces []int
	w, h   int
	gap    int
	path   []algorithm.Direction
	nodes  uint64
	stats  Stats
}

// New builds a Solver with the given options.
func New(opts ...Option) *Solver {
	s := &Solver{
		heuristic: ManhattanDistance,
		maxBound:  DefaultMaxBound,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Stats returns the statistics of the most recent Solve call.
func (s *Solver) Stats() Stats {
	return s.stats
}

// Solve returns a shortest solution for p. Runs of moves in the same
// direction are combined, so a solution may read "D2R" rather than "DDR";
// its LenSTM always equals the optimal single-tile move count.
func (s *Solver) Solve(p puzzle.Puzzle) (algorithm.Algorithm, error) {
	start := time.Now()
	s.stats = Stats{}

	if !puzzle.Solvable(p) {
		return algorithm.Algorithm{}, fmt.Errorf("%w: %q", ErrUnsolvable, p.String())
	}

	size := p.Size()
	s.w, s.h = size.Width(), size.Height()
	s.pieces = make([]int, size.Area())
	for i := range s.pieces {
		s.pieces[i] = p.Piece(i)
	}
	s.gap = p.GapPosition()
	s.path = s.path[:0]
	s.nodes = 0

	bound := s.heuristic.bound(s.pieces, s.w, s.h)
	for {
		if bound > s.maxBound {
			s.finish(start)
			return algorithm.Algorithm{}, fmt.Errorf("%w: next bound %d is above the limit %d",
				ErrBudgetExceeded, bound, s.maxBound)
		}

		before := s.nodes
		t, err := s.search(0, bound)
		s.stats.Iterations = append(s.stats.Iterations, Iteration{Bound: bound, Nodes: s.nodes - before})
		if err != nil {
			s.finish(start)
			return algorithm.Algorithm{}, err
		}
		if t == found {
			s.finish(start)
			var solution algorithm.Algorithm
			for _, d := range s.path {
				solution.PushCombine(algorithm.Move{Dir: d, Amount: 1})
			}
			return solution, nil
		}
		bound = t
	}
}

func (s *Solver) finish(start time.Time) {
	s.stats.Nodes = s.nodes
	s.stats.Duration = time.Since(start)
}

// search explores all paths of cost at most bound below the current state.
// It returns found when a solution was reached, leaving the move sequence in
// s.path, and otherwise the smallest f value that exceeded the bound.
func (s *Solver) search(g, bound int) (int, error) {
	h := s.heuristic.bound(s.pieces, s.w, s.h)
	f := g + h
	if f > bound {
		return f, nil
	}
	if h == 0 {
		return found, nil
	}

	if s.nodeBudget > 0 && s.nodes >= s.nodeBudget {
		return 0, fmt.Errorf("%w: node budget %d exhausted at depth %d", ErrBudgetExceeded, s.nodeBudget, g)
	}
	s.nodes++

	min := math.MaxInt
	for _, d := range algorithm.Directions {
		if n := len(s.path); n > 0 && d == s.path[n-1].Inverse() {
			continue
		}
		if !s.canMove(d) {
			continue
		}

		s.move(d)
		s.path = append(s.path, d)
		t, err := s.search(g+1, bound)
		if err != nil {
			return 0, err
		}
		if t == found {
			return found, nil
		}
		s.path = s.path[:len(s.path)-1]
		s.move(d.Inverse())

		if t < min {
			min = t
		}
	}
	return min, nil
}

// canMove mirrors Puzzle.CanMove on the scratch board.
func (s *Solver) canMove(d algorithm.Direction) bool {
	switch d {
	case algorithm.Up:
		return s.gap+s.w < len(s.pieces)
	case algorithm.Left:
		return s.gap%s.w < s.w-1
	case algorithm.Down:
		return s.gap >= s.w
	default:
		return s.gap%s.w > 0
	}
}

// move slides one piece in direction d on the scratch board.
func (s *Solver) move(d algorithm.Direction) {
	var step int
	switch d {
	case algorithm.Up:
		step = s.w
	case algorithm.Left:
		step = 1
	case algorithm.Down:
		step = -s.w
	default:
		step = -1
	}
	s.pieces[s.gap] = s.pieces[s.gap+step]
	s.gap += step
	s.pieces[s.gap] = 0
}
