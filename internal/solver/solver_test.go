package solver

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/benwh1/slidy/internal/algorithm"
	"github.com/benwh1/slidy/internal/puzzle"
	"github.com/benwh1/slidy/internal/scramble"
)

// bfsOptimal returns the true optimal solution length by breadth-first
// search. Only usable for small boards.
func bfsOptimal(t *testing.T, start puzzle.Puzzle) int {
	t.Helper()
	if start.IsSolved() {
		return 0
	}
	type node struct {
		p     puzzle.Puzzle
		depth int
	}
	seen := map[string]bool{start.String(): true}
	queue := []node{{start, 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range algorithm.Directions {
			if !cur.p.CanMove(d) {
				continue
			}
			next, err := cur.p.Apply(algorithm.Move{Dir: d, Amount: 1})
			if err != nil {
				t.Fatalf("Apply: %v", err)
			}
			if next.IsSolved() {
				return cur.depth + 1
			}
			key := next.String()
			if seen[key] {
				continue
			}
			seen[key] = true
			queue = append(queue, node{next, cur.depth + 1})
		}
	}
	t.Fatalf("breadth-first search exhausted the space from %q", start.String())
	return -1
}

func TestSolveAlreadySolved(t *testing.T) {
	s := New()
	solution, err := s.Solve(puzzle.New(puzzle.MustSize(3, 3)))
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if !solution.IsEmpty() {
		t.Errorf("Solve(solved) = %q, want empty", solution.String())
	}
	if stats := s.Stats(); stats.Nodes != 0 {
		t.Errorf("Stats.Nodes = %d, want 0", stats.Nodes)
	}
}

func TestSolveOneMove(t *testing.T) {
	p, err := puzzle.Parse("1 2 3/4 5 0/7 8 6")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	solution, err := New().Solve(p)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if got := solution.String(); got != "U" {
		t.Errorf("Solve = %q, want %q", got, "U")
	}
}

func TestSolveThreeCycle(t *testing.T) {
	p, err := puzzle.Parse("1 2 3/4 8 5/7 6 0")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	solution, err := New().Solve(p)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if got := solution.LenSTM(); got != 4 {
		t.Errorf("solution length = %d, want 4", got)
	}
	solved, err := p.ApplyAlg(solution)
	if err != nil {
		t.Fatalf("ApplyAlg(solution): %v", err)
	}
	if !solved.IsSolved() {
		t.Errorf("solution %q does not solve the puzzle", solution.String())
	}
}

func TestSolveUnsolvable(t *testing.T) {
	p, err := puzzle.Parse("1 2 3/4 5 6/8 7 0")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := New().Solve(p); !errors.Is(err, ErrUnsolvable) {
		t.Errorf("Solve error = %v, want ErrUnsolvable", err)
	}
}

func TestSolveOptimalMatchesBFS(t *testing.T) {
	sizes := []puzzle.Size{
		puzzle.MustSize(2, 2),
		puzzle.MustSize(2, 3),
		puzzle.MustSize(3, 2),
	}
	rng := rand.New(rand.NewSource(21))
	for _, size := range sizes {
		for i := 0; i < 25; i++ {
			start, err := scramble.RandomState{}.Scramble(size, rng)
			if err != nil {
				t.Fatalf("Scramble: %v", err)
			}
			opt := bfsOptimal(t, start)

			for _, h := range []Heuristic{ManhattanDistance, LinearConflict} {
				solution, err := New(WithHeuristic(h)).Solve(start)
				if err != nil {
					t.Fatalf("Solve(%q) with %v returned error: %v", start.String(), h, err)
				}
				if got := solution.LenSTM(); got != opt {
					t.Errorf("Solve(%q) with %v found %d moves, optimal is %d",
						start.String(), h, got, opt)
				}
				end, err := start.ApplyAlg(solution)
				if err != nil {
					t.Fatalf("ApplyAlg: %v", err)
				}
				if !end.IsSolved() {
					t.Errorf("solution %q does not solve %q", solution.String(), start.String())
				}
			}
		}
	}
}

func TestSolve3x3Scrambles(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	size := puzzle.MustSize(3, 3)
	for i := 0; i < 8; i++ {
		start, err := scramble.RandomState{}.Scramble(size, rng)
		if err != nil {
			t.Fatalf("Scramble: %v", err)
		}
		s := New(WithHeuristic(LinearConflict))
		solution, err := s.Solve(start)
		if err != nil {
			t.Fatalf("Solve(%q) returned error: %v", start.String(), err)
		}

		end, err := start.ApplyAlg(solution)
		if err != nil {
			t.Fatalf("ApplyAlg: %v", err)
		}
		if !end.IsSolved() {
			t.Fatalf("solution %q does not solve %q", solution.String(), start.String())
		}
		if got, bound := solution.LenSTM(), LinearConflict.Bound(start); got < bound {
			t.Errorf("solution length %d below heuristic bound %d", got, bound)
		}

		var units []algorithm.Move
		for _, m := range solution.Moves() {
			units = append(units, m.Split()...)
		}
		for j := 1; j < len(units); j++ {
			if units[j].Dir == units[j-1].Dir.Inverse() {
				t.Errorf("solution %q undoes its own move at step %d", solution.String(), j)
			}
		}

		stats := s.Stats()
		if len(stats.Iterations) == 0 {
			t.Fatal("no iterations recorded")
		}
		for j := 1; j < len(stats.Iterations); j++ {
			if stats.Iterations[j].Bound <= stats.Iterations[j-1].Bound {
				t.Errorf("bounds not increasing: %+v", stats.Iterations)
			}
		}
		if last := stats.Iterations[len(stats.Iterations)-1].Bound; last != solution.LenSTM() {
			t.Errorf("final bound %d != solution length %d", last, solution.LenSTM())
		}
	}
}

func TestSolveBoundAdvancement(t *testing.T) {
	// Two swapped pairs: Manhattan distance is 4 but the true optimum is
	// larger, forcing several deepening passes.
	start, err := puzzle.Parse("2 1/4 3/5 0")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	opt := bfsOptimal(t, start)
	if md := ManhattanDistance.Bound(start); md >= opt {
		t.Fatalf("fixture too weak: manhattan %d, optimal %d", md, opt)
	}

	s := New()
	solution, err := s.Solve(start)
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}
	if solution.LenSTM() != opt {
		t.Errorf("solution length %d, optimal %d", solution.LenSTM(), opt)
	}

	stats := s.Stats()
	if len(stats.Iterations) < 2 {
		t.Fatalf("expected several iterations, got %+v", stats.Iterations)
	}
	if first := stats.Iterations[0].Bound; first != ManhattanDistance.Bound(start) {
		t.Errorf("first bound %d, want heuristic value %d", first, ManhattanDistance.Bound(start))
	}
	if last := stats.Iterations[len(stats.Iterations)-1].Bound; last != opt {
		t.Errorf("final bound %d, want %d", last, opt)
	}
}

func TestSolveNodeBudget(t *testing.T) {
	p, err := puzzle.Parse("1 2 3/4 8 5/7 6 0")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, err = New(WithNodeBudget(1)).Solve(p)
	if !errors.Is(err, ErrBudgetExceeded) {
		t.Errorf("Solve error = %v, want ErrBudgetExceeded", err)
	}
}

func TestSolveMaxBound(t *testing.T) {
	p, err := puzzle.Parse("1 2 3/4 8 5/7 6 0")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := New(WithMaxBound(3)).Solve(p); !errors.Is(err, ErrBudgetExceeded) {
		t.Errorf("Solve with bound 3 error = %v, want ErrBudgetExceeded", err)
	}
	if _, err := New(WithMaxBound(4)).Solve(p); err != nil {
		t.Errorf("Solve with bound 4 returned error: %v", err)
	}
}

func TestSolverReuse(t *testing.T) {
	s := New()
	first, err := puzzle.Parse("1 2 3/4 5 0/7 8 6")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := s.Solve(first); err != nil {
		t.Fatalf("first Solve returned error: %v", err)
	}
	if s.Stats().Nodes == 0 {
		t.Error("first solve expanded no nodes")
	}

	second := puzzle.New(puzzle.MustSize(3, 3))
	solution, err := s.Solve(second)
	if err != nil {
		t.Fatalf("second Solve returned error: %v", err)
	}
	if !solution.IsEmpty() {
		t.Errorf("second Solve = %q, want empty", solution.String())
	}
	if s.Stats().Nodes != 0 {
		t.Errorf("stats were not reset between solves: Nodes = %d", s.Stats().Nodes)
	}
}
