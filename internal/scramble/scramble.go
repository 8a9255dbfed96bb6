// Package scramble generates starting positions for sliding puzzles.
//
// Every scrambler draws from an injected rand source, so a fixed seed always
// reproduces the same scramble, and every scrambler only ever produces
// solvable states.
package scramble

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/benwh1/slidy/internal/algorithm"
	"github.com/benwh1/slidy/internal/puzzle"
)

// ErrInvalidScrambleSize is returned when a scrambler cannot handle the
// requested puzzle size.
var ErrInvalidScrambleSize = errors.New("scramble: invalid size for scrambler")

// Scrambler produces scrambled puzzle states of a given size.
type Scrambler interface {
	// ValidSize reports whether the scrambler can handle puzzles of size s.
	ValidSize(s puzzle.Size) bool
	// Scramble returns a solvable scrambled puzzle of size s drawn from rng.
	// It fails with ErrInvalidScrambleSize when ValidSize(s) is false.
	Scramble(s puzzle.Size, rng *rand.Rand) (puzzle.Puzzle, error)
}

// RandomState scrambles so that every solvable state of the puzzle is
// equally likely. This is the scrambler used for normal solving.
type RandomState struct{}

// ValidSize reports true for every valid puzzle size.
func (RandomState) ValidSize(puzzle.Size) bool { return true }

// Scramble draws a uniformly random solvable state. A uniformly random
// permutation of the pieces is corrected to the solvable parity class, then
// the gap is walked to a uniformly random cell.
func (RandomState) Scramble(s puzzle.Size, rng *rand.Rand) (puzzle.Puzzle, error) {
	// Single row or column puzzles only reach states that keep the pieces
	// in order, so scrambling reduces to placing the gap.
	if s.Width() == 1 {
		return slideGap(s, algorithm.Down, rng.Intn(s.Height()))
	}
	if s.Height() == 1 {
		return slideGap(s, algorithm.Right, rng.Intn(s.Width()))
	}

	p, err := RandomInvertibleState{}.Scramble(s, rng)
	if err != nil {
		return puzzle.Puzzle{}, err
	}
	d, r := rng.Intn(s.Height()), rng.Intn(s.Width())
	if d > 0 {
		if p, err = p.Apply(algorithm.Move{Dir: algorithm.Down, Amount: d}); err != nil {
			return puzzle.Puzzle{}, err
		}
	}
	if r > 0 {
		if p, err = p.Apply(algorithm.Move{Dir: algorithm.Right, Amount: r}); err != nil {
			return puzzle.Puzzle{}, err
		}
	}
	return p, nil
}

func slideGap(s puzzle.Size, dir algorithm.Direction, amount int) (puzzle.Puzzle, error) {
	p := puzzle.New(s)
	if amount == 0 {
		return p, nil
	}
	return p.Apply(algorithm.Move{Dir: dir, Amount: amount})
}

// RandomInvertibleState scrambles like RandomState but leaves the gap in the
// bottom right corner, so the scramble permutes pieces only.
type RandomInvertibleState struct{}

// ValidSize requires at least two rows and two columns; with a single row or
// column the only invertible state is the solved one.
func (RandomInvertibleState) ValidSize(s puzzle.Size) bool {
	return s.Width() > 1 && s.Height() > 1
}

// Scramble draws a uniformly random even permutation of the pieces. The
// shuffle tracks its own parity and swaps the last two pieces when needed.
func (ris RandomInvertibleState) Scramble(s puzzle.Size, rng *rand.Rand) (puzzle.Puzzle, error) {
	if !ris.ValidSize(s) {
		return puzzle.Puzzle{}, fmt.Errorf("%w: random invertible state needs 2x2 or larger, got %v",
			ErrInvalidScrambleSize, s)
	}
	n := s.NumPieces()
	pieces := solvedPieces(s)
	parity := 0
	for i := 0; i < n-2; i++ {
		j := i + rng.Intn(n-i)
		if i != j {
			pieces[i], pieces[j] = pieces[j], pieces[i]
			parity ^= 1
		}
	}
	if parity == 1 {
		pieces[n-2], pieces[n-1] = pieces[n-1], pieces[n-2]
	}
	return puzzle.FromPieces(s, pieces)
}

// RandomMoves scrambles by applying a fixed number of random single-tile
// moves. Unlike RandomState the resulting distribution is not uniform; this
// scrambler exists for warmups and casual play.
type RandomMoves struct {
	// Moves is the number of random moves to apply.
	Moves int
	// AllowBacktracking permits a move that undoes the previous one.
	AllowBacktracking bool
	// AllowIllegal counts moves that would run off the grid towards the
	// total without applying them.
	AllowIllegal bool
}

// ValidSize rejects combinations that would leave the move generator with no
// legal choice. On a single row or column with backtracking and illegal
// moves both disallowed, the gap runs into a wall after at most area-1
// moves and the only legal move left is the one just undone.
func (rm RandomMoves) ValidSize(s puzzle.Size) bool {
	if (s.Width() == 1 || s.Height() == 1) && !rm.AllowBacktracking && !rm.AllowIllegal {
		return rm.Moves < s.Area()
	}
	return true
}

// Scramble applies rm.Moves random moves to the solved puzzle.
func (rm RandomMoves) Scramble(s puzzle.Size, rng *rand.Rand) (puzzle.Puzzle, error) {
	alg, err := rm.ScrambleAlg(s, rng)
	if err != nil {
		return puzzle.Puzzle{}, err
	}
	return puzzle.New(s).ApplyAlg(alg)
}

// ScrambleAlg returns the scramble as the move sequence itself rather than
// the state it produces. Moves skipped under AllowIllegal are not part of
// the sequence, so applying it to the solved puzzle always reproduces the
// state Scramble would return.
func (rm RandomMoves) ScrambleAlg(s puzzle.Size, rng *rand.Rand) (algorithm.Algorithm, error) {
	if !rm.ValidSize(s) {
		return algorithm.Algorithm{}, fmt.Errorf("%w: %d random moves would dead-end on %v",
			ErrInvalidScrambleSize, rm.Moves, s)
	}
	var alg algorithm.Algorithm
	p := puzzle.New(s)
	var last algorithm.Direction
	hasLast := false
	for i := 0; i < rm.Moves; i++ {
		d := algorithm.Directions[rng.Intn(4)]
		for (!rm.AllowBacktracking && hasLast && d == last.Inverse()) ||
			(!rm.AllowIllegal && !p.CanMove(d)) {
			d = algorithm.Directions[rng.Intn(4)]
		}
		last, hasLast = d, true
		if p.CanMove(d) {
			mv := algorithm.Move{Dir: d, Amount: 1}
			var err error
			if p, err = p.Apply(mv); err != nil {
				return algorithm.Algorithm{}, err
			}
			alg.Push(mv)
		}
	}
	return alg, nil
}

// Cycle scrambles by cycling a random selection of pieces, leaving the gap
// in the bottom right corner. A cycle of even length is an odd permutation,
// so the last two pieces are additionally swapped to keep the state
// solvable; those two positions are never part of the cycle.
type Cycle struct {
	// Length is the number of pieces in the cycle. Lengths below 2 leave
	// the puzzle solved. Lengths too large for the grid are reduced to the
	// largest usable cycle.
	Length int
}

// ValidSize requires at least two rows and two columns; no piece cycle fits
// on a single row or column.
func (Cycle) ValidSize(s puzzle.Size) bool {
	return s.Width() > 1 && s.Height() > 1
}

// Scramble cycles up to c.Length pieces chosen at random.
func (c Cycle) Scramble(s puzzle.Size, rng *rand.Rand) (puzzle.Puzzle, error) {
	if !c.ValidSize(s) {
		return puzzle.Puzzle{}, fmt.Errorf("%w: cycles need 2x2 or larger, got %v",
			ErrInvalidScrambleSize, s)
	}
	n := s.NumPieces()
	length := c.Length
	if length > n {
		length = n
	}
	// Even cycles need the last two positions free for the parity swap; an
	// oversized even request falls back to the next odd length.
	if length%2 == 0 && length > n-2 {
		length--
	}
	pieces := solvedPieces(s)
	if length < 2 {
		return puzzle.FromPieces(s, pieces)
	}

	max := n
	if length%2 == 0 {
		max = n - 2
	}
	cells := rng.Perm(max)[:length]
	for i := 1; i < length; i++ {
		pieces[cells[0]], pieces[cells[i]] = pieces[cells[i]], pieces[cells[0]]
	}
	if length%2 == 0 {
		pieces[n-2], pieces[n-1] = pieces[n-1], pieces[n-2]
	}
	return puzzle.FromPieces(s, pieces)
}

// solvedPieces returns the row-major solved arrangement for s.
func solvedPieces(s puzzle.Size) []int {
	n := s.Area()
	pieces := make([]int, n)
	for i := 0; i < n-1; i++ {
		pieces[i] = i + 1
	}
	return pieces
}
