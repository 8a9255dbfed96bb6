package puzzle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/benwh1/slidy/internal/algorithm"
)

// Puzzle is an immutable sliding puzzle state. Applying a move returns a new
// Puzzle and leaves the receiver unchanged, so values can be copied and
// shared freely.
type Puzzle struct {
	size   Size
	pieces []int
	gap    int
}

// New returns the solved puzzle of the given size. The size must come from
// NewSize or one of the other Size constructors.
func New(s Size) Puzzle {
	n := s.Area()
	pieces := make([]int, n)
	for i := 0; i < n-1; i++ {
		pieces[i] = i + 1
	}
	pieces[n-1] = 0
	return Puzzle{size: s, pieces: pieces, gap: n - 1}
}

// FromPieces builds a puzzle from a row-major listing of pieces, where 0 is
// the gap. The listing must be a permutation of 0 through s.NumPieces().
func FromPieces(s Size, pieces []int) (Puzzle, error) {
	n := s.Area()
	if len(pieces) != n {
		return Puzzle{}, fmt.Errorf("%w: got %d pieces, size %v needs %d",
			ErrWrongPieceCount, len(pieces), s, n)
	}
	seen := make([]bool, n)
	gap := -1
	for i, p := range pieces {
		if p < 0 || p >= n {
			return Puzzle{}, fmt.Errorf("%w: %d at cell %d", ErrPieceOutOfRange, p, i)
		}
		if seen[p] {
			return Puzzle{}, fmt.Errorf("%w: %d", ErrDuplicatePiece, p)
		}
		seen[p] = true
		if p == 0 {
			gap = i
		}
	}
	out := make([]int, n)
	copy(out, pieces)
	return Puzzle{size: s, pieces: out, gap: gap}, nil
}

// Parse reads a puzzle from text. Rows are separated by "/" or newlines and
// pieces within a row by spaces, so "1 2 3/4 5 6/7 8 0" and the multi line
// grid form both parse. The gap is written as 0.
func Parse(s string) (Puzzle, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "\n", "/"))
	if s == "" {
		return Puzzle{}, ErrEmptyGrid
	}
	rows := strings.Split(s, "/")
	var pieces []int
	width := -1
	for _, row := range rows {
		fields := strings.Fields(row)
		if len(fields) == 0 {
			return Puzzle{}, ErrEmptyGrid
		}
		if width == -1 {
			width = len(fields)
		} else if len(fields) != width {
			return Puzzle{}, fmt.Errorf("%w: expected %d pieces per row, got %d",
				ErrRaggedRows, width, len(fields))
		}
		for _, f := range fields {
			p, err := strconv.Atoi(f)
			if err != nil {
				return Puzzle{}, fmt.Errorf("%w: %q", ErrInvalidPieceChar, f)
			}
			pieces = append(pieces, p)
		}
	}
	size, err := NewSize(width, len(rows))
	if err != nil {
		return Puzzle{}, err
	}
	return FromPieces(size, pieces)
}

// Size returns the puzzle dimensions.
func (p Puzzle) Size() Size { return p.size }

// Piece returns the piece at the row-major cell index i, with 0 for the gap.
func (p Puzzle) Piece(i int) int { return p.pieces[i] }

// PieceAt returns the piece in column x, row y.
func (p Puzzle) PieceAt(x, y int) int { return p.pieces[y*p.size.w+x] }

// GapPosition returns the row-major cell index of the gap.
func (p Puzzle) GapPosition() int { return p.gap }

// GapXY returns the column and row of the gap.
func (p Puzzle) GapXY() (int, int) {
	return p.gap % p.size.w, p.gap / p.size.w
}

// SolvedPos returns the row-major cell index piece occupies in the solved
// state. The gap belongs in the last cell.
func (p Puzzle) SolvedPos(piece int) int {
	if piece == 0 {
		return p.size.Area() - 1
	}
	return piece - 1
}

// SolvedXY returns the column and row piece occupies in the solved state.
func (p Puzzle) SolvedXY(piece int) (int, int) {
	pos := p.SolvedPos(piece)
	return pos % p.size.w, pos / p.size.w
}

// IsSolved reports whether every piece is in its solved position.
func (p Puzzle) IsSolved() bool {
	for i, piece := range p.pieces {
		if p.SolvedPos(piece) != i {
			return false
		}
	}
	return true
}

// gapDelta returns how the gap position changes for one unit slide of a
// piece in direction d. Pieces and gap always move opposite ways.
func gapDelta(d algorithm.Direction) (dx, dy int) {
	switch d {
	case algorithm.Up:
		return 0, 1
	case algorithm.Left:
		return 1, 0
	case algorithm.Down:
		return 0, -1
	default:
		return -1, 0
	}
}

// CanMove reports whether a single piece can slide in direction d.
func (p Puzzle) CanMove(d algorithm.Direction) bool {
	return p.CanApply(algorithm.Move{Dir: d, Amount: 1})
}

// CanApply reports whether the full multi-piece slide m stays on the grid.
func (p Puzzle) CanApply(m algorithm.Move) bool {
	if m.Amount < 1 {
		return false
	}
	dx, dy := gapDelta(m.Dir)
	gx, gy := p.GapXY()
	return p.size.Contains(gx+dx*m.Amount, gy+dy*m.Amount)
}

// LegalMoves returns the directions a piece can slide from this state, in
// canonical U, L, D, R order. The reverse of whatever move came before is
// included; only searchers prune it.
func (p Puzzle) LegalMoves() []algorithm.Direction {
	out := make([]algorithm.Direction, 0, 4)
	for _, d := range algorithm.Directions {
		if p.CanMove(d) {
			out = append(out, d)
		}
	}
	return out
}

// Apply returns the puzzle after the slide m, or ErrIllegalMove if the slide
// would run off the grid.
func (p Puzzle) Apply(m algorithm.Move) (Puzzle, error) {
	if !p.CanApply(m) {
		return Puzzle{}, fmt.Errorf("%w: %v on %v with gap at %d", ErrIllegalMove, m, p.size, p.gap)
	}
	q := p.clone()
	dx, dy := gapDelta(m.Dir)
	step := dy*p.size.w + dx
	for i := 0; i < m.Amount; i++ {
		q.pieces[q.gap] = q.pieces[q.gap+step]
		q.gap += step
		q.pieces[q.gap] = 0
	}
	return q, nil
}

// ApplyAlg returns the puzzle after every move of a, failing on the first
// illegal move.
func (p Puzzle) ApplyAlg(a algorithm.Algorithm) (Puzzle, error) {
	q := p
	for _, m := range a.Moves() {
		var err error
		if q, err = q.Apply(m); err != nil {
			return Puzzle{}, err
		}
	}
	return q, nil
}

// Equal reports whether p and q have the same size and piece placement.
func (p Puzzle) Equal(q Puzzle) bool {
	if p.size != q.size || len(p.pieces) != len(q.pieces) {
		return false
	}
	for i := range p.pieces {
		if p.pieces[i] != q.pieces[i] {
			return false
		}
	}
	return true
}

// Grid returns the piece placement as rows of columns.
func (p Puzzle) Grid() [][]int {
	grid := make([][]int, p.size.h)
	for y := 0; y < p.size.h; y++ {
		row := make([]int, p.size.w)
		copy(row, p.pieces[y*p.size.w:(y+1)*p.size.w])
		grid[y] = row
	}
	return grid
}

// String renders the puzzle in single line form, e.g. "1 2 3/4 5 6/7 8 0".
// The output round-trips through Parse.
func (p Puzzle) String() string {
	var b strings.Builder
	for y := 0; y < p.size.h; y++ {
		if y > 0 {
			b.WriteByte('/')
		}
		for x := 0; x < p.size.w; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.Itoa(p.PieceAt(x, y)))
		}
	}
	return b.String()
}

// GridString renders the puzzle as an aligned multi line grid.
func (p Puzzle) GridString() string {
	width := len(strconv.Itoa(p.size.NumPieces()))
	var b strings.Builder
	for y := 0; y < p.size.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < p.size.w; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*d", width, p.PieceAt(x, y))
		}
	}
	return b.String()
}

func (p Puzzle) clone() Puzzle {
	pieces := make([]int, len(p.pieces))
	copy(pieces, p.pieces)
	return Puzzle{size: p.size, pieces: pieces, gap: p.gap}
}
