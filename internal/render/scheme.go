package render

import (
	"errors"
	"fmt"

	"github.com/benwh1/slidy/internal/puzzle"
)

// ErrUnknownScheme is returned by ParseScheme for unrecognized names.
var ErrUnknownScheme = errors.New("render: unknown scheme")

// Scheme assigns a label to each solved position of a puzzle. Tiles are
// colored by the label of the position the piece belongs in, not the one it
// currently occupies, so colors travel with the pieces.
type Scheme interface {
	// Label returns the label of the solved position (x, y).
	Label(s puzzle.Size, x, y int) int
	// NumLabels returns how many distinct labels the scheme uses on s.
	NumLabels(s puzzle.Size) int
}

// Pieces gives every piece its own label in row-major order.
type Pieces struct{}

func (Pieces) Label(s puzzle.Size, x, y int) int { return y*s.Width() + x }
func (Pieces) NumLabels(s puzzle.Size) int       { return s.Area() }

// Rows labels each row uniformly.
type Rows struct{}

func (Rows) Label(_ puzzle.Size, _, y int) int { return y }
func (Rows) NumLabels(s puzzle.Size) int       { return s.Height() }

// Fringe labels positions by the L-shaped fringe they belong to: the first
// row and column get label 0, the second row and column of the remaining
// grid label 1, and so on.
type Fringe struct{}

func (Fringe) Label(_ puzzle.Size, x, y int) int {
	if x < y {
		return x
	}
	return y
}

func (Fringe) NumLabels(s puzzle.Size) int {
	if s.Width() < s.Height() {
		return s.Width()
	}
	return s.Height()
}

// Diagonals labels positions by anti-diagonal, so pieces solved on the same
// diagonal share a color.
type Diagonals struct{}

func (Diagonals) Label(_ puzzle.Size, x, y int) int { return x + y }
func (Diagonals) NumLabels(s puzzle.Size) int       { return s.Width() + s.Height() - 1 }

// Plain gives every position the same label.
type Plain struct{}

func (Plain) Label(puzzle.Size, int, int) int { return 0 }
func (Plain) NumLabels(puzzle.Size) int       { return 1 }

// ParseScheme reads a scheme name as used in configuration files and on the
// command line.
func ParseScheme(s string) (Scheme, error) {
	switch s {
	case "pieces":
		return Pieces{}, nil
	case "rows":
		return Rows{}, nil
	case "fringe":
		return Fringe{}, nil
	case "diagonals":
		return Diagonals{}, nil
	case "plain":
		return Plain{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, s)
	}
}
