// Package puzzle implements the sliding puzzle state model: grid sizes,
// immutable puzzle states, move application, and solvability analysis.
//
// Pieces are labelled 1 through w*h-1 and 0 marks the gap. The solved state
// has the pieces in row-major order with the gap in the bottom right corner.
package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors returned by constructors and parsers in this package.
var (
	ErrInvalidSize      = errors.New("puzzle: size must have positive dimensions and at least two cells")
	ErrInvalidSizeFmt   = errors.New("puzzle: size must be of the form WxH")
	ErrWrongPieceCount  = errors.New("puzzle: wrong number of pieces for size")
	ErrPieceOutOfRange  = errors.New("puzzle: piece out of range")
	ErrDuplicatePiece   = errors.New("puzzle: duplicate piece")
	ErrEmptyGrid        = errors.New("puzzle: empty grid")
	ErrRaggedRows       = errors.New("puzzle: rows have unequal lengths")
	ErrInvalidPieceChar = errors.New("puzzle: invalid piece")
	ErrIllegalMove      = errors.New("puzzle: illegal move")
)

// Size is the width and height of a puzzle grid. Valid sizes have both
// dimensions positive and hold at least two cells, so the smallest puzzles
// are 1x2 and 2x1.
type Size struct {
	w, h int
}

// NewSize validates and builds a Size.
func NewSize(w, h int) (Size, error) {
	if w < 1 || h < 1 || w*h < 2 {
		return Size{}, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	return Size{w: w, h: h}, nil
}

// MustSize is like NewSize but panics on invalid dimensions. It is intended
// for fixed sizes known to be valid, such as defaults and test fixtures.
func MustSize(w, h int) Size {
	s, err := NewSize(w, h)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseSize reads a size in "WxH" form, e.g. "4x4". A bare number is taken
// as a square, so "4" also means 4x4.
func ParseSize(s string) (Size, error) {
	if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return NewSize(n, n)
	}
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidSizeFmt, s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidSizeFmt, s)
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Size{}, fmt.Errorf("%w: %q", ErrInvalidSizeFmt, s)
	}
	return NewSize(w, h)
}

// Width returns the number of columns.
func (s Size) Width() int { return s.w }

// Height returns the number of rows.
func (s Size) Height() int { return s.h }

// Area returns the total number of cells.
func (s Size) Area() int { return s.w * s.h }

// NumPieces returns the number of pieces, which is one less than the area
// because one cell holds the gap.
func (s Size) NumPieces() int { return s.w*s.h - 1 }

// Transpose returns the size with width and height exchanged.
func (s Size) Transpose() Size { return Size{w: s.h, h: s.w} }

// Contains reports whether the cell (x, y) lies inside the grid.
func (s Size) Contains(x, y int) bool {
	return x >= 0 && x < s.w && y >= 0 && y < s.h
}

// String renders the size in "WxH" form.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.w, s.h)
}
