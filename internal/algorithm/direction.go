// Package algorithm defines moves and move sequences for sliding puzzles.
// It handles the move notation used for scrambles and solutions, where
// letters name the direction a piece travels and a trailing number slides
// several pieces in one motion, e.g. "U2RDL3".
package algorithm

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the parsing and constructor functions.
var (
	ErrInvalidDirection = errors.New("algorithm: invalid direction")
	ErrInvalidAmount    = errors.New("algorithm: move amount must be at least 1")
	ErrInvalidCharacter = errors.New("algorithm: invalid character")
)

// Direction is the direction a piece travels when it slides into the gap.
// The gap itself moves the opposite way.
type Direction uint8

const (
	Up Direction = iota
	Left
	Down
	Right
)

// Directions lists all directions in canonical order.
var Directions = [4]Direction{Up, Left, Down, Right}

// ParseDirection converts one of the letters U, L, D, R to a Direction.
func ParseDirection(r rune) (Direction, error) {
	switch r {
	case 'U':
		return Up, nil
	case 'L':
		return Left, nil
	case 'D':
		return Down, nil
	case 'R':
		return Right, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, r)
	}
}

// Inverse returns the direction that undoes a slide in direction d.
func (d Direction) Inverse() Direction {
	switch d {
	case Up:
		return Down
	case Left:
		return Right
	case Down:
		return Up
	default:
		return Left
	}
}

// Transpose returns the direction d maps to when the puzzle is reflected
// in its main diagonal.
func (d Direction) Transpose() Direction {
	switch d {
	case Up:
		return Left
	case Left:
		return Up
	case Down:
		return Right
	default:
		return Down
	}
}

// Horizontal reports whether pieces travel along a row.
func (d Direction) Horizontal() bool {
	return d == Left || d == Right
}

// Vertical reports whether pieces travel along a column.
func (d Direction) Vertical() bool {
	return d == Up || d == Down
}

// String returns the single-letter notation for d.
func (d Direction) String() string {
	switch d {
	case Up:
		return "U"
	case Left:
		return "L"
	case Down:
		return "D"
	case Right:
		return "R"
	default:
		return "?"
	}
}
