package algorithm

import (
	"fmt"
	"strings"
)

// Algorithm is an ordered sequence of moves.
//
// The zero value is an empty algorithm ready to use. Methods that derive a
// new algorithm (Inverse, Transpose, Simplified, Repeat) leave the receiver
// untouched.
type Algorithm struct {
	moves []Move
}

// FromMoves builds an algorithm from a copy of moves.
func FromMoves(moves []Move) Algorithm {
	a := Algorithm{moves: make([]Move, len(moves))}
	copy(a.moves, moves)
	return a
}

// Parse reads move notation such as "U2RDL3". Amounts default to 1 when
// omitted. Whitespace between moves is ignored, so the spaced form
// "U2 R D L3" parses to the same algorithm.
func Parse(s string) (Algorithm, error) {
	var a Algorithm
	runes := []rune(s)
	for i := 0; i < len(runes); {
		r := runes[i]
		if r == ' ' || r == '\t' {
			i++
			continue
		}
		dir, err := ParseDirection(r)
		if err != nil {
			return Algorithm{}, fmt.Errorf("%w: %q at position %d", ErrInvalidCharacter, r, i)
		}
		i++
		amount := 0
		digits := false
		for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
			amount = amount*10 + int(runes[i]-'0')
			digits = true
			i++
		}
		if !digits {
			amount = 1
		}
		m, err := NewMove(dir, amount)
		if err != nil {
			return Algorithm{}, err
		}
		a.Push(m)
	}
	return a, nil
}

// Moves returns a copy of the move sequence.
func (a Algorithm) Moves() []Move {
	out := make([]Move, len(a.moves))
	copy(out, a.moves)
	return out
}

// IsEmpty reports whether the algorithm contains no moves.
func (a Algorithm) IsEmpty() bool {
	return len(a.moves) == 0
}

// Len returns the length of the algorithm under the given metric.
func (a Algorithm) Len(met Metric) int {
	n := 0
	for _, m := range a.moves {
		n += met.MoveLen(m)
	}
	return n
}

// LenSTM counts every unit slide of a single piece.
func (a Algorithm) LenSTM() int { return a.Len(STM) }

// LenMTM counts every multi-piece slide as one move.
func (a Algorithm) LenMTM() int { return a.Len(MTM) }

// Push appends m unchanged.
func (a *Algorithm) Push(m Move) {
	a.moves = append(a.moves, m)
}

// PushCombine appends m, merging it into the last move when both slide in
// the same direction.
func (a *Algorithm) PushCombine(m Move) {
	if n := len(a.moves); n > 0 && a.moves[n-1].Dir == m.Dir {
		a.moves[n-1].Amount += m.Amount
		return
	}
	a.moves = append(a.moves, m)
}

// PushSimplify appends m, merging or cancelling against the last move when
// both act along the same axis. A full cancellation removes the last move.
func (a *Algorithm) PushSimplify(m Move) {
	n := len(a.moves)
	if n == 0 {
		a.moves = append(a.moves, m)
		return
	}
	last := a.moves[n-1]
	switch {
	case last.Dir == m.Dir:
		a.moves[n-1].Amount += m.Amount
	case last.Dir == m.Dir.Inverse():
		switch {
		case last.Amount > m.Amount:
			a.moves[n-1].Amount -= m.Amount
		case last.Amount < m.Amount:
			a.moves[n-1] = Move{Dir: m.Dir, Amount: m.Amount - last.Amount}
		default:
			a.moves = a.moves[:n-1]
		}
	default:
		a.moves = append(a.moves, m)
	}
}

// Simplified returns an equivalent algorithm with consecutive moves along
// the same axis merged and cancelling moves removed. Cancellation cascades:
// "RUDR" simplifies to "R2".
func (a Algorithm) Simplified() Algorithm {
	var out Algorithm
	out.moves = make([]Move, 0, len(a.moves))
	for _, m := range a.moves {
		out.PushSimplify(m)
	}
	return out
}

// Inverse returns the algorithm that undoes a, i.e. the reversed sequence
// of inverted moves.
func (a Algorithm) Inverse() Algorithm {
	out := Algorithm{moves: make([]Move, len(a.moves))}
	for i, m := range a.moves {
		out.moves[len(a.moves)-1-i] = m.Inverse()
	}
	return out
}

// Transpose returns a with every move reflected in the main diagonal.
func (a Algorithm) Transpose() Algorithm {
	out := Algorithm{moves: make([]Move, len(a.moves))}
	for i, m := range a.moves {
		out.moves[i] = m.Transpose()
	}
	return out
}

// Repeat returns a concatenated with itself n times. Repeat(0) is empty.
func (a Algorithm) Repeat(n int) Algorithm {
	if n < 0 {
		n = 0
	}
	out := Algorithm{moves: make([]Move, 0, n*len(a.moves))}
	for i := 0; i < n; i++ {
		out.moves = append(out.moves, a.moves...)
	}
	return out
}

// String renders the algorithm in compact notation, e.g. "U2RDL3".
func (a Algorithm) String() string {
	var b strings.Builder
	for _, m := range a.moves {
		b.WriteString(m.String())
	}
	return b.String()
}

// Spaced renders the algorithm with one space between moves, e.g. "U2 R D L3".
func (a Algorithm) Spaced() string {
	parts := make([]string, len(a.moves))
	for i, m := range a.moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}
