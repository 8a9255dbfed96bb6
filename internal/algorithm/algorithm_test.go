package algorithm

import (
	"errors"
	"testing"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   rune
		want Direction
	}{
		{'U', Up},
		{'L', Left},
		{'D', Down},
		{'R', Right},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		if err != nil {
			t.Fatalf("ParseDirection(%q) returned error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseDirection('X'); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("ParseDirection('X') error = %v, want ErrInvalidDirection", err)
	}
	if _, err := ParseDirection('u'); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("ParseDirection('u') error = %v, want ErrInvalidDirection", err)
	}
}

func TestDirectionInverse(t *testing.T) {
	pairs := map[Direction]Direction{
		Up:    Down,
		Down:  Up,
		Left:  Right,
		Right: Left,
	}
	for d, want := range pairs {
		if got := d.Inverse(); got != want {
			t.Errorf("%v.Inverse() = %v, want %v", d, got, want)
		}
		if got := d.Inverse().Inverse(); got != d {
			t.Errorf("%v.Inverse().Inverse() = %v, want %v", d, got, d)
		}
	}
}

func TestDirectionTranspose(t *testing.T) {
	pairs := map[Direction]Direction{
		Up:    Left,
		Left:  Up,
		Down:  Right,
		Right: Down,
	}
	for d, want := range pairs {
		if got := d.Transpose(); got != want {
			t.Errorf("%v.Transpose() = %v, want %v", d, got, want)
		}
	}
}

func TestNewMove(t *testing.T) {
	m, err := NewMove(Up, 3)
	if err != nil {
		t.Fatalf("NewMove(Up, 3) returned error: %v", err)
	}
	if m.Dir != Up || m.Amount != 3 {
		t.Errorf("NewMove(Up, 3) = %+v", m)
	}

	if _, err := NewMove(Up, 0); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("NewMove(Up, 0) error = %v, want ErrInvalidAmount", err)
	}
	if _, err := NewMove(Left, -2); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("NewMove(Left, -2) error = %v, want ErrInvalidAmount", err)
	}
}

func TestMoveString(t *testing.T) {
	tests := []struct {
		m    Move
		want string
	}{
		{Move{Up, 1}, "U"},
		{Move{Right, 1}, "R"},
		{Move{Down, 2}, "D2"},
		{Move{Left, 12}, "L12"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestMetricMoveLen(t *testing.T) {
	m := Move{Dir: Up, Amount: 4}
	if got := STM.MoveLen(m); got != 4 {
		t.Errorf("STM.MoveLen(U4) = %d, want 4", got)
	}
	if got := MTM.MoveLen(m); got != 1 {
		t.Errorf("MTM.MoveLen(U4) = %d, want 1", got)
	}
}

func TestMoveSplit(t *testing.T) {
	got := Move{Dir: Down, Amount: 3}.Split()
	if len(got) != 3 {
		t.Fatalf("D3.Split() has %d moves, want 3", len(got))
	}
	for i, m := range got {
		if m != (Move{Dir: Down, Amount: 1}) {
			t.Errorf("D3.Split()[%d] = %v, want D", i, m)
		}
	}
	if single := (Move{Dir: Up, Amount: 1}).Split(); len(single) != 1 || single[0].String() != "U" {
		t.Errorf("U.Split() = %v, want [U]", single)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		stm  int
		mtm  int
	}{
		{"empty", "", "", 0, 0},
		{"single", "U", "U", 1, 1},
		{"compact", "U2RDL3", "U2RDL3", 7, 4},
		{"spaced", "U2 R D L3", "U2RDL3", 7, 4},
		{"explicit one", "U1R1", "UR", 2, 2},
		{"multi digit", "D12", "D12", 12, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.in, err)
			}
			if got := a.String(); got != tt.want {
				t.Errorf("Parse(%q).String() = %q, want %q", tt.in, got, tt.want)
			}
			if got := a.LenSTM(); got != tt.stm {
				t.Errorf("Parse(%q).LenSTM() = %d, want %d", tt.in, got, tt.stm)
			}
			if got := a.LenMTM(); got != tt.mtm {
				t.Errorf("Parse(%q).LenMTM() = %d, want %d", tt.in, got, tt.mtm)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"bad letter", "U2X", ErrInvalidCharacter},
		{"lowercase", "u2", ErrInvalidCharacter},
		{"leading digits", "2U", ErrInvalidCharacter},
		{"zero amount", "U0", ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.in); !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.in, err, tt.want)
			}
		})
	}
}

func TestAlgorithmInverse(t *testing.T) {
	a, err := Parse("U2RDL3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := a.Inverse().String(); got != "R3ULD2" {
		t.Errorf("Inverse() = %q, want %q", got, "R3ULD2")
	}
	if got := a.Inverse().Inverse().String(); got != a.String() {
		t.Errorf("double inverse = %q, want %q", got, a.String())
	}
}

func TestAlgorithmTranspose(t *testing.T) {
	a, err := Parse("U2RDL3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := a.Transpose().String(); got != "L2DRU3" {
		t.Errorf("Transpose() = %q, want %q", got, "L2DRU3")
	}
}

func TestAlgorithmRepeat(t *testing.T) {
	a, err := Parse("UR")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := a.Repeat(3).String(); got != "URURUR" {
		t.Errorf("Repeat(3) = %q, want %q", got, "URURUR")
	}
	if got := a.Repeat(0).String(); got != "" {
		t.Errorf("Repeat(0) = %q, want empty", got)
	}
}

func TestPushCombine(t *testing.T) {
	var a Algorithm
	a.PushCombine(Move{Up, 1})
	a.PushCombine(Move{Up, 2})
	a.PushCombine(Move{Right, 1})
	if got := a.String(); got != "U3R" {
		t.Errorf("PushCombine sequence = %q, want %q", got, "U3R")
	}
}

func TestSimplified(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no change", "URDL", "URDL"},
		{"merge same", "UUU", "U3"},
		{"merge amounts", "U2U3", "U5"},
		{"partial cancel", "U3D", "U2"},
		{"flip direction", "UD3", "D2"},
		{"full cancel", "U2D2", ""},
		{"cascade", "RUDR", "R2"},
		{"nested cancel", "URRLLD", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if got := a.Simplified().String(); got != tt.want {
				t.Errorf("Parse(%q).Simplified() = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSpaced(t *testing.T) {
	a, err := Parse("U2RDL3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := a.Spaced(); got != "U2 R D L3" {
		t.Errorf("Spaced() = %q, want %q", got, "U2 R D L3")
	}

	rt, err := Parse(a.Spaced())
	if err != nil {
		t.Fatalf("Parse(Spaced()): %v", err)
	}
	if rt.String() != a.String() {
		t.Errorf("spaced round trip = %q, want %q", rt.String(), a.String())
	}
}

func TestMovesCopies(t *testing.T) {
	a, err := Parse("UR")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	moves := a.Moves()
	moves[0] = Move{Down, 5}
	if got := a.String(); got != "UR" {
		t.Errorf("mutating Moves() result changed algorithm: %q", got)
	}
}
