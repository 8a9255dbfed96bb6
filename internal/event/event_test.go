package event

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/benwh1/slidy/internal/puzzle"
)

var (
	_ Event = Single{}
	_ Event = FewestMoves{}
	_ Event = TimeAttack{}
	_ Event = Relay{}
)

func TestListContainsBuiltins(t *testing.T) {
	infos := List()
	if !sort.SliceIsSorted(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID }) {
		t.Errorf("List() not sorted by ID: %v", infos)
	}

	byID := make(map[string]string)
	for _, info := range infos {
		byID[info.ID] = info.Title
	}
	want := map[string]string{
		"single":       "Single solve",
		"fewest-moves": "Fewest moves",
		"time-attack":  "Time attack",
		"relay":        "Square relay",
	}
	for id, title := range want {
		if got := byID[id]; got != title {
			t.Errorf("List() title for %q = %q, want %q", id, got, title)
		}
		if !Exists(id) {
			t.Errorf("Exists(%q) = false, want true", id)
		}
	}
}

func TestCreate(t *testing.T) {
	size := puzzle.MustSize(4, 4)
	tests := []struct {
		id        string
		sizes     []puzzle.Size
		timeLimit time.Duration
	}{
		{"single", []puzzle.Size{size}, 0},
		{"fewest-moves", []puzzle.Size{size}, time.Hour},
		{"time-attack", []puzzle.Size{size, size, size, size, size}, 10 * time.Minute},
		{"relay", []puzzle.Size{puzzle.MustSize(2, 2), puzzle.MustSize(3, 3), size}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			ev, err := Create(tt.id, size)
			if err != nil {
				t.Fatalf("Create(%q, %v): %v", tt.id, size, err)
			}
			if ev.ID() != tt.id {
				t.Errorf("ID() = %q, want %q", ev.ID(), tt.id)
			}
			got := ev.Sizes()
			if len(got) != len(tt.sizes) {
				t.Fatalf("Sizes() = %v, want %v", got, tt.sizes)
			}
			for i := range got {
				if got[i] != tt.sizes[i] {
					t.Errorf("Sizes()[%d] = %v, want %v", i, got[i], tt.sizes[i])
				}
			}
			if ev.TimeLimit() != tt.timeLimit {
				t.Errorf("TimeLimit() = %v, want %v", ev.TimeLimit(), tt.timeLimit)
			}
		})
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("marathon", puzzle.MustSize(4, 4)); err == nil {
		t.Error("Create of unregistered event succeeded")
	}
	if Exists("marathon") {
		t.Error("Exists reports an unregistered event")
	}
}

func TestRelayRequiresSquare(t *testing.T) {
	_, err := Create("relay", puzzle.MustSize(4, 3))
	if !errors.Is(err, ErrInvalidEventSize) {
		t.Errorf("Create(relay, 4x3) error = %v, want %v", err, ErrInvalidEventSize)
	}
}

func TestRelayMinimalLadder(t *testing.T) {
	r, err := NewRelay(puzzle.MustSize(2, 2))
	if err != nil {
		t.Fatalf("NewRelay: %v", err)
	}
	if got := r.Sizes(); len(got) != 1 || got[0] != puzzle.MustSize(2, 2) {
		t.Errorf("Sizes() = %v, want [2x2]", got)
	}
}

func TestTimeAttackCountFloor(t *testing.T) {
	ta := NewTimeAttack(puzzle.MustSize(3, 3), 0, time.Minute)
	if got := len(ta.Sizes()); got != 1 {
		t.Errorf("Sizes() length = %d, want 1", got)
	}
}

func TestSizesAreCopies(t *testing.T) {
	r, err := NewRelay(puzzle.MustSize(4, 4))
	if err != nil {
		t.Fatalf("NewRelay: %v", err)
	}
	sizes := r.Sizes()
	sizes[0] = puzzle.MustSize(9, 9)
	if got := r.Sizes()[0]; got != puzzle.MustSize(2, 2) {
		t.Errorf("internal ladder mutated through Sizes(): first size = %v", got)
	}
}
