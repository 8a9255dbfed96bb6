package render

import (
	"errors"
	"testing"

	"github.com/benwh1/slidy/internal/puzzle"
)

func TestSchemeLabels(t *testing.T) {
	size := puzzle.MustSize(4, 3)
	tests := []struct {
		name      string
		scheme    Scheme
		numLabels int
		labels    [][]int // labels[y][x]
	}{
		{
			name:      "pieces",
			scheme:    Pieces{},
			numLabels: 12,
			labels: [][]int{
				{0, 1, 2, 3},
				{4, 5, 6, 7},
				{8, 9, 10, 11},
			},
		},
		{
			name:      "rows",
			scheme:    Rows{},
			numLabels: 3,
			labels: [][]int{
				{0, 0, 0, 0},
				{1, 1, 1, 1},
				{2, 2, 2, 2},
			},
		},
		{
			name:      "fringe",
			scheme:    Fringe{},
			numLabels: 3,
			labels: [][]int{
				{0, 0, 0, 0},
				{0, 1, 1, 1},
				{0, 1, 2, 2},
			},
		},
		{
			name:      "diagonals",
			scheme:    Diagonals{},
			numLabels: 6,
			labels: [][]int{
				{0, 1, 2, 3},
				{1, 2, 3, 4},
				{2, 3, 4, 5},
			},
		},
		{
			name:      "plain",
			scheme:    Plain{},
			numLabels: 1,
			labels: [][]int{
				{0, 0, 0, 0},
				{0, 0, 0, 0},
				{0, 0, 0, 0},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.scheme.NumLabels(size); got != tt.numLabels {
				t.Errorf("NumLabels(%v) = %d, want %d", size, got, tt.numLabels)
			}
			for y, row := range tt.labels {
				for x, want := range row {
					if got := tt.scheme.Label(size, x, y); got != want {
						t.Errorf("Label(%v, %d, %d) = %d, want %d", size, x, y, got, want)
					}
				}
			}
		})
	}
}

func TestSchemeLabelRange(t *testing.T) {
	sizes := []puzzle.Size{
		puzzle.MustSize(1, 2),
		puzzle.MustSize(2, 2),
		puzzle.MustSize(5, 3),
		puzzle.MustSize(3, 5),
	}
	schemes := []Scheme{Pieces{}, Rows{}, Fringe{}, Diagonals{}, Plain{}}
	for _, size := range sizes {
		for _, scheme := range schemes {
			n := scheme.NumLabels(size)
			for y := 0; y < size.Height(); y++ {
				for x := 0; x < size.Width(); x++ {
					if got := scheme.Label(size, x, y); got < 0 || got >= n {
						t.Errorf("%T.Label(%v, %d, %d) = %d, want within [0, %d)",
							scheme, size, x, y, got, n)
					}
				}
			}
		}
	}
}

func TestParseScheme(t *testing.T) {
	tests := []struct {
		in   string
		want Scheme
	}{
		{"pieces", Pieces{}},
		{"rows", Rows{}},
		{"fringe", Fringe{}},
		{"diagonals", Diagonals{}},
		{"plain", Plain{}},
	}
	for _, tt := range tests {
		got, err := ParseScheme(tt.in)
		if err != nil {
			t.Fatalf("ParseScheme(%q) error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseScheme(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
	for _, in := range []string{"", "columns", "Pieces"} {
		if _, err := ParseScheme(in); !errors.Is(err, ErrUnknownScheme) {
			t.Errorf("ParseScheme(%q) error = %v, want %v", in, err, ErrUnknownScheme)
		}
	}
}
