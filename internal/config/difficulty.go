package config

// DifficultyPreset names how thoroughly play boards are scrambled. The named
// levels scramble with a bounded number of random moves; "full" draws a
// uniformly random solvable state.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFull   DifficultyPreset = "full"
)

// ParseDifficulty reads a preset name, defaulting to full for empty input.
func ParseDifficulty(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFull:
		return DifficultyPreset(s), true
	case "":
		return DifficultyFull, true
	default:
		return DifficultyFull, false
	}
}

// ScrambleMoves returns how many random moves the preset applies to a board
// with the given cell count, or 0 when the board should be fully scrambled.
func (p DifficultyPreset) ScrambleMoves(area int) int {
	switch p {
	case DifficultyEasy:
		return area
	case DifficultyNormal:
		return 3 * area
	case DifficultyHard:
		return 10 * area
	default:
		return 0
	}
}
