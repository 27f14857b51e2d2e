package sudoku

import (
	"errors"
	"fmt"
)

// Difficulty selects how many cells get cleared from a solved grid.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// ErrInvalidDifficulty reports a token outside the recognized set.
var ErrInvalidDifficulty = errors.New("sudoku: unknown difficulty")

// ParseDifficulty maps a wire token onto the closed difficulty set.
// "complex" is accepted as a legacy alias for hard; anything else is
// rejected rather than silently coerced.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard", "complex":
		return Hard, nil
	}
	return 0, fmt.Errorf("%w %q", ErrInvalidDifficulty, s)
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return fmt.Sprintf("Difficulty(%d)", int(d))
}

func (d Difficulty) MarshalText() ([]byte, error) {
	if d < Easy || d > Hard {
		return nil, fmt.Errorf("%w %d", ErrInvalidDifficulty, int(d))
	}
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// removeRange is the closed range of cells to clear (out of 81) for d.
func (d Difficulty) removeRange() (lo, hi int) {
	switch d {
	case Easy:
		return 35, 40
	case Medium:
		return 45, 50
	default:
		return 55, 60
	}
}
