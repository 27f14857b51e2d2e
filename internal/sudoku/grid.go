package sudoku

import (
	"errors"
	"fmt"
	"strings"
)

const (
	gridSize = 9
	boxSize  = 3
)

// Grid is a 9x9 Sudoku board. Zero marks an empty cell. A solved grid holds
// each of 1-9 exactly once per row, column and box.
type Grid [gridSize][gridSize]uint8

// ErrBadGrid reports a payload that is not a 9x9 array of digits 0-9.
var ErrBadGrid = errors.New("sudoku: malformed grid")

// ParseGrid converts a raw boundary payload into a Grid, rejecting anything
// that is not exactly 9x9 with values in 0-9. Shape errors are caught here so
// the solver and validator never see malformed input.
func ParseGrid(raw [][]int) (Grid, error) {
	var g Grid
	if len(raw) != gridSize {
		return g, fmt.Errorf("%w: expected %d rows, got %d", ErrBadGrid, gridSize, len(raw))
	}
	for r, row := range raw {
		if len(row) != gridSize {
			return g, fmt.Errorf("%w: row %d has %d cells", ErrBadGrid, r, len(row))
		}
		for c, v := range row {
			if v < 0 || v > gridSize {
				return g, fmt.Errorf("%w: cell %d:%d holds %d", ErrBadGrid, r, c, v)
			}
			g[r][c] = uint8(v)
		}
	}
	return g, nil
}

// Empties counts cleared cells.
func (g Grid) Empties() (n int) {
	for r := range gridSize {
		for c := range gridSize {
			if g[r][c] == 0 {
				n++
			}
		}
	}
	return n
}

func (g Grid) String() string {
	var b strings.Builder
	for r := range gridSize {
		if r%boxSize == 0 && r != 0 {
			b.WriteString(strings.Repeat("-", 21) + "\n")
		}
		for c := range gridSize {
			if c%boxSize == 0 && c != 0 {
				b.WriteString("| ")
			}
			if g[r][c] == 0 {
				b.WriteString(". ")
			} else {
				fmt.Fprintf(&b, "%d ", g[r][c])
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
