package sudoku

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrDifficultyUnmet reports that carving ran out of attempts before clearing
// the target number of cells. The puzzle returned alongside it is still valid
// and still has a unique solution, just with fewer empty cells than asked.
var ErrDifficultyUnmet = errors.New("sudoku: removal target not reached")

// Attempt budget per carve, relative to the removal target. Each attempt is
// one tentative clear plus a full uniqueness check.
const attemptsPerTarget = 10

// carve clears cells from a solved grid one at a time, keeping a clear only
// when CountSolutions proves the puzzle still has exactly one solution.
// Cell picks are uniformly random; a cell restored earlier stays eligible on
// later attempts.
func carve(solution Grid, d Difficulty, rnd *rand.Rand) (Grid, int, error) {
	lo, hi := d.removeRange()
	target := lo + rnd.IntN(hi-lo+1)

	puzzle := solution
	removed, attempts := 0, 0
	for removed < target && attempts < attemptsPerTarget*target {
		r, c := rnd.IntN(gridSize), rnd.IntN(gridSize)
		if puzzle[r][c] == 0 {
			continue
		}
		attempts++
		v := puzzle[r][c]
		puzzle[r][c] = 0
		if CountSolutions(puzzle, 2) == 1 {
			removed++
		} else {
			puzzle[r][c] = v
		}
	}
	if removed < target {
		return puzzle, removed, fmt.Errorf("%w: cleared %d of %d cells", ErrDifficultyUnmet, removed, target)
	}
	return puzzle, removed, nil
}
