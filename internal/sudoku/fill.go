package sudoku

import (
	"errors"
	"math/rand/v2"
)

// ErrGenerationInvariant reports that the filler exhausted every candidate at
// the root of its search. A diagonally seeded grid always admits at least one
// completion, so hitting this means the search itself is broken.
var ErrGenerationInvariant = errors.New("sudoku: backtracking exhausted on a seeded grid")

// FillComplete builds one fully solved grid from the given source of
// randomness. The three diagonal boxes share no row, column or box with each
// other, so they are seeded with independent permutations up front; the
// remaining cells are filled by randomized backtracking.
func FillComplete(rnd *rand.Rand) (Grid, error) {
	var g Grid
	for box := 0; box < gridSize; box += boxSize {
		fillBox(&g, box, box, rnd)
	}
	if !fillRemaining(&g, rnd) {
		return Grid{}, ErrGenerationInvariant
	}
	return g, nil
}

func fillBox(g *Grid, row, col int, rnd *rand.Rand) {
	perm := rnd.Perm(gridSize)
	for i := range boxSize {
		for j := range boxSize {
			g[row+i][col+j] = uint8(perm[i*boxSize+j] + 1)
		}
	}
}

// fillRemaining completes g in place, trying candidates for each empty cell
// in a freshly shuffled order and resetting the cell on backtrack. Recursion
// depth is bounded by the number of empty cells (at most 81).
func fillRemaining(g *Grid, rnd *rand.Rand) bool {
	r, c, ok := firstEmpty(g)
	if !ok {
		return true
	}
	var vals [gridSize]uint8
	for i := range vals {
		vals[i] = uint8(i + 1)
	}
	rnd.Shuffle(gridSize, func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })
	for _, v := range vals {
		if canPlace(g, r, c, v) {
			g[r][c] = v
			if fillRemaining(g, rnd) {
				return true
			}
			g[r][c] = 0
		}
	}
	return false
}
