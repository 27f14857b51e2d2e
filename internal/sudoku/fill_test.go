package sudoku

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillCompleteProducesValidGrid(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewPCG(1, 2))
	g, err := FillComplete(rnd)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Empties())
	// Validating against an all-empty puzzle checks only the row, column
	// and box constraints of the filled grid.
	assert.True(t, Validate(Grid{}, g))
}

func TestFillCompleteDeterministic(t *testing.T) {
	t.Parallel()

	a, err := FillComplete(rand.New(rand.NewPCG(9, 9)))
	require.NoError(t, err)
	b, err := FillComplete(rand.New(rand.NewPCG(9, 9)))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := FillComplete(rand.New(rand.NewPCG(10, 9)))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestCarveKeepsUniqueSolution(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	t.Parallel()

	rnd := rand.New(rand.NewPCG(7, 8))
	solution, err := FillComplete(rnd)
	require.NoError(t, err)

	puzzle, removed, err := carve(solution, Easy, rnd)
	if err != nil {
		require.ErrorIs(t, err, ErrDifficultyUnmet)
	} else {
		lo, hi := Easy.removeRange()
		assert.GreaterOrEqual(t, removed, lo)
		assert.LessOrEqual(t, removed, hi)
	}
	assert.Equal(t, removed, puzzle.Empties())
	assert.Equal(t, 1, CountSolutions(puzzle, 2))
	assert.True(t, Validate(puzzle, solution))
}
