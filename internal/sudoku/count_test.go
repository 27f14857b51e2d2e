package sudoku

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The classic Sudoku example; it is known to have exactly one solution.
var sample = Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

func TestCountSolutionsUniquePuzzle(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 1, CountSolutions(sample, 2))
}

func TestCountSolutionsEmptyGridHitsLimit(t *testing.T) {
	t.Parallel()
	// A blank grid has a vast number of completions; the counter must
	// stop at the limit instead of enumerating them.
	assert.Equal(t, 2, CountSolutions(Grid{}, 2))
	assert.Equal(t, 1, CountSolutions(Grid{}, 1))
}

func TestCountSolutionsInconsistentGrid(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewPCG(3, 4))
	solution, err := FillComplete(rnd)
	require.NoError(t, err)

	// Swapping two differing cells of one row keeps the row a permutation
	// but breaks their columns, so no completion exists.
	broken := solution
	broken[4][1], broken[4][7] = broken[4][7], broken[4][1]
	assert.Equal(t, 0, CountSolutions(broken, 2))

	// Still no solutions after clearing one of the swapped cells.
	broken[4][1] = 0
	assert.Equal(t, 0, CountSolutions(broken, 2))
}

func TestCountSolutionsSolvedGrid(t *testing.T) {
	t.Parallel()

	rnd := rand.New(rand.NewPCG(5, 6))
	solution, err := FillComplete(rnd)
	require.NoError(t, err)
	assert.Equal(t, 1, CountSolutions(solution, 2))
}

func TestCountSolutionsNonPositiveLimit(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, CountSolutions(sample, 0))
	assert.Equal(t, 0, CountSolutions(sample, -1))
}
