package sudoku

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePair(t *testing.T) (puzzle, solution Grid) {
	t.Helper()
	rnd := rand.New(rand.NewPCG(21, 22))
	solution, err := FillComplete(rnd)
	require.NoError(t, err)
	puzzle, _, err = carve(solution, Easy, rnd)
	if err != nil {
		require.ErrorIs(t, err, ErrDifficultyUnmet)
	}
	return puzzle, solution
}

func TestValidateAcceptsGeneratedPair(t *testing.T) {
	t.Parallel()

	puzzle, solution := makePair(t)
	assert.True(t, Validate(puzzle, solution))
}

func TestValidateRejectsMutatedClue(t *testing.T) {
	t.Parallel()

	puzzle, solution := makePair(t)
	for r := range gridSize {
		for c := range gridSize {
			if puzzle[r][c] == 0 {
				continue
			}
			mutated := solution
			mutated[r][c] = mutated[r][c]%9 + 1
			assert.False(t, Validate(puzzle, mutated), "mutation at %d:%d slipped through", r, c)
		}
	}
}

func TestValidateRejectsIncompleteCandidate(t *testing.T) {
	t.Parallel()

	puzzle, solution := makePair(t)
	incomplete := solution
	for r := range gridSize {
		for c := range gridSize {
			if puzzle[r][c] == 0 {
				incomplete[r][c] = 0
				assert.False(t, Validate(puzzle, incomplete))
				return
			}
		}
	}
	t.Fatal("no cleared cell in puzzle")
}

func TestValidateRejectsDuplicateInRow(t *testing.T) {
	t.Parallel()

	_, solution := makePair(t)
	// Copy one value over another in the same row: still all non-zero,
	// but the row is no longer a permutation.
	broken := solution
	broken[0][0] = broken[0][1]
	assert.False(t, Validate(Grid{}, broken))
}
