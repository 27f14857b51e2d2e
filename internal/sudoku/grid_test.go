package sudoku

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawGrid() [][]int {
	raw := make([][]int, gridSize)
	for r := range raw {
		raw[r] = make([]int, gridSize)
		for c := range raw[r] {
			raw[r][c] = int(sample[r][c])
		}
	}
	return raw
}

func TestParseGrid(t *testing.T) {
	t.Parallel()

	g, err := ParseGrid(rawGrid())
	require.NoError(t, err)
	assert.Equal(t, sample, g)
}

func TestParseGridRejectsBadShape(t *testing.T) {
	t.Parallel()

	short := rawGrid()[:8]
	_, err := ParseGrid(short)
	assert.ErrorIs(t, err, ErrBadGrid)

	ragged := rawGrid()
	ragged[3] = ragged[3][:5]
	_, err = ParseGrid(ragged)
	assert.ErrorIs(t, err, ErrBadGrid)
}

func TestParseGridRejectsOutOfRangeValues(t *testing.T) {
	t.Parallel()

	tooBig := rawGrid()
	tooBig[0][0] = 10
	_, err := ParseGrid(tooBig)
	assert.ErrorIs(t, err, ErrBadGrid)

	negative := rawGrid()
	negative[8][8] = -1
	_, err = ParseGrid(negative)
	assert.ErrorIs(t, err, ErrBadGrid)
}

func TestGridEmpties(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 81, Grid{}.Empties())
	assert.Equal(t, 51, sample.Empties())
}

func TestGridString(t *testing.T) {
	t.Parallel()

	s := sample.String()
	assert.Equal(t, gridSize+2, len(strings.Split(strings.TrimRight(s, "\n"), "\n")))
	assert.Contains(t, s, "5 3 . ")
}
