package handlers

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dailysudoku/server/internal/sudoku"
)

func TestParseGenerateDTO(t *testing.T) {
	t.Parallel()

	dto, err := ParseGenerateDTO(url.Values{
		"difficulty": {"hard"},
		"seed":       {"12345"},
		"extraneous": {"ignored"},
	})
	require.NoError(t, err)
	assert.Equal(t, "hard", dto.Difficulty)
	require.NotNil(t, dto.Seed)
	assert.Equal(t, uint64(12345), *dto.Seed)

	dto, err = ParseGenerateDTO(url.Values{"difficulty": {"easy"}})
	require.NoError(t, err)
	assert.Nil(t, dto.Seed)

	_, err = ParseGenerateDTO(url.Values{})
	assert.Error(t, err, "difficulty is required")
}

func TestParseGenerateBatchDTO(t *testing.T) {
	t.Parallel()

	dto, err := ParseGenerateBatchDTO(url.Values{
		"difficulty": {"medium"},
		"count":      {"5"},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, dto.Count)

	_, err = ParseGenerateBatchDTO(url.Values{
		"difficulty": {"medium"},
		"count":      {"0"},
	})
	assert.Error(t, err)

	_, err = ParseGenerateBatchDTO(url.Values{
		"difficulty": {"medium"},
		"count":      {"21"},
	})
	assert.Error(t, err)
}

func TestDailyKey(t *testing.T) {
	t.Parallel()

	date, difficulty, err := dailyKey("", "")
	require.NoError(t, err)
	assert.Equal(t, time.Now().UTC().Format(time.DateOnly), date)
	assert.Equal(t, sudoku.Medium, difficulty)

	date, difficulty, err = dailyKey("2026-08-24", "complex")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-24", date)
	assert.Equal(t, sudoku.Hard, difficulty)

	_, _, err = dailyKey("24/08/2026", "easy")
	assert.Error(t, err)

	_, _, err = dailyKey("", "brutal")
	assert.ErrorIs(t, err, sudoku.ErrInvalidDifficulty)
}
