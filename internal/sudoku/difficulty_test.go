package sudoku

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		token string
		want  Difficulty
		ok    bool
	}{
		{"easy", Easy, true},
		{"medium", Medium, true},
		{"hard", Hard, true},
		{"complex", Hard, true}, // legacy alias
		{"expert", 0, false},
		{"Easy", 0, false},
		{"", 0, false},
	}

	for _, test := range tests {
		t.Run(test.token, func(t *testing.T) {
			d, err := ParseDifficulty(test.token)
			if !test.ok {
				assert.ErrorIs(t, err, ErrInvalidDifficulty)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, d)
		})
	}
}

func TestDifficultyJSONRoundTrip(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(Medium)
	require.NoError(t, err)
	assert.Equal(t, `"medium"`, string(b))

	var d Difficulty
	require.NoError(t, json.Unmarshal([]byte(`"hard"`), &d))
	assert.Equal(t, Hard, d)

	assert.Error(t, json.Unmarshal([]byte(`"brutal"`), &d))
}

func TestRemoveRanges(t *testing.T) {
	t.Parallel()

	for _, test := range []struct {
		diff   Difficulty
		lo, hi int
	}{
		{Easy, 35, 40},
		{Medium, 45, 50},
		{Hard, 55, 60},
	} {
		lo, hi := test.diff.removeRange()
		assert.Equal(t, test.lo, lo)
		assert.Equal(t, test.hi, hi)
	}
}
