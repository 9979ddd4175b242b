package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreBrackets(t *testing.T) {
	cases := []struct {
		name         string
		points       int
		large, small int
	}{
		{"all points", 120, 6, -3},
		{"strong win", 91, 4, -2},
		{"win", 61, 2, -1},
		{"narrow loss", 60, -4, 2},
		{"loss", 32, -4, 2},
		{"bad loss", 31, -6, 3},
		{"deep loss", 30, -6, 3},
		{"two points", 2, -6, 3},
		{"one point", 1, -8, 4},
		{"no points", 0, -8, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			large, small, err := Score(tc.points, DeckPoints-tc.points, 0)
			require.NoError(t, err)
			assert.Equal(t, tc.large, large)
			assert.Equal(t, tc.small, small)
		})
	}
}

func TestScoreIncentiveOnWinningBrackets(t *testing.T) {
	large, small, err := Score(120, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, 8, large)
	assert.Equal(t, -4, small)

	large, small, err = Score(61, 59, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, large)
	assert.Equal(t, -3, small)

	// losing brackets ignore the incentive
	large, small, err = Score(30, 90, 5)
	require.NoError(t, err)
	assert.Equal(t, -6, large)
	assert.Equal(t, 3, small)
}

func TestScoreRejectsBadTotals(t *testing.T) {
	_, _, err := Score(60, 61, 0)
	assert.Error(t, err)
	_, _, err = Score(0, 0, 0)
	assert.Error(t, err)
}
