package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/connectfour-console/testing/suite"
)

func TestScoreRepository_RecordResult(t *testing.T) {
	t.Run("Tallies wins and draws", func(t *testing.T) {
		ctx, st := suite.New(t)

		scoreRepo := NewScoreRepository(st.Storage)

		// Given: two red wins, one yellow win and one draw
		for _, result := range []string{ResultRed, ResultRed, ResultYellow, ResultDraw} {
			// When: each result is recorded
			err := scoreRepo.RecordResult(ctx, result)
			require.NoError(t, err)
		}

		// Then: the tally reflects every recorded result
		score, err := scoreRepo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, score.RedWins)
		assert.Equal(t, 1, score.YellowWins)
		assert.Equal(t, 1, score.Draws)
	})

	t.Run("Error on unknown result", func(t *testing.T) {
		ctx, st := suite.New(t)

		scoreRepo := NewScoreRepository(st.Storage)

		// When: an unknown result is recorded
		err := scoreRepo.RecordResult(ctx, "blue")

		// Then: ErrUnknownResult should be returned
		assert.ErrorIs(t, err, ErrUnknownResult)
	})
}

func TestScoreRepository_Get(t *testing.T) {
	ctx, st := suite.New(t)

	scoreRepo := NewScoreRepository(st.Storage)

	// When: the tally is read before any game was recorded
	score, err := scoreRepo.Get(ctx)

	// Then: every counter is zero
	require.NoError(t, err)
	assert.Equal(t, 0, score.RedWins)
	assert.Equal(t, 0, score.YellowWins)
	assert.Equal(t, 0, score.Draws)
}
