package scoring_test

import (
	"testing"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/scoring"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRating(t *testing.T) {
	t.Run("creates_rating_with_overall_mean", func(t *testing.T) {
		r, err := scoring.NewRating(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			5, 4, 3, "good trip",
		)

		require.NoError(t, err)
		require.NoError(t, r.Validate())
		assert.Equal(t, 5, r.Efficiency())
		assert.InDelta(t, 4.0, r.Overall(), 1e-9)
	})

	t.Run("rejects_out_of_range_scores", func(t *testing.T) {
		for _, score := range []int{0, 6, -1} {
			_, err := scoring.NewRating(
				kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
				score, 3, 3, "",
			)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var r scoring.Rating

		require.Error(t, r.Validate())
	})
}
