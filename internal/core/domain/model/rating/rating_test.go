package rating_test

import (
	"testing"

	"foodrun/internal/core/domain/model/kernel"
	"foodrun/internal/core/domain/model/rating"
	"foodrun/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func score(t *testing.T, value int) kernel.Score {
	t.Helper()
	s, err := kernel.NewScore(value)
	require.NoError(t, err)
	return s
}

func TestRestaurantRating(t *testing.T) {
	t.Run("requires a restaurant name", func(t *testing.T) {
		_, err := rating.NewRestaurantRating("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("new aggregate has no average", func(t *testing.T) {
		aggregate, err := rating.NewRestaurantRating("Pizza Place")
		require.NoError(t, err)

		_, ok := aggregate.Average()
		assert.False(t, ok)
		assert.Equal(t, 0, aggregate.Count())
	})

	t.Run("accumulates food scores into a running average", func(t *testing.T) {
		aggregate, err := rating.NewRestaurantRating("Pizza Place")
		require.NoError(t, err)

		require.NoError(t, aggregate.Record(score(t, 4)))
		avg, ok := aggregate.Average()
		require.True(t, ok)
		assert.True(t, avg.Equal(decimal.NewFromInt(4)), "average %s", avg)

		require.NoError(t, aggregate.Record(score(t, 2)))
		avg, ok = aggregate.Average()
		require.True(t, ok)
		assert.True(t, avg.Equal(decimal.NewFromInt(3)), "average %s", avg)
		assert.Equal(t, 2, aggregate.Count())
		assert.Equal(t, 6, aggregate.Sum())
	})

	t.Run("restore validates non-negative sums", func(t *testing.T) {
		_, err := rating.RestoreRestaurantRating("Pizza Place", -1, 2)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		aggregate, err := rating.RestoreRestaurantRating("Pizza Place", 7, 2)
		require.NoError(t, err)
		avg, ok := aggregate.Average()
		require.True(t, ok)
		assert.True(t, avg.Equal(decimal.RequireFromString("3.5")), "average %s", avg)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var aggregate rating.RestaurantRating
		require.ErrorIs(t, aggregate.Validate(), rating.ErrRestaurantRatingIsNotConstructed)
	})
}

func TestDriverRating(t *testing.T) {
	t.Run("requires a driver name", func(t *testing.T) {
		_, err := rating.NewDriverRating("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("new aggregate has no averages", func(t *testing.T) {
		aggregate, err := rating.NewDriverRating("driverA")
		require.NoError(t, err)

		_, ok := aggregate.AverageFood()
		assert.False(t, ok)
		_, ok = aggregate.AverageSpeed()
		assert.False(t, ok)
		_, ok = aggregate.AverageService()
		assert.False(t, ok)
	})

	t.Run("three sums share one count", func(t *testing.T) {
		aggregate, err := rating.NewDriverRating("driverA")
		require.NoError(t, err)

		require.NoError(t, aggregate.Record(score(t, 5), score(t, 4), score(t, 3)))
		require.NoError(t, aggregate.Record(score(t, 1), score(t, 2), score(t, 5)))

		assert.Equal(t, 2, aggregate.Count())
		assert.Equal(t, 6, aggregate.FoodSum())
		assert.Equal(t, 6, aggregate.SpeedSum())
		assert.Equal(t, 8, aggregate.ServiceSum())

		avg, ok := aggregate.AverageFood()
		require.True(t, ok)
		assert.True(t, avg.Equal(decimal.NewFromInt(3)))

		avg, ok = aggregate.AverageService()
		require.True(t, ok)
		assert.True(t, avg.Equal(decimal.NewFromInt(4)))
	})

	t.Run("restore validates non-negative sums", func(t *testing.T) {
		_, err := rating.RestoreDriverRating("driverA", 3, -2, 1, 1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		aggregate, err := rating.RestoreDriverRating("driverA", 9, 8, 7, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, aggregate.Count())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var aggregate rating.DriverRating
		require.ErrorIs(t, aggregate.Validate(), rating.ErrDriverRatingIsNotConstructed)
	})
}
