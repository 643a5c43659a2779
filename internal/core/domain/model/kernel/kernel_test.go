package kernel_test

import (
	"testing"

	"foodrun/internal/core/domain/model/kernel"
	"foodrun/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	t.Run("accepts positive values", func(t *testing.T) {
		id, err := kernel.NewOrderID(1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), id.Int64())
		assert.Equal(t, "1", id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("rejects zero and negatives", func(t *testing.T) {
		for _, value := range []int64{0, -1, -42} {
			_, err := kernel.NewOrderID(value)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var id kernel.OrderID
		require.ErrorIs(t, id.Validate(), errs.ErrValueIsRequired)
	})
}

func TestOrderIDFromString(t *testing.T) {
	t.Run("parses decimal strings", func(t *testing.T) {
		id, err := kernel.OrderIDFromString("17")
		require.NoError(t, err)
		assert.Equal(t, int64(17), id.Int64())
	})

	t.Run("rejects non-numeric strings", func(t *testing.T) {
		_, err := kernel.OrderIDFromString("not-a-number")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects non-positive strings", func(t *testing.T) {
		_, err := kernel.OrderIDFromString("0")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrderID_Next(t *testing.T) {
	id, err := kernel.NewOrderID(5)
	require.NoError(t, err)

	next := id.Next()
	assert.Equal(t, int64(6), next.Int64())
	assert.True(t, id.Less(next))
	assert.False(t, next.Less(id))
	assert.False(t, id.IsEqual(next))
}

func TestMoney(t *testing.T) {
	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoneyFromFloat(-0.01)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero is a valid amount", func(t *testing.T) {
		m := kernel.ZeroMoney()
		assert.True(t, m.IsZero())
		assert.Equal(t, "0.00", m.String())
	})

	t.Run("arithmetic is exact", func(t *testing.T) {
		price, err := kernel.NewMoneyFromFloat(12.0)
		require.NoError(t, err)

		lineTotal := price.MulInt(3)
		assert.True(t, lineTotal.Equal(mustMoney(t, 36.0)))

		tax := lineTotal.MulRate("0.10")
		assert.True(t, tax.Equal(mustMoney(t, 3.6)))

		sum := lineTotal.Add(tax)
		assert.True(t, sum.Decimal().Equal(decimal.RequireFromString("39.6")))
	})

	t.Run("float round trip", func(t *testing.T) {
		m, err := kernel.NewMoneyFromFloat(13.5)
		require.NoError(t, err)
		assert.InDelta(t, 13.5, m.Float64(), 1e-9)
	})
}

func TestNewScore(t *testing.T) {
	t.Run("accepts the five-point scale", func(t *testing.T) {
		for value := kernel.MinScore; value <= kernel.MaxScore; value++ {
			score, err := kernel.NewScore(value)
			require.NoError(t, err)
			assert.Equal(t, value, score.Int())
			require.NoError(t, score.Validate())
		}
	})

	t.Run("rejects values outside the scale", func(t *testing.T) {
		for _, value := range []int{0, 6, -1, 100} {
			_, err := kernel.NewScore(value)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var score kernel.Score
		require.ErrorIs(t, score.Validate(), errs.ErrValueIsOutOfRange)
	})
}

func mustMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromFloat(amount)
	require.NoError(t, err)
	return m
}
