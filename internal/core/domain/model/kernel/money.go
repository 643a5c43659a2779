package kernel

import (
	"fmt"

	"foodrun/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a non-negative monetary amount in the
// marketplace currency. It wraps a decimal to keep cart arithmetic exact:
// subtotals, the 10% service tax and the 6% delivery charge are computed on
// decimals and only converted to a float at the persistence and presentation
// boundaries.
//
// Money is immutable; arithmetic methods return new values.
//
// Example usage:
//
//	price, _ := kernel.NewMoneyFromFloat(12.0)
//	lineTotal := price.MulInt(3)           // 36.00
//	tax := lineTotal.MulRate("0.10")       // 3.60
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a Money of zero amount. Unlike the zero value of the
// struct, it is a valid amount (a free side dish costs 0.00).
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a decimal amount. Negative amounts are rejected.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%s is negative", amount))
	}

	return Money{amount: amount}, nil
}

// NewMoneyFromFloat creates a Money from a float64 amount, the representation
// used in the persisted stores and on the wire. Negative amounts are rejected.
func NewMoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// Add returns the sum of the two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulInt returns the amount multiplied by a whole quantity.
func (m Money) MulInt(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// MulRate returns the amount multiplied by a decimal rate given in string
// form, e.g. "0.10" for the service tax. Panics on an unparsable rate, which
// only occurs for malformed policy constants.
func (m Money) MulRate(rate string) Money {
	return Money{amount: m.amount.Mul(decimal.RequireFromString(rate))}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Equal reports whether the two amounts are numerically equal.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the amount as a float64. Persisted stores keep monetary
// values as plain JSON numbers, so DTO mapping goes through this method.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String formats the amount with two decimal places, e.g. "12.50".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
