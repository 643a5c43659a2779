package queries

import (
	"errors"

	"foodrun/internal/core/domain/model/kernel"
	"foodrun/internal/pkg/guard"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)

	ErrCustomerIsRequired = errors.New("customer is required")
)

// GetCartQuery retrieves a customer's current cart with its priced totals.
type GetCartQuery struct {
	customer string

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the given customer's cart.
func NewGetCartQuery(customer string) (GetCartQuery, error) {
	if customer == "" {
		return GetCartQuery{}, ErrCustomerIsRequired
	}

	return GetCartQuery{
		customer: customer,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// Customer returns the cart owner's name.
func (q GetCartQuery) Customer() string {
	return q.customer
}

// CartLineResponse is one cart entry with its extended price.
type CartLineResponse struct {
	Restaurant string
	Category   string
	Food       string
	UnitPrice  kernel.Money
	Quantity   int
	Subtotal   kernel.Money
}

// CartResponse is the cart read model: the lines in display order and the
// priced breakdown. Charges are derived from the subtotal alone, so two
// carts with equal lines always price identically.
type CartResponse struct {
	Lines          []CartLineResponse
	Subtotal       kernel.Money
	ServiceTax     kernel.Money
	DeliveryCharge kernel.Money
	Total          kernel.Money
}
