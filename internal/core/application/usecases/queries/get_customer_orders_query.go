package queries

import (
	"errors"

	"foodrun/internal/pkg/guard"
)

var (
	ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
		"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
	)
)

// GetCustomerOrdersQuery retrieves a customer's order history, newest first.
type GetCustomerOrdersQuery struct {
	customer string

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates a query for the customer's orders.
func NewGetCustomerOrdersQuery(customer string) (GetCustomerOrdersQuery, error) {
	if customer == "" {
		return GetCustomerOrdersQuery{}, ErrCustomerIsRequired
	}

	return GetCustomerOrdersQuery{
		customer: customer,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// Customer returns the name whose orders are requested.
func (q GetCustomerOrdersQuery) Customer() string {
	return q.customer
}
