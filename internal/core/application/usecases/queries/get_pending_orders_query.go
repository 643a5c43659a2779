package queries

import (
	"errors"

	"foodrun/internal/pkg/guard"
)

var (
	ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
		"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
	)
)

// GetPendingOrdersQuery retrieves every order waiting to be claimed. This is
// the board drivers pick work from.
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a query for unclaimed orders.
func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}
