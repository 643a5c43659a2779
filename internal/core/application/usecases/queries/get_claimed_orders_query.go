package queries

import (
	"errors"

	"foodrun/internal/pkg/guard"
)

var (
	ErrGetClaimedOrdersQueryIsNotConstructed = errors.New(
		"GetClaimedOrdersQuery must be created via NewGetClaimedOrdersQuery constructor",
	)

	ErrDriverIsRequired = errors.New("driver is required")
)

// GetClaimedOrdersQuery retrieves the orders a driver has claimed but not
// yet delivered. The customer's phone number is formatted for display so
// the driver can call about the delivery.
type GetClaimedOrdersQuery struct {
	driver string

	guard guard.ConstructorGuard
}

// NewGetClaimedOrdersQuery creates a query for the driver's active claims.
func NewGetClaimedOrdersQuery(driver string) (GetClaimedOrdersQuery, error) {
	if driver == "" {
		return GetClaimedOrdersQuery{}, ErrDriverIsRequired
	}

	return GetClaimedOrdersQuery{
		driver: driver,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetClaimedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetClaimedOrdersQueryIsNotConstructed)
}

// Driver returns the name whose claims are requested.
func (q GetClaimedOrdersQuery) Driver() string {
	return q.driver
}
