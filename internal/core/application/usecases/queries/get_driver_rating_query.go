package queries

import (
	"errors"

	"foodrun/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetDriverRatingQueryIsNotConstructed = errors.New(
		"GetDriverRatingQuery must be created via NewGetDriverRatingQuery constructor",
	)
)

// GetDriverRatingQuery retrieves a driver's reputation: the running averages
// of the three scores customers have given their deliveries.
type GetDriverRatingQuery struct {
	driver string

	guard guard.ConstructorGuard
}

// NewGetDriverRatingQuery creates a query for the driver's reputation.
func NewGetDriverRatingQuery(driver string) (GetDriverRatingQuery, error) {
	if driver == "" {
		return GetDriverRatingQuery{}, ErrDriverIsRequired
	}

	return GetDriverRatingQuery{
		driver: driver,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDriverRatingQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverRatingQueryIsNotConstructed)
}

// Driver returns the name whose reputation is requested.
func (q GetDriverRatingQuery) Driver() string {
	return q.driver
}

// DriverRatingResponse is the driver reputation read model. Rated is false
// while the driver has no recorded deliveries, in which case the averages
// are zero and carry no meaning.
type DriverRatingResponse struct {
	Driver  string
	Food    decimal.Decimal
	Speed   decimal.Decimal
	Service decimal.Decimal
	Count   int
	Rated   bool
}
