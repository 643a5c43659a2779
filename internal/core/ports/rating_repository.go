package ports

import (
	"context"

	"foodrun/internal/core/domain/model/rating"
)

// RatingRepository defines the persistence contract for the reputation
// aggregates. Aggregates are lazily created: getting a name that has never
// been rated returns a fresh empty aggregate, not an error.
type RatingRepository interface {
	// GetRestaurant retrieves the aggregate for a restaurant, creating an
	// empty one if none has been persisted yet.
	GetRestaurant(ctx context.Context, name string) (*rating.RestaurantRating, error)

	// GetDriver retrieves the aggregate for a driver, creating an empty one
	// if none has been persisted yet.
	GetDriver(ctx context.Context, name string) (*rating.DriverRating, error)

	// SaveRestaurant persists a restaurant aggregate.
	SaveRestaurant(ctx context.Context, aggregate *rating.RestaurantRating) error

	// SaveDriver persists a driver aggregate.
	SaveDriver(ctx context.Context, aggregate *rating.DriverRating) error
}
