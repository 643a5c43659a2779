package jsonstore

import (
	"context"

	"foodrun/internal/core/domain/model/rating"
)

type ratingRepository struct {
	uow *UnitOfWork
}

// GetRestaurant returns the restaurant's aggregate, or a fresh empty one for
// a restaurant that has never been rated.
func (r *ratingRepository) GetRestaurant(_ context.Context, name string) (*rating.RestaurantRating, error) {
	if r.uow.state == nil {
		return nil, ErrNoActiveTransaction
	}

	if dto, exists := r.uow.state.ratings.Restaurants[name]; exists {
		return restaurantRatingToDomain(name, dto)
	}
	return rating.NewRestaurantRating(name)
}

// GetDriver returns the driver's aggregate, or a fresh empty one for a
// driver who has never been rated.
func (r *ratingRepository) GetDriver(_ context.Context, name string) (*rating.DriverRating, error) {
	if r.uow.state == nil {
		return nil, ErrNoActiveTransaction
	}

	if dto, exists := r.uow.state.ratings.Drivers[name]; exists {
		return driverRatingToDomain(name, dto)
	}
	return rating.NewDriverRating(name)
}

func (r *ratingRepository) SaveRestaurant(_ context.Context, aggregate *rating.RestaurantRating) error {
	if r.uow.state == nil {
		return ErrNoActiveTransaction
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.uow.state.ratings.Restaurants[aggregate.Name()] = restaurantRatingFromDomain(aggregate)
	return nil
}

func (r *ratingRepository) SaveDriver(_ context.Context, aggregate *rating.DriverRating) error {
	if r.uow.state == nil {
		return ErrNoActiveTransaction
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.uow.state.ratings.Drivers[aggregate.Name()] = driverRatingFromDomain(aggregate)
	return nil
}
