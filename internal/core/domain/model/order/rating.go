package order

import (
	"errors"

	"foodrun/internal/core/domain/model/kernel"
	"foodrun/internal/pkg/guard"
)

// ErrRatingIsNotConstructed is returned when a Rating instance was not
// created through the NewRating factory method.
var ErrRatingIsNotConstructed = errors.New("Rating must be created via NewRating constructor")

// Rating is the three-part score a customer attaches to a completed order:
// food quality, delivery speed and driver service, each on the five-point
// scale. A rating is written at most once per order.
//
// The food score feeds the restaurant's aggregate; all three scores feed the
// assigned driver's aggregate.
type Rating struct {
	food    kernel.Score
	speed   kernel.Score
	service kernel.Score

	guard guard.ConstructorGuard
}

// NewRating creates a Rating from three scores, validating each against the
// five-point scale.
func NewRating(food, speed, service kernel.Score) (Rating, error) {
	rating := Rating{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		rating.setFood(food),
		rating.setSpeed(speed),
		rating.setService(service),
	); err != nil {
		return Rating{}, err
	}

	return rating, nil
}

// Validate ensures the Rating was created through NewRating.
func (r Rating) Validate() error {
	return r.guard.Validate(ErrRatingIsNotConstructed)
}

// Food returns the food quality score.
func (r Rating) Food() kernel.Score {
	return r.food
}

// Speed returns the delivery speed score.
func (r Rating) Speed() kernel.Score {
	return r.speed
}

// Service returns the driver service score.
func (r Rating) Service() kernel.Score {
	return r.service
}

func (r *Rating) setFood(food kernel.Score) error {
	if err := food.Validate(); err != nil {
		return err
	}
	r.food = food
	return nil
}

func (r *Rating) setSpeed(speed kernel.Score) error {
	if err := speed.Validate(); err != nil {
		return err
	}
	r.speed = speed
	return nil
}

func (r *Rating) setService(service kernel.Score) error {
	if err := service.Validate(); err != nil {
		return err
	}
	r.service = service
	return nil
}
