package rating

import (
	"errors"
	"fmt"

	"foodrun/internal/core/domain/model/kernel"
	"foodrun/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrDriverRatingIsNotConstructed is returned when a DriverRating was not
// created through a factory method.
var ErrDriverRatingIsNotConstructed = errors.New(
	"DriverRating must be created via NewDriverRating or RestoreDriverRating",
)

// DriverRating is the running reputation aggregate of one driver: three
// independent score sums (food, speed, service) sharing a single rating
// count. Every rated order the driver delivered contributes all three scores
// at once.
type DriverRating struct {
	// name is the driver the aggregate belongs to
	name string

	// foodSum, speedSum and serviceSum accumulate the three score totals
	foodSum    int
	speedSum   int
	serviceSum int

	// count is the number of contributing ratings, shared by all three sums
	count int

	// isConstructed ensures the aggregate was created via a factory method
	isConstructed bool
}

// NewDriverRating creates an empty aggregate for a driver. Used the first
// time a rating lands for a driver that has no aggregate yet.
func NewDriverRating(name string) (*DriverRating, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("driver")
	}

	return &DriverRating{
		name:          name,
		isConstructed: true,
	}, nil
}

// RestoreDriverRating reconstructs an aggregate from persistence, rejecting
// negative sums or counts.
func RestoreDriverRating(name string, foodSum, speedSum, serviceSum, count int) (*DriverRating, error) {
	aggregate, err := NewDriverRating(name)
	if err != nil {
		return nil, err
	}

	if foodSum < 0 || speedSum < 0 || serviceSum < 0 || count < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("driver rating",
			fmt.Errorf("sums %d/%d/%d and count %d must be non-negative",
				foodSum, speedSum, serviceSum, count))
	}

	aggregate.foodSum = foodSum
	aggregate.speedSum = speedSum
	aggregate.serviceSum = serviceSum
	aggregate.count = count
	return aggregate, nil
}

// Validate ensures the aggregate was created through a factory method.
func (d *DriverRating) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDriverRatingIsNotConstructed
	}

	return nil
}

// Name returns the driver the aggregate belongs to.
func (d *DriverRating) Name() string {
	return d.name
}

// FoodSum returns the accumulated food score total.
func (d *DriverRating) FoodSum() int {
	return d.foodSum
}

// SpeedSum returns the accumulated speed score total.
func (d *DriverRating) SpeedSum() int {
	return d.speedSum
}

// ServiceSum returns the accumulated service score total.
func (d *DriverRating) ServiceSum() int {
	return d.serviceSum
}

// Count returns the number of contributing ratings.
func (d *DriverRating) Count() int {
	return d.count
}

// Record accumulates the three scores of one rated order.
func (d *DriverRating) Record(food, speed, service kernel.Score) error {
	if err := errors.Join(
		food.Validate(),
		speed.Validate(),
		service.Validate(),
	); err != nil {
		return err
	}

	d.foodSum += food.Int()
	d.speedSum += speed.Int()
	d.serviceSum += service.Int()
	d.count++
	return nil
}

// AverageFood returns the mean food score and true, or zero and false when
// no rating has been recorded.
func (d *DriverRating) AverageFood() (decimal.Decimal, bool) {
	if d.count == 0 {
		return decimal.Zero, false
	}
	return average(d.foodSum, d.count), true
}

// AverageSpeed returns the mean speed score and true, or zero and false when
// no rating has been recorded.
func (d *DriverRating) AverageSpeed() (decimal.Decimal, bool) {
	if d.count == 0 {
		return decimal.Zero, false
	}
	return average(d.speedSum, d.count), true
}

// AverageService returns the mean service score and true, or zero and false
// when no rating has been recorded.
func (d *DriverRating) AverageService() (decimal.Decimal, bool) {
	if d.count == 0 {
		return decimal.Zero, false
	}
	return average(d.serviceSum, d.count), true
}
