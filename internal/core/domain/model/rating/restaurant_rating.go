package rating

import (
	"errors"
	"fmt"

	"foodrun/internal/core/domain/model/kernel"
	"foodrun/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrRestaurantRatingIsNotConstructed is returned when a RestaurantRating was
// not created through a factory method.
var ErrRestaurantRatingIsNotConstructed = errors.New(
	"RestaurantRating must be created via NewRestaurantRating or RestoreRestaurantRating",
)

// RestaurantRating is the running reputation aggregate of one restaurant:
// the sum and count of food scores from rated orders. It is lazily created
// with zeros on the first contributing rating.
type RestaurantRating struct {
	// name is the restaurant the aggregate belongs to
	name string

	// sum is the accumulated food score total
	sum int

	// count is the number of contributing ratings
	count int

	// isConstructed ensures the aggregate was created via a factory method
	isConstructed bool
}

// NewRestaurantRating creates an empty aggregate for a restaurant. Used the
// first time a rating lands for a restaurant that has no aggregate yet.
func NewRestaurantRating(name string) (*RestaurantRating, error) {
	if name == "" {
		return nil, errs.NewValueIsRequiredError("restaurant")
	}

	return &RestaurantRating{
		name:          name,
		isConstructed: true,
	}, nil
}

// RestoreRestaurantRating reconstructs an aggregate from persistence,
// rejecting negative sums or counts.
func RestoreRestaurantRating(name string, sum, count int) (*RestaurantRating, error) {
	aggregate, err := NewRestaurantRating(name)
	if err != nil {
		return nil, err
	}

	if sum < 0 || count < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("restaurant rating",
			fmt.Errorf("sum %d and count %d must be non-negative", sum, count))
	}

	aggregate.sum = sum
	aggregate.count = count
	return aggregate, nil
}

// Validate ensures the aggregate was created through a factory method.
func (r *RestaurantRating) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantRatingIsNotConstructed
	}

	return nil
}

// Name returns the restaurant the aggregate belongs to.
func (r *RestaurantRating) Name() string {
	return r.name
}

// Sum returns the accumulated food score total.
func (r *RestaurantRating) Sum() int {
	return r.sum
}

// Count returns the number of contributing ratings.
func (r *RestaurantRating) Count() int {
	return r.count
}

// Record accumulates one food score from a rated order.
func (r *RestaurantRating) Record(food kernel.Score) error {
	if err := food.Validate(); err != nil {
		return err
	}

	r.sum += food.Int()
	r.count++
	return nil
}

// Average returns the mean food score and true, or zero and false when no
// rating has been recorded yet. It never divides by zero.
func (r *RestaurantRating) Average() (decimal.Decimal, bool) {
	if r.count == 0 {
		return decimal.Zero, false
	}

	return average(r.sum, r.count), true
}

func average(sum, count int) decimal.Decimal {
	return decimal.NewFromInt(int64(sum)).Div(decimal.NewFromInt(int64(count)))
}
