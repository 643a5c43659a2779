package gormstore

import (
	"context"
	"errors"

	"foodrun/internal/core/domain/model/rating"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRatingRepository implements ports.RatingRepository over the reputation
// tables.
type GormRatingRepository struct {
	db *gorm.DB
}

// NewGormRatingRepository creates a rating repository on the given
// connection or transaction.
func NewGormRatingRepository(db *gorm.DB) *GormRatingRepository {
	return &GormRatingRepository{db: db}
}

// GetRestaurant returns the restaurant's aggregate, empty when the
// restaurant has never been rated.
func (r *GormRatingRepository) GetRestaurant(ctx context.Context, name string) (*rating.RestaurantRating, error) {
	var dto RestaurantRatingDTO
	err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rating.NewRestaurantRating(name)
		}
		return nil, err
	}

	return restaurantRatingToDomain(dto)
}

// GetDriver returns the driver's aggregate, empty when the driver has never
// been rated.
func (r *GormRatingRepository) GetDriver(ctx context.Context, name string) (*rating.DriverRating, error) {
	var dto DriverRatingDTO
	err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rating.NewDriverRating(name)
		}
		return nil, err
	}

	return driverRatingToDomain(dto)
}

// SaveRestaurant upserts a restaurant aggregate.
func (r *GormRatingRepository) SaveRestaurant(ctx context.Context, aggregate *rating.RestaurantRating) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := RestaurantRatingDTO{
		Name:        aggregate.Name(),
		RatingSum:   aggregate.Sum(),
		RatingCount: aggregate.Count(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
}

// SaveDriver upserts a driver aggregate.
func (r *GormRatingRepository) SaveDriver(ctx context.Context, aggregate *rating.DriverRating) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := DriverRatingDTO{
		Name:        aggregate.Name(),
		RatingSum:   aggregate.FoodSum(),
		RatingCount: aggregate.Count(),
		SpeedSum:    aggregate.SpeedSum(),
		ServiceSum:  aggregate.ServiceSum(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&dto).Error
}
