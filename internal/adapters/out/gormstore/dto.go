package gormstore

import (
	"foodrun/internal/core/domain/model/account"
	"foodrun/internal/core/domain/model/kernel"
	"foodrun/internal/core/domain/model/order"
	"foodrun/internal/core/domain/model/rating"
)

// OrderDTO maps order aggregates to the orders table. Status and driver are
// indexed because the board queries filter on them.
type OrderDTO struct {
	ID            int64  `gorm:"primaryKey"`
	Customer      string `gorm:"index"`
	Phone         string
	Restaurant    string
	Category      string
	Food          string
	Price         float64
	Quantity      int
	Dropoff       string
	Payment       string
	Status        string  `gorm:"index"`
	Driver        *string `gorm:"index"`
	Tip           float64
	RatingFood    *int
	RatingSpeed   *int
	RatingService *int
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// RestaurantRatingDTO maps restaurant reputation aggregates, keyed by name.
type RestaurantRatingDTO struct {
	Name        string `gorm:"primaryKey"`
	RatingSum   int
	RatingCount int
}

// TableName overrides GORM's default naming to use "restaurant_ratings".
func (RestaurantRatingDTO) TableName() string {
	return "restaurant_ratings"
}

// DriverRatingDTO maps driver reputation aggregates, keyed by name.
type DriverRatingDTO struct {
	Name        string `gorm:"primaryKey"`
	RatingSum   int
	RatingCount int
	SpeedSum    int
	ServiceSum  int
}

// TableName overrides GORM's default naming to use "driver_ratings".
func (DriverRatingDTO) TableName() string {
	return "driver_ratings"
}

// UserDTO maps user accounts, keyed by name. Password holds the bcrypt hash.
type UserDTO struct {
	Name     string `gorm:"primaryKey"`
	Password string
	Phone    string
	Role     string
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

func orderFromDomain(aggregate *order.Order) OrderDTO {
	dto := OrderDTO{
		ID:         aggregate.ID().Int64(),
		Customer:   aggregate.Customer(),
		Phone:      aggregate.Phone(),
		Restaurant: aggregate.Item().Restaurant(),
		Category:   aggregate.Item().Category(),
		Food:       aggregate.Item().Food(),
		Price:      aggregate.Item().UnitPrice().Float64(),
		Quantity:   aggregate.Item().Quantity(),
		Dropoff:    aggregate.Dropoff(),
		Payment:    aggregate.Payment().String(),
		Status:     aggregate.Status().String(),
		Driver:     aggregate.Driver(),
		Tip:        aggregate.Tip().Float64(),
	}

	if r := aggregate.Rating(); r != nil {
		food, speed, service := r.Food().Int(), r.Speed().Int(), r.Service().Int()
		dto.RatingFood = &food
		dto.RatingSpeed = &speed
		dto.RatingService = &service
	}

	return dto
}

func orderToDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.ID)
	if err != nil {
		return nil, err
	}

	unitPrice, err := kernel.NewMoneyFromFloat(dto.Price)
	if err != nil {
		return nil, err
	}
	item, err := order.NewItem(dto.Restaurant, dto.Category, dto.Food, unitPrice, dto.Quantity)
	if err != nil {
		return nil, err
	}

	tip, err := kernel.NewMoneyFromFloat(dto.Tip)
	if err != nil {
		return nil, err
	}
	payment, err := order.PaymentFromString(dto.Payment)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var orderRating *order.Rating
	if dto.RatingFood != nil && dto.RatingSpeed != nil && dto.RatingService != nil {
		food, scoreErr := kernel.NewScore(*dto.RatingFood)
		if scoreErr != nil {
			return nil, scoreErr
		}
		speed, scoreErr := kernel.NewScore(*dto.RatingSpeed)
		if scoreErr != nil {
			return nil, scoreErr
		}
		service, scoreErr := kernel.NewScore(*dto.RatingService)
		if scoreErr != nil {
			return nil, scoreErr
		}
		r, ratingErr := order.NewRating(food, speed, service)
		if ratingErr != nil {
			return nil, ratingErr
		}
		orderRating = &r
	}

	return order.RestoreOrder(
		id, dto.Customer, dto.Phone, item, dto.Dropoff, payment, tip,
		status, dto.Driver, orderRating)
}

func userFromDomain(user *account.User) UserDTO {
	return UserDTO{
		Name:     user.Name(),
		Password: user.PasswordHash(),
		Phone:    user.Phone(),
		Role:     user.Role().String(),
	}
}

func userToDomain(dto UserDTO) (*account.User, error) {
	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}
	return account.NewUser(dto.Name, dto.Password, dto.Phone, role)
}

func restaurantRatingToDomain(dto RestaurantRatingDTO) (*rating.RestaurantRating, error) {
	return rating.RestoreRestaurantRating(dto.Name, dto.RatingSum, dto.RatingCount)
}

func driverRatingToDomain(dto DriverRatingDTO) (*rating.DriverRating, error) {
	return rating.RestoreDriverRating(dto.Name, dto.RatingSum, dto.SpeedSum, dto.ServiceSum, dto.RatingCount)
}
