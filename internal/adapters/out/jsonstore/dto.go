package jsonstore

import (
	"foodrun/internal/core/domain/model/account"
	"foodrun/internal/core/domain/model/kernel"
	"foodrun/internal/core/domain/model/order"
	"foodrun/internal/core/domain/model/rating"
)

// orderDTO is the wire shape of one order in orders.json. The file is a map
// keyed by the string-encoded order ID; money is a plain JSON number and the
// optional fields are null until the lifecycle produces them.
type orderDTO struct {
	Customer      string  `json:"customer"`
	Phone         string  `json:"phone"`
	Restaurant    string  `json:"restaurant"`
	Category      string  `json:"category"`
	Food          string  `json:"food"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	Dropoff       string  `json:"dropoff"`
	Payment       string  `json:"payment"`
	Tip           float64 `json:"tip"`
	Status        string  `json:"status"`
	Driver        *string `json:"driver"`
	RatingFood    *int    `json:"rating_food"`
	RatingSpeed   *int    `json:"rating_speed"`
	RatingService *int    `json:"rating_service"`
}

// ratingsDTO is the wire shape of ratings.json.
type ratingsDTO struct {
	Restaurants map[string]restaurantRatingDTO `json:"restaurants"`
	Drivers     map[string]driverRatingDTO     `json:"drivers"`
}

type restaurantRatingDTO struct {
	RatingSum   int `json:"rating_sum"`
	RatingCount int `json:"rating_count"`
}

type driverRatingDTO struct {
	RatingSum   int `json:"rating_sum"`
	RatingCount int `json:"rating_count"`
	SpeedSum    int `json:"speed_sum"`
	ServiceSum  int `json:"service_sum"`
}

// userDTO is the wire shape of one user in users.json, keyed by name.
type userDTO struct {
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

func orderFromDomain(aggregate *order.Order) orderDTO {
	dto := orderDTO{
		Customer:   aggregate.Customer(),
		Phone:      aggregate.Phone(),
		Restaurant: aggregate.Item().Restaurant(),
		Category:   aggregate.Item().Category(),
		Food:       aggregate.Item().Food(),
		Price:      aggregate.Item().UnitPrice().Float64(),
		Quantity:   aggregate.Item().Quantity(),
		Dropoff:    aggregate.Dropoff(),
		Payment:    aggregate.Payment().String(),
		Tip:        aggregate.Tip().Float64(),
		Status:     aggregate.Status().String(),
		Driver:     aggregate.Driver(),
	}

	if r := aggregate.Rating(); r != nil {
		food, speed, service := r.Food().Int(), r.Speed().Int(), r.Service().Int()
		dto.RatingFood = &food
		dto.RatingSpeed = &speed
		dto.RatingService = &service
	}

	return dto
}

func orderToDomain(key string, dto orderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(key)
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

func restaurantRatingFromDomain(aggregate *rating.RestaurantRating) restaurantRatingDTO {
	return restaurantRatingDTO{
		RatingSum:   aggregate.Sum(),
		RatingCount: aggregate.Count(),
	}
}

func restaurantRatingToDomain(name string, dto restaurantRatingDTO) (*rating.RestaurantRating, error) {
	return rating.RestoreRestaurantRating(name, dto.RatingSum, dto.RatingCount)
}

func driverRatingFromDomain(aggregate *rating.DriverRating) driverRatingDTO {
	return driverRatingDTO{
		RatingSum:   aggregate.FoodSum(),
		RatingCount: aggregate.Count(),
		SpeedSum:    aggregate.SpeedSum(),
		ServiceSum:  aggregate.ServiceSum(),
	}
}

func driverRatingToDomain(name string, dto driverRatingDTO) (*rating.DriverRating, error) {
	return rating.RestoreDriverRating(name, dto.RatingSum, dto.SpeedSum, dto.ServiceSum, dto.RatingCount)
}

func userFromDomain(user *account.User) userDTO {
	return userDTO{
		Password: user.PasswordHash(),
		Phone:    user.Phone(),
		Role:     user.Role().String(),
	}
}

func userToDomain(name string, dto userDTO) (*account.User, error) {
	role, err := account.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}
	return account.NewUser(name, dto.Password, dto.Phone, role)
}
