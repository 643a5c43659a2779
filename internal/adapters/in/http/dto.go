package http

import (
	"foodrun/internal/core/application/usecases/queries"
)

// Error is the uniform error body every failing route returns.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
	Phone    string `json:"phone" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=Customer Driver"`
}

type loginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=Customer Driver"`
}

type loginResponse struct {
	Token string `json:"token"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type addCartItemRequest struct {
	Restaurant string `json:"restaurant" validate:"required"`
	Category   string `json:"category" validate:"required"`
	Food       string `json:"food" validate:"required"`
}

type adjustCartItemRequest struct {
	Delta int `json:"delta" validate:"required,oneof=-1 1"`
}

type checkoutRequest struct {
	Dropoff string  `json:"dropoff" validate:"required"`
	Payment string  `json:"payment" validate:"required,oneof=Cash"`
	Tip     float64 `json:"tip" validate:"gte=0"`
}

type rateOrderRequest struct {
	Food    int `json:"food" validate:"required,min=1,max=5"`
	Speed   int `json:"speed" validate:"required,min=1,max=5"`
	Service int `json:"service" validate:"required,min=1,max=5"`
}

type menuItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type menuCategory struct {
	Name  string     `json:"name"`
	Items []menuItem `json:"items"`
}

type restaurantMenu struct {
	Name       string         `json:"name"`
	Average    *float64       `json:"average,omitempty"`
	Categories []menuCategory `json:"categories"`
}

type cartLine struct {
	Restaurant string  `json:"restaurant"`
	Category   string  `json:"category"`
	Food       string  `json:"food"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
	Subtotal   float64 `json:"subtotal"`
}

type cartView struct {
	Lines          []cartLine `json:"lines"`
	Subtotal       float64    `json:"subtotal"`
	ServiceTax     float64    `json:"service_tax"`
	DeliveryCharge float64    `json:"delivery_charge"`
	Total          float64    `json:"total"`
}

type orderRating struct {
	Food    int `json:"food"`
	Speed   int `json:"speed"`
	Service int `json:"service"`
}

type orderView struct {
	ID         int64        `json:"id"`
	Customer   string       `json:"customer"`
	Phone      string       `json:"phone"`
	Restaurant string       `json:"restaurant"`
	Category   string       `json:"category"`
	Food       string       `json:"food"`
	UnitPrice  float64      `json:"unit_price"`
	Quantity   int          `json:"quantity"`
	Dropoff    string       `json:"dropoff"`
	Payment    string       `json:"payment"`
	Tip        float64      `json:"tip"`
	Status     string       `json:"status"`
	Driver     *string      `json:"driver"`
	Rating     *orderRating `json:"rating,omitempty"`
}

type driverRatingView struct {
	Driver  string   `json:"driver"`
	Food    *float64 `json:"food"`
	Speed   *float64 `json:"speed"`
	Service *float64 `json:"service"`
	Count   int      `json:"count"`
}

func newOrderView(resp queries.OrderResponse) orderView {
	view := orderView{
		ID:         resp.ID,
		Customer:   resp.Customer,
		Phone:      resp.Phone,
		Restaurant: resp.Restaurant,
		Category:   resp.Category,
		Food:       resp.Food,
		UnitPrice:  resp.UnitPrice.Float64(),
		Quantity:   resp.Quantity,
		Dropoff:    resp.Dropoff,
		Payment:    resp.Payment,
		Tip:        resp.Tip.Float64(),
		Status:     resp.Status,
		Driver:     resp.Driver,
	}
	if resp.Rating != nil {
		view.Rating = &orderRating{
			Food:    resp.Rating.Food,
			Speed:   resp.Rating.Speed,
			Service: resp.Rating.Service,
		}
	}
	return view
}

func newOrderViews(responses []queries.OrderResponse) []orderView {
	views := make([]orderView, 0, len(responses))
	for _, resp := range responses {
		views = append(views, newOrderView(resp))
	}
	return views
}
