// Package queries contains read operations that return data without
// modifying system state. Implements the Query side of the CQRS
// architecture. Query handlers read through the same ports as the command
// side, so every storage backend serves them unchanged.
package queries

import (
	"foodrun/internal/core/domain/model/kernel"
	"foodrun/internal/core/domain/model/order"
)

// RatingResponse is the customer's three-part score of a delivered order.
type RatingResponse struct {
	Food    int
	Speed   int
	Service int
}

// OrderResponse is the read model of a single order as the listing queries
// return it. Driver and Rating are nil until the lifecycle reaches the
// states that produce them.
type OrderResponse struct {
	ID         int64
	Customer   string
	Phone      string
	Restaurant string
	Category   string
	Food       string
	UnitPrice  kernel.Money
	Quantity   int
	Dropoff    string
	Payment    string
	Tip        kernel.Money
	Status     string
	Driver     *string
	Rating     *RatingResponse
}

func newOrderResponse(aggregate *order.Order) OrderResponse {
	resp := OrderResponse{
		ID:         aggregate.ID().Int64(),
		Customer:   aggregate.Customer(),
		Phone:      aggregate.Phone(),
		Restaurant: aggregate.Item().Restaurant(),
		Category:   aggregate.Item().Category(),
		Food:       aggregate.Item().Food(),
		UnitPrice:  aggregate.Item().UnitPrice(),
		Quantity:   aggregate.Item().Quantity(),
		Dropoff:    aggregate.Dropoff(),
		Payment:    aggregate.Payment().String(),
		Tip:        aggregate.Tip(),
		Status:     aggregate.Status().String(),
		Driver:     aggregate.Driver(),
	}

	if rating := aggregate.Rating(); rating != nil {
		resp.Rating = &RatingResponse{
			Food:    rating.Food().Int(),
			Speed:   rating.Speed().Int(),
			Service: rating.Service().Int(),
		}
	}

	return resp
}

func newOrderResponses(aggregates []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		responses = append(responses, newOrderResponse(aggregate))
	}
	return responses
}
