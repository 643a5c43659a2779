package queries

import (
	"context"

	"foodrun/internal/core/ports"
)

// GetDriverRatingQueryHandler retrieves a driver's reputation aggregate.
type GetDriverRatingQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetDriverRatingQueryHandler creates a handler for driver rating queries.
func NewGetDriverRatingQueryHandler(uowFactory ports.UnitOfWorkFactory) GetDriverRatingQueryHandler {
	return GetDriverRatingQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query. A driver who has never been rated gets a
// response with Rated set to false rather than an error; every driver has a
// reputation page even before the first delivery.
func (h GetDriverRatingQueryHandler) Handle(
	ctx context.Context,
	query GetDriverRatingQuery,
) (DriverRatingResponse, error) {
	if err := query.Validate(); err != nil {
		return DriverRatingResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DriverRatingResponse{}, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	aggregate, err := uow.RatingRepository().GetDriver(ctx, query.Driver())
	if err != nil {
		return DriverRatingResponse{}, err
	}

	resp := DriverRatingResponse{
		Driver: query.Driver(),
		Count:  aggregate.Count(),
	}
	if food, ok := aggregate.AverageFood(); ok {
		resp.Food = food
		resp.Rated = true
	}
	if speed, ok := aggregate.AverageSpeed(); ok {
		resp.Speed = speed
	}
	if service, ok := aggregate.AverageService(); ok {
		resp.Service = service
	}

	return resp, nil
}
