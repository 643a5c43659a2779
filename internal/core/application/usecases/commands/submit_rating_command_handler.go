package commands

import (
	"context"

	"foodrun/internal/core/domain/model/order"
	"foodrun/internal/pkg/errs"
)

// SubmitRatingCommandHandler records a customer's rating of a completed
// order and folds it into the reputation aggregates: the food score feeds
// the restaurant's average, all three scores feed the driver's averages.
// The rated order and both aggregates are written in one unit of work, so
// an order is never marked rated without the aggregates reflecting it.
type SubmitRatingCommandHandler struct {
	uowFactory OrderRatingUoWFactory
}

// NewSubmitRatingCommandHandler creates a handler for rating submission.
func NewSubmitRatingCommandHandler(uowFactory OrderRatingUoWFactory) SubmitRatingCommandHandler {
	return SubmitRatingCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command:
//  1. Loads the order; only the customer who placed it may rate it.
//  2. Attaches the rating, which requires a completed, not yet rated order.
//  3. Records the food score against the order's restaurant and all three
//     scores against its driver.
//  4. Commits the order and both aggregates atomically.
func (h *SubmitRatingCommandHandler) Handle(ctx context.Context, cmd SubmitRatingCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	orders := uow.OrderRepository()

	aggregate, err := orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if aggregate.Customer() != cmd.Customer() {
		return errs.NewObjectNotFoundError("order", cmd.OrderID())
	}

	rating, err := order.NewRating(cmd.Food(), cmd.Speed(), cmd.Service())
	if err != nil {
		return err
	}

	if err = aggregate.Rate(rating); err != nil {
		return err
	}

	ratings := uow.RatingRepository()

	restaurant, err := ratings.GetRestaurant(ctx, aggregate.Item().Restaurant())
	if err != nil {
		return err
	}
	if err = restaurant.Record(cmd.Food()); err != nil {
		return err
	}

	driver, err := ratings.GetDriver(ctx, *aggregate.Driver())
	if err != nil {
		return err
	}
	if err = driver.Record(cmd.Food(), cmd.Speed(), cmd.Service()); err != nil {
		return err
	}

	if err = orders.Update(ctx, aggregate); err != nil {
		return err
	}
	if err = ratings.SaveRestaurant(ctx, restaurant); err != nil {
		return err
	}
	if err = ratings.SaveDriver(ctx, driver); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
