package commands

import (
	"context"
)

// CompleteOrderCommandHandler marks a claimed order as delivered. Only the
// driver who claimed the order may complete it.
type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for completing orders.
func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command: loads the order, transitions it from Claimed
// to Completed after checking the reporting driver is the claimant, and
// persists the change.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	if err = aggregate.Complete(cmd.Driver()); err != nil {
		return err
	}

	if err = orders.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
