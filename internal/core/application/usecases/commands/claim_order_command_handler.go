package commands

import (
	"context"
)

// ClaimOrderCommandHandler assigns a pending order to a driver. The order is
// re-read and its status re-checked inside the transaction, so two drivers
// racing for the same order resolve deterministically: the first commit wins
// and the loser gets an invalid-state error.
type ClaimOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewClaimOrderCommandHandler creates a handler for claiming orders.
func NewClaimOrderCommandHandler(uowFactory OrderUoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command: loads the order, transitions it from Pending
// to Claimed with the driver recorded, and persists the change.
func (h *ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) error {
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

	if err = aggregate.Claim(cmd.Driver()); err != nil {
		return err
	}

	if err = orders.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
