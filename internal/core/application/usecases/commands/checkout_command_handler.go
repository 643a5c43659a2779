package commands

import (
	"context"
	"errors"

	"foodrun/internal/core/domain/model/order"
	"foodrun/internal/core/ports"
)

var (
	// ErrCartIsEmpty is returned when a customer checks out with no cart lines.
	ErrCartIsEmpty = errors.New("cart is empty")
)

// CheckoutCommandHandler turns a cart into durable orders. Each cart line
// becomes its own order so that different drivers can claim different lines
// of the same checkout. All orders of one checkout are written in a single
// unit of work; the cart survives untouched if anything fails.
type CheckoutCommandHandler struct {
	carts      ports.CartRepository
	uowFactory OrderUserUoWFactory
}

// NewCheckoutCommandHandler creates a handler for checkouts.
func NewCheckoutCommandHandler(
	carts ports.CartRepository,
	uowFactory OrderUserUoWFactory,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		carts:      carts,
		uowFactory: uowFactory,
	}
}

// Handle processes the command:
//  1. Rejects an empty cart.
//  2. Looks up the customer's phone number for the order records.
//  3. Creates one pending order per cart line, in cart order, each under a
//     freshly allocated ID.
//  4. Commits all orders atomically, then clears the cart. The cart is only
//     cleared after a successful commit.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.carts.GetOrCreate(ctx, cmd.Customer())
	if err != nil {
		return err
	}
	if aggregate.IsEmpty() {
		return ErrCartIsEmpty
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	user, err := uow.UserRepository().Get(ctx, cmd.Customer())
	if err != nil {
		return err
	}

	orders := uow.OrderRepository()
	for _, line := range aggregate.Lines() {
		id, nextErr := orders.NextID(ctx)
		if nextErr != nil {
			return nextErr
		}

		item, itemErr := order.NewItem(
			line.Restaurant(), line.Category(), line.Food(), line.UnitPrice(), line.Quantity())
		if itemErr != nil {
			return itemErr
		}

		placed, orderErr := order.NewOrder(
			id, cmd.Customer(), user.Phone(), item, cmd.Dropoff(), cmd.Payment(), cmd.Tip())
		if orderErr != nil {
			return orderErr
		}

		if addErr := orders.Add(ctx, placed); addErr != nil {
			return addErr
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.carts.Remove(ctx, cmd.Customer())
}
