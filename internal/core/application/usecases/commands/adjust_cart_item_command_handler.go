package commands

import (
	"context"

	"foodrun/internal/core/ports"
)

// AdjustCartItemCommandHandler handles quantity adjustments on cart lines.
type AdjustCartItemCommandHandler struct {
	carts ports.CartRepository
}

// NewAdjustCartItemCommandHandler creates a handler for cart quantity adjustments.
func NewAdjustCartItemCommandHandler(carts ports.CartRepository) AdjustCartItemCommandHandler {
	return AdjustCartItemCommandHandler{carts: carts}
}

// Handle processes the command: applies the ±1 delta to the addressed line
// and saves the cart. Decrementing a quantity of 1 leaves the cart unchanged.
func (h *AdjustCartItemCommandHandler) Handle(ctx context.Context, cmd AdjustCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.carts.GetOrCreate(ctx, cmd.Customer())
	if err != nil {
		return err
	}

	if err = aggregate.AdjustQuantity(cmd.LineIndex(), cmd.Delta()); err != nil {
		return err
	}

	return h.carts.Save(ctx, aggregate)
}
