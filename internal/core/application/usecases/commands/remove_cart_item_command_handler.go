package commands

import (
	"context"

	"foodrun/internal/core/ports"
)

// RemoveCartItemCommandHandler handles removing whole lines from carts.
type RemoveCartItemCommandHandler struct {
	carts ports.CartRepository
}

// NewRemoveCartItemCommandHandler creates a handler for cart line removal.
func NewRemoveCartItemCommandHandler(carts ports.CartRepository) RemoveCartItemCommandHandler {
	return RemoveCartItemCommandHandler{carts: carts}
}

// Handle processes the command: deletes the addressed line and saves the
// cart. Fails with ObjectNotFound when the index is out of range.
func (h *RemoveCartItemCommandHandler) Handle(ctx context.Context, cmd RemoveCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := h.carts.GetOrCreate(ctx, cmd.Customer())
	if err != nil {
		return err
	}

	if err = aggregate.RemoveLine(cmd.LineIndex()); err != nil {
		return err
	}

	return h.carts.Save(ctx, aggregate)
}
