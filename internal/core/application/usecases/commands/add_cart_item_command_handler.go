package commands

import (
	"context"

	"foodrun/internal/core/ports"
)

// AddCartItemCommandHandler handles adding menu items to customer carts.
// Prices the item through the catalog and merges it into the cart, which
// increments the quantity when the (restaurant, food) pair is already there.
type AddCartItemCommandHandler struct {
	carts   ports.CartRepository
	catalog ports.Catalog
}

// NewAddCartItemCommandHandler creates a handler for cart item additions.
func NewAddCartItemCommandHandler(carts ports.CartRepository, catalog ports.Catalog) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		carts:   carts,
		catalog: catalog,
	}
}

// Handle processes the command: looks up the unit price in the catalog,
// merges the item into the customer's cart and saves the cart. Fails with
// ObjectNotFound for an item that is not on the menu.
func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unitPrice, err := h.catalog.Price(cmd.Restaurant(), cmd.Category(), cmd.Food())
	if err != nil {
		return err
	}

	aggregate, err := h.carts.GetOrCreate(ctx, cmd.Customer())
	if err != nil {
		return err
	}

	if err = aggregate.AddItem(cmd.Restaurant(), cmd.Category(), cmd.Food(), unitPrice); err != nil {
		return err
	}

	return h.carts.Save(ctx, aggregate)
}
