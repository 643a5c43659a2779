package ports

import (
	"context"

	"foodrun/internal/core/domain/model/cart"
)

// CartRepository holds the in-progress carts of active customer sessions.
// Carts are session state, not durable data: they live in memory for the
// lifetime of the process and are removed on checkout completion.
type CartRepository interface {
	// GetOrCreate returns the customer's current cart, creating an empty one
	// if the customer has no cart yet.
	GetOrCreate(ctx context.Context, customer string) (*cart.Cart, error)

	// Save stores the cart under its owning customer.
	Save(ctx context.Context, aggregate *cart.Cart) error

	// Remove discards the customer's cart. Removing a missing cart is a no-op.
	Remove(ctx context.Context, customer string) error
}
