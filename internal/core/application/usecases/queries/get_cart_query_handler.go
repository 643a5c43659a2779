package queries

import (
	"context"

	"foodrun/internal/core/ports"
)

// GetCartQueryHandler builds the cart read model from the session cart store.
type GetCartQueryHandler struct {
	carts ports.CartRepository
}

// NewGetCartQueryHandler creates a handler for cart queries.
func NewGetCartQueryHandler(carts ports.CartRepository) GetCartQueryHandler {
	return GetCartQueryHandler{carts: carts}
}

// Handle executes the query. A customer without a cart gets an empty
// response with all-zero totals.
func (h GetCartQueryHandler) Handle(ctx context.Context, query GetCartQuery) (CartResponse, error) {
	if err := query.Validate(); err != nil {
		return CartResponse{}, err
	}

	aggregate, err := h.carts.GetOrCreate(ctx, query.Customer())
	if err != nil {
		return CartResponse{}, err
	}

	lines := aggregate.Lines()
	resp := CartResponse{
		Lines: make([]CartLineResponse, 0, len(lines)),
	}
	for _, line := range lines {
		resp.Lines = append(resp.Lines, CartLineResponse{
			Restaurant: line.Restaurant(),
			Category:   line.Category(),
			Food:       line.Food(),
			UnitPrice:  line.UnitPrice(),
			Quantity:   line.Quantity(),
			Subtotal:   line.Subtotal(),
		})
	}

	totals := aggregate.Totals()
	resp.Subtotal = totals.Subtotal
	resp.ServiceTax = totals.ServiceTax
	resp.DeliveryCharge = totals.DeliveryCharge
	resp.Total = totals.Total

	return resp, nil
}
