// Package memstore holds session-scoped state in process memory. Carts are
// deliberately not durable: they belong to a login session and vanish on
// restart, exactly like the rest of the session state.
package memstore

import (
	"context"
	"sync"

	"foodrun/internal/core/domain/model/cart"
	"foodrun/internal/core/ports"
)

// CartRepository is a concurrency-safe in-memory cart store keyed by
// customer name.
type CartRepository struct {
	mu    sync.Mutex
	carts map[string]*cart.Cart
}

// NewCartRepository creates an empty cart store.
func NewCartRepository() *CartRepository {
	return &CartRepository{carts: make(map[string]*cart.Cart)}
}

var _ ports.CartRepository = (*CartRepository)(nil)

// GetOrCreate returns the customer's cart, creating an empty one on first
// access.
func (r *CartRepository) GetOrCreate(_ context.Context, customer string) (*cart.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if aggregate, exists := r.carts[customer]; exists {
		return aggregate, nil
	}

	aggregate, err := cart.NewCart(customer)
	if err != nil {
		return nil, err
	}
	r.carts[customer] = aggregate
	return aggregate, nil
}

// Save stores the cart under its owning customer.
func (r *CartRepository) Save(_ context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[aggregate.Customer()] = aggregate
	return nil
}

// Remove discards the customer's cart. Removing a missing cart is a no-op.
func (r *CartRepository) Remove(_ context.Context, customer string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, customer)
	return nil
}
