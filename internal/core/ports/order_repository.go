// Package ports defines the contracts between the domain layer and
// infrastructure: repositories, the unit of work, and the catalog lookup.
// These interfaces enable dependency inversion and testability; the adapters
// under internal/adapters provide the implementations.
package ports

import (
	"context"

	"foodrun/internal/core/domain/model/kernel"
	"foodrun/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns ObjectNotFound if no order has the given ID.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// NextID allocates the identifier for the next order: one more than the
	// highest ID currently in the store, or 1 for an empty store. It is
	// recomputed from store state on every call rather than kept in a
	// counter, so externally edited store files stay consistent.
	NextID(ctx context.Context) (kernel.OrderID, error)

	// GetByCustomer retrieves all orders placed by the given customer,
	// newest first (descending numeric ID, not insertion order).
	GetByCustomer(ctx context.Context, customer string) ([]*order.Order, error)

	// GetAllPending retrieves all orders waiting to be claimed, in ascending
	// ID order.
	GetAllPending(ctx context.Context) ([]*order.Order, error)

	// GetAllClaimedBy retrieves the orders the given driver has claimed but
	// not yet delivered, in ascending ID order.
	GetAllClaimedBy(ctx context.Context, driver string) ([]*order.Order, error)
}
