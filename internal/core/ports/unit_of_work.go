package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the durable
// stores. It provides transaction control and access to the repositories
// bound to the transaction. Client code must explicitly manage the
// transaction lifecycle.
//
// For the JSON-file adapter, Begin acquires an advisory file lock and loads
// current store state, and Commit writes the mutated stores back before
// releasing the lock, so the whole read-modify-write sequence is serialized
// against other processes. For the gorm adapter the same contract maps onto
// a SQL transaction.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit makes all changes performed through the repositories durable.
	// Returns an error if no transaction is active or the write fails; on
	// failure the in-memory mutations are discarded with the transaction,
	// never half-applied.
	Commit(ctx context.Context) error

	// Rollback discards the transaction. Safe to call after Commit; a
	// rollback of a finished transaction is a no-op, which supports the
	// deferred-rollback idiom.
	Rollback(ctx context.Context) error

	// OrderRepository returns the order repository bound to this transaction.
	OrderRepository() OrderRepository

	// RatingRepository returns the rating repository bound to this transaction.
	RatingRepository() RatingRepository

	// UserRepository returns the user repository bound to this transaction.
	UserRepository() UserRepository
}
