// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"foodrun/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles transaction lifecycle over the durable stores.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RatingRepoFactory provides access to the rating repository within a transaction.
	RatingRepoFactory interface {
		RatingRepository() ports.RatingRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// OrderUoW manages transactions for order-only operations:
	// checkout, claim, complete.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderUserUoW manages transactions spanning the order store and the
	// credential store. Used by checkout, which reads the customer's phone
	// number while writing the new orders.
	OrderUserUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
	}

	// OrderUserUoWFactory creates new order+user unit of work instances.
	OrderUserUoWFactory interface {
		Create() OrderUserUoW
	}

	// OrderRatingUoW manages transactions spanning the order store and the
	// rating store. Used by rating submission, which must write the rated
	// order and both reputation aggregates atomically.
	OrderRatingUoW interface {
		TxManager
		OrderRepoFactory
		RatingRepoFactory
	}

	// OrderRatingUoWFactory creates new order+rating unit of work instances.
	OrderRatingUoWFactory interface {
		Create() OrderRatingUoW
	}

	// UserUoW manages transactions for credential store operations.
	UserUoW interface {
		TxManager
		UserRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}
)
