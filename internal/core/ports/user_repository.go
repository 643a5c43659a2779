package ports

import (
	"context"

	"foodrun/internal/core/domain/model/account"
)

// UserRepository defines the persistence contract for the credential store.
type UserRepository interface {
	// Add persists a new user. Adding a name that already exists fails with
	// a value-is-invalid error; usernames register exactly once.
	Add(ctx context.Context, user *account.User) error

	// Get retrieves a user by name. Returns ObjectNotFound for an unknown name.
	Get(ctx context.Context, name string) (*account.User, error)
}
