package queries

import (
	"context"
	"errors"

	"foodrun/internal/core/ports"
	"foodrun/internal/pkg/errs"
	"foodrun/internal/pkg/security"
)

var (
	// ErrInvalidCredentials is returned for any failed login. The cause is
	// deliberately not distinguished; an unknown name, a wrong password and
	// a role mismatch all look the same to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// LoginQueryHandler verifies credentials against the stored bcrypt hashes.
type LoginQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewLoginQueryHandler creates a handler for login checks.
func NewLoginQueryHandler(uowFactory ports.UnitOfWorkFactory) LoginQueryHandler {
	return LoginQueryHandler{uowFactory: uowFactory}
}

// Handle executes the check. The stored user must exist, hold the claimed
// role, and have a hash matching the password.
func (h LoginQueryHandler) Handle(ctx context.Context, query LoginQuery) (LoginResponse, error) {
	if err := query.Validate(); err != nil {
		return LoginResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoginResponse{}, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	user, err := uow.UserRepository().Get(ctx, query.Name())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return LoginResponse{}, ErrInvalidCredentials
		}
		return LoginResponse{}, err
	}

	if user.Role() != query.Role() {
		return LoginResponse{}, ErrInvalidCredentials
	}
	if !security.VerifyPassword(query.Password(), user.PasswordHash()) {
		return LoginResponse{}, ErrInvalidCredentials
	}

	return LoginResponse{
		Name: user.Name(),
		Role: user.Role(),
	}, nil
}
