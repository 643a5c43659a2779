package commands

import (
	"context"

	"foodrun/internal/core/domain/model/account"
	"foodrun/internal/pkg/security"
)

// RegisterUserCommandHandler creates user accounts. Passwords are bcrypt
// hashed before they reach the store; the clear text is never persisted.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for user registration.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command: hashes the password, builds the user record
// and adds it to the credential store. A name that is already taken fails
// with a value-is-invalid error regardless of role.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := security.HashPassword(cmd.Password())
	if err != nil {
		return err
	}

	user, err := account.NewUser(cmd.Name(), hash, cmd.Phone(), cmd.Role())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err = uow.UserRepository().Add(ctx, user); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
