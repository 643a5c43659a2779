package commands

import (
	"errors"

	"foodrun/internal/core/domain/model/account"
	"foodrun/internal/pkg/guard"
)

var (
	ErrRegisterUserCommandIsNotConstructed = errors.New(
		"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
	)

	ErrNameIsRequired     = errors.New("name is required")
	ErrPasswordIsRequired = errors.New("password is required")
	ErrPhoneIsRequired    = errors.New("phone is required")
)

// RegisterUserCommand represents a signup request. The password arrives in
// the clear and is hashed by the handler before anything is persisted.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	name     string
	password string
	phone    string
	role     account.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new user.
func NewRegisterUserCommand(name, password, phone string, role account.Role) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPassword(password),
		cmd.setPhone(phone),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// Name returns the requested username.
func (c RegisterUserCommand) Name() string {
	return c.name
}

// Password returns the clear-text password.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Phone returns the contact phone number as entered.
func (c RegisterUserCommand) Phone() string {
	return c.phone
}

// Role returns the requested marketplace role.
func (c RegisterUserCommand) Role() account.Role {
	return c.role
}

func (c *RegisterUserCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}
	c.password = password
	return nil
}

func (c *RegisterUserCommand) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}

func (c *RegisterUserCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}
