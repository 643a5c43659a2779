package commands

import (
	"errors"

	"foodrun/internal/pkg/guard"
)

var (
	ErrRemoveCartItemCommandIsNotConstructed = errors.New(
		"RemoveCartItemCommand must be created via NewRemoveCartItemCommand constructor",
	)
)

// RemoveCartItemCommand represents a request to delete a cart line entirely,
// regardless of its quantity. Indices of subsequent lines shift down.
type RemoveCartItemCommand struct { //nolint:recvcheck //using for validation
	customer  string
	lineIndex int

	guard guard.ConstructorGuard
}

// NewRemoveCartItemCommand creates a command to remove a cart line.
func NewRemoveCartItemCommand(customer string, lineIndex int) (RemoveCartItemCommand, error) {
	cmd := RemoveCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(customer),
		cmd.setLineIndex(lineIndex),
	); err != nil {
		return RemoveCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveCartItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCartItemCommandIsNotConstructed)
}

// Customer returns the owning customer's name.
func (c RemoveCartItemCommand) Customer() string {
	return c.customer
}

// LineIndex returns the position of the line to remove.
func (c RemoveCartItemCommand) LineIndex() int {
	return c.lineIndex
}

func (c *RemoveCartItemCommand) setCustomer(customer string) error {
	if customer == "" {
		return ErrCustomerIsRequired
	}
	c.customer = customer
	return nil
}

func (c *RemoveCartItemCommand) setLineIndex(lineIndex int) error {
	if lineIndex < 0 {
		return ErrLineIndexIsInvalid
	}
	c.lineIndex = lineIndex
	return nil
}
