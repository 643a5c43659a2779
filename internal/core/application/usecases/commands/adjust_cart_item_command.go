package commands

import (
	"errors"

	"foodrun/internal/pkg/guard"
)

var (
	ErrAdjustCartItemCommandIsNotConstructed = errors.New(
		"AdjustCartItemCommand must be created via NewAdjustCartItemCommand constructor",
	)
	ErrLineIndexIsInvalid = errors.New("line index must not be negative")
	ErrDeltaIsInvalid     = errors.New("delta must be +1 or -1")
)

// AdjustCartItemCommand represents a request to step a cart line's quantity
// up or down by one. Quantities floor at 1; taking a line out of the cart is
// only ever the explicit RemoveCartItemCommand.
type AdjustCartItemCommand struct { //nolint:recvcheck //using for validation
	customer  string
	lineIndex int
	delta     int

	guard guard.ConstructorGuard
}

// NewAdjustCartItemCommand creates a command to adjust a cart line quantity.
// Validates that delta is exactly +1 or -1 and the index is not negative.
func NewAdjustCartItemCommand(customer string, lineIndex, delta int) (AdjustCartItemCommand, error) {
	cmd := AdjustCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(customer),
		cmd.setLineIndex(lineIndex),
		cmd.setDelta(delta),
	); err != nil {
		return AdjustCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdjustCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAdjustCartItemCommandIsNotConstructed)
}

// Customer returns the owning customer's name.
func (c AdjustCartItemCommand) Customer() string {
	return c.customer
}

// LineIndex returns the position of the line to adjust.
func (c AdjustCartItemCommand) LineIndex() int {
	return c.lineIndex
}

// Delta returns +1 or -1.
func (c AdjustCartItemCommand) Delta() int {
	return c.delta
}

func (c *AdjustCartItemCommand) setCustomer(customer string) error {
	if customer == "" {
		return ErrCustomerIsRequired
	}
	c.customer = customer
	return nil
}

func (c *AdjustCartItemCommand) setLineIndex(lineIndex int) error {
	if lineIndex < 0 {
		return ErrLineIndexIsInvalid
	}
	c.lineIndex = lineIndex
	return nil
}

func (c *AdjustCartItemCommand) setDelta(delta int) error {
	if delta != 1 && delta != -1 {
		return ErrDeltaIsInvalid
	}
	c.delta = delta
	return nil
}
