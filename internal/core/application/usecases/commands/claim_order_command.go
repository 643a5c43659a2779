package commands

import (
	"errors"

	"foodrun/internal/core/domain/model/kernel"
	"foodrun/internal/pkg/guard"
)

var (
	ErrClaimOrderCommandIsNotConstructed = errors.New(
		"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
	)

	ErrDriverIsRequired = errors.New("driver is required")
)

// ClaimOrderCommand represents a driver's request to take a pending order
// for delivery.
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	driver  string

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a command to claim a pending order.
func NewClaimOrderCommand(orderID kernel.OrderID, driver string) (ClaimOrderCommand, error) {
	cmd := ClaimOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriver(driver),
	); err != nil {
		return ClaimOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// OrderID returns the ID of the order to claim.
func (c ClaimOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Driver returns the claiming driver's name.
func (c ClaimOrderCommand) Driver() string {
	return c.driver
}

func (c *ClaimOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ClaimOrderCommand) setDriver(driver string) error {
	if driver == "" {
		return ErrDriverIsRequired
	}
	c.driver = driver
	return nil
}
