package commands

import (
	"errors"

	"foodrun/internal/core/domain/model/kernel"
	"foodrun/internal/pkg/guard"
)

var (
	ErrCompleteOrderCommandIsNotConstructed = errors.New(
		"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
	)
)

// CompleteOrderCommand represents a driver's report that a claimed order has
// been delivered.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.OrderID
	driver  string

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to mark an order delivered.
func NewCompleteOrderCommand(orderID kernel.OrderID, driver string) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriver(driver),
	); err != nil {
		return CompleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the ID of the order to complete.
func (c CompleteOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Driver returns the reporting driver's name.
func (c CompleteOrderCommand) Driver() string {
	return c.driver
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setDriver(driver string) error {
	if driver == "" {
		return ErrDriverIsRequired
	}
	c.driver = driver
	return nil
}
