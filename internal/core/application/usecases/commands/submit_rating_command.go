package commands

import (
	"errors"

	"foodrun/internal/core/domain/model/kernel"
	"foodrun/internal/pkg/guard"
)

var (
	ErrSubmitRatingCommandIsNotConstructed = errors.New(
		"SubmitRatingCommand must be created via NewSubmitRatingCommand constructor",
	)
)

// SubmitRatingCommand represents a customer's rating of a completed order:
// three scores covering the food, the delivery speed and the driver's
// service. Each order is rated at most once.
type SubmitRatingCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.OrderID
	customer string
	food     kernel.Score
	speed    kernel.Score
	service  kernel.Score

	guard guard.ConstructorGuard
}

// NewSubmitRatingCommand creates a command to rate a completed order.
func NewSubmitRatingCommand(
	orderID kernel.OrderID,
	customer string,
	food kernel.Score,
	speed kernel.Score,
	service kernel.Score,
) (SubmitRatingCommand, error) {
	cmd := SubmitRatingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomer(customer),
		cmd.setScores(food, speed, service),
	); err != nil {
		return SubmitRatingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitRatingCommand) Validate() error {
	return c.guard.Validate(ErrSubmitRatingCommandIsNotConstructed)
}

// OrderID returns the ID of the order being rated.
func (c SubmitRatingCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// Customer returns the rating customer's name.
func (c SubmitRatingCommand) Customer() string {
	return c.customer
}

// Food returns the food quality score.
func (c SubmitRatingCommand) Food() kernel.Score {
	return c.food
}

// Speed returns the delivery speed score.
func (c SubmitRatingCommand) Speed() kernel.Score {
	return c.speed
}

// Service returns the driver service score.
func (c SubmitRatingCommand) Service() kernel.Score {
	return c.service
}

func (c *SubmitRatingCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *SubmitRatingCommand) setCustomer(customer string) error {
	if customer == "" {
		return ErrCustomerIsRequired
	}
	c.customer = customer
	return nil
}

func (c *SubmitRatingCommand) setScores(food, speed, service kernel.Score) error {
	if err := errors.Join(food.Validate(), speed.Validate(), service.Validate()); err != nil {
		return err
	}
	c.food = food
	c.speed = speed
	c.service = service
	return nil
}
