package commands

import (
	"errors"

	"foodrun/internal/core/domain/model/kernel"
	"foodrun/internal/core/domain/model/order"
	"foodrun/internal/pkg/errs"
	"foodrun/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
)

// CheckoutCommand represents a request to turn the customer's cart into
// durable orders. Each cart line becomes one order; the cart is emptied
// only after every order has been written.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	customer string
	dropoff  string
	payment  order.Payment
	tip      kernel.Money

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a checkout command. The dropoff address is
// required, the payment method must be supported, and the tip goes in full
// to the driver of every order produced by this checkout.
func NewCheckoutCommand(
	customer string,
	dropoff string,
	payment order.Payment,
	tip kernel.Money,
) (CheckoutCommand, error) {
	cmd := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(customer),
		cmd.setDropoff(dropoff),
		cmd.setPayment(payment),
		cmd.setTip(tip),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// Customer returns the checking-out customer's name.
func (c CheckoutCommand) Customer() string {
	return c.customer
}

// Dropoff returns the delivery destination.
func (c CheckoutCommand) Dropoff() string {
	return c.dropoff
}

// Payment returns the chosen payment method.
func (c CheckoutCommand) Payment() order.Payment {
	return c.payment
}

// Tip returns the driver tip.
func (c CheckoutCommand) Tip() kernel.Money {
	return c.tip
}

func (c *CheckoutCommand) setCustomer(customer string) error {
	if customer == "" {
		return ErrCustomerIsRequired
	}
	c.customer = customer
	return nil
}

func (c *CheckoutCommand) setDropoff(dropoff string) error {
	if dropoff == "" {
		return errs.NewValueIsRequiredError("dropoff")
	}
	c.dropoff = dropoff
	return nil
}

func (c *CheckoutCommand) setPayment(payment order.Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	c.payment = payment
	return nil
}

func (c *CheckoutCommand) setTip(tip kernel.Money) error {
	c.tip = tip
	return nil
}
