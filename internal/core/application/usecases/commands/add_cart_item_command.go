package commands

import (
	"errors"

	"foodrun/internal/pkg/guard"
)

var (
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
	ErrCustomerIsRequired   = errors.New("customer is required")
	ErrRestaurantIsRequired = errors.New("restaurant is required")
	ErrCategoryIsRequired   = errors.New("category is required")
	ErrFoodIsRequired       = errors.New("food is required")
)

// AddCartItemCommand represents a request to put one unit of a menu item into
// a customer's cart. The price is never part of the request; it is looked up
// in the catalog so clients cannot set their own prices.
//
// Example:
//
//	cmd, err := NewAddCartItemCommand("alice", "Pizza Place", "Pizza", "Margherita")
//	if err != nil {
//	    return fmt.Errorf("invalid cart item: %w", err)
//	}
//
//	handler := NewAddCartItemCommandHandler(carts, catalog)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add item: %w", err)
//	}
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	customer   string
	restaurant string
	category   string
	food       string

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add a menu item to a cart.
// Validates that all identifying fields are non-empty.
func NewAddCartItemCommand(customer, restaurant, category, food string) (AddCartItemCommand, error) {
	cmd := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(customer),
		cmd.setRestaurant(restaurant),
		cmd.setCategory(category),
		cmd.setFood(food),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// Customer returns the owning customer's name.
func (c AddCartItemCommand) Customer() string {
	return c.customer
}

// Restaurant returns the restaurant of the requested item.
func (c AddCartItemCommand) Restaurant() string {
	return c.restaurant
}

// Category returns the menu category of the requested item.
func (c AddCartItemCommand) Category() string {
	return c.category
}

// Food returns the name of the requested item.
func (c AddCartItemCommand) Food() string {
	return c.food
}

func (c *AddCartItemCommand) setCustomer(customer string) error {
	if customer == "" {
		return ErrCustomerIsRequired
	}
	c.customer = customer
	return nil
}

func (c *AddCartItemCommand) setRestaurant(restaurant string) error {
	if restaurant == "" {
		return ErrRestaurantIsRequired
	}
	c.restaurant = restaurant
	return nil
}

func (c *AddCartItemCommand) setCategory(category string) error {
	if category == "" {
		return ErrCategoryIsRequired
	}
	c.category = category
	return nil
}

func (c *AddCartItemCommand) setFood(food string) error {
	if food == "" {
		return ErrFoodIsRequired
	}
	c.food = food
	return nil
}
