package cart

import (
	"errors"

	"foodrun/internal/core/domain/model/kernel"
	"foodrun/internal/pkg/errs"
	"foodrun/internal/pkg/guard"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine factory method.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one entry in a cart: a food item from a restaurant's menu with a
// unit price and a quantity of at least 1.
//
// The identity of a line is its (restaurant, food) pair. The cart merges on
// that identity, so a cart never holds two lines for the same pair.
type Line struct {
	restaurant string
	category   string
	food       string
	unitPrice  kernel.Money
	quantity   int

	guard guard.ConstructorGuard
}

// NewLine creates a cart line with quantity 1.
func NewLine(restaurant, category, food string, unitPrice kernel.Money) (Line, error) {
	line := Line{
		quantity: 1,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setRestaurant(restaurant),
		line.setCategory(category),
		line.setFood(food),
	); err != nil {
		return Line{}, err
	}

	line.unitPrice = unitPrice
	return line, nil
}

// Validate ensures the Line was created through NewLine.
func (l Line) Validate() error {
	return l.guard.Validate(ErrLineIsNotConstructed)
}

// Matches reports whether this line holds the given (restaurant, food) pair,
// the identity key used for merging.
func (l Line) Matches(restaurant, food string) bool {
	return l.restaurant == restaurant && l.food == food
}

// Restaurant returns the restaurant the item belongs to.
func (l Line) Restaurant() string {
	return l.restaurant
}

// Category returns the menu category of the item.
func (l Line) Category() string {
	return l.category
}

// Food returns the name of the food item.
func (l Line) Food() string {
	return l.food
}

// UnitPrice returns the price of a single unit.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Quantity returns the current quantity, always at least 1.
func (l Line) Quantity() int {
	return l.quantity
}

// Subtotal returns unit price times quantity.
func (l Line) Subtotal() kernel.Money {
	return l.unitPrice.MulInt(l.quantity)
}

func (l *Line) setRestaurant(restaurant string) error {
	if restaurant == "" {
		return errs.NewValueIsRequiredError("restaurant")
	}
	l.restaurant = restaurant
	return nil
}

func (l *Line) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	l.category = category
	return nil
}

func (l *Line) setFood(food string) error {
	if food == "" {
		return errs.NewValueIsRequiredError("food")
	}
	l.food = food
	return nil
}
