package order

import (
	"errors"
	"fmt"

	"foodrun/internal/core/domain/model/kernel"
	"foodrun/internal/pkg/errs"
	"foodrun/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is the menu line an order was placed for: one food item from one
// restaurant with a unit price and a quantity. One cart line produces exactly
// one order, so an order always carries exactly one Item; a multi-item cart
// produces one order per line.
type Item struct {
	restaurant string
	category   string
	food       string
	unitPrice  kernel.Money
	quantity   int

	guard guard.ConstructorGuard
}

// NewItem creates an Item, validating that restaurant, category and food are
// non-empty and quantity is at least 1.
func NewItem(restaurant, category, food string, unitPrice kernel.Money, quantity int) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setRestaurant(restaurant),
		item.setCategory(category),
		item.setFood(food),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Restaurant returns the restaurant the item was ordered from.
func (i Item) Restaurant() string {
	return i.restaurant
}

// Category returns the menu category of the item.
func (i Item) Category() string {
	return i.category
}

// Food returns the name of the food item.
func (i Item) Food() string {
	return i.food
}

// UnitPrice returns the price of a single unit.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Quantity returns how many units were ordered.
func (i Item) Quantity() int {
	return i.quantity
}

func (i *Item) setRestaurant(restaurant string) error {
	if restaurant == "" {
		return errs.NewValueIsRequiredError("restaurant")
	}
	i.restaurant = restaurant
	return nil
}

func (i *Item) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	i.category = category
	return nil
}

func (i *Item) setFood(food string) error {
	if food == "" {
		return errs.NewValueIsRequiredError("food")
	}
	i.food = food
	return nil
}

func (i *Item) setUnitPrice(unitPrice kernel.Money) error {
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}
	i.quantity = quantity
	return nil
}
