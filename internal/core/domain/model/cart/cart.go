package cart

import (
	"errors"
	"fmt"

	"foodrun/internal/core/domain/model/kernel"
	"foodrun/internal/pkg/errs"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not created
	// through the NewCart factory method.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")
)

// Cart is the aggregate holding a customer's in-progress order: an ordered
// list of lines owned exclusively by that customer's session. It is destroyed
// on checkout completion.
//
// Cart follows these invariants:
//   - At most one line per (restaurant, food) pair; AddItem merges
//   - Every line's quantity is at least 1; decrementing below 1 is a no-op,
//     removal is always an explicit separate operation
//   - Line indices shift after a removal; callers must not cache indices
//     across a mutation
type Cart struct {
	// customer is the owning customer's name
	customer string

	// lines is the ordered list of cart entries
	lines []Line

	// isConstructed ensures the cart was created via NewCart
	isConstructed bool
}

// NewCart creates an empty cart owned by the given customer.
func NewCart(customer string) (*Cart, error) {
	if customer == "" {
		return nil, errs.NewValueIsRequiredError("customer")
	}

	return &Cart{
		customer:      customer,
		isConstructed: true,
	}, nil
}

// Validate ensures the Cart instance was properly constructed through NewCart.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}

	return nil
}

// Customer returns the name of the owning customer.
func (c *Cart) Customer() string {
	return c.customer
}

// Lines returns a copy of the cart lines in their display order.
func (c *Cart) Lines() []Line {
	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Len returns the number of distinct lines in the cart.
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// AddItem puts one unit of a menu item into the cart. If a line with the same
// (restaurant, food) pair already exists its quantity is incremented by 1;
// otherwise a new line with quantity 1 is appended. Adding never fails for a
// valid menu item.
func (c *Cart) AddItem(restaurant, category, food string, unitPrice kernel.Money) error {
	for i := range c.lines {
		if c.lines[i].Matches(restaurant, food) {
			c.lines[i].quantity++
			return nil
		}
	}

	line, err := NewLine(restaurant, category, food, unitPrice)
	if err != nil {
		return err
	}

	c.lines = append(c.lines, line)
	return nil
}

// AdjustQuantity changes the quantity of the line at the given index by delta,
// which must be +1 or -1. Decrementing a quantity of 1 is a no-op: the floor
// is 1, and taking a line out of the cart is only ever done via RemoveLine.
func (c *Cart) AdjustQuantity(index, delta int) error {
	if delta != 1 && delta != -1 {
		return errs.NewValueIsInvalidErrorWithCause("delta",
			fmt.Errorf("%d is not +1 or -1", delta))
	}

	if index < 0 || index >= len(c.lines) {
		return errs.NewObjectNotFoundError("cart line", index)
	}

	if delta == -1 && c.lines[index].quantity == 1 {
		return nil
	}

	c.lines[index].quantity += delta
	return nil
}

// RemoveLine deletes the line at the given index. Subsequent lines shift down
// one position.
func (c *Cart) RemoveLine(index int) error {
	if index < 0 || index >= len(c.lines) {
		return errs.NewObjectNotFoundError("cart line", index)
	}

	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

// Totals computes the priced breakdown of the cart. Pure: no side effects,
// same lines always give the same totals.
func (c *Cart) Totals() Totals {
	return computeTotals(c.lines)
}

// Clear empties the cart. Called after all checkout lines have been durably
// written, never before.
func (c *Cart) Clear() {
	c.lines = nil
}
