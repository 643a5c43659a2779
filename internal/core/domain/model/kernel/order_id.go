package kernel

import (
	"fmt"
	"strconv"

	"foodrun/internal/pkg/errs"
)

// OrderID is a value object that identifies an order. IDs are positive
// integers allocated sequentially: the first order in an empty store gets 1,
// and every subsequent order gets one more than the current maximum. IDs are
// never reused.
//
// In persisted form an OrderID is the decimal string of its value ("1", "2",
// ...), which keeps the on-disk order store a plain string-keyed mapping.
//
// The zero value of OrderID is invalid and must be constructed via
// NewOrderID or OrderIDFromString.
//
// Example usage:
//
//	id, err := kernel.NewOrderID(5)
//	if err != nil {
//	    // handle error
//	}
//	next := id.Next() // OrderID 6
type OrderID struct {
	value int64
}

// NewOrderID creates an OrderID from a positive integer.
// Values below 1 are rejected.
func NewOrderID(value int64) (OrderID, error) {
	if value < 1 {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("order id",
			fmt.Errorf("%d is not a positive integer", value))
	}

	return OrderID{value: value}, nil
}

// OrderIDFromString parses an OrderID from its decimal string form,
// the representation used as the key in the persisted order store.
func OrderIDFromString(s string) (OrderID, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}

	return NewOrderID(value)
}

// Validate checks that the OrderID was constructed with a positive value.
// The zero value fails validation.
func (id OrderID) Validate() error {
	if id.value < 1 {
		return errs.NewValueIsRequiredError("order id")
	}

	return nil
}

// Next returns the successor identifier. Used by ID allocation, which takes
// the maximum ID currently in the store and steps it forward once per order.
func (id OrderID) Next() OrderID {
	return OrderID{value: id.value + 1}
}

// IsEqual reports whether two identifiers refer to the same order.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Less reports whether id sorts before other numerically. Display listings
// sort descending so the newest order appears first.
func (id OrderID) Less(other OrderID) bool {
	return id.value < other.value
}

// Int64 returns the numeric value of the identifier.
func (id OrderID) Int64() int64 {
	return id.value
}

// String returns the decimal string form used for persistence and display.
func (id OrderID) String() string {
	return strconv.FormatInt(id.value, 10)
}
