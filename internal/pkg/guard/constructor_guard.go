// Package guard provides the ConstructorGuard defensive pattern.
// Embedding a ConstructorGuard in a value object or command makes a zero-value
// instance distinguishable from one created through its constructor, so that
// validation can reject objects that bypassed construction-time checks.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the object was not
// constructed and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. The zero value fails validation.
//
// Example usage:
//
//	type CheckoutCommand struct {
//	    dropoff string
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewCheckoutCommand(dropoff string) (CheckoutCommand, error) {
//	    if dropoff == "" {
//	        return CheckoutCommand{}, errs.NewValueIsRequiredError("dropoff")
//	    }
//	    return CheckoutCommand{dropoff: dropoff, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c CheckoutCommand) Validate() error {
//	    return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}

	if validationError == nil {
		return ErrDefaultConstructorGuard
	}

	return validationError
}
