package order

import (
	"foodrun/internal/pkg/errs"
)

// Payment is the payment method chosen at checkout.
// Cash is the only supported method; there is no payment gateway.
type Payment int

const (
	// PaymentUnknown represents an invalid or undefined payment method.
	PaymentUnknown Payment = iota

	// PaymentCash is cash on delivery.
	PaymentCash
)

// PaymentFromString parses the persisted string form of a payment method.
func PaymentFromString(s string) (Payment, error) {
	if s == "Cash" {
		return PaymentCash, nil
	}

	return PaymentUnknown, errs.NewValueIsInvalidError("payment")
}

// Validate checks that the payment method is one of the supported values.
func (p Payment) Validate() error {
	if p != PaymentCash {
		return errs.NewValueIsInvalidError("payment")
	}
	return nil
}

// String returns the persisted name of the payment method.
func (p Payment) String() string {
	if p == PaymentCash {
		return "Cash"
	}
	return "Unknown"
}
