package account

import (
	"foodrun/internal/pkg/errs"
)

// Role decides which side of the marketplace a user acts on.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleCustomer users browse the menu, build carts and place orders.
	RoleCustomer

	// RoleDriver users claim pending orders and deliver them.
	RoleDriver
)

// RoleFromString parses the persisted string form of a role.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "Customer":
		return RoleCustomer, nil
	case "Driver":
		return RoleDriver, nil
	}

	return RoleUnknown, errs.NewValueIsInvalidError("role")
}

// Validate checks that the role is one of the supported values.
func (r Role) Validate() error {
	if r != RoleCustomer && r != RoleDriver {
		return errs.NewValueIsInvalidError("role")
	}
	return nil
}

// String returns the persisted name of the role.
func (r Role) String() string {
	switch r {
	case RoleCustomer:
		return "Customer"
	case RoleDriver:
		return "Driver"
	default:
		return "Unknown"
	}
}
