package order

import (
	"foodrun/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct marketplace workflow.
//
// State transitions:
//
//	Pending ──> Claimed ──> Completed
//
// Transitions are one-way: a claimed order never becomes pending again and a
// completed order is final. Status is a value object that validates state
// transitions and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is placed at checkout.
	// Orders in this status are visible to all drivers and waiting to be claimed.
	Pending

	// Claimed indicates a driver has taken the order and is delivering it.
	Claimed

	// Completed indicates the claiming driver has marked the order delivered.
	// This is a final state; only a rating may still be attached.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "pending",
		Claimed:   "claimed",
		Completed: "completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Claimed:   "claimed",
		Completed: "completed",
	}
}

// StatusFromString parses the persisted string form of a status.
// Returns an error for anything other than "pending", "claimed" or "completed".
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		errs.NewValueIsInvalidError(s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Claimed, Completed.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the persisted name of the status: "pending", "claimed" or
// "completed". Invalid values yield "Unknown". Implements fmt.Stringer and is
// safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidateCanHaveDriver validates the consistency between order status and
// driver assignment.
//
// Rules:
//   - Pending orders must not have a driver assigned
//   - Claimed orders must have a driver assigned
//   - Completed orders must have a driver assigned
//
// Used when restoring orders from persistence so that inconsistent
// combinations ("pending with a driver", "claimed without one") are
// unrepresentable in memory.
func (s Status) ValidateCanHaveDriver(driver bool) error {
	if driver && s != Claimed && s != Completed {
		return errs.NewInvalidStateError("have a driver", s.String())
	}

	if !driver && (s == Claimed || s == Completed) {
		return errs.NewInvalidStateError("have no driver", s.String())
	}

	return nil
}

// ValidateCanHaveRating validates the consistency between order status and an
// attached rating: a rating may only exist on a Completed order.
func (s Status) ValidateCanHaveRating(rated bool) error {
	if rated && s != Completed {
		return errs.NewInvalidStateError("have a rating", s.String())
	}

	return nil
}

// Claim transitions the status to Claimed.
//
// Valid transitions:
//   - Pending -> Claimed
//
// Invalid transitions:
//   - Claimed -> Claimed (prevents double-claiming)
//   - Completed -> Claimed
//   - Unknown -> Claimed
//
// Returns:
//   - (Claimed, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Claim() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("claim order", s.String())
	}

	return Claimed, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Claimed -> Completed
//
// Invalid transitions:
//   - Pending -> Completed (must be claimed first)
//   - Completed -> Completed (already completed)
//   - Unknown -> Completed
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Complete() (Status, error) {
	if s != Claimed {
		return 0, errs.NewInvalidStateError("complete order", s.String())
	}

	return Completed, nil
}
