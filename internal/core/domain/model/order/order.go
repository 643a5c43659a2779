package order

import (
	"errors"

	"foodrun/internal/core/domain/model/kernel"
	"foodrun/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents one placed order in the marketplace. It is the aggregate
// root that manages the order lifecycle from checkout through driver claim to
// delivery and rating.
//
// Order follows these invariants:
//   - Must have a valid positive identifier
//   - Must have a non-empty customer and dropoff location
//   - Carries exactly one menu item (one cart line becomes one order)
//   - A driver is assigned iff status is Claimed or Completed
//   - A rating exists only on a Completed order, is written at most once,
//     and only by way of Rate
//   - Status transitions never revert and never clear the driver
//
// The struct uses private fields to ensure encapsulation and maintains its
// invariants through validated methods.
type Order struct {
	// id is the unique sequential identifier for the order
	id kernel.OrderID

	// customer is the name of the customer who placed the order
	customer string

	// phone is the customer's contact phone, copied at checkout
	phone string

	// item is the single menu line the order was placed for
	item Item

	// dropoff is the delivery destination
	dropoff string

	// payment is the payment method (cash only)
	payment Payment

	// tip is the driver tip chosen at checkout
	tip kernel.Money

	// status is the current state in the order lifecycle
	status Status

	// driver is the claiming driver's name (nil while pending)
	driver *string

	// rating is the attach-once customer rating (nil until rated)
	rating *Rating

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Pending status with no driver and no
// rating. This is the checkout path: every validated cart line becomes one
// order through this constructor.
//
// Parameters:
//   - id: freshly allocated sequential identifier
//   - customer: name of the ordering customer (required)
//   - phone: customer contact phone, copied onto the order for the driver
//   - item: the menu line being ordered
//   - dropoff: delivery destination (required)
//   - payment: payment method
//   - tip: driver tip, zero or more
//
// Returns the created order, or a validation error if any parameter is
// invalid.
func NewOrder(
	id kernel.OrderID,
	customer string,
	phone string,
	item Item,
	dropoff string,
	payment Payment,
	tip kernel.Money,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customer),
		order.setPhone(phone),
		order.setItem(item),
		order.setDropoff(dropoff),
		order.setPayment(payment),
		order.setTip(tip),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, validating the full
// state: status must be valid, the driver must be present exactly when the
// status requires one, and a rating may only exist on a completed order.
// This keeps invalid combinations like "pending with a driver" or "claimed
// and rated" unrepresentable in memory even if the store file was edited.
func RestoreOrder(
	id kernel.OrderID,
	customer string,
	phone string,
	item Item,
	dropoff string,
	payment Payment,
	tip kernel.Money,
	status Status,
	driver *string,
	rating *Rating,
) (*Order, error) {
	order, err := NewOrder(id, customer, phone, item, dropoff, payment, tip)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidateCanHaveDriver(driver != nil); err != nil {
		return nil, err
	}
	if err = status.ValidateCanHaveRating(rating != nil); err != nil {
		return nil, err
	}
	if driver != nil && *driver == "" {
		return nil, errs.NewValueIsRequiredError("driver")
	}
	if rating != nil {
		if err = rating.Validate(); err != nil {
			return nil, err
		}
	}

	order.status = status
	order.driver = driver
	order.rating = rating
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct, and should be called when aggregates cross the
// persistence boundary.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Customer returns the name of the customer who placed the order.
func (o *Order) Customer() string {
	return o.customer
}

// Phone returns the customer's contact phone.
func (o *Order) Phone() string {
	return o.phone
}

// Item returns the menu line the order was placed for.
func (o *Order) Item() Item {
	return o.item
}

// Dropoff returns the delivery destination.
func (o *Order) Dropoff() string {
	return o.dropoff
}

// Payment returns the payment method.
func (o *Order) Payment() Payment {
	return o.payment
}

// Tip returns the driver tip.
func (o *Order) Tip() kernel.Money {
	return o.tip
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Driver returns the claiming driver's name, or nil while the order is
// pending.
func (o *Order) Driver() *string {
	return o.driver
}

// Rating returns the attached rating, or nil if the order has not been rated.
func (o *Order) Rating() *Rating {
	return o.rating
}

// Claim assigns the order to a driver and moves it to Claimed.
//
// Business rules:
//   - The driver name must be non-empty
//   - The order must be in Pending status; claiming an already claimed or
//     completed order fails with an invalid state error, which is what
//     prevents two drivers from taking the same order
//
// After a successful claim, Driver() returns the driver's name and the
// status never goes back to Pending.
func (o *Order) Claim(driver string) error {
	if driver == "" {
		return errs.NewValueIsRequiredError("driver")
	}

	newStatus, err := o.status.Claim()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.driver = &driver
	return nil
}

// Complete marks the order as delivered by the given driver.
//
// Business rules:
//   - The order must be in Claimed status
//   - Only the driver who claimed the order may complete it; a mismatched
//     driver fails with an invalid state error
//
// Completed is a final state: the only change still allowed afterwards is
// attaching a rating.
func (o *Order) Complete(driver string) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	if o.driver == nil || *o.driver != driver {
		return errs.NewInvalidStateErrorWithCause("complete order", o.status.String(),
			errors.New("order is claimed by a different driver"))
	}

	o.status = newStatus
	return nil
}

// Rate attaches the customer's rating to a completed order.
//
// Business rules:
//   - The order must be in Completed status
//   - The rating is write-once: a second call fails with an invalid state
//     error and leaves the first rating untouched
func (o *Order) Rate(rating Rating) error {
	if err := rating.Validate(); err != nil {
		return err
	}

	if o.status != Completed {
		return errs.NewInvalidStateError("rate order", o.status.String())
	}

	if o.rating != nil {
		return errs.NewInvalidStateErrorWithCause("rate order", o.status.String(),
			errors.New("order is already rated"))
	}

	o.rating = &rating
	return nil
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer string) error {
	if customer == "" {
		return errs.NewValueIsRequiredError("customer")
	}
	o.customer = customer
	return nil
}

func (o *Order) setPhone(phone string) error {
	o.phone = phone
	return nil
}

func (o *Order) setItem(item Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	o.item = item
	return nil
}

func (o *Order) setDropoff(dropoff string) error {
	if dropoff == "" {
		return errs.NewValueIsRequiredError("dropoff")
	}
	o.dropoff = dropoff
	return nil
}

func (o *Order) setPayment(payment Payment) error {
	if err := payment.Validate(); err != nil {
		return err
	}
	o.payment = payment
	return nil
}

func (o *Order) setTip(tip kernel.Money) error {
	o.tip = tip
	return nil
}
