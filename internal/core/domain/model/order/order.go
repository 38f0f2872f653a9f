package order

import (
	"errors"
	"fmt"

	"orderflow/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order represents a purchase order in the system. It is the aggregate root
// that manages the order lifecycle from creation through validation to
// approval or rejection.
//
// Order follows these invariants:
//   - Status is always one of the valid workflow statuses
//   - Status transitions follow the workflow transition table
//   - Quantity and price are positive at creation time; the background
//     validation re-checks product reference, quantity, and price
//     independently rather than assuming it
//   - Can only be created through NewOrder or RestoreOrder
//
// The id is assigned by storage: a new order carries id 0 until persisted,
// and repositories rehydrate stored orders through RestoreOrder.
type Order struct {
	// id is the storage-assigned unique identifier (0 until persisted)
	id int64

	// productID references the ordered product
	productID int64

	// quantity is the ordered amount (positive at creation time)
	quantity int

	// price is the unit price (positive at creation time)
	price float64

	// status represents the current state in the order workflow
	status Status

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Created status with validation mirroring
// the inbound schema: quantity and price must be positive. The product
// reference is accepted as-is; the background validation is the place that
// checks it.
//
// Returns:
//   - *Order: the created order if all validations pass
//   - error: validation error if any parameter is invalid
func NewOrder(productID int64, quantity int, price float64) (*Order, error) {
	order := &Order{
		status:        Created,
		isConstructed: true,
	}

	order.productID = productID
	if err := errors.Join(
		order.setQuantity(quantity),
		order.setPrice(price),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persisted state. Field values are
// taken as stored, without the creation-time checks: storage is the source
// of truth, and the workflow must cope with records manipulated outside the
// inbound schema. Only the status itself must be a valid enumeration value.
func RestoreOrder(id int64, productID int64, quantity int, price float64, status Status) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		productID:     productID,
		quantity:      quantity,
		price:         price,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id == other.id
}

// ID returns the order's storage-assigned identifier (0 until persisted).
func (o *Order) ID() int64 {
	return o.id
}

// ProductID returns the ordered product reference.
func (o *Order) ProductID() int64 {
	return o.productID
}

// Quantity returns the ordered amount.
func (o *Order) Quantity() int {
	return o.quantity
}

// Price returns the unit price.
func (o *Order) Price() float64 {
	return o.price
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CanStartValidation checks whether the workflow permits starting the
// background validation, without mutating the order.
//
// Returns:
//   - nil if the order is in a status from which Validated is reachable
//   - *errs.InvalidTransitionError naming the current and required statuses
func (o *Order) CanStartValidation() error {
	_, err := o.status.TransitionTo(Validated, "validate")
	return err
}

// CompleteValidation applies the background validation verdict: the order
// becomes Validated when product reference, quantity, and price are all
// positive, and Rejected otherwise. The returned status is the one applied.
//
// The write deliberately skips the transition table: scheduling already
// confirmed the order was in Created status, and a write racing with a
// concurrent transition resolves as last-write-wins at the storage layer.
func (o *Order) CompleteValidation() Status {
	if o.productID > 0 && o.quantity > 0 && o.price > 0 {
		o.status = Validated
	} else {
		o.status = Rejected
	}

	return o.status
}

// Approve transitions the order to Approved.
//
// Valid transitions:
//   - Validated -> Approved
//
// Returns:
//   - nil on success
//   - *errs.InvalidTransitionError if the order is not in Validated status
func (o *Order) Approve() error {
	newStatus, err := o.status.TransitionTo(Approved, "approve")
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Reject transitions the order to Rejected.
//
// Valid transitions:
//   - Created -> Rejected
//   - Validated -> Rejected
//
// Returns:
//   - nil on success
//   - *errs.InvalidTransitionError if the order is in a terminal status
func (o *Order) Reject() error {
	newStatus, err := o.status.TransitionTo(Rejected, "reject")
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ChangeProductID replaces the product reference. Like the inbound schema,
// it accepts any value; the background validation is the gate.
func (o *Order) ChangeProductID(productID int64) {
	o.productID = productID
}

// ChangeQuantity replaces the quantity. Must be positive.
func (o *Order) ChangeQuantity(quantity int) error {
	return o.setQuantity(quantity)
}

// ChangePrice replaces the unit price. Must be positive.
func (o *Order) ChangePrice(price float64) error {
	return o.setPrice(price)
}

// ChangeStatus sets the status directly, bypassing the transition table.
// This exists for the administrative field update operation only; workflow
// operations go through Approve, Reject, and CompleteValidation.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

// setQuantity validates and sets the order's quantity.
// Quantity must be positive (greater than 0).
func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

// setPrice validates and sets the order's unit price.
// Price must be positive (greater than 0).
func (o *Order) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%g is not greater than 0", price))
	}
	o.price = price
	return nil
}
