package commands

import (
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
)

// UpdateOrderCommand represents a partial field update of an order.
// Unset fields are left untouched. Quantity and price follow the inbound
// schema (positive when set); the status, when set, is written directly.
// This is the administrative path that bypasses the workflow, which is why
// the background validation never trusts stored field values.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   int64
	productID *int64
	quantity  *int
	price     *float64
	status    *order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a partial update command for the order with
// the given identifier. Nil pointers mean "leave unchanged". The status, if
// set, is given by its wire-level name.
func NewUpdateOrderCommand(orderID int64, productID *int64, quantity *int, price *float64, statusName *string) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := validateOrderID(orderID); err != nil {
		return UpdateOrderCommand{}, err
	}
	cmd.orderID = orderID
	cmd.productID = productID

	if err := errors.Join(
		cmd.setQuantity(quantity),
		cmd.setPrice(price),
		cmd.setStatus(statusName),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() int64 {
	return c.orderID
}

// ProductID returns the new product reference, or nil when unchanged.
func (c UpdateOrderCommand) ProductID() *int64 {
	return c.productID
}

// Quantity returns the new quantity, or nil when unchanged.
func (c UpdateOrderCommand) Quantity() *int {
	return c.quantity
}

// Price returns the new unit price, or nil when unchanged.
func (c UpdateOrderCommand) Price() *float64 {
	return c.price
}

// Status returns the new status, or nil when unchanged.
func (c UpdateOrderCommand) Status() *order.Status {
	return c.status
}

func (c *UpdateOrderCommand) setQuantity(quantity *int) error {
	if quantity != nil && *quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", *quantity))
	}

	c.quantity = quantity
	return nil
}

func (c *UpdateOrderCommand) setPrice(price *float64) error {
	if price != nil && *price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%g is not greater than 0", *price))
	}

	c.price = price
	return nil
}

func (c *UpdateOrderCommand) setStatus(statusName *string) error {
	if statusName == nil {
		return nil
	}

	status, err := order.StatusFromString(*statusName)
	if err != nil {
		return err
	}

	c.status = &status
	return nil
}
