package commands

import (
	"errors"
	"fmt"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create a new order.
// Carries the inbound schema: quantity and price must be positive; the
// product reference is accepted as-is and re-checked by the background
// validation.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(1, 2, 15.0)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	productID int64
	quantity  int
	price     float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that quantity and price are positive.
// Returns an error if any validation fails.
func NewCreateOrderCommand(productID int64, quantity int, price float64) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	orderCommand.productID = productID
	if err := errors.Join(
		orderCommand.setQuantity(quantity),
		orderCommand.setPrice(price),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ProductID returns the ordered product reference.
func (c CreateOrderCommand) ProductID() int64 {
	return c.productID
}

// Quantity returns the ordered amount.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// Price returns the unit price.
func (c CreateOrderCommand) Price() float64 {
	return c.price
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.quantity = quantity
	return nil
}

func (c *CreateOrderCommand) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%g is not greater than 0", price))
	}

	c.price = price
	return nil
}
