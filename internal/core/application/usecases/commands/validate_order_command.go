package commands

import (
	"errors"

	"orderflow/internal/pkg/guard"
)

var (
	ErrValidateOrderCommandIsNotConstructed = errors.New(
		"ValidateOrderCommand must be created via NewValidateOrderCommand constructor",
	)
)

// ValidateOrderCommand parameterizes one background validation run.
type ValidateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewValidateOrderCommand creates a command for one background validation
// run over the order with the given identifier.
func NewValidateOrderCommand(orderID int64) (ValidateOrderCommand, error) {
	if err := validateOrderID(orderID); err != nil {
		return ValidateOrderCommand{}, err
	}

	return ValidateOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ValidateOrderCommand) Validate() error {
	return c.guard.Validate(ErrValidateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to validate.
func (c ValidateOrderCommand) OrderID() int64 {
	return c.orderID
}
