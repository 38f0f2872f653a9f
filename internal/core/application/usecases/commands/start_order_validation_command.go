package commands

import (
	"errors"

	"orderflow/internal/pkg/guard"
)

var (
	ErrStartOrderValidationCommandIsNotConstructed = errors.New(
		"StartOrderValidationCommand must be created via NewStartOrderValidationCommand constructor",
	)
)

// StartOrderValidationCommand represents a request to start the background
// validation of an order.
type StartOrderValidationCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewStartOrderValidationCommand creates a command to start validating the
// order with the given identifier. The identifier must be positive.
func NewStartOrderValidationCommand(orderID int64) (StartOrderValidationCommand, error) {
	if err := validateOrderID(orderID); err != nil {
		return StartOrderValidationCommand{}, err
	}

	return StartOrderValidationCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c StartOrderValidationCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderValidationCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to validate.
func (c StartOrderValidationCommand) OrderID() int64 {
	return c.orderID
}
