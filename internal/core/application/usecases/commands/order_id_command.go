package commands

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// validateOrderID enforces the shared rule for commands addressing an
// existing order: identifiers are positive integers.
func validateOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderId is invalid", fmt.Errorf("%d is not greater than 0", orderID))
	}
	return nil
}
