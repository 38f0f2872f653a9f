// Package errs provides standardized error types for the order workflow
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: For when a referenced object cannot be found
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsOutOfRangeError: For when a numeric value is outside its bounds
//   - InvalidTransitionError: For when an order status change is not permitted
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach lets the HTTP adapter classify failures with
// errors.Is against the sentinels and map them to client-error or
// server-error responses.
package errs
