// Package order provides domain entities and business logic for the order
// workflow. It implements the Order aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders start in CREATED status with positive quantity and price
//   - CREATED orders can move to VALIDATED or REJECTED
//   - VALIDATED orders can move to APPROVED or REJECTED
//   - APPROVED and REJECTED are terminal states
//   - The background validation verdict (CompleteValidation) re-checks the
//     field values independently and writes without consulting the
//     transition table
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
