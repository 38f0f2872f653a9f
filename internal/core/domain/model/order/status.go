package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct approval workflow.
//
// State transitions:
//
//	Created ──┬──> Validated ──┬──> Approved
//	          │        │       │
//	          └────────┴──> Rejected
//
// Approved and Rejected are terminal states with no further transitions.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first created.
	// Orders in this status are waiting to be validated or rejected.
	Created

	// Validated indicates the background validation accepted the order's
	// field values. Validated orders can be approved or rejected.
	Validated

	// Approved indicates the order passed the full workflow.
	// This is a terminal state with no further transitions allowed.
	Approved

	// Rejected indicates the order was refused, either by the background
	// validation or by an explicit reject call. Terminal state.
	Rejected
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Created:   "CREATED",
		Validated: "VALIDATED",
		Approved:  "APPROVED",
		Rejected:  "REJECTED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "CREATED",
		Validated: "VALIDATED",
		Approved:  "APPROVED",
		Rejected:  "REJECTED",
	}
}

// getTransitions returns the allowed target statuses for each status.
// This table is the single source of truth for the workflow: every
// transition-attempting operation consults it through CanTransitionTo,
// and no caller hand-rolls its own transition checks.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Created:   {Validated, Rejected},
		Validated: {Approved, Rejected},
		Approved:  {},
		Rejected:  {},
	}
}

// AllStatuses lists the valid statuses in workflow order.
// Used to produce deterministic output where map iteration would not.
func AllStatuses() []Status {
	return []Status{Created, Validated, Approved, Rejected}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, Validated, Approved, Rejected.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the status is valid
//   - error with details if the status is invalid
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire-level name of the status.
//
// Returns:
//   - "CREATED", "VALIDATED", "APPROVED", or "REJECTED" for valid statuses
//   - "UNKNOWN" for invalid status values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// StatusFromString parses a wire-level status name into a Status.
// Returns an error for names outside the valid enumeration.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status name", name),
	)
}

// CanTransitionTo reports whether the workflow permits moving from the
// current status to the target status. The function is pure and total:
// any status not present in the transition table yields no allowed targets.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return len(getTransitions()[s]) == 0 && s.Validate() == nil
}

// AllowedSources returns the statuses from which the target status is
// reachable, in workflow order. Used to build transition error messages
// that name the status(es) an operation requires.
func AllowedSources(target Status) []Status {
	sources := make([]Status, 0, 2)
	for _, s := range AllStatuses() {
		if s.CanTransitionTo(target) {
			sources = append(sources, s)
		}
	}
	return sources
}

// TransitionTo moves the status to target when the workflow permits it.
//
// Returns:
//   - (target, nil) on a valid transition
//   - (0, *errs.InvalidTransitionError) when the transition is denied;
//     the error names the current status and the required status(es)
func (s Status) TransitionTo(target Status, action string) (Status, error) {
	if !s.CanTransitionTo(target) {
		required := make([]string, 0, 2)
		for _, src := range AllowedSources(target) {
			required = append(required, src.String())
		}
		return 0, errs.NewInvalidTransitionError(action, s.String(), required)
	}
	return target, nil
}
