package manufacturing

import (
	"fmt"

	"ordermanagement/internal/pkg/errs"
)

// Status represents the lifecycle state of a manufacturing order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct production workflow.
//
// State transitions:
//
//	Pending ──┬──> InProgress ──> Completed
//	          │        │
//	          └────────┴──> Cancelled
//
// Completed and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a manufacturing order is created.
	Pending

	// InProgress indicates production has started.
	InProgress

	// Completed indicates production finished successfully. Terminal.
	Completed

	// Cancelled indicates the order was abandoned before completion. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
		Cancelled:  "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "PENDING",
		InProgress: "IN_PROGRESS",
		Completed:  "COMPLETED",
		Cancelled:  "CANCELLED",
	}
}

// StatusFromString parses the persisted or wire name of a status.
// Returns an error for names outside the valid set.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid manufacturing order status", s),
	)
}

// Validate checks if the Status value is one of the valid states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, e.g. "IN_PROGRESS".
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// CanTransitionTo reports whether the transition table allows moving
// from the current status to newStatus.
func (s Status) CanTransitionTo(newStatus Status) bool {
	switch s {
	case Pending:
		return newStatus == InProgress || newStatus == Cancelled
	case InProgress:
		return newStatus == Completed || newStatus == Cancelled
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Advance performs a strict transition to newStatus.
//
// Returns:
//   - (newStatus, nil) when the transition table allows the move
//   - (0, error) otherwise
//
// Callers that need to absorb duplicate event delivery should check
// CanTransitionTo first rather than relying on the error.
func (s Status) Advance(newStatus Status) (Status, error) {
	if err := newStatus.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(newStatus) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status transition is invalid",
			fmt.Errorf("cannot transition from %s to %s", s.String(), newStatus.String()),
		)
	}

	return newStatus, nil
}
