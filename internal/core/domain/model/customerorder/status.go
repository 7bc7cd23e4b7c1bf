package customerorder

import (
	"fmt"

	"ordermanagement/internal/pkg/errs"
)

// Status represents the lifecycle state of a customer order. The status
// tracks the order from placement through manufacturing and delivery.
//
// State transitions:
//
//	Placed ──> Confirmed ──> ManufacturingInProgress ──> ManufacturingCompleted ──> Shipped ──> Delivered
//	   │           │                    │                          │
//	   └───────────┴────────────────────┴──────────────────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. An order already shipped can no
// longer be cancelled.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status when a customer submits an order.
	Placed

	// Confirmed indicates the order was accepted for fulfilment.
	Confirmed

	// ManufacturingInProgress indicates the linked manufacturing order
	// has started production.
	ManufacturingInProgress

	// ManufacturingCompleted indicates production finished.
	ManufacturingCompleted

	// Shipped indicates the order left the warehouse.
	Shipped

	// Delivered indicates the customer received the order. Terminal.
	Delivered

	// Cancelled indicates the order was abandoned. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                 "UNKNOWN",
		Placed:                  "PLACED",
		Confirmed:               "CONFIRMED",
		ManufacturingInProgress: "MANUFACTURING_IN_PROGRESS",
		ManufacturingCompleted:  "MANUFACTURING_COMPLETED",
		Shipped:                 "SHIPPED",
		Delivered:               "DELIVERED",
		Cancelled:               "CANCELLED",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Placed:                  "PLACED",
		Confirmed:               "CONFIRMED",
		ManufacturingInProgress: "MANUFACTURING_IN_PROGRESS",
		ManufacturingCompleted:  "MANUFACTURING_COMPLETED",
		Shipped:                 "SHIPPED",
		Delivered:               "DELIVERED",
		Cancelled:               "CANCELLED",
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
		fmt.Errorf("%q is not a valid customer order status", s),
	)
}

// Validate checks if the Status value is one of the valid states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted name of the status, e.g. "MANUFACTURING_IN_PROGRESS".
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
	case Placed:
		return newStatus == Confirmed || newStatus == Cancelled
	case Confirmed:
		return newStatus == ManufacturingInProgress || newStatus == Cancelled
	case ManufacturingInProgress:
		return newStatus == ManufacturingCompleted || newStatus == Cancelled
	case ManufacturingCompleted:
		return newStatus == Shipped || newStatus == Cancelled
	case Shipped:
		return newStatus == Delivered
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Advance performs a strict transition to newStatus.
//
// Returns:
//   - (newStatus, nil) when the transition table allows the move
//   - (0, error) otherwise
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

// TryAdvance performs a guarded transition: the move happens only when the
// current status is exactly from. On mismatch the current status is returned
// unchanged with false, never an error. This absorbs duplicate or
// out-of-order event delivery.
func (s Status) TryAdvance(from, to Status) (Status, bool) {
	if s != from || !s.CanTransitionTo(to) {
		return s, false
	}
	return to, true
}
