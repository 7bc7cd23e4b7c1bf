package services

import (
	"fmt"
	"time"

	"ordermanagement/internal/core/domain/model/manufacturing"
	"ordermanagement/internal/pkg/errs"
)

// ProductionScheduler is a domain service that validates whether a
// manufacturing order can be accepted into the production plan.
//
// Business rules:
//   - The expected window must not be inverted
//   - A pending order must not be scheduled entirely in the past: its
//     expected completion has to lie in the future at acceptance time
//
// The scheduler only inspects the order; accepting it into the plan is the
// caller's responsibility.
type ProductionScheduler struct{}

// NewProductionScheduler creates a new ProductionScheduler instance.
func NewProductionScheduler() ProductionScheduler {
	return ProductionScheduler{}
}

// ValidateScheduling checks the order's timeline against the scheduling
// rules. Returns nil when the order can enter the production plan.
func (s ProductionScheduler) ValidateScheduling(order *manufacturing.Order) error {
	if err := order.Validate(); err != nil {
		return err
	}

	timeline := order.Timeline()
	if timeline.ExpectedCompletion().Before(timeline.ExpectedStart()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"timeline is invalid",
			fmt.Errorf("expected completion %s is before expected start %s",
				timeline.ExpectedCompletion(), timeline.ExpectedStart()),
		)
	}

	if order.Status() == manufacturing.Pending && !timeline.ExpectedCompletion().After(time.Now()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"timeline is invalid",
			fmt.Errorf("expected completion %s is already past", timeline.ExpectedCompletion()),
		)
	}

	return nil
}
