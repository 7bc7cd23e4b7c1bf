package manufacturing

import (
	"errors"
	"fmt"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
)

// ErrTimelineIsNotConstructed is returned when a Timeline was not created
// through NewTimeline or RestoreTimeline.
var ErrTimelineIsNotConstructed = errors.New("Timeline must be created via NewTimeline constructor")

const hoursPerDay = 24

// Timeline is an immutable value object describing the expected and actual
// production window of a manufacturing order.
//
// Invariants:
//   - expectedCompletion is never before expectedStart
//   - actualCompletion is never before actualStart when both are present
//
// The With* methods return a new Timeline rather than mutating the receiver.
type Timeline struct {
	expectedStart      time.Time
	expectedCompletion time.Time
	actualStart        *time.Time
	actualCompletion   *time.Time

	guard kernel.ConstructorGuard
}

// NewTimeline creates a Timeline with the expected production window.
// Both times are required and completion must not precede start.
func NewTimeline(expectedStart, expectedCompletion time.Time) (Timeline, error) {
	if expectedStart.IsZero() {
		return Timeline{}, errs.NewValueIsRequiredError("expectedStart")
	}
	if expectedCompletion.IsZero() {
		return Timeline{}, errs.NewValueIsRequiredError("expectedCompletion")
	}
	if expectedCompletion.Before(expectedStart) {
		return Timeline{}, errs.NewValueIsInvalidErrorWithCause(
			"timeline is invalid",
			fmt.Errorf("expected completion %s is before expected start %s", expectedCompletion, expectedStart),
		)
	}

	return Timeline{
		expectedStart:      expectedStart,
		expectedCompletion: expectedCompletion,
		guard:              kernel.NewConstructorGuard(),
	}, nil
}

// RestoreTimeline reconstructs a Timeline from persistence, including the
// actual window when production has started or finished.
func RestoreTimeline(
	expectedStart, expectedCompletion time.Time,
	actualStart, actualCompletion *time.Time,
) (Timeline, error) {
	timeline, err := NewTimeline(expectedStart, expectedCompletion)
	if err != nil {
		return Timeline{}, err
	}

	if actualStart != nil {
		if timeline, err = timeline.WithActualStart(*actualStart); err != nil {
			return Timeline{}, err
		}
	}
	if actualCompletion != nil {
		if timeline, err = timeline.WithActualCompletion(*actualCompletion); err != nil {
			return Timeline{}, err
		}
	}

	return timeline, nil
}

// Validate ensures the Timeline was created through a constructor.
func (tl Timeline) Validate() error {
	return tl.guard.Validate(ErrTimelineIsNotConstructed)
}

// ExpectedStart returns the planned production start.
func (tl Timeline) ExpectedStart() time.Time {
	return tl.expectedStart
}

// ExpectedCompletion returns the planned production completion.
func (tl Timeline) ExpectedCompletion() time.Time {
	return tl.expectedCompletion
}

// ActualStart returns the moment production actually started, or nil.
func (tl Timeline) ActualStart() *time.Time {
	return tl.actualStart
}

// ActualCompletion returns the moment production actually finished, or nil.
func (tl Timeline) ActualCompletion() *time.Time {
	return tl.actualCompletion
}

// WithActualStart returns a copy of the timeline with the actual start stamped.
func (tl Timeline) WithActualStart(actualStart time.Time) (Timeline, error) {
	if err := tl.Validate(); err != nil {
		return Timeline{}, err
	}
	if actualStart.IsZero() {
		return Timeline{}, errs.NewValueIsRequiredError("actualStart")
	}

	next := tl
	next.actualStart = &actualStart
	return next, nil
}

// WithActualCompletion returns a copy of the timeline with the actual
// completion stamped. Completion must not precede the actual start.
func (tl Timeline) WithActualCompletion(actualCompletion time.Time) (Timeline, error) {
	if err := tl.Validate(); err != nil {
		return Timeline{}, err
	}
	if actualCompletion.IsZero() {
		return Timeline{}, errs.NewValueIsRequiredError("actualCompletion")
	}
	if tl.actualStart != nil && actualCompletion.Before(*tl.actualStart) {
		return Timeline{}, errs.NewValueIsInvalidErrorWithCause(
			"timeline is invalid",
			fmt.Errorf("actual completion %s is before actual start %s", actualCompletion, *tl.actualStart),
		)
	}

	next := tl
	next.actualCompletion = &actualCompletion
	return next, nil
}

// IsOverdue reports whether production has not finished and the expected
// completion is already in the past.
func (tl Timeline) IsOverdue() bool {
	return tl.actualCompletion == nil && time.Now().After(tl.expectedCompletion)
}

// IsCompleted reports whether production actually finished.
func (tl Timeline) IsCompleted() bool {
	return tl.actualCompletion != nil
}

// DurationDays returns the actual production duration in whole days,
// falling back to the expected window while production is unfinished.
func (tl Timeline) DurationDays() int {
	if tl.actualStart == nil || tl.actualCompletion == nil {
		return int(tl.expectedCompletion.Sub(tl.expectedStart).Hours() / hoursPerDay)
	}
	return int(tl.actualCompletion.Sub(*tl.actualStart).Hours() / hoursPerDay)
}
