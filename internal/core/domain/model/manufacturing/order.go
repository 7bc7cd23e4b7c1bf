package manufacturing

import (
	"errors"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the manufacturing order aggregate root. It owns the product
// specification, the production timeline, and the status state machine, and
// records domain events for every lifecycle change.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and product specification
//   - Status transitions follow the Pending/InProgress/Completed/Cancelled table
//   - First entry into InProgress stamps the actual start
//   - Every entry into Completed stamps the actual completion and raises
//     both a status-changed and a completion event
//   - Can only be created through NewOrder or RestoreOrder
//
// Raised events stay buffered inside the aggregate until PullEvents drains
// them after the surrounding transaction commits.
type Order struct {
	id          kernel.UUID
	productSpec ProductSpecification
	status      Status
	timeline    Timeline
	createdAt   time.Time
	updatedAt   time.Time

	// version is the optimistic concurrency token checked by the repository
	// on update; the stored value must match the value loaded here.
	version int

	pendingEvents []kernel.DomainEvent
	isConstructed bool
}

// NewOrder creates a new manufacturing order in Pending status and records
// an OrderCreated event.
func NewOrder(id kernel.UUID, productSpec ProductSpecification, timeline Timeline) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		productSpec.Validate(),
		timeline.Validate(),
	); err != nil {
		return nil, err
	}

	now := time.Now()
	order := &Order{
		id:            id,
		productSpec:   productSpec,
		status:        Pending,
		timeline:      timeline,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	order.recordEvent(NewOrderCreated(id, productSpec.ProductCode(), productSpec.Quantity()))
	return order, nil
}

// RestoreOrder reconstructs an order from persistence.
// No events are recorded; the stored state is taken as-is.
func RestoreOrder(
	id kernel.UUID,
	productSpec ProductSpecification,
	status Status,
	timeline Timeline,
	createdAt, updatedAt time.Time,
	version int,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		productSpec.Validate(),
		status.Validate(),
		timeline.Validate(),
	); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		productSpec:   productSpec,
		status:        status,
		timeline:      timeline,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was created through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ProductSpecification returns what the order produces.
func (o *Order) ProductSpecification() ProductSpecification {
	return o.productSpec
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Timeline returns the expected and actual production window.
func (o *Order) Timeline() Timeline {
	return o.timeline
}

// CreatedAt returns when the order entered the system.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order last changed.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic concurrency token loaded from storage.
func (o *Order) Version() int {
	return o.version
}

// ChangeStatus performs a strict transition to newStatus and records an
// OrderStatusChanged event.
//
// Side effects on specific targets:
//   - InProgress: stamps the actual start when production had not started yet
//   - Completed: stamps the actual completion and records an OrderCompleted event
//
// Returns an invalid-transition error when the table forbids the move.
func (o *Order) ChangeStatus(newStatus Status) error {
	next, err := o.status.Advance(newStatus)
	if err != nil {
		return err
	}

	previous := o.status
	now := time.Now()
	o.status = next
	o.updatedAt = now
	o.recordEvent(NewOrderStatusChanged(o.id, previous.String(), next.String()))

	if next == InProgress && o.timeline.ActualStart() == nil {
		timeline, tlErr := o.timeline.WithActualStart(now)
		if tlErr != nil {
			return tlErr
		}
		o.timeline = timeline
	}

	if next == Completed {
		timeline, tlErr := o.timeline.WithActualCompletion(now)
		if tlErr != nil {
			return tlErr
		}
		o.timeline = timeline
		o.recordEvent(NewOrderCompleted(o.id, now))
	}

	return nil
}

// Complete drives the order to Completed, auto-walking Pending through
// InProgress when needed. Completing an already completed order is a no-op.
func (o *Order) Complete() error {
	if o.status == Completed {
		return nil
	}

	if o.status == Pending {
		if err := o.ChangeStatus(InProgress); err != nil {
			return err
		}
	}

	return o.ChangeStatus(Completed)
}

// Cancel transitions the order to Cancelled.
// Fails when the current status is terminal.
func (o *Order) Cancel() error {
	return o.ChangeStatus(Cancelled)
}

// IsOverdue reports whether production has not finished, the expected
// completion is in the past, and the order is still live.
func (o *Order) IsOverdue() bool {
	return o.timeline.IsOverdue() && o.status != Completed && o.status != Cancelled
}

// IsInProgress reports whether production is running.
func (o *Order) IsInProgress() bool {
	return o.status == InProgress
}

// IsCompleted reports whether production finished.
func (o *Order) IsCompleted() bool {
	return o.status == Completed
}

// IsCancelled reports whether the order was cancelled.
func (o *Order) IsCancelled() bool {
	return o.status == Cancelled
}

// PullEvents atomically returns and clears the buffered domain events.
// A second call returns nil until new events are recorded, so a retried
// save never publishes duplicates.
func (o *Order) PullEvents() []kernel.DomainEvent {
	events := o.pendingEvents
	o.pendingEvents = nil
	return events
}

func (o *Order) recordEvent(event kernel.DomainEvent) {
	o.pendingEvents = append(o.pendingEvents, event)
}
