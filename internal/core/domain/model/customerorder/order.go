package customerorder

import (
	"errors"
	"fmt"
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the PlaceOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via PlaceOrder constructor")

// Order is the customer order aggregate root. It owns the buyer details, the
// line items, the derived total, the lifecycle status, and the optional
// correlation link to a manufacturing order.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer info
//   - Items are non-empty and immutable after construction
//   - totalAmount equals the sum of the item totals, all in one currency
//   - Status transitions follow the customer order state machine
//   - Can only be created through PlaceOrder or RestoreOrder
//
// Status changes come in two flavours. UpdateStatus and Cancel are strict
// and fail on a forbidden move. The Notify* and MarkAs* methods are guarded
// no-ops that silently skip the transition when the order is not in the
// expected predecessor state, which absorbs duplicate or out-of-order
// event delivery.
type Order struct {
	id                   kernel.UUID
	customerInfo         CustomerInfo
	items                []OrderItem
	totalAmount          kernel.Money
	status               Status
	placedAt             time.Time
	updatedAt            time.Time
	manufacturingOrderID *kernel.UUID

	// version is the optimistic concurrency token checked by the repository
	// on update; the stored value must match the value loaded here.
	version int

	pendingEvents []kernel.DomainEvent
	isConstructed bool
}

// PlaceOrder creates a new customer order in Placed status, computes the
// total from the items, and records an OrderPlaced event.
// Fails when the item list is empty or the items mix currencies.
func PlaceOrder(id kernel.UUID, customerInfo CustomerInfo, items []OrderItem) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerInfo.Validate(),
	); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	total, err := sumItemTotals(items)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &Order{
		id:            id,
		customerInfo:  customerInfo,
		items:         append([]OrderItem(nil), items...),
		totalAmount:   total,
		status:        Placed,
		placedAt:      now,
		updatedAt:     now,
		isConstructed: true,
	}

	order.recordEvent(NewOrderPlaced(id, customerInfo.CustomerID(), total))
	return order, nil
}

// RestoreOrder reconstructs an order from persistence.
// No events are recorded; the stored state is taken as-is.
func RestoreOrder(
	id kernel.UUID,
	customerInfo CustomerInfo,
	items []OrderItem,
	totalAmount kernel.Money,
	status Status,
	placedAt, updatedAt time.Time,
	manufacturingOrderID *kernel.UUID,
	version int,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerInfo.Validate(),
		totalAmount.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("items")
	}
	if manufacturingOrderID != nil {
		if err := manufacturingOrderID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:                   id,
		customerInfo:         customerInfo,
		items:                append([]OrderItem(nil), items...),
		totalAmount:          totalAmount,
		status:               status,
		placedAt:             placedAt,
		updatedAt:            updatedAt,
		manufacturingOrderID: manufacturingOrderID,
		version:              version,
		isConstructed:        true,
	}, nil
}

func sumItemTotals(items []OrderItem) (kernel.Money, error) {
	first, err := items[0].TotalPrice()
	if err != nil {
		return kernel.Money{}, err
	}

	total := first
	for _, item := range items[1:] {
		itemTotal, err := item.TotalPrice()
		if err != nil {
			return kernel.Money{}, err
		}
		if total, err = total.Add(itemTotal); err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
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

// CustomerInfo returns the buyer details.
func (o *Order) CustomerInfo() CustomerInfo {
	return o.customerInfo
}

// Items returns a copy of the order lines.
func (o *Order) Items() []OrderItem {
	return append([]OrderItem(nil), o.items...)
}

// TotalAmount returns the derived order total.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// PlacedAt returns when the customer submitted the order.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// UpdatedAt returns when the order last changed.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ManufacturingOrderID returns the correlated manufacturing order id,
// or nil when the order is not linked yet.
func (o *Order) ManufacturingOrderID() *kernel.UUID {
	return o.manufacturingOrderID
}

// IsLinked reports whether a manufacturing order is correlated.
func (o *Order) IsLinked() bool {
	return o.manufacturingOrderID != nil
}

// Version returns the optimistic concurrency token loaded from storage.
func (o *Order) Version() int {
	return o.version
}

// UpdateStatus performs a strict transition to newStatus and records an
// OrderStatusUpdated event. Returns an invalid-transition error when the
// table forbids the move.
func (o *Order) UpdateStatus(newStatus Status) error {
	next, err := o.status.Advance(newStatus)
	if err != nil {
		return err
	}

	o.applyStatus(next)
	return nil
}

// Confirm moves a placed order to Confirmed. Orders in any other status are
// left untouched, so a duplicate confirmation is harmless.
func (o *Order) Confirm() {
	o.tryAdvance(Placed, Confirmed)
}

// NotifyManufacturingStarted reacts to production starting on the linked
// manufacturing order. No-op unless the order is currently Confirmed.
func (o *Order) NotifyManufacturingStarted() {
	o.tryAdvance(Confirmed, ManufacturingInProgress)
}

// NotifyManufacturingCompleted reacts to production finishing.
// No-op unless the order is currently ManufacturingInProgress.
func (o *Order) NotifyManufacturingCompleted() {
	o.tryAdvance(ManufacturingInProgress, ManufacturingCompleted)
}

// MarkAsShipped records that the order left the warehouse.
// No-op unless the order is currently ManufacturingCompleted.
func (o *Order) MarkAsShipped() {
	o.tryAdvance(ManufacturingCompleted, Shipped)
}

// MarkAsDelivered records that the customer received the order.
// No-op unless the order is currently Shipped.
func (o *Order) MarkAsDelivered() {
	o.tryAdvance(Shipped, Delivered)
}

// LinkManufacturingOrder sets the correlation field. Linking does not change
// the status and raises no event; status changes happen only through the
// notify methods when production events arrive.
func (o *Order) LinkManufacturingOrder(manufacturingOrderID kernel.UUID) error {
	if err := manufacturingOrderID.Validate(); err != nil {
		return err
	}

	o.manufacturingOrderID = &manufacturingOrderID
	o.updatedAt = time.Now()
	return nil
}

// Cancel transitions the order to Cancelled and records an OrderCancelled
// event carrying the reason and the correlation link at cancellation time.
// The generic status-updated event is deliberately not raised.
// Fails when the current status is terminal.
func (o *Order) Cancel(reason string) error {
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status transition is invalid",
			fmt.Errorf("cannot cancel order in terminal status %s", o.status.String()),
		)
	}

	o.status = Cancelled
	o.updatedAt = time.Now()
	o.recordEvent(NewOrderCancelled(o.id, o.manufacturingOrderID, reason))
	return nil
}

// IsActive reports whether the order can still progress.
func (o *Order) IsActive() bool {
	return !o.status.IsTerminal()
}

// IsCancelled reports whether the order was cancelled.
func (o *Order) IsCancelled() bool {
	return o.status == Cancelled
}

// IsDelivered reports whether the order reached the customer.
func (o *Order) IsDelivered() bool {
	return o.status == Delivered
}

// PullEvents atomically returns and clears the buffered domain events.
// A second call returns nil until new events are recorded, so a retried
// save never publishes duplicates.
func (o *Order) PullEvents() []kernel.DomainEvent {
	events := o.pendingEvents
	o.pendingEvents = nil
	return events
}

func (o *Order) tryAdvance(from, to Status) {
	next, ok := o.status.TryAdvance(from, to)
	if !ok {
		return
	}
	o.applyStatus(next)
}

func (o *Order) applyStatus(next Status) {
	previous := o.status
	o.status = next
	o.updatedAt = time.Now()
	o.recordEvent(NewOrderStatusUpdated(o.id, previous.String(), next.String()))
}

func (o *Order) recordEvent(event kernel.DomainEvent) {
	o.pendingEvents = append(o.pendingEvents, event)
}
