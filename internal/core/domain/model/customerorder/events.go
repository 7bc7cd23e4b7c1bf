package customerorder

import (
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
)

// Event type discriminators, used for bus subscription routing.
const (
	OrderPlacedEventType        = "CustomerOrderPlaced"
	OrderStatusUpdatedEventType = "CustomerOrderStatusUpdated"
	OrderCancelledEventType     = "CustomerOrderCancelled"
)

// OrderPlaced is raised when a customer submits a new order.
type OrderPlaced struct {
	OrderID     kernel.UUID
	CustomerID  kernel.UUID
	TotalAmount kernel.Money

	occurredOn time.Time
}

// NewOrderPlaced creates an OrderPlaced event stamped with the current time.
func NewOrderPlaced(orderID, customerID kernel.UUID, totalAmount kernel.Money) OrderPlaced {
	return OrderPlaced{
		OrderID:     orderID,
		CustomerID:  customerID,
		TotalAmount: totalAmount,
		occurredOn:  time.Now(),
	}
}

// EventType implements kernel.DomainEvent.
func (e OrderPlaced) EventType() string { return OrderPlacedEventType }

// OccurredOn implements kernel.DomainEvent.
func (e OrderPlaced) OccurredOn() time.Time { return e.occurredOn }

// OrderStatusUpdated is raised on every status transition except
// cancellation, which raises OrderCancelled instead.
// Status names are the enum strings, e.g. "CONFIRMED".
type OrderStatusUpdated struct {
	OrderID        kernel.UUID
	PreviousStatus string
	NewStatus      string

	occurredOn time.Time
}

// NewOrderStatusUpdated creates an OrderStatusUpdated event stamped with the current time.
func NewOrderStatusUpdated(orderID kernel.UUID, previousStatus, newStatus string) OrderStatusUpdated {
	return OrderStatusUpdated{
		OrderID:        orderID,
		PreviousStatus: previousStatus,
		NewStatus:      newStatus,
		occurredOn:     time.Now(),
	}
}

// EventType implements kernel.DomainEvent.
func (e OrderStatusUpdated) EventType() string { return OrderStatusUpdatedEventType }

// OccurredOn implements kernel.DomainEvent.
func (e OrderStatusUpdated) OccurredOn() time.Time { return e.occurredOn }

// OrderCancelled is raised when a customer order is cancelled.
// ManufacturingOrderID carries the correlation link at cancellation time so
// the manufacturing context can propagate the cancellation without relying
// on id conventions; nil when the order was never linked.
type OrderCancelled struct {
	OrderID              kernel.UUID
	ManufacturingOrderID *kernel.UUID
	Reason               string

	occurredOn time.Time
}

// NewOrderCancelled creates an OrderCancelled event stamped with the current time.
func NewOrderCancelled(orderID kernel.UUID, manufacturingOrderID *kernel.UUID, reason string) OrderCancelled {
	return OrderCancelled{
		OrderID:              orderID,
		ManufacturingOrderID: manufacturingOrderID,
		Reason:               reason,
		occurredOn:           time.Now(),
	}
}

// EventType implements kernel.DomainEvent.
func (e OrderCancelled) EventType() string { return OrderCancelledEventType }

// OccurredOn implements kernel.DomainEvent.
func (e OrderCancelled) OccurredOn() time.Time { return e.occurredOn }
