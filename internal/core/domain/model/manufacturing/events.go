package manufacturing

import (
	"time"

	"ordermanagement/internal/core/domain/model/kernel"
)

// Event type discriminators, used for bus subscription routing.
const (
	OrderCreatedEventType       = "ManufacturingOrderCreated"
	OrderStatusChangedEventType = "ManufacturingOrderStatusChanged"
	OrderCompletedEventType     = "ManufacturingOrderCompleted"
)

// OrderCreated is raised when a manufacturing order enters the system.
// The customer-order context uses it to link a customer order sharing the same id.
type OrderCreated struct {
	OrderID     kernel.UUID
	ProductCode string
	Quantity    int

	occurredOn time.Time
}

// NewOrderCreated creates an OrderCreated event stamped with the current time.
func NewOrderCreated(orderID kernel.UUID, productCode string, quantity int) OrderCreated {
	return OrderCreated{
		OrderID:     orderID,
		ProductCode: productCode,
		Quantity:    quantity,
		occurredOn:  time.Now(),
	}
}

// EventType implements kernel.DomainEvent.
func (e OrderCreated) EventType() string { return OrderCreatedEventType }

// OccurredOn implements kernel.DomainEvent.
func (e OrderCreated) OccurredOn() time.Time { return e.occurredOn }

// OrderStatusChanged is raised on every status transition.
// Status names are the enum strings, e.g. "IN_PROGRESS".
type OrderStatusChanged struct {
	OrderID        kernel.UUID
	PreviousStatus string
	NewStatus      string

	occurredOn time.Time
}

// NewOrderStatusChanged creates an OrderStatusChanged event stamped with the current time.
func NewOrderStatusChanged(orderID kernel.UUID, previousStatus, newStatus string) OrderStatusChanged {
	return OrderStatusChanged{
		OrderID:        orderID,
		PreviousStatus: previousStatus,
		NewStatus:      newStatus,
		occurredOn:     time.Now(),
	}
}

// EventType implements kernel.DomainEvent.
func (e OrderStatusChanged) EventType() string { return OrderStatusChangedEventType }

// OccurredOn implements kernel.DomainEvent.
func (e OrderStatusChanged) OccurredOn() time.Time { return e.occurredOn }

// OrderCompleted is raised when production finishes, in addition to the
// generic status-changed event for the transition into COMPLETED.
type OrderCompleted struct {
	OrderID     kernel.UUID
	CompletedAt time.Time

	occurredOn time.Time
}

// NewOrderCompleted creates an OrderCompleted event stamped with the current time.
func NewOrderCompleted(orderID kernel.UUID, completedAt time.Time) OrderCompleted {
	return OrderCompleted{
		OrderID:     orderID,
		CompletedAt: completedAt,
		occurredOn:  time.Now(),
	}
}

// EventType implements kernel.DomainEvent.
func (e OrderCompleted) EventType() string { return OrderCompletedEventType }

// OccurredOn implements kernel.DomainEvent.
func (e OrderCompleted) OccurredOn() time.Time { return e.occurredOn }
