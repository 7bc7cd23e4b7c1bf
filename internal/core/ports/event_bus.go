package ports

import (
	"context"

	"ordermanagement/internal/core/domain/model/kernel"
)

// EventHandler reacts to a single published domain event. Handlers must be
// idempotent: the delivery mechanism guarantees at-least-once, not
// exactly-once, so the same event may arrive more than once.
type EventHandler interface {
	Handle(ctx context.Context, event kernel.DomainEvent) error
}

// EventPublisher delivers committed domain events to subscribers.
// Publish must only be called after the state change the events describe
// has been durably committed.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent) error
}

// EventBus is an EventPublisher with subscription management. Handlers are
// routed by the event type discriminator.
type EventBus interface {
	EventPublisher

	// Subscribe registers a handler for the given event type. Multiple
	// handlers may subscribe to the same type; each published event is
	// delivered to all of them.
	Subscribe(eventType string, handler EventHandler)
}
