// Package eventbus provides an in-process event bus for routing domain
// events between the two aggregate lifecycles. Delivery is synchronous and
// happens after the publishing transaction has committed, so subscribers
// always observe durable state.
package eventbus

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/ports"
)

// InMemoryEventBus routes domain events to subscribed handlers by event type.
// Handler failures do not stop delivery to the remaining handlers; all
// failures are joined into the returned error so the caller sees every one.
type InMemoryEventBus struct {
	mu       sync.RWMutex
	handlers map[string][]ports.EventHandler
	logger   *slog.Logger
}

// NewInMemoryEventBus creates an event bus with no subscriptions.
func NewInMemoryEventBus(logger *slog.Logger) *InMemoryEventBus {
	return &InMemoryEventBus{
		handlers: make(map[string][]ports.EventHandler),
		logger:   logger.With("component", "eventbus"),
	}
}

// Subscribe registers a handler for the given event type.
func (b *InMemoryEventBus) Subscribe(eventType string, handler ports.EventHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish delivers each event synchronously to every handler subscribed to
// its type. Events without subscribers are dropped silently.
func (b *InMemoryEventBus) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	var failures []error

	for _, event := range events {
		b.mu.RLock()
		handlers := b.handlers[event.EventType()]
		b.mu.RUnlock()

		b.logger.DebugContext(ctx, "publishing event",
			"eventType", event.EventType(),
			"subscribers", len(handlers),
		)

		for _, handler := range handlers {
			if err := handler.Handle(ctx, event); err != nil {
				b.logger.ErrorContext(ctx, "event handler failed",
					"eventType", event.EventType(),
					"error", err,
				)
				failures = append(failures, err)
			}
		}
	}

	return errors.Join(failures...)
}
