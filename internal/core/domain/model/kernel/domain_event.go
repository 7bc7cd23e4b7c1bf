package kernel

import "time"

// DomainEvent is implemented by every event an aggregate raises.
//
// Events describe business facts that already happened and are of interest to
// the other bounded context. They are buffered inside the aggregate that
// raised them and become visible to subscribers only after the originating
// transaction commits (publish-after-commit).
type DomainEvent interface {
	// EventType returns the discriminator used for subscription routing,
	// e.g. "CustomerOrderStatusUpdated".
	EventType() string

	// OccurredOn returns the moment the event was raised.
	OccurredOn() time.Time
}

// EventSource is implemented by aggregates that buffer domain events.
// PullEvents atomically returns and clears the buffer, so a retried save
// never publishes the same events twice.
type EventSource interface {
	PullEvents() []DomainEvent
}
