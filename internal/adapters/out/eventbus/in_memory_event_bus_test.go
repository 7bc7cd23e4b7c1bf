package eventbus_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"ordermanagement/internal/adapters/out/eventbus"
	"ordermanagement/internal/core/domain/model/customerorder"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/manufacturing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHandler struct {
	received []kernel.DomainEvent
	err      error
}

func (h *recordingHandler) Handle(_ context.Context, event kernel.DomainEvent) error {
	h.received = append(h.received, event)
	return h.err
}

func newTestBus() *eventbus.InMemoryEventBus {
	return eventbus.NewInMemoryEventBus(slog.New(slog.DiscardHandler))
}

func TestPublish_DeliversToSubscribersOfMatchingType(t *testing.T) {
	bus := newTestBus()

	statusHandler := &recordingHandler{}
	completionHandler := &recordingHandler{}
	bus.Subscribe(customerorder.OrderStatusUpdatedEventType, statusHandler)
	bus.Subscribe(manufacturing.OrderCompletedEventType, completionHandler)

	event := customerorder.NewOrderStatusUpdated(kernel.NewUUID(), "PLACED", "CONFIRMED")
	err := bus.Publish(t.Context(), event)
	require.NoError(t, err)

	require.Len(t, statusHandler.received, 1)
	assert.Equal(t, event, statusHandler.received[0])
	assert.Empty(t, completionHandler.received)
}

func TestPublish_DeliversToAllSubscribersOfSameType(t *testing.T) {
	bus := newTestBus()

	first := &recordingHandler{}
	second := &recordingHandler{}
	bus.Subscribe(customerorder.OrderCancelledEventType, first)
	bus.Subscribe(customerorder.OrderCancelledEventType, second)

	event := customerorder.NewOrderCancelled(kernel.NewUUID(), nil, "customer request")
	require.NoError(t, bus.Publish(t.Context(), event))

	assert.Len(t, first.received, 1)
	assert.Len(t, second.received, 1)
}

func TestPublish_NoSubscribers_IsSilentNoOp(t *testing.T) {
	bus := newTestBus()

	event := manufacturing.NewOrderCreated(kernel.NewUUID(), "PUMP-44", 5)
	require.NoError(t, bus.Publish(t.Context(), event))
}

func TestPublish_HandlerFailure_DoesNotStopDelivery(t *testing.T) {
	bus := newTestBus()

	failure := errors.New("handler exploded")
	failing := &recordingHandler{err: failure}
	healthy := &recordingHandler{}
	bus.Subscribe(customerorder.OrderStatusUpdatedEventType, failing)
	bus.Subscribe(customerorder.OrderStatusUpdatedEventType, healthy)

	event := customerorder.NewOrderStatusUpdated(kernel.NewUUID(), "PLACED", "CONFIRMED")
	err := bus.Publish(t.Context(), event)

	require.Error(t, err)
	assert.ErrorIs(t, err, failure)
	assert.Len(t, healthy.received, 1)
}

func TestPublish_MultipleEvents_RoutesEachByType(t *testing.T) {
	bus := newTestBus()

	statusHandler := &recordingHandler{}
	createdHandler := &recordingHandler{}
	bus.Subscribe(customerorder.OrderStatusUpdatedEventType, statusHandler)
	bus.Subscribe(manufacturing.OrderCreatedEventType, createdHandler)

	statusEvent := customerorder.NewOrderStatusUpdated(kernel.NewUUID(), "PLACED", "CONFIRMED")
	createdEvent := manufacturing.NewOrderCreated(kernel.NewUUID(), "PUMP-44", 5)

	require.NoError(t, bus.Publish(t.Context(), statusEvent, createdEvent))

	assert.Len(t, statusHandler.received, 1)
	assert.Len(t, createdHandler.received, 1)
}
