package eventhandlers

import (
	"context"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/domain/model/customerorder"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/manufacturing"
	"ordermanagement/internal/core/ports"
)

// SyncCustomerOrdersHandler fans a manufacturing status change out to every
// customer order linked to that manufacturing order. Production starting
// moves confirmed orders into MANUFACTURING_IN_PROGRESS; a cancelled
// production run cancels the linked orders unless they already finished or
// cancelled on their own.
type SyncCustomerOrdersHandler struct {
	uowFactory commands.CustomerOrderUoWFactory
	publisher  ports.EventPublisher
}

// NewSyncCustomerOrdersHandler creates the status fan-out subscriber.
func NewSyncCustomerOrdersHandler(
	uowFactory commands.CustomerOrderUoWFactory,
	publisher ports.EventPublisher,
) *SyncCustomerOrdersHandler {
	return &SyncCustomerOrdersHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle reacts to manufacturing order status changes. Transitions other
// than into IN_PROGRESS or CANCELLED are ignored; the completion event has
// its own subscriber.
func (h *SyncCustomerOrdersHandler) Handle(ctx context.Context, event kernel.DomainEvent) error {
	statusChanged, ok := event.(manufacturing.OrderStatusChanged)
	if !ok {
		return nil
	}

	switch statusChanged.NewStatus {
	case manufacturing.InProgress.String():
		return h.fanOut(ctx, statusChanged.OrderID, func(order *customerorder.Order) {
			order.NotifyManufacturingStarted()
		})
	case manufacturing.Cancelled.String():
		return h.fanOut(ctx, statusChanged.OrderID, func(order *customerorder.Order) {
			if order.IsCancelled() || order.IsDelivered() {
				return
			}
			_ = order.Cancel("manufacturing order cancelled")
		})
	default:
		return nil
	}
}

// fanOut applies a guarded mutation to every linked customer order and
// persists only the orders the mutation actually changed.
func (h *SyncCustomerOrdersHandler) fanOut(
	ctx context.Context,
	manufacturingOrderID kernel.UUID,
	mutate func(*customerorder.Order),
) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerOrderRepository()
	orders, err := repo.FindByManufacturingOrderID(ctx, manufacturingOrderID)
	if err != nil {
		return err
	}

	for _, order := range orders {
		before := order.Status()
		mutate(order)
		if order.Status() == before {
			continue
		}

		if err = repo.Update(ctx, order); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.Publish(ctx, uow.PullEvents()...)
}
