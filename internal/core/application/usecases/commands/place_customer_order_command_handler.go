package commands

import (
	"context"

	"ordermanagement/internal/core/domain/model/customerorder"
	"ordermanagement/internal/core/ports"
)

// PlaceCustomerOrderCommandHandler handles the business logic for placing
// customer orders. The order total is derived from the items, the order
// starts in PLACED status, and the placement event is published once the
// transaction committed.
type PlaceCustomerOrderCommandHandler struct {
	uowFactory CustomerOrderUoWFactory
	publisher  ports.EventPublisher
}

// NewPlaceCustomerOrderCommandHandler creates a handler for order placement.
// Requires a CustomerOrderUoWFactory for transactional persistence and a
// publisher for committed domain events.
func NewPlaceCustomerOrderCommandHandler(
	uowFactory CustomerOrderUoWFactory,
	publisher ports.EventPublisher,
) PlaceCustomerOrderCommandHandler {
	return PlaceCustomerOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the order placement command.
func (h *PlaceCustomerOrderCommandHandler) Handle(ctx context.Context, cmd PlaceCustomerOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	order, err := customerorder.PlaceOrder(cmd.OrderID(), cmd.CustomerInfo(), cmd.Items())
	if err != nil {
		return err
	}

	if err = uow.CustomerOrderRepository().Add(ctx, order); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.Publish(ctx, uow.PullEvents()...)
}
