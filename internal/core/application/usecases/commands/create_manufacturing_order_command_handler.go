package commands

import (
	"context"

	"ordermanagement/internal/core/domain/model/manufacturing"
	"ordermanagement/internal/core/domain/services"
	"ordermanagement/internal/core/ports"
)

// CreateManufacturingOrderCommandHandler handles the business logic for
// putting an order into production. The schedule is validated by the
// ProductionScheduler domain service before the order is persisted.
type CreateManufacturingOrderCommandHandler struct {
	uowFactory ManufacturingOrderUoWFactory
	publisher  ports.EventPublisher
	scheduler  services.ProductionScheduler
}

// NewCreateManufacturingOrderCommandHandler creates a handler for
// manufacturing order creation.
func NewCreateManufacturingOrderCommandHandler(
	uowFactory ManufacturingOrderUoWFactory,
	publisher ports.EventPublisher,
	scheduler services.ProductionScheduler,
) CreateManufacturingOrderCommandHandler {
	return CreateManufacturingOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		scheduler:  scheduler,
	}
}

// Handle processes the creation command.
// Fails when the schedule cannot enter the production plan.
func (h *CreateManufacturingOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CreateManufacturingOrderCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	order, err := manufacturing.NewOrder(cmd.OrderID(), cmd.ProductSpec(), cmd.Timeline())
	if err != nil {
		return err
	}

	if err = h.scheduler.ValidateScheduling(order); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ManufacturingOrderRepository().Add(ctx, order); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.Publish(ctx, uow.PullEvents()...)
}
