package commands

import (
	"context"

	"ordermanagement/internal/core/ports"
)

// CancelManufacturingOrderCommandHandler handles abandoning production on a
// manufacturing order.
type CancelManufacturingOrderCommandHandler struct {
	uowFactory ManufacturingOrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCancelManufacturingOrderCommandHandler creates a handler for cancelling
// production.
func NewCancelManufacturingOrderCommandHandler(
	uowFactory ManufacturingOrderUoWFactory,
	publisher ports.EventPublisher,
) CancelManufacturingOrderCommandHandler {
	return CancelManufacturingOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command.
func (h *CancelManufacturingOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CancelManufacturingOrderCommand,
) error {
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

	repo := uow.ManufacturingOrderRepository()
	order, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = order.Cancel(); err != nil {
		return err
	}

	if err = repo.Update(ctx, order); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.Publish(ctx, uow.PullEvents()...)
}
