package commands

import (
	"context"

	"ordermanagement/internal/core/ports"
)

// CompleteManufacturingOrderCommandHandler handles finishing production on a
// manufacturing order. The published completion event fans out to every
// correlated customer order.
type CompleteManufacturingOrderCommandHandler struct {
	uowFactory ManufacturingOrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCompleteManufacturingOrderCommandHandler creates a handler for
// completing production.
func NewCompleteManufacturingOrderCommandHandler(
	uowFactory ManufacturingOrderUoWFactory,
	publisher ports.EventPublisher,
) CompleteManufacturingOrderCommandHandler {
	return CompleteManufacturingOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the completion command.
func (h *CompleteManufacturingOrderCommandHandler) Handle(
	ctx context.Context,
	cmd CompleteManufacturingOrderCommand,
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

	if err = order.Complete(); err != nil {
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
