package commands

import (
	"context"
)

// DeleteManufacturingOrderCommandHandler handles administrative deletion of
// manufacturing orders. Nothing is published: deletion is outside the
// regular lifecycle and correlated customer orders keep their history.
type DeleteManufacturingOrderCommandHandler struct {
	uowFactory ManufacturingOrderUoWFactory
}

// NewDeleteManufacturingOrderCommandHandler creates a handler for
// administrative deletion.
func NewDeleteManufacturingOrderCommandHandler(
	uowFactory ManufacturingOrderUoWFactory,
) DeleteManufacturingOrderCommandHandler {
	return DeleteManufacturingOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
// Fails with a not-found error when no such order is stored.
func (h *DeleteManufacturingOrderCommandHandler) Handle(
	ctx context.Context,
	cmd DeleteManufacturingOrderCommand,
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

	if err := uow.ManufacturingOrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
