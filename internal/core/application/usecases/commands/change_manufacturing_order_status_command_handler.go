package commands

import (
	"context"

	"ordermanagement/internal/core/ports"
)

// ChangeManufacturingOrderStatusCommandHandler handles direct production
// status changes, surfacing invalid-transition errors to the caller.
type ChangeManufacturingOrderStatusCommandHandler struct {
	uowFactory ManufacturingOrderUoWFactory
	publisher  ports.EventPublisher
}

// NewChangeManufacturingOrderStatusCommandHandler creates a handler for
// production status changes.
func NewChangeManufacturingOrderStatusCommandHandler(
	uowFactory ManufacturingOrderUoWFactory,
	publisher ports.EventPublisher,
) ChangeManufacturingOrderStatusCommandHandler {
	return ChangeManufacturingOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status change command.
func (h *ChangeManufacturingOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd ChangeManufacturingOrderStatusCommand,
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

	if err = order.ChangeStatus(cmd.Status()); err != nil {
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
