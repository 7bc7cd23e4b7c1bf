package commands

import (
	"context"
)

// LinkManufacturingOrderCommandHandler handles correlating a customer order
// with the manufacturing order producing it. No event is published: linking
// is a bookkeeping operation, and status changes arrive separately through
// the production events.
type LinkManufacturingOrderCommandHandler struct {
	uowFactory CustomerOrderUoWFactory
}

// NewLinkManufacturingOrderCommandHandler creates a handler for linking orders.
func NewLinkManufacturingOrderCommandHandler(
	uowFactory CustomerOrderUoWFactory,
) LinkManufacturingOrderCommandHandler {
	return LinkManufacturingOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the link command.
func (h *LinkManufacturingOrderCommandHandler) Handle(ctx context.Context, cmd LinkManufacturingOrderCommand) error {
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

	repo := uow.CustomerOrderRepository()
	order, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = order.LinkManufacturingOrder(cmd.ManufacturingOrderID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, order); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
