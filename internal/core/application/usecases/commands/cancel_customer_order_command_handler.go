package commands

import (
	"context"

	"ordermanagement/internal/core/ports"
)

// CancelCustomerOrderCommandHandler handles the business logic for customer
// order cancellation. The published cancellation event carries the
// correlation link so the manufacturing context can propagate the
// cancellation to a linked production order.
type CancelCustomerOrderCommandHandler struct {
	uowFactory CustomerOrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCancelCustomerOrderCommandHandler creates a handler for order cancellation.
func NewCancelCustomerOrderCommandHandler(
	uowFactory CustomerOrderUoWFactory,
	publisher ports.EventPublisher,
) CancelCustomerOrderCommandHandler {
	return CancelCustomerOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command.
// Fails when the order does not exist or is already in a terminal status.
func (h *CancelCustomerOrderCommandHandler) Handle(ctx context.Context, cmd CancelCustomerOrderCommand) error {
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

	if err = order.Cancel(cmd.Reason()); err != nil {
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
