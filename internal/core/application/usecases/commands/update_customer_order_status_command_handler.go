package commands

import (
	"context"

	"ordermanagement/internal/core/ports"
)

// UpdateCustomerOrderStatusCommandHandler handles direct status updates on
// customer orders, surfacing invalid-transition errors to the caller.
type UpdateCustomerOrderStatusCommandHandler struct {
	uowFactory CustomerOrderUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateCustomerOrderStatusCommandHandler creates a handler for direct
// status updates.
func NewUpdateCustomerOrderStatusCommandHandler(
	uowFactory CustomerOrderUoWFactory,
	publisher ports.EventPublisher,
) UpdateCustomerOrderStatusCommandHandler {
	return UpdateCustomerOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status update command.
// Fails when the state machine forbids the requested move.
func (h *UpdateCustomerOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateCustomerOrderStatusCommand,
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

	repo := uow.CustomerOrderRepository()
	order, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = order.UpdateStatus(cmd.Status()); err != nil {
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
