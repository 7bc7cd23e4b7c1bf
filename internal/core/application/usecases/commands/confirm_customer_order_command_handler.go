package commands

import (
	"context"

	"ordermanagement/internal/core/ports"
)

// ConfirmCustomerOrderCommandHandler handles the business logic for order
// confirmation. Confirmation triggers the downstream manufacturing
// auto-creation through the published status event.
type ConfirmCustomerOrderCommandHandler struct {
	uowFactory CustomerOrderUoWFactory
	publisher  ports.EventPublisher
}

// NewConfirmCustomerOrderCommandHandler creates a handler for order confirmation.
func NewConfirmCustomerOrderCommandHandler(
	uowFactory CustomerOrderUoWFactory,
	publisher ports.EventPublisher,
) ConfirmCustomerOrderCommandHandler {
	return ConfirmCustomerOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the confirmation command. A duplicate confirmation
// leaves the order untouched and publishes nothing.
func (h *ConfirmCustomerOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmCustomerOrderCommand) error {
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

	order.Confirm()

	if err = repo.Update(ctx, order); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.Publish(ctx, uow.PullEvents()...)
}
