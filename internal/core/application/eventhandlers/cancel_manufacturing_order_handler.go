package eventhandlers

import (
	"context"
	"errors"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/domain/model/customerorder"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/manufacturing"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/errs"
)

// CancelManufacturingOrderHandler propagates a customer order cancellation to
// the linked manufacturing order. The manufacturing order is resolved through
// the correlation field carried by the event, never through id conventions,
// so explicitly created pairs cancel just as well as auto-created ones.
type CancelManufacturingOrderHandler struct {
	uowFactory commands.ManufacturingOrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCancelManufacturingOrderHandler creates the cancel propagation subscriber.
func NewCancelManufacturingOrderHandler(
	uowFactory commands.ManufacturingOrderUoWFactory,
	publisher ports.EventPublisher,
) *CancelManufacturingOrderHandler {
	return &CancelManufacturingOrderHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle reacts to customer order cancellations. An unlinked order, a link
// pointing at a missing order, and a manufacturing order that already reached
// a terminal status are all successful no-ops.
func (h *CancelManufacturingOrderHandler) Handle(ctx context.Context, event kernel.DomainEvent) error {
	cancelled, ok := event.(customerorder.OrderCancelled)
	if !ok {
		return nil
	}

	if cancelled.ManufacturingOrderID == nil {
		return nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ManufacturingOrderRepository()
	order, err := repo.Get(ctx, *cancelled.ManufacturingOrderID)
	if err != nil {
		var notFoundErr *errs.ObjectNotFoundError
		if errors.As(err, &notFoundErr) {
			return nil
		}
		return err
	}

	if order.Status() != manufacturing.Pending && order.Status() != manufacturing.InProgress {
		return nil
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
