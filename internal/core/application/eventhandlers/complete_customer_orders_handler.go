package eventhandlers

import (
	"context"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/manufacturing"
	"ordermanagement/internal/core/ports"
)

// CompleteCustomerOrdersHandler moves every customer order linked to a
// finished manufacturing order into MANUFACTURING_COMPLETED. Orders that are
// not in MANUFACTURING_IN_PROGRESS are left untouched.
type CompleteCustomerOrdersHandler struct {
	uowFactory commands.CustomerOrderUoWFactory
	publisher  ports.EventPublisher
}

// NewCompleteCustomerOrdersHandler creates the completion fan-out subscriber.
func NewCompleteCustomerOrdersHandler(
	uowFactory commands.CustomerOrderUoWFactory,
	publisher ports.EventPublisher,
) *CompleteCustomerOrdersHandler {
	return &CompleteCustomerOrdersHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle reacts to manufacturing order completion.
func (h *CompleteCustomerOrdersHandler) Handle(ctx context.Context, event kernel.DomainEvent) error {
	completed, ok := event.(manufacturing.OrderCompleted)
	if !ok {
		return nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.CustomerOrderRepository()
	orders, err := repo.FindByManufacturingOrderID(ctx, completed.OrderID)
	if err != nil {
		return err
	}

	for _, order := range orders {
		before := order.Status()
		order.NotifyManufacturingCompleted()
		if order.Status() == before {
			continue
		}

		if err = repo.Update(ctx, order); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.Publish(ctx, uow.PullEvents()...)
}
