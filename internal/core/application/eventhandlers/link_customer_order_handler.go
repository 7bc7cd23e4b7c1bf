package eventhandlers

import (
	"context"
	"errors"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/manufacturing"
	"ordermanagement/internal/core/ports"
	"ordermanagement/internal/pkg/errs"
)

// LinkCustomerOrderHandler records the correlation link on the customer order
// when a manufacturing order sharing its id enters the system. Manufacturing
// orders with no customer order counterpart are left alone, as is an order
// that already carries a link.
type LinkCustomerOrderHandler struct {
	uowFactory commands.CustomerOrderUoWFactory
	publisher  ports.EventPublisher
}

// NewLinkCustomerOrderHandler creates the link subscriber.
func NewLinkCustomerOrderHandler(
	uowFactory commands.CustomerOrderUoWFactory,
	publisher ports.EventPublisher,
) *LinkCustomerOrderHandler {
	return &LinkCustomerOrderHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle reacts to manufacturing order creation.
func (h *LinkCustomerOrderHandler) Handle(ctx context.Context, event kernel.DomainEvent) error {
	created, ok := event.(manufacturing.OrderCreated)
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
	order, err := repo.Get(ctx, created.OrderID)
	if err != nil {
		var notFoundErr *errs.ObjectNotFoundError
		if errors.As(err, &notFoundErr) {
			return nil
		}
		return err
	}

	if order.IsLinked() {
		return nil
	}

	if err = order.LinkManufacturingOrder(created.OrderID); err != nil {
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
