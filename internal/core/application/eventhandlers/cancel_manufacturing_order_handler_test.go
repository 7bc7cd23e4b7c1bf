package eventhandlers_test

import (
	"testing"

	"ordermanagement/internal/core/application/eventhandlers"
	"ordermanagement/internal/core/domain/model/customerorder"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/manufacturing"
	"ordermanagement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelPropagationHandler_LinkedPendingOrder_IsCancelled(t *testing.T) {
	ctx := t.Context()
	manufacturingOrderID := kernel.NewUUID()
	order := testManufacturingOrder(t, manufacturingOrderID)
	event := customerorder.NewOrderCancelled(kernel.NewUUID(), &manufacturingOrderID, "customer request")

	repo := new(MockManufacturingOrderRepository)
	uow := new(MockManufacturingOrderUoW)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ManufacturingOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, manufacturingOrderID).Return(order, nil).Once(),
		repo.On("Update", mock.Anything, order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("PullEvents").Return(order.PullEvents()).Once(),
		publisher.On("Publish", ctx, mock.Anything).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockManufacturingOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := eventhandlers.NewCancelManufacturingOrderHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, event))

	assert.Equal(t, manufacturing.Cancelled, order.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCancelPropagationHandler_UnlinkedOrder_IsNoOp(t *testing.T) {
	factory := new(MockManufacturingOrderUoWFactory)
	publisher := new(MockEventPublisher)
	h := eventhandlers.NewCancelManufacturingOrderHandler(factory, publisher)

	event := customerorder.NewOrderCancelled(kernel.NewUUID(), nil, "customer request")
	require.NoError(t, h.Handle(t.Context(), event))

	factory.AssertNotCalled(t, "Create")
}

func TestCancelPropagationHandler_MissingManufacturingOrder_IsNoOp(t *testing.T) {
	ctx := t.Context()
	manufacturingOrderID := kernel.NewUUID()
	event := customerorder.NewOrderCancelled(kernel.NewUUID(), &manufacturingOrderID, "customer request")

	repo := new(MockManufacturingOrderRepository)
	uow := new(MockManufacturingOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ManufacturingOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, manufacturingOrderID).
			Return(nil, errs.NewObjectNotFoundError("manufacturing order", manufacturingOrderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockManufacturingOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	h := eventhandlers.NewCancelManufacturingOrderHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, event))

	uow.AssertNotCalled(t, "Commit", mock.Anything)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestCancelPropagationHandler_TerminalManufacturingOrder_IsNoOp(t *testing.T) {
	ctx := t.Context()
	manufacturingOrderID := kernel.NewUUID()
	order := testManufacturingOrder(t, manufacturingOrderID)
	require.NoError(t, order.Complete())
	order.PullEvents()
	event := customerorder.NewOrderCancelled(kernel.NewUUID(), &manufacturingOrderID, "customer request")

	repo := new(MockManufacturingOrderRepository)
	uow := new(MockManufacturingOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ManufacturingOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, manufacturingOrderID).Return(order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockManufacturingOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	h := eventhandlers.NewCancelManufacturingOrderHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, event))

	assert.Equal(t, manufacturing.Completed, order.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
