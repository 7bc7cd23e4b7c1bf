package eventhandlers_test

import (
	"testing"
	"time"

	"ordermanagement/internal/core/application/eventhandlers"
	"ordermanagement/internal/core/domain/model/customerorder"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/manufacturing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompletionHandler_InProgressOrders_MoveToManufacturingCompleted(t *testing.T) {
	ctx := t.Context()
	manufacturingOrderID := kernel.NewUUID()
	inProgress := linkedCustomerOrder(t, manufacturingOrderID)
	event := manufacturing.NewOrderCompleted(manufacturingOrderID, time.Now())

	repo := new(MockCustomerOrderRepository)
	uow := new(MockCustomerOrderUoW)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerOrderRepository").Return(repo).Once(),
		repo.On("FindByManufacturingOrderID", mock.Anything, manufacturingOrderID).
			Return([]*customerorder.Order{inProgress}, nil).Once(),
		repo.On("Update", mock.Anything, inProgress).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("PullEvents").Return(inProgress.PullEvents()).Once(),
		publisher.On("Publish", ctx, mock.Anything).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := eventhandlers.NewCompleteCustomerOrdersHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, event))

	assert.Equal(t, customerorder.ManufacturingCompleted, inProgress.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCompletionHandler_CancelledOrder_IsLeftUntouched(t *testing.T) {
	ctx := t.Context()
	manufacturingOrderID := kernel.NewUUID()
	cancelled := linkedCustomerOrder(t, manufacturingOrderID)
	require.NoError(t, cancelled.Cancel("customer request"))
	cancelled.PullEvents()
	event := manufacturing.NewOrderCompleted(manufacturingOrderID, time.Now())

	repo := new(MockCustomerOrderRepository)
	uow := new(MockCustomerOrderUoW)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerOrderRepository").Return(repo).Once(),
		repo.On("FindByManufacturingOrderID", mock.Anything, manufacturingOrderID).
			Return([]*customerorder.Order{cancelled}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("PullEvents").Return(nil).Once(),
		publisher.On("Publish", ctx, mock.Anything).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := eventhandlers.NewCompleteCustomerOrdersHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, event))

	assert.Equal(t, customerorder.Cancelled, cancelled.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCompletionHandler_ForeignEventType_IsIgnored(t *testing.T) {
	factory := new(MockCustomerOrderUoWFactory)
	publisher := new(MockEventPublisher)
	h := eventhandlers.NewCompleteCustomerOrdersHandler(factory, publisher)

	event := customerorder.NewOrderStatusUpdated(kernel.NewUUID(), "PLACED", "CONFIRMED")
	require.NoError(t, h.Handle(t.Context(), event))

	factory.AssertNotCalled(t, "Create")
}
