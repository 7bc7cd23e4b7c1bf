package commands_test

import (
	"testing"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/domain/model/customerorder"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateCustomerOrderStatusCommand(t *testing.T) {
	t.Run("should create command", func(t *testing.T) {
		cmd, err := commands.NewUpdateCustomerOrderStatusCommand(kernel.NewUUID(), customerorder.Confirmed)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, customerorder.Confirmed, cmd.Status())
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		_, err := commands.NewUpdateCustomerOrderStatusCommand(kernel.NewUUID(), customerorder.Unknown)
		require.Error(t, err)
	})
}

func TestUpdateCustomerOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	order := testCustomerOrder(t)
	cmd, err := commands.NewUpdateCustomerOrderStatusCommand(order.ID(), customerorder.Confirmed)
	require.NoError(t, err)

	repo := new(MockCustomerOrderRepository)
	uow := new(MockCustomerOrderUoW)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
		repo.On("Update", mock.Anything, order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("PullEvents").Return(order.PullEvents()).Once(),
		publisher.On("Publish", ctx, mock.Anything).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCustomerOrderStatusCommandHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, customerorder.Confirmed, order.Status())
}

func TestUpdateCustomerOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	order := testCustomerOrder(t)
	cmd, err := commands.NewUpdateCustomerOrderStatusCommand(order.ID(), customerorder.Shipped)
	require.NoError(t, err)

	repo := new(MockCustomerOrderRepository)
	uow := new(MockCustomerOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	h := commands.NewUpdateCustomerOrderStatusCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, customerorder.Placed, order.Status())
	repo.AssertNotCalled(t, "Update")
	publisher.AssertNotCalled(t, "Publish")
}
