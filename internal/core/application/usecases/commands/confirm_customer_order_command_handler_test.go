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

func TestNewConfirmCustomerOrderCommand(t *testing.T) {
	t.Run("should create command", func(t *testing.T) {
		id := kernel.NewUUID()
		cmd, err := commands.NewConfirmCustomerOrderCommand(id)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.OrderID().IsEqual(id))
	})

	t.Run("should fail with invalid id", func(t *testing.T) {
		var invalidID kernel.UUID
		_, err := commands.NewConfirmCustomerOrderCommand(invalidID)
		require.Error(t, err)
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.ConfirmCustomerOrderCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrConfirmCustomerOrderCommandIsNotConstructed)
	})
}

func TestConfirmCustomerOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	order := testCustomerOrder(t)
	cmd, err := commands.NewConfirmCustomerOrderCommand(order.ID())
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

	h := commands.NewConfirmCustomerOrderCommandHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, customerorder.Confirmed, order.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestConfirmCustomerOrderCommandHandler_Handle_DuplicateConfirmIsNoOp(t *testing.T) {
	ctx := t.Context()
	order := testCustomerOrder(t)
	order.Confirm()
	order.PullEvents()
	cmd, err := commands.NewConfirmCustomerOrderCommand(order.ID())
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
		uow.On("PullEvents").Return(nil).Once(),
		publisher.On("Publish", ctx, mock.Anything).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmCustomerOrderCommandHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, customerorder.Confirmed, order.Status())
}

func TestConfirmCustomerOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewConfirmCustomerOrderCommand(id)
	require.NoError(t, err)

	repo := new(MockCustomerOrderRepository)
	uow := new(MockCustomerOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CustomerOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("id", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCustomerOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	h := commands.NewConfirmCustomerOrderCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	publisher.AssertNotCalled(t, "Publish")
}
