package commands_test

import (
	"testing"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/manufacturing"
	"ordermanagement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewChangeManufacturingOrderStatusCommand(t *testing.T) {
	t.Run("should create command", func(t *testing.T) {
		cmd, err := commands.NewChangeManufacturingOrderStatusCommand(kernel.NewUUID(), manufacturing.InProgress)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, manufacturing.InProgress, cmd.Status())
	})

	t.Run("should fail with invalid status", func(t *testing.T) {
		_, err := commands.NewChangeManufacturingOrderStatusCommand(kernel.NewUUID(), manufacturing.Unknown)
		require.Error(t, err)
	})
}

func TestChangeManufacturingOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	order := testManufacturingOrder(t)
	cmd, err := commands.NewChangeManufacturingOrderStatusCommand(order.ID(), manufacturing.InProgress)
	require.NoError(t, err)

	repo := new(MockManufacturingOrderRepository)
	uow := new(MockManufacturingOrderUoW)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ManufacturingOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
		repo.On("Update", mock.Anything, order).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("PullEvents").Return(order.PullEvents()).Once(),
		publisher.On("Publish", ctx, mock.Anything).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockManufacturingOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeManufacturingOrderStatusCommandHandler(factory, publisher)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.True(t, order.IsInProgress())
}

func TestChangeManufacturingOrderStatusCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := t.Context()
	order := testManufacturingOrder(t)
	cmd, err := commands.NewChangeManufacturingOrderStatusCommand(order.ID(), manufacturing.Completed)
	require.NoError(t, err)

	repo := new(MockManufacturingOrderRepository)
	uow := new(MockManufacturingOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ManufacturingOrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, order.ID()).Return(order, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockManufacturingOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	h := commands.NewChangeManufacturingOrderStatusCommandHandler(factory, publisher)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	repo.AssertNotCalled(t, "Update")
	publisher.AssertNotCalled(t, "Publish")
}
