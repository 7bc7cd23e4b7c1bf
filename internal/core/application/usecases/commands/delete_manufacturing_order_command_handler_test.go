package commands_test

import (
	"testing"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteManufacturingOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteManufacturingOrderCommand(id)
	require.NoError(t, err)

	repo := new(MockManufacturingOrderRepository)
	uow := new(MockManufacturingOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ManufacturingOrderRepository").Return(repo).Once(),
		repo.On("Delete", mock.Anything, id).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockManufacturingOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteManufacturingOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteManufacturingOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteManufacturingOrderCommand(id)
	require.NoError(t, err)

	repo := new(MockManufacturingOrderRepository)
	uow := new(MockManufacturingOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ManufacturingOrderRepository").Return(repo).Once(),
		repo.On("Delete", mock.Anything, id).Return(errs.NewObjectNotFoundError("id", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockManufacturingOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteManufacturingOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
