package commands_test

import (
	"testing"

	"foodrun/internal/core/application/usecases/commands"
	"foodrun/internal/core/domain/model/order"
	"foodrun/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testClaimedOrder(t *testing.T, id int64, driver string) *order.Order {
	t.Helper()
	aggregate := testPendingOrder(t, id)
	require.NoError(t, aggregate.Claim(driver))
	return aggregate
}

func TestCompleteOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := testClaimedOrder(t, 7, "bob")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, mustOrderID(t, 7)).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory)
	cmd, err := commands.NewCompleteOrderCommand(mustOrderID(t, 7), "bob")
	require.NoError(t, err)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Completed, aggregate.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteOrderCommandHandler_Handle_WrongDriver(t *testing.T) {
	ctx := t.Context()
	aggregate := testClaimedOrder(t, 7, "bob")

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, mustOrderID(t, 7)).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory)
	cmd, err := commands.NewCompleteOrderCommand(mustOrderID(t, 7), "mallory")
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, order.Claimed, aggregate.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCompleteOrderCommandHandler_Handle_NotClaimed(t *testing.T) {
	ctx := t.Context()
	aggregate := testPendingOrder(t, 7)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, mustOrderID(t, 7)).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteOrderCommandHandler(factory)
	cmd, err := commands.NewCompleteOrderCommand(mustOrderID(t, 7), "bob")
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, order.Pending, aggregate.Status())
}
