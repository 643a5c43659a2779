package commands_test

import (
	"errors"
	"testing"

	"foodrun/internal/core/application/usecases/commands"
	"foodrun/internal/core/domain/model/order"
	"foodrun/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testPendingOrder(t *testing.T, id int64) *order.Order {
	t.Helper()
	item, err := order.NewItem("Pizza Place", "Pizza", "Margherita", mustMoney(t, 12), 1)
	require.NoError(t, err)
	aggregate, err := order.NewOrder(
		mustOrderID(t, id), "alice", "0123456789", item, "12 Elm St",
		order.PaymentCash, mustMoney(t, 0))
	require.NoError(t, err)
	return aggregate
}

func TestNewClaimOrderCommand_ValidInput(t *testing.T) {
	id := mustOrderID(t, 7)
	cmd, err := commands.NewClaimOrderCommand(id, "bob")
	require.NoError(t, err)
	assert.True(t, id.IsEqual(cmd.OrderID()))
	assert.Equal(t, "bob", cmd.Driver())
}

func TestNewClaimOrderCommand_EmptyDriver(t *testing.T) {
	_, err := commands.NewClaimOrderCommand(mustOrderID(t, 7), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDriverIsRequired)
}

func TestClaimOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := testPendingOrder(t, 7)

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

	h := commands.NewClaimOrderCommandHandler(factory)
	cmd, err := commands.NewClaimOrderCommand(mustOrderID(t, 7), "bob")
	require.NoError(t, err)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Claimed, aggregate.Status())
	require.NotNil(t, aggregate.Driver())
	assert.Equal(t, "bob", *aggregate.Driver())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestClaimOrderCommandHandler_Handle_AlreadyClaimed(t *testing.T) {
	ctx := t.Context()
	aggregate := testPendingOrder(t, 7)
	require.NoError(t, aggregate.Claim("carol"))

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

	h := commands.NewClaimOrderCommandHandler(factory)
	cmd, err := commands.NewClaimOrderCommand(mustOrderID(t, 7), "bob")
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)

	// first claimant keeps the order
	require.NotNil(t, aggregate.Driver())
	assert.Equal(t, "carol", *aggregate.Driver())
}

func TestClaimOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, mustOrderID(t, 99)).
			Return(nil, errs.NewObjectNotFoundError("order", 99)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewClaimOrderCommandHandler(factory)
	cmd, err := commands.NewClaimOrderCommand(mustOrderID(t, 99), "bob")
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestClaimOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()

	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("lock held")).Once(),
	)

	h := commands.NewClaimOrderCommandHandler(factory)
	cmd, err := commands.NewClaimOrderCommand(mustOrderID(t, 7), "bob")
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)
	require.Error(t, err)
}
