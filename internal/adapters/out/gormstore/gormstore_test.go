package gormstore_test

import (
	"path/filepath"
	"testing"

	"foodrun/internal/adapters/out/gormstore"
	"foodrun/internal/core/domain/model/account"
	"foodrun/internal/core/domain/model/kernel"
	"foodrun/internal/core/domain/model/order"
	"foodrun/internal/core/ports"
	"foodrun/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFactory(t *testing.T) *gormstore.GormUnitOfWorkFactory {
	t.Helper()
	db, err := gormstore.OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return gormstore.NewGormUnitOfWorkFactory(db)
}

func begin(t *testing.T, factory *gormstore.GormUnitOfWorkFactory) ports.UnitOfWork {
	t.Helper()
	uow := factory.Create()
	require.NoError(t, uow.Begin(t.Context()))
	return uow
}

func newOrder(t *testing.T, id int64, customer string) *order.Order {
	t.Helper()
	price, err := kernel.NewMoneyFromFloat(10.0)
	require.NoError(t, err)
	item, err := order.NewItem("Sushi Bar", "Sushi Rolls", "California Roll", price, 1)
	require.NoError(t, err)
	orderID, err := kernel.NewOrderID(id)
	require.NoError(t, err)
	aggregate, err := order.NewOrder(orderID, customer, "0123456789", item,
		"12 Elm St", order.PaymentCash, kernel.ZeroMoney())
	require.NoError(t, err)
	return aggregate
}

func TestGormUnitOfWork_CommitPersists(t *testing.T) {
	ctx := t.Context()
	factory := newTestFactory(t)

	uow := begin(t, factory)
	require.NoError(t, uow.OrderRepository().Add(ctx, newOrder(t, 1, "alice")))
	require.NoError(t, uow.Commit(ctx))

	reader := begin(t, factory)
	defer func() { _ = reader.Rollback(ctx) }()

	id, err := kernel.NewOrderID(1)
	require.NoError(t, err)
	aggregate, err := reader.OrderRepository().Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice", aggregate.Customer())
	assert.Equal(t, order.Pending, aggregate.Status())
}

func TestGormUnitOfWork_RollbackDiscards(t *testing.T) {
	ctx := t.Context()
	factory := newTestFactory(t)

	uow := begin(t, factory)
	require.NoError(t, uow.OrderRepository().Add(ctx, newOrder(t, 1, "alice")))
	require.NoError(t, uow.Rollback(ctx))

	reader := begin(t, factory)
	defer func() { _ = reader.Rollback(ctx) }()
	pending, err := reader.OrderRepository().GetAllPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestGormOrderRepository_NextIDAndListing(t *testing.T) {
	ctx := t.Context()
	factory := newTestFactory(t)

	uow := begin(t, factory)
	repo := uow.OrderRepository()

	id, err := repo.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id.Int64())

	require.NoError(t, repo.Add(ctx, newOrder(t, 1, "alice")))
	require.NoError(t, repo.Add(ctx, newOrder(t, 2, "bob")))
	claimed := newOrder(t, 3, "alice")
	require.NoError(t, claimed.Claim("dave"))
	require.NoError(t, repo.Add(ctx, claimed))
	require.NoError(t, uow.Commit(ctx))

	reader := begin(t, factory)
	defer func() { _ = reader.Rollback(ctx) }()
	repo = reader.OrderRepository()

	id, err = repo.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), id.Int64())

	mine, err := repo.GetByCustomer(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, int64(3), mine[0].ID().Int64())
	assert.Equal(t, int64(1), mine[1].ID().Int64())

	pending, err := repo.GetAllPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, int64(1), pending[0].ID().Int64())

	active, err := repo.GetAllClaimedBy(ctx, "dave")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, int64(3), active[0].ID().Int64())
}

func TestGormOrderRepository_UpdateLifecycle(t *testing.T) {
	ctx := t.Context()
	factory := newTestFactory(t)

	uow := begin(t, factory)
	require.NoError(t, uow.OrderRepository().Add(ctx, newOrder(t, 1, "alice")))
	require.NoError(t, uow.Commit(ctx))

	second := begin(t, factory)
	id, err := kernel.NewOrderID(1)
	require.NoError(t, err)
	aggregate, err := second.OrderRepository().Get(ctx, id)
	require.NoError(t, err)
	require.NoError(t, aggregate.Claim("dave"))
	require.NoError(t, second.OrderRepository().Update(ctx, aggregate))
	require.NoError(t, second.Commit(ctx))

	reader := begin(t, factory)
	defer func() { _ = reader.Rollback(ctx) }()
	restored, err := reader.OrderRepository().Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, order.Claimed, restored.Status())
	require.NotNil(t, restored.Driver())
	assert.Equal(t, "dave", *restored.Driver())
}

func TestGormRatingRepository_Upsert(t *testing.T) {
	ctx := t.Context()
	factory := newTestFactory(t)

	five, err := kernel.NewScore(5)
	require.NoError(t, err)
	three, err := kernel.NewScore(3)
	require.NoError(t, err)

	uow := begin(t, factory)
	ratings := uow.RatingRepository()

	restaurant, err := ratings.GetRestaurant(ctx, "Sushi Bar")
	require.NoError(t, err)
	require.NoError(t, restaurant.Record(five))
	require.NoError(t, ratings.SaveRestaurant(ctx, restaurant))
	require.NoError(t, uow.Commit(ctx))

	second := begin(t, factory)
	ratings = second.RatingRepository()
	restaurant, err = ratings.GetRestaurant(ctx, "Sushi Bar")
	require.NoError(t, err)
	require.NoError(t, restaurant.Record(three))
	require.NoError(t, ratings.SaveRestaurant(ctx, restaurant))
	require.NoError(t, second.Commit(ctx))

	reader := begin(t, factory)
	defer func() { _ = reader.Rollback(ctx) }()
	restored, err := reader.RatingRepository().GetRestaurant(ctx, "Sushi Bar")
	require.NoError(t, err)
	assert.Equal(t, 8, restored.Sum())
	assert.Equal(t, 2, restored.Count())
	avg, ok := restored.Average()
	require.True(t, ok)
	assert.Equal(t, "4", avg.String())
}

func TestGormUserRepository_Duplicate(t *testing.T) {
	ctx := t.Context()
	factory := newTestFactory(t)

	user, err := account.NewUser("alice", "$2a$10$hash", "0123456789", account.RoleCustomer)
	require.NoError(t, err)

	uow := begin(t, factory)
	require.NoError(t, uow.UserRepository().Add(ctx, user))
	require.NoError(t, uow.Commit(ctx))

	second := begin(t, factory)
	defer func() { _ = second.Rollback(ctx) }()

	err = second.UserRepository().Add(ctx, user)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	restored, err := second.UserRepository().Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, account.RoleCustomer, restored.Role())
}
