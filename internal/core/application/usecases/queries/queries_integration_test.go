package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"foodrun/internal/adapters/out/jsonstore"
	"foodrun/internal/core/application/usecases/queries"
	"foodrun/internal/core/domain/model/account"
	"foodrun/internal/core/domain/model/kernel"
	"foodrun/internal/core/domain/model/order"
	"foodrun/internal/core/ports"
	"foodrun/internal/pkg/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFactory(t *testing.T) ports.UnitOfWorkFactory {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store, err := jsonstore.NewStore(t.TempDir(), logger)
	require.NoError(t, err)

	return jsonstore.NewUnitOfWorkFactory(store)
}

// seed runs mutations in a committed unit of work.
func seed(t *testing.T, factory ports.UnitOfWorkFactory, mutate func(uow ports.UnitOfWork)) {
	t.Helper()

	ctx := context.Background()
	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	mutate(uow)
	require.NoError(t, uow.Commit(ctx))
}

func seedUser(t *testing.T, factory ports.UnitOfWorkFactory, name, password string, role account.Role) {
	t.Helper()

	hash, err := security.HashPassword(password)
	require.NoError(t, err)
	user, err := account.NewUser(name, hash, "0123456789", role)
	require.NoError(t, err)

	seed(t, factory, func(uow ports.UnitOfWork) {
		require.NoError(t, uow.UserRepository().Add(context.Background(), user))
	})
}

func seedClaimedOrder(t *testing.T, factory ports.UnitOfWorkFactory, id int64, driver string) {
	t.Helper()

	orderID, err := kernel.NewOrderID(id)
	require.NoError(t, err)
	price, err := kernel.NewMoneyFromFloat(12.0)
	require.NoError(t, err)
	item, err := order.NewItem("Pizza Place", "Pizza", "Margherita", price, 1)
	require.NoError(t, err)
	aggregate, err := order.NewOrder(
		orderID, "alice", "0123456789", item, "12 Main St", order.PaymentCash, kernel.ZeroMoney())
	require.NoError(t, err)
	require.NoError(t, aggregate.Claim(driver))

	seed(t, factory, func(uow ports.UnitOfWork) {
		require.NoError(t, uow.OrderRepository().Add(context.Background(), aggregate))
	})
}

func TestGetClaimedOrdersQueryHandler_FormatsPhone(t *testing.T) {
	factory := newTestFactory(t)
	seedClaimedOrder(t, factory, 1, "bob")
	handler := queries.NewGetClaimedOrdersQueryHandler(factory)

	query, err := queries.NewGetClaimedOrdersQuery("bob")
	require.NoError(t, err)

	orders, err := handler.Handle(context.Background(), query)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "012-3456789", orders[0].Phone)
}

func TestGetCustomerOrdersQueryHandler_KeepsRawPhone(t *testing.T) {
	factory := newTestFactory(t)
	seedClaimedOrder(t, factory, 1, "bob")
	handler := queries.NewGetCustomerOrdersQueryHandler(factory)

	query, err := queries.NewGetCustomerOrdersQuery("alice")
	require.NoError(t, err)

	orders, err := handler.Handle(context.Background(), query)

	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "0123456789", orders[0].Phone)
}

func TestLoginQueryHandler(t *testing.T) {
	factory := newTestFactory(t)
	seedUser(t, factory, "alice", "hunter2", account.RoleCustomer)
	handler := queries.NewLoginQueryHandler(factory)

	t.Run("Success", func(t *testing.T) {
		query, err := queries.NewLoginQuery("alice", "hunter2", account.RoleCustomer)
		require.NoError(t, err)

		resp, err := handler.Handle(context.Background(), query)

		require.NoError(t, err)
		assert.Equal(t, "alice", resp.Name)
		assert.Equal(t, account.RoleCustomer, resp.Role)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		query, err := queries.NewLoginQuery("alice", "wrong", account.RoleCustomer)
		require.NoError(t, err)

		_, err = handler.Handle(context.Background(), query)

		assert.ErrorIs(t, err, queries.ErrInvalidCredentials)
	})

	t.Run("WrongRole", func(t *testing.T) {
		query, err := queries.NewLoginQuery("alice", "hunter2", account.RoleDriver)
		require.NoError(t, err)

		_, err = handler.Handle(context.Background(), query)

		assert.ErrorIs(t, err, queries.ErrInvalidCredentials)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		query, err := queries.NewLoginQuery("nobody", "hunter2", account.RoleCustomer)
		require.NoError(t, err)

		_, err = handler.Handle(context.Background(), query)

		assert.ErrorIs(t, err, queries.ErrInvalidCredentials)
	})
}

func TestGetDriverRatingQueryHandler(t *testing.T) {
	t.Run("NeverRated", func(t *testing.T) {
		factory := newTestFactory(t)
		handler := queries.NewGetDriverRatingQueryHandler(factory)

		query, err := queries.NewGetDriverRatingQuery("bob")
		require.NoError(t, err)

		resp, err := handler.Handle(context.Background(), query)

		require.NoError(t, err)
		assert.False(t, resp.Rated)
		assert.Zero(t, resp.Count)
	})

	t.Run("AveragesRecordedScores", func(t *testing.T) {
		factory := newTestFactory(t)
		seed(t, factory, func(uow ports.UnitOfWork) {
			aggregate, err := uow.RatingRepository().GetDriver(context.Background(), "bob")
			require.NoError(t, err)
			require.NoError(t, aggregate.Record(mustScore(t, 5), mustScore(t, 4), mustScore(t, 3)))
			require.NoError(t, aggregate.Record(mustScore(t, 3), mustScore(t, 2), mustScore(t, 1)))
			require.NoError(t, uow.RatingRepository().SaveDriver(context.Background(), aggregate))
		})
		handler := queries.NewGetDriverRatingQueryHandler(factory)

		query, err := queries.NewGetDriverRatingQuery("bob")
		require.NoError(t, err)

		resp, err := handler.Handle(context.Background(), query)

		require.NoError(t, err)
		assert.True(t, resp.Rated)
		assert.Equal(t, 2, resp.Count)
		assert.Equal(t, "4", resp.Food.String())
		assert.Equal(t, "3", resp.Speed.String())
		assert.Equal(t, "2", resp.Service.String())
	})
}

func mustScore(t *testing.T, value int) kernel.Score {
	t.Helper()

	score, err := kernel.NewScore(value)
	require.NoError(t, err)
	return score
}
