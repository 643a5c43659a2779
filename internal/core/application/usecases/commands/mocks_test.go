package commands_test

import (
	"context"
	"testing"

	"foodrun/internal/core/application/usecases/commands"
	"foodrun/internal/core/domain/model/account"
	"foodrun/internal/core/domain/model/cart"
	"foodrun/internal/core/domain/model/kernel"
	"foodrun/internal/core/domain/model/order"
	"foodrun/internal/core/domain/model/rating"
	"foodrun/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) NextID(ctx context.Context) (kernel.OrderID, error) {
	args := m.Called(ctx)
	return args.Get(0).(kernel.OrderID), args.Error(1)
}
func (m *MockOrderRepository) GetByCustomer(ctx context.Context, customer string) ([]*order.Order, error) {
	args := m.Called(ctx, customer)
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllPending(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetAllClaimedBy(ctx context.Context, driver string) ([]*order.Order, error) {
	args := m.Called(ctx, driver)
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockRatingRepository struct{ mock.Mock }

func (m *MockRatingRepository) GetRestaurant(ctx context.Context, name string) (*rating.RestaurantRating, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rating.RestaurantRating), args.Error(1)
}
func (m *MockRatingRepository) GetDriver(ctx context.Context, name string) (*rating.DriverRating, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rating.DriverRating), args.Error(1)
}
func (m *MockRatingRepository) SaveRestaurant(ctx context.Context, aggregate *rating.RestaurantRating) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}
func (m *MockRatingRepository) SaveDriver(ctx context.Context, aggregate *rating.DriverRating) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, user *account.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepository) Get(ctx context.Context, name string) (*account.User, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.User), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockOrderUserUoW struct{ MockOrderUoW }

func (m *MockOrderUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockOrderUserUoWFactory struct{ mock.Mock }

func (m *MockOrderUserUoWFactory) Create() commands.OrderUserUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUserUoW)
}

type MockOrderRatingUoW struct{ MockOrderUoW }

func (m *MockOrderRatingUoW) RatingRepository() ports.RatingRepository {
	args := m.Called()
	return args.Get(0).(ports.RatingRepository)
}

type MockOrderRatingUoWFactory struct{ mock.Mock }

func (m *MockOrderRatingUoWFactory) Create() commands.OrderRatingUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderRatingUoW)
}

type MockUserUoW struct{ mock.Mock }

func (m *MockUserUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUserUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUserUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

// memCartRepository is a map-backed cart store for handler tests. The cart
// handlers mutate the aggregate in place, which a call-recording mock cannot
// express naturally.
type memCartRepository struct {
	carts map[string]*cart.Cart
}

func newMemCartRepository() *memCartRepository {
	return &memCartRepository{carts: make(map[string]*cart.Cart)}
}

func (r *memCartRepository) GetOrCreate(_ context.Context, customer string) (*cart.Cart, error) {
	if aggregate, ok := r.carts[customer]; ok {
		return aggregate, nil
	}
	aggregate, err := cart.NewCart(customer)
	if err != nil {
		return nil, err
	}
	r.carts[customer] = aggregate
	return aggregate, nil
}

func (r *memCartRepository) Save(_ context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	r.carts[aggregate.Customer()] = aggregate
	return nil
}

func (r *memCartRepository) Remove(_ context.Context, customer string) error {
	delete(r.carts, customer)
	return nil
}

func mustScore(t *testing.T, value int) kernel.Score {
	t.Helper()
	s, err := kernel.NewScore(value)
	require.NoError(t, err)
	return s
}

func mustOrderID(t *testing.T, value int64) kernel.OrderID {
	t.Helper()
	id, err := kernel.NewOrderID(value)
	require.NoError(t, err)
	return id
}

func mustMoney(t *testing.T, amount float64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoneyFromFloat(amount)
	require.NoError(t, err)
	return m
}
