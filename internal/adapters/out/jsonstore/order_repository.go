package jsonstore

import (
	"context"
	"sort"
	"strconv"

	"foodrun/internal/core/domain/model/kernel"
	"foodrun/internal/core/domain/model/order"
	"foodrun/internal/pkg/errs"
)

type orderRepository struct {
	uow *UnitOfWork
}

func (r *orderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if r.uow.state == nil {
		return ErrNoActiveTransaction
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, exists := r.uow.state.orders[key]; exists {
		return errs.NewValueIsInvalidError("order id")
	}

	r.uow.state.orders[key] = orderFromDomain(aggregate)
	return nil
}

func (r *orderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if r.uow.state == nil {
		return ErrNoActiveTransaction
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	key := aggregate.ID().String()
	if _, exists := r.uow.state.orders[key]; !exists {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	r.uow.state.orders[key] = orderFromDomain(aggregate)
	return nil
}

func (r *orderRepository) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	if r.uow.state == nil {
		return nil, ErrNoActiveTransaction
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	key := id.String()
	dto, exists := r.uow.state.orders[key]
	if !exists {
		return nil, errs.NewObjectNotFoundError("order", id)
	}

	return orderToDomain(key, dto)
}

// NextID recomputes the allocation from current file state: one past the
// highest numeric key, 1 for an empty store. Keys that do not parse as
// integers are ignored rather than failing the checkout.
func (r *orderRepository) NextID(_ context.Context) (kernel.OrderID, error) {
	if r.uow.state == nil {
		return kernel.OrderID{}, ErrNoActiveTransaction
	}

	var last int64
	for key := range r.uow.state.orders {
		value, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			continue
		}
		if value > last {
			last = value
		}
	}

	return kernel.NewOrderID(last + 1)
}

func (r *orderRepository) GetByCustomer(_ context.Context, customer string) ([]*order.Order, error) {
	aggregates, err := r.filter(func(dto orderDTO) bool {
		return dto.Customer == customer
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(aggregates, func(i, j int) bool {
		return aggregates[j].ID().Less(aggregates[i].ID())
	})
	return aggregates, nil
}

func (r *orderRepository) GetAllPending(_ context.Context) ([]*order.Order, error) {
	aggregates, err := r.filter(func(dto orderDTO) bool {
		return dto.Status == order.Pending.String()
	})
	if err != nil {
		return nil, err
	}

	sortAscending(aggregates)
	return aggregates, nil
}

func (r *orderRepository) GetAllClaimedBy(_ context.Context, driver string) ([]*order.Order, error) {
	aggregates, err := r.filter(func(dto orderDTO) bool {
		return dto.Status == order.Claimed.String() &&
			dto.Driver != nil && *dto.Driver == driver
	})
	if err != nil {
		return nil, err
	}

	sortAscending(aggregates)
	return aggregates, nil
}

func (r *orderRepository) filter(keep func(orderDTO) bool) ([]*order.Order, error) {
	if r.uow.state == nil {
		return nil, ErrNoActiveTransaction
	}

	aggregates := make([]*order.Order, 0)
	for key, dto := range r.uow.state.orders {
		if !keep(dto) {
			continue
		}
		aggregate, err := orderToDomain(key, dto)
		if err != nil {
			return nil, err
		}
		aggregates = append(aggregates, aggregate)
	}

	return aggregates, nil
}

func sortAscending(aggregates []*order.Order) {
	sort.Slice(aggregates, func(i, j int) bool {
		return aggregates[i].ID().Less(aggregates[j].ID())
	})
}
