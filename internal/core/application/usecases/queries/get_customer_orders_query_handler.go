package queries

import (
	"context"

	"foodrun/internal/core/ports"
)

// GetCustomerOrdersQueryHandler retrieves a customer's order history.
type GetCustomerOrdersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetCustomerOrdersQueryHandler creates a handler for order history queries.
func NewGetCustomerOrdersQueryHandler(uowFactory ports.UnitOfWorkFactory) GetCustomerOrdersQueryHandler {
	return GetCustomerOrdersQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query. Orders come back newest first by numeric ID,
// regardless of the order they were written in.
func (h GetCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	aggregates, err := uow.OrderRepository().GetByCustomer(ctx, query.Customer())
	if err != nil {
		return nil, err
	}

	return newOrderResponses(aggregates), nil
}
