package queries

import (
	"context"

	"foodrun/internal/core/ports"
)

// GetPendingOrdersQueryHandler retrieves the unclaimed order board.
type GetPendingOrdersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetPendingOrdersQueryHandler creates a handler for pending order queries.
func NewGetPendingOrdersQueryHandler(uowFactory ports.UnitOfWorkFactory) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query. Orders come back in ascending ID order, oldest
// posting first.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	aggregates, err := uow.OrderRepository().GetAllPending(ctx)
	if err != nil {
		return nil, err
	}

	return newOrderResponses(aggregates), nil
}
