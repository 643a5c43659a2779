package queries

import (
	"context"

	"foodrun/internal/core/domain/model/account"
	"foodrun/internal/core/ports"
)

// GetClaimedOrdersQueryHandler retrieves a driver's undelivered claims.
type GetClaimedOrdersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetClaimedOrdersQueryHandler creates a handler for claimed order queries.
func NewGetClaimedOrdersQueryHandler(uowFactory ports.UnitOfWorkFactory) GetClaimedOrdersQueryHandler {
	return GetClaimedOrdersQueryHandler{uowFactory: uowFactory}
}

// Handle executes the query. Orders come back in ascending ID order with the
// customer's phone number formatted for display.
func (h GetClaimedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetClaimedOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	aggregates, err := uow.OrderRepository().GetAllClaimedBy(ctx, query.Driver())
	if err != nil {
		return nil, err
	}

	responses := newOrderResponses(aggregates)
	for i := range responses {
		responses[i].Phone = account.FormatPhone(responses[i].Phone)
	}

	return responses, nil
}
