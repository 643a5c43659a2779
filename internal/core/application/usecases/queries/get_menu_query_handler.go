package queries

import (
	"context"

	"foodrun/internal/core/ports"
)

// GetMenuQueryHandler assembles the menu read model from the catalog and the
// restaurant reputation aggregates.
type GetMenuQueryHandler struct {
	catalog    ports.Catalog
	uowFactory ports.UnitOfWorkFactory
}

// NewGetMenuQueryHandler creates a handler for menu queries.
func NewGetMenuQueryHandler(
	catalog ports.Catalog,
	uowFactory ports.UnitOfWorkFactory,
) GetMenuQueryHandler {
	return GetMenuQueryHandler{
		catalog:    catalog,
		uowFactory: uowFactory,
	}
}

// Handle executes the query. Restaurants, categories and items come back in
// the catalog's stable order; each restaurant carries its average food score
// when it has been rated at least once.
func (h GetMenuQueryHandler) Handle(ctx context.Context, query GetMenuQuery) ([]RestaurantMenuResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	ratings := uow.RatingRepository()

	restaurants := h.catalog.Restaurants()
	menu := make([]RestaurantMenuResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		resp := RestaurantMenuResponse{Name: restaurant}

		aggregate, err := ratings.GetRestaurant(ctx, restaurant)
		if err != nil {
			return nil, err
		}
		if avg, ok := aggregate.Average(); ok {
			resp.Average = &avg
		}

		categories, err := h.catalog.Categories(restaurant)
		if err != nil {
			return nil, err
		}
		for _, category := range categories {
			items, itemsErr := h.catalog.Items(restaurant, category)
			if itemsErr != nil {
				return nil, itemsErr
			}

			categoryResp := MenuCategoryResponse{Name: category}
			for _, item := range items {
				price, priceErr := h.catalog.Price(restaurant, category, item)
				if priceErr != nil {
					return nil, priceErr
				}
				categoryResp.Items = append(categoryResp.Items, MenuItemResponse{
					Name:  item,
					Price: price,
				})
			}
			resp.Categories = append(resp.Categories, categoryResp)
		}

		menu = append(menu, resp)
	}

	return menu, nil
}
