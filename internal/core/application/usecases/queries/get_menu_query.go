package queries

import (
	"errors"

	"foodrun/internal/core/domain/model/kernel"
	"foodrun/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetMenuQueryIsNotConstructed = errors.New(
		"GetMenuQuery must be created via NewGetMenuQuery constructor",
	)
)

// GetMenuQuery retrieves the full menu: every restaurant with its categories,
// items and prices, plus the restaurant's current average food score where
// one exists.
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query for the full menu. The menu is static, so
// the query carries no parameters.
func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// MenuItemResponse is one orderable item with its unit price.
type MenuItemResponse struct {
	Name  string
	Price kernel.Money
}

// MenuCategoryResponse groups a restaurant's items under a category name.
type MenuCategoryResponse struct {
	Name  string
	Items []MenuItemResponse
}

// RestaurantMenuResponse is one restaurant's full menu. Average is nil while
// the restaurant has no recorded ratings.
type RestaurantMenuResponse struct {
	Name       string
	Average    *decimal.Decimal
	Categories []MenuCategoryResponse
}
