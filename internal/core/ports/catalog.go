package ports

import (
	"foodrun/internal/core/domain/model/kernel"
)

// Catalog is the read-only menu lookup: restaurant -> category -> item ->
// price. The catalog is static; there is no write side.
type Catalog interface {
	// Restaurants lists the restaurant names in stable order.
	Restaurants() []string

	// Categories lists a restaurant's menu categories in stable order.
	Categories(restaurant string) ([]string, error)

	// Items lists the food items of a category in stable order.
	Items(restaurant, category string) ([]string, error)

	// Price looks up the unit price of a menu item.
	Price(restaurant, category, food string) (kernel.Money, error)
}
