package services

import (
	"sort"

	"foodrun/internal/core/domain/model/kernel"
	"foodrun/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Catalog is a domain service exposing the static restaurant menu:
// restaurant -> category -> item -> price. The catalog has no behavior
// beyond lookup; it is the single price authority for cart and checkout.
//
// Example usage:
//
//	catalog := NewCatalog()
//	price, err := catalog.Price("Pizza Place", "Pizza", "Margherita")
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // unknown menu item
//	}
type Catalog struct {
	menu map[string]map[string]map[string]kernel.Money
}

// NewCatalog creates the catalog with the fixed marketplace menu.
func NewCatalog() *Catalog {
	return &Catalog{menu: defaultMenu()}
}

// Restaurants returns the restaurant names in stable sorted order.
func (c *Catalog) Restaurants() []string {
	return sortedKeys(c.menu)
}

// Categories returns the menu categories of a restaurant in stable sorted
// order, or an error if the restaurant is unknown.
func (c *Catalog) Categories(restaurant string) ([]string, error) {
	categories, ok := c.menu[restaurant]
	if !ok {
		return nil, errs.NewObjectNotFoundError("restaurant", restaurant)
	}

	return sortedKeys(categories), nil
}

// Items returns the food items of a category in stable sorted order, or an
// error if the restaurant or category is unknown.
func (c *Catalog) Items(restaurant, category string) ([]string, error) {
	categories, ok := c.menu[restaurant]
	if !ok {
		return nil, errs.NewObjectNotFoundError("restaurant", restaurant)
	}

	items, ok := categories[category]
	if !ok {
		return nil, errs.NewObjectNotFoundError("category", category)
	}

	return sortedKeys(items), nil
}

// Price looks up the unit price of a menu item, or an error if any level of
// the lookup is unknown.
func (c *Catalog) Price(restaurant, category, food string) (kernel.Money, error) {
	categories, ok := c.menu[restaurant]
	if !ok {
		return kernel.Money{}, errs.NewObjectNotFoundError("restaurant", restaurant)
	}

	items, ok := categories[category]
	if !ok {
		return kernel.Money{}, errs.NewObjectNotFoundError("category", category)
	}

	price, ok := items[food]
	if !ok {
		return kernel.Money{}, errs.NewObjectNotFoundError("food", food)
	}

	return price, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func price(amount string) kernel.Money {
	m, err := kernel.NewMoney(decimal.RequireFromString(amount))
	if err != nil {
		panic(err)
	}
	return m
}

func defaultMenu() map[string]map[string]map[string]kernel.Money {
	return map[string]map[string]map[string]kernel.Money{
		"Pizza Place": {
			"Pizza": {
				"Margherita": price("12.0"),
				"Pepperoni":  price("14.0"),
				"Hawaiian":   price("13.5"),
			},
			"Sides": {
				"Garlic Bread": price("5.0"),
				"Wings":        price("7.0"),
			},
		},
		"Sushi Bar": {
			"Sushi Rolls": {
				"California Roll": price("10.0"),
				"Spicy Tuna":      price("11.5"),
				"Dragon Roll":     price("12.5"),
			},
			"Drinks": {
				"Green Tea": price("3.0"),
				"Sake":      price("8.0"),
			},
		},
		"Yo Mama's Kitchen": {
			"Comfort Food": {
				"Fried Chicken":  price("15.0"),
				"Mac and Cheese": price("9.0"),
				"Cornbread":      price("4.0"),
			},
			"Desserts": {
				"Peach Cobbler":  price("6.5"),
				"Chocolate Cake": price("7.0"),
			},
		},
		"Darren's Skibidi Restaurant": {
			"Meme Meals": {
				"Skibidi Burger": price("13.0"),
				"Toilet Tacos":   price("11.0"),
				"Sigma Soda":     price("4.5"),
			},
			"Sides": {
				"French Fries": price("5.0"),
				"Onion Rings":  price("5.5"),
			},
		},
		"The Hungry Coder": {
			"Wraps": {
				"Chicken Shawarma": price("10.0"),
				"Beef Kebab":       price("12.0"),
			},
			"Energy Drinks": {
				"Red Bull": price("6.0"),
				"Monster":  price("6.5"),
			},
		},
	}
}
