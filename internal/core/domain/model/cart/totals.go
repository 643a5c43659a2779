package cart

import (
	"foodrun/internal/core/domain/model/kernel"
)

// Pricing policy rates applied to every cart. These are fixed constants of
// the marketplace, not configuration.
const (
	ServiceTaxRate     = "0.10"
	DeliveryChargeRate = "0.06"
)

// Totals is the priced breakdown of a cart: the item subtotal, the service
// tax and delivery charge derived from it, and their sum.
//
// Totals is computed by Cart.Totals as a pure function of the cart lines;
// doubling every quantity exactly doubles every figure.
type Totals struct {
	Subtotal       kernel.Money
	ServiceTax     kernel.Money
	DeliveryCharge kernel.Money
	Total          kernel.Money
}

func computeTotals(lines []Line) Totals {
	subtotal := kernel.ZeroMoney()
	for _, line := range lines {
		subtotal = subtotal.Add(line.Subtotal())
	}

	serviceTax := subtotal.MulRate(ServiceTaxRate)
	deliveryCharge := subtotal.MulRate(DeliveryChargeRate)

	return Totals{
		Subtotal:       subtotal,
		ServiceTax:     serviceTax,
		DeliveryCharge: deliveryCharge,
		Total:          subtotal.Add(serviceTax).Add(deliveryCharge),
	}
}
