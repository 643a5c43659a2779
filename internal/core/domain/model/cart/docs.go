// Package cart contains the Cart aggregate: the per-customer-session list of
// line items assembled before checkout.
//
// A cart line is identified by its (restaurant, food) pair; adding the same
// pair again increments the quantity instead of duplicating the line. The
// cart computes its own totals: subtotal plus a 10% service tax and a 6%
// delivery charge, both fixed policy rates.
package cart
