// Package services contains stateless domain services that operate across
// aggregates. The catalog service exposes the fixed restaurant menu that cart
// and checkout operations price against.
package services
