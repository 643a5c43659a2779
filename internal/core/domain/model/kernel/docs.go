// Package kernel contains shared value objects used across the domain model.
//
// The kernel provides the primitive building blocks of the marketplace domain:
// order identifiers, monetary amounts, and rating scores. All types in this
// package are immutable value objects constructed through validating factory
// functions; their zero values are invalid and rejected by Validate.
package kernel
