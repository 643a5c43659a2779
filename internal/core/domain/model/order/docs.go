// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order is created in Pending status at checkout, becomes Claimed when a
// driver takes it, and Completed when the claiming driver marks it delivered.
// No transition ever reverts status or clears the driver. A three-part rating
// (food, speed, service) may be attached exactly once, and only to a
// completed order.
package order
