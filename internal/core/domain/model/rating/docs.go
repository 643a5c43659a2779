// Package rating contains the running reputation aggregates for restaurants
// and drivers.
//
// An aggregate is a sum/count pair (drivers keep three sums sharing one
// count) updated once per rated order, so averages are computed without
// storing individual rating events. An aggregate with a zero count has no
// average; callers get an explicit "no data" signal instead of a division by
// zero.
package rating
