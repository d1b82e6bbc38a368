// Package tsp - closed-cycle cost of a route.
//
// Design:
//   - The table is a validated *matrix.Distance, so no per-edge checks are needed.
//   - No rounding: the sum is exactly the float64 accumulation in route order.
//
// Complexity:
//   - O(V) time, O(1) extra space.
package tsp

import "github.com/dathd6/Evolutionary-Algorithm-TSP/matrix"

// RouteCost returns Σ cost[route[i-1]][route[i]] for i in 1..V-1 plus
// cost[route[V-1]][route[0]], after validating route against dist.
//
// Errors: ErrNilDistance, ErrInvalidPermutation.
func RouteCost(dist *matrix.Distance, route []int) (float64, error) {
	if dist == nil {
		return 0, ErrNilDistance
	}
	if err := ValidatePermutation(route, dist.N()); err != nil {
		return 0, err
	}
	return routeCost(dist, route), nil
}

// routeCost is the unchecked accumulation used by tour construction.
func routeCost(dist *matrix.Distance, route []int) float64 {
	var (
		n   = len(route)
		sum float64
		i   int
	)
	if n == 0 {
		return 0
	}
	for i = 1; i < n; i++ {
		sum += dist.Cost(route[i-1], route[i])
	}
	sum += dist.Cost(route[n-1], route[0])

	return sum
}
