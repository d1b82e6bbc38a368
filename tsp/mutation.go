// Package tsp - mutation operators.
//
// Provided:
//   - Mutate: random single swap, multiple swap or inversion.
//   - Swap, Invert: deterministic forms used by Mutate and by tests.
//
// Design:
//   - The input tour is never modified; each call returns a new Tour.
//   - V ≤ 1 yields a copy.
//
// Complexity:
//   - SingleSwap O(V) (copy), MultipleSwap O(V) draws + O(V) copy, Inversion O(V).
package tsp

import (
	"fmt"
	"math/rand"
)

// Mutate applies op to t and returns the mutated tour.
//
//   - SingleSwap: two positions drawn independently from [0, V); they may coincide.
//   - MultipleSwap: a count drawn from [2, V]; that many single swaps are chained
//     on the evolving route.
//   - Inversion: first from [0, V-2], second from [first+1, V-1]; route[first:second]
//     is reversed.
//
// Errors: ErrNilTour, ErrUnknownOperator.
func Mutate(t *Tour, op MutationOperator, rng *rand.Rand) (*Tour, error) {
	if t == nil {
		return nil, ErrNilTour
	}
	if _, ok := mutationNames[op]; !ok {
		return nil, fmt.Errorf("mutation %d: %w", int(op), ErrUnknownOperator)
	}

	var n = t.Len()
	if n <= 1 {
		return t.clone(), nil
	}
	rng = orDefault(rng)

	var route = t.Route()
	switch op {
	case SingleSwap:
		swapRandom(route, rng)
	case MultipleSwap:
		var (
			count = intnRange(rng, 2, n)
			k     int
		)
		for k = 0; k < count; k++ {
			swapRandom(route, rng)
		}
	case Inversion:
		first := intnRange(rng, 0, n-2)
		second := intnRange(rng, first+1, n-1)
		invertInPlace(route, first, second)
	}

	return newTour(t.dist, route), nil
}

// swapRandom exchanges two independently drawn positions of route.
func swapRandom(route []int, rng *rand.Rand) {
	var (
		n = len(route)
		i = rng.Intn(n)
		j = rng.Intn(n)
	)
	route[i], route[j] = route[j], route[i]
}

// Swap returns a new tour with positions i and j exchanged.
//
// Errors: ErrNilTour, ErrInvalidPermutation when i or j is out of range.
func Swap(t *Tour, i, j int) (*Tour, error) {
	if t == nil {
		return nil, ErrNilTour
	}
	var n = t.Len()
	if i < 0 || i >= n || j < 0 || j >= n {
		return nil, fmt.Errorf("swap (%d,%d) over %d: %w", i, j, n, ErrInvalidPermutation)
	}
	route := t.Route()
	route[i], route[j] = route[j], route[i]

	return newTour(t.dist, route), nil
}

// Invert returns a new tour with route[first:second] reversed. When the indices
// do not describe a window (0 ≤ first < second ≤ V), the whole route is reversed.
func Invert(t *Tour, first, second int) (*Tour, error) {
	if t == nil {
		return nil, ErrNilTour
	}
	route := t.Route()
	invertInPlace(route, first, second)

	return newTour(t.dist, route), nil
}

// invertInPlace reverses route[first:second], or all of route on invalid indices.
func invertInPlace(route []int, first, second int) {
	if first < 0 || second > len(route) || first >= second {
		first, second = 0, len(route)
	}
	for i, j := first, second-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
}
