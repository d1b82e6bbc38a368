// Package tsp - the Tour type: one permutation plus its cached fitness.
//
// Design:
//   - A Tour is immutable once built; Route returns a copy.
//   - Fitness is computed once at construction and never rounded.
//   - Every Tour holds the shared *matrix.Distance by pointer (read-only).
package tsp

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/dathd6/Evolutionary-Algorithm-TSP/matrix"
)

// Tour is a closed Hamiltonian cycle over a Distance, stored as a permutation
// of [0, V) without the closing vertex.
type Tour struct {
	route   []int
	fitness float64
	dist    *matrix.Distance
}

// NewRandomTour builds a uniformly random permutation by repeated uniform
// sampling of [0, V), rejecting values already placed, until V distinct values
// are collected.
//
// Complexity: expected O(V log V) draws, O(V) space.
func NewRandomTour(dist *matrix.Distance, rng *rand.Rand) (*Tour, error) {
	if dist == nil {
		return nil, ErrNilDistance
	}
	rng = orDefault(rng)

	var (
		n     = dist.N()
		route = make([]int, 0, n)
		seen  = make([]bool, n)
		v     int
	)
	for len(route) < n {
		v = rng.Intn(n)
		if seen[v] {
			continue
		}
		seen[v] = true
		route = append(route, v)
	}

	return newTour(dist, route), nil
}

// NewTour validates route as a permutation of [0, dist.N()) and builds a Tour
// from a copy of it.
//
// Errors: ErrNilDistance, ErrInvalidPermutation.
// Complexity: O(V).
func NewTour(dist *matrix.Distance, route []int) (*Tour, error) {
	if dist == nil {
		return nil, ErrNilDistance
	}
	if err := ValidatePermutation(route, dist.N()); err != nil {
		return nil, err
	}
	cp := make([]int, len(route))
	copy(cp, route)

	return newTour(dist, cp), nil
}

// newTour takes ownership of route, which must already be a valid permutation.
func newTour(dist *matrix.Distance, route []int) *Tour {
	return &Tour{route: route, fitness: routeCost(dist, route), dist: dist}
}

// Fitness returns the cached closed-cycle cost. Lower is better.
func (t *Tour) Fitness() float64 { return t.fitness }

// Len returns V.
func (t *Tour) Len() int { return len(t.route) }

// At returns the vertex at position i. Panics if i is out of range, like a slice.
func (t *Tour) At(i int) int { return t.route[i] }

// Route returns a copy of the permutation.
func (t *Tour) Route() []int {
	out := make([]int, len(t.route))
	copy(out, t.route)
	return out
}

// Distance returns the shared cost table the tour is evaluated against.
func (t *Tour) Distance() *matrix.Distance { return t.dist }

// Equal reports whether both tours visit the vertices in the same order over the same table.
func (t *Tour) Equal(other *Tour) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.dist != other.dist || len(t.route) != len(other.route) {
		return false
	}
	for i := range t.route {
		if t.route[i] != other.route[i] {
			return false
		}
	}
	return true
}

// clone returns an independent copy sharing the same table and fitness.
func (t *Tour) clone() *Tour {
	return &Tour{route: t.Route(), fitness: t.fitness, dist: t.dist}
}

// String renders "Solution [a, b, ...] - fitness F".
func (t *Tour) String() string {
	if t == nil {
		return "Solution <nil>"
	}
	return fmt.Sprintf("Solution %s - fitness %s", FormatRoute(t.route), strconv.FormatFloat(t.fitness, 'g', -1, 64))
}

// FormatRoute renders a route as "[a, b, c]".
func FormatRoute(route []int) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range route {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(v))
	}
	sb.WriteByte(']')
	return sb.String()
}

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
// It allocates a single O(n) marker slice.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if len(perm) != n || n <= 0 {
		return fmt.Errorf("length %d, want %d: %w", len(perm), n, ErrInvalidPermutation)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return fmt.Errorf("value %d at %d out of range: %w", v, i, ErrInvalidPermutation)
		}
		if seen[v] {
			return fmt.Errorf("duplicate value %d at %d: %w", v, i, ErrInvalidPermutation)
		}
		seen[v] = true
	}
	return nil
}
