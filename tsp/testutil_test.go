// Package tsp_test provides lightweight helpers shared across *_test.go files.
package tsp_test

import (
	"math/rand"
	"testing"

	"github.com/dathd6/Evolutionary-Algorithm-TSP/matrix"
	"github.com/dathd6/Evolutionary-Algorithm-TSP/tsp"
	"github.com/stretchr/testify/require"
)

const (
	// seedDet is a deterministic seed for RNG-based components (0 => default seed).
	seedDet = int64(0)

	// propertyTrials is the number of random cases per property test.
	propertyTrials = 200
)

// ladder4 is the 4-city instance whose optimal cycle is 0-1-2-3 (cost 12).
var ladder4 = [][]float64{
	{0, 1, 9, 9},
	{1, 0, 1, 9},
	{9, 1, 0, 1},
	{9, 9, 1, 0},
}

// Repeat runs fn n times; used to lock determinism.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustDistance builds a Distance or fails the test.
func mustDistance(t testing.TB, rows [][]float64) *matrix.Distance {
	t.Helper()
	d, err := matrix.NewDistanceFromRows(rows)
	require.NoError(t, err)
	return d
}

// randomDistance builds an asymmetric n×n table with integer costs in [1, 100].
func randomDistance(t testing.TB, n int, rng *rand.Rand) *matrix.Distance {
	t.Helper()
	var (
		rows = make([][]float64, n)
		i, j int
	)
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i != j {
				rows[i][j] = float64(1 + rng.Intn(100))
			}
		}
	}
	return mustDistance(t, rows)
}

// mustTour builds a Tour from a route or fails the test.
func mustTour(t testing.TB, d *matrix.Distance, route []int) *tsp.Tour {
	t.Helper()
	tour, err := tsp.NewTour(d, route)
	require.NoError(t, err)
	return tour
}

// requirePermutation asserts that route is a permutation of [0, n).
func requirePermutation(t testing.TB, route []int, n int) {
	t.Helper()
	require.NoError(t, tsp.ValidatePermutation(route, n), "route %v", route)
}
