package evolution_test

import (
	"math/rand"
	"testing"

	"github.com/dathd6/Evolutionary-Algorithm-TSP/evolution"
	"github.com/dathd6/Evolutionary-Algorithm-TSP/matrix"
	"github.com/dathd6/Evolutionary-Algorithm-TSP/tsp"
	"github.com/stretchr/testify/require"
)

// ladder4 is the 4-city instance used by the end-to-end checks.
var ladder4 = [][]float64{
	{0, 1, 9, 9},
	{1, 0, 1, 9},
	{9, 1, 0, 1},
	{9, 9, 1, 0},
}

// Repeat runs fn n times.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

func mustDistance(t testing.TB, rows [][]float64) *matrix.Distance {
	t.Helper()
	d, err := matrix.NewDistanceFromRows(rows)
	require.NoError(t, err)
	return d
}

// randomDistance builds an asymmetric n×n table with integer costs in [1, 100].
func randomDistance(t testing.TB, n int, seed int64) *matrix.Distance {
	t.Helper()
	var (
		rng  = rand.New(rand.NewSource(seed))
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

func mustSeeded(t testing.TB, d *matrix.Distance, routes ...[]int) *evolution.Population {
	t.Helper()
	p, fallbacks, err := evolution.NewSeededPopulation(d, routes, nil)
	require.NoError(t, err)
	require.Zero(t, fallbacks)
	return p
}

func mustTour(t testing.TB, d *matrix.Distance, route ...int) *tsp.Tour {
	t.Helper()
	tour, err := tsp.NewTour(d, route)
	require.NoError(t, err)
	return tour
}

func requireAllPermutations(t testing.TB, p *evolution.Population) {
	t.Helper()
	n := p.Distance().N()
	for i := 0; i < p.Len(); i++ {
		require.NoError(t, tsp.ValidatePermutation(p.At(i).Route(), n), "slot %d", i)
	}
}
