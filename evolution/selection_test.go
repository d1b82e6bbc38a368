package evolution_test

import (
	"testing"

	"github.com/dathd6/Evolutionary-Algorithm-TSP/evolution"
	"github.com/dathd6/Evolutionary-Algorithm-TSP/tsp"
	"github.com/stretchr/testify/require"
)

// TestTournament_FullSampleReturnsBest: with k = N both draws see every member.
func TestTournament_FullSampleReturnsBest(t *testing.T) {
	d := randomDistance(t, 8, 2)
	rng := tsp.NewRNG(9)
	Repeat(t, 50, func(t *testing.T) {
		size := 1 + rng.Intn(20)
		p, err := evolution.NewRandomPopulation(d, size, rng)
		require.NoError(t, err)
		best, _, ok := p.Best()
		require.True(t, ok)

		a, b, err := p.Tournament(size, rng)
		require.NoError(t, err)
		require.Same(t, best, a)
		require.Same(t, best, b)
	})
}

// TestTournament_TieGoesToLowerIndex uses identical fitness everywhere.
func TestTournament_TieGoesToLowerIndex(t *testing.T) {
	d := mustDistance(t, ladder4)
	p := mustSeeded(t, d, []int{0, 1, 2, 3}, []int{1, 2, 3, 0}, []int{2, 3, 0, 1})

	a, b, err := p.Tournament(3, tsp.NewRNG(4))
	require.NoError(t, err)
	require.Same(t, p.At(0), a)
	require.Same(t, p.At(0), b)
}

// TestTournament_WinnerIsMember checks that winners are always current members.
func TestTournament_WinnerIsMember(t *testing.T) {
	d := randomDistance(t, 10, 5)
	rng := tsp.NewRNG(6)
	p, err := evolution.NewRandomPopulation(d, 15, rng)
	require.NoError(t, err)

	members := map[*tsp.Tour]bool{}
	for _, m := range p.Tours() {
		members[m] = true
	}
	Repeat(t, 100, func(t *testing.T) {
		a, b, err := p.Tournament(1+rng.Intn(15), rng)
		require.NoError(t, err)
		require.True(t, members[a])
		require.True(t, members[b])
	})
}

func TestTournament_Errors(t *testing.T) {
	d := mustDistance(t, ladder4)
	p := mustSeeded(t, d, []int{0, 1, 2, 3}, []int{0, 2, 1, 3})

	_, _, err := p.Tournament(3, nil)
	require.ErrorIs(t, err, evolution.ErrInsufficientSampleSize)

	_, _, err = p.Tournament(0, nil)
	require.ErrorIs(t, err, evolution.ErrInsufficientSampleSize)

	var empty evolution.Population
	_, _, err = empty.Tournament(1, nil)
	require.ErrorIs(t, err, evolution.ErrEmptyPopulation)
}
