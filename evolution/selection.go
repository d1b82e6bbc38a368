// Package evolution - tournament selection.
//
// Design:
//   - Each tournament samples k distinct slots without replacement through a
//     partial Fisher–Yates shuffle over a reused index buffer.
//   - The two tournaments are independent, so one member may win both.
//
// Complexity:
//   - O(N) per tournament for the buffer reset, O(k) draws.
package evolution

import (
	"math/rand"

	"github.com/dathd6/Evolutionary-Algorithm-TSP/tsp"
)

// Tournament draws two independent samples of k distinct members and returns
// the fittest of each (a from the first draw, b from the second). A member may
// win both draws. Ties within a draw go to the lower slot index.
//
// Errors: ErrEmptyPopulation, ErrInsufficientSampleSize (k < 1 or k > Len()).
// Callers treat either as "no offspring this round".
//
// Complexity: O(N) per draw.
func (p *Population) Tournament(k int, rng *rand.Rand) (a, b *tsp.Tour, err error) {
	var n = len(p.tours)
	if n == 0 {
		return nil, nil, ErrEmptyPopulation
	}
	if k < 1 || k > n {
		return nil, nil, ErrInsufficientSampleSize
	}
	if rng == nil {
		rng = tsp.NewRNG(0)
	}

	a = p.tours[p.draw(k, rng)]
	b = p.tours[p.draw(k, rng)]
	return a, b, nil
}

// draw samples k distinct slots by partial Fisher–Yates over the scratch buffer
// and returns the winning slot.
func (p *Population) draw(k int, rng *rand.Rand) int {
	var (
		n      = len(p.tours)
		idx    = p.scratch
		i, j   int
		winner = -1
		cand   int
	)
	for i = 0; i < n; i++ {
		idx[i] = i
	}
	for i = 0; i < k; i++ {
		j = i + rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
		cand = idx[i]
		if winner < 0 || better(p.tours[cand].Fitness(), cand, p.tours[winner].Fitness(), winner) {
			winner = cand
		}
	}
	return winner
}

// better orders by fitness, then by slot index.
func better(f1 float64, i1 int, f2 float64, i2 int) bool {
	if f1 != f2 {
		return f1 < f2
	}
	return i1 < i2
}
