// Package evolution - Population: the fixed-size pool of candidate tours.
//
// Design:
//   - Slots are stable: replacement overwrites one slot and never reorders.
//   - Seeded construction keeps one member per route; invalid routes fall back
//     to random tours and are counted.
//
// Complexity:
//   - Construction O(N·V); Best and Fitnesses O(N).
package evolution

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/dathd6/Evolutionary-Algorithm-TSP/matrix"
	"github.com/dathd6/Evolutionary-Algorithm-TSP/tsp"
)

// Population is a fixed-size, ordered collection of tours over one Distance.
// Only Replace changes its contents, one slot at a time.
type Population struct {
	dist    *matrix.Distance
	tours   []*tsp.Tour
	scratch []int // index buffer reused by Tournament
}

// NewRandomPopulation builds size random tours.
//
// Errors: ErrNilDistance, ErrBadPopulationSize.
// Complexity: O(size · V log V) expected.
func NewRandomPopulation(dist *matrix.Distance, size int, rng *rand.Rand) (*Population, error) {
	if dist == nil {
		return nil, ErrNilDistance
	}
	if size < 1 {
		return nil, ErrBadPopulationSize
	}

	var (
		tours = make([]*tsp.Tour, size)
		i     int
		err   error
	)
	for i = 0; i < size; i++ {
		if tours[i], err = tsp.NewRandomTour(dist, rng); err != nil {
			return nil, fmt.Errorf("evolution: random tour %d: %w", i, err)
		}
	}

	return newPopulation(dist, tours), nil
}

// NewSeededPopulation builds one tour per route. Routes that are not
// permutations of [0, V) are replaced by random tours; the number of such
// fallbacks is returned alongside the population.
//
// Errors: ErrNilDistance, ErrNoSeedRoutes.
func NewSeededPopulation(dist *matrix.Distance, routes [][]int, rng *rand.Rand) (*Population, int, error) {
	if dist == nil {
		return nil, 0, ErrNilDistance
	}
	if len(routes) == 0 {
		return nil, 0, ErrNoSeedRoutes
	}

	var (
		tours     = make([]*tsp.Tour, len(routes))
		fallbacks int
		i         int
		err       error
	)
	for i = range routes {
		tours[i], err = tsp.NewTour(dist, routes[i])
		if err == nil {
			continue
		}
		if !errors.Is(err, tsp.ErrInvalidPermutation) {
			return nil, 0, fmt.Errorf("evolution: seed route %d: %w", i, err)
		}
		fallbacks++
		if tours[i], err = tsp.NewRandomTour(dist, rng); err != nil {
			return nil, 0, fmt.Errorf("evolution: fallback tour %d: %w", i, err)
		}
	}

	return newPopulation(dist, tours), fallbacks, nil
}

func newPopulation(dist *matrix.Distance, tours []*tsp.Tour) *Population {
	return &Population{dist: dist, tours: tours, scratch: make([]int, len(tours))}
}

// Len returns the (fixed) number of members.
func (p *Population) Len() int { return len(p.tours) }

// At returns the member at slot i. Panics if i is out of range, like a slice.
func (p *Population) At(i int) *tsp.Tour { return p.tours[i] }

// Tours returns a copy of the member slice in slot order.
func (p *Population) Tours() []*tsp.Tour {
	out := make([]*tsp.Tour, len(p.tours))
	copy(out, p.tours)
	return out
}

// Distance returns the shared cost table.
func (p *Population) Distance() *matrix.Distance { return p.dist }

// Best returns the fittest member and its slot; the first one in slot order on
// ties. ok is false for an empty population.
func (p *Population) Best() (best *tsp.Tour, index int, ok bool) {
	if len(p.tours) == 0 {
		return nil, 0, false
	}
	var i int
	for i = 1; i < len(p.tours); i++ {
		if p.tours[i].Fitness() < p.tours[index].Fitness() {
			index = i
		}
	}
	return p.tours[index], index, true
}

// Fitnesses returns every member's fitness in slot order.
func (p *Population) Fitnesses() []float64 {
	out := make([]float64, len(p.tours))
	for i, t := range p.tours {
		out[i] = t.Fitness()
	}
	return out
}

// Routes returns every member's route in slot order.
func (p *Population) Routes() [][]int {
	out := make([][]int, len(p.tours))
	for i, t := range p.tours {
		out[i] = t.Route()
	}
	return out
}
