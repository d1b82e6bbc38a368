package report

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Stats summarises the fitness distribution of a population.
type Stats struct {
	N      int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	Median float64
}

// FitnessStats computes Stats over fitnesses. An empty input yields the zero Stats.
//
// Complexity: O(N log N) for the median.
func FitnessStats(fitnesses []float64) Stats {
	if len(fitnesses) == 0 {
		return Stats{}
	}
	sorted := slices.Clone(fitnesses)
	slices.Sort(sorted)

	s := Stats{
		N:      len(sorted),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   stat.Mean(sorted, nil),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
	}
	if len(sorted) > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}
	return s
}
