// Package evolution - replacement strategies.
//
// Design:
//   - ReplaceWeakest always overwrites the first worst member.
//   - ReplaceFirstWeaker overwrites the first strictly worse member, or nothing.
//
// Complexity:
//   - O(N) scan per insertion.
package evolution

import (
	"fmt"

	"github.com/dathd6/Evolutionary-Algorithm-TSP/tsp"
)

// Replace inserts t into the population according to strategy.
//
//   - ReplaceWeakest: the first member with the highest fitness is overwritten,
//     even when t is worse than it.
//   - ReplaceFirstWeaker: the first member whose fitness is strictly higher than
//     t's is overwritten; when none is, nothing changes.
//
// Only one slot is written; the population never grows, shrinks or reorders.
//
// Errors: tsp.ErrNilTour, tsp.ErrDistanceMismatch, ErrUnknownReplacement.
// Complexity: O(N).
func (p *Population) Replace(t *tsp.Tour, strategy Replacement) (Outcome, error) {
	if t == nil {
		return Outcome{}, tsp.ErrNilTour
	}
	if t.Distance() != p.dist {
		return Outcome{}, tsp.ErrDistanceMismatch
	}

	var out Outcome
	switch strategy {
	case ReplaceWeakest:
		out = p.weakest()
	case ReplaceFirstWeaker:
		out = p.firstWeaker(t.Fitness())
	default:
		return Outcome{}, fmt.Errorf("replacement %d: %w", int(strategy), ErrUnknownReplacement)
	}
	if out.Replaced {
		p.tours[out.Index] = t
	}
	return out, nil
}

// weakest locates the first slot holding the highest fitness.
func (p *Population) weakest() Outcome {
	var (
		out Outcome
		i   int
	)
	for i = range p.tours {
		if !out.Replaced || p.tours[i].Fitness() > p.tours[out.Index].Fitness() {
			out = Outcome{Index: i, Replaced: true}
		}
	}
	return out
}

// firstWeaker locates the first slot strictly worse than fitness.
func (p *Population) firstWeaker(fitness float64) Outcome {
	for i, m := range p.tours {
		if m.Fitness() > fitness {
			return Outcome{Index: i, Replaced: true}
		}
	}
	return Outcome{}
}
