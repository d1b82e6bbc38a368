// Package tsp provides the candidate-solution representation and the
// permutation operators of a steady-state evolutionary TSP solver.
//
// It includes, on an immutable *matrix.Distance:
//
//   - Tour: a permutation of [0, V) with its cached closed-cycle fitness.
//     Tours are immutable; every operator builds a new one.
//
//   - Crossover: PMX, OX and Cycle recombination, each producing two
//     children that are again permutations.
//
//   - Mutate: single swap, multiple swap and inversion.
//
// The Cycle operator is configured under the label "Sequential Constructive
// Crossover (SCX)" for compatibility with recorded experiment summaries. It
// performs cycle crossover (cycle discovery over value positions, starting at
// index 0), not a cost-aware sequential construction.
//
// Randomness is never drawn from a global source: every random operator takes
// an explicit *rand.Rand (see NewRNG, DeriveRNG). A nil generator falls back
// to the deterministic default stream.
//
// Degenerate instances (V ≤ 1) are legal: crossover and mutation return copies.
//
// Complexity:
//   - NewRandomTour: expected O(V log V) draws (rejection sampling).
//   - Fitness: O(1) (cached); construction O(V).
//   - Crossover/Mutate: O(V) per call.
package tsp
