// Package tsp - permutation-preserving crossover operators.
//
// Provided:
//   - Crossover: draws cut points from rng and dispatches on CrossoverOperator.
//   - PartiallyMapped, Ordered, CycleCross: deterministic cores over raw routes.
//
// Cut-point policy (PMX and OX):
//   - first  uniform in [1, V-1]
//   - second uniform in [first, V]; the window [first, second) may reach the end.
//
// Design:
//   - Parents are never modified; each child is a fresh slice.
//   - Every child is re-validated; a failure is a bug and surfaces as ErrInvalidPermutation.
//
// Complexity:
//   - O(V) time and O(V) space per operator.
package tsp

import (
	"fmt"
	"math/rand"

	"github.com/dathd6/Evolutionary-Algorithm-TSP/matrix"
)

// Crossover recombines a and b with op and returns two children.
// For V ≤ 1 it returns copies of the parents.
//
// Errors: ErrNilTour, ErrDistanceMismatch, ErrUnknownOperator, ErrInvalidPermutation.
func Crossover(a, b *Tour, op CrossoverOperator, rng *rand.Rand) (*Tour, *Tour, error) {
	if a == nil || b == nil {
		return nil, nil, ErrNilTour
	}
	if a.dist != b.dist || a.Len() != b.Len() {
		return nil, nil, ErrDistanceMismatch
	}
	if _, ok := crossoverNames[op]; !ok {
		return nil, nil, fmt.Errorf("crossover %d: %w", int(op), ErrUnknownOperator)
	}

	var n = a.Len()
	if n <= 1 {
		return a.clone(), b.clone(), nil
	}
	rng = orDefault(rng)

	var (
		c, d          []int
		first, second int
		err           error
	)
	switch op {
	case PMX:
		first, second = cutPoints(n, rng)
		c, d, err = PartiallyMapped(a.route, b.route, first, second)
	case OX:
		first, second = cutPoints(n, rng)
		c, d, err = Ordered(a.route, b.route, first, second)
	case Cycle:
		c, d, err = CycleCross(a.route, b.route)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return childTours(a.dist, op.String(), c, d)
}

// cutPoints draws first ∈ [1, n-1] and second ∈ [first, n]. Requires n ≥ 2.
func cutPoints(n int, rng *rand.Rand) (int, int) {
	first := intnRange(rng, 1, n-1)
	second := intnRange(rng, first, n)
	return first, second
}

// childTours validates both children and wraps them as Tours.
func childTours(dist *matrix.Distance, tag string, c, d []int) (*Tour, *Tour, error) {
	var n = dist.N()
	if err := ValidatePermutation(c, n); err != nil {
		return nil, nil, fmt.Errorf("%s: child C: %w", tag, err)
	}
	if err := ValidatePermutation(d, n); err != nil {
		return nil, nil, fmt.Errorf("%s: child D: %w", tag, err)
	}
	return newTour(dist, c), newTour(dist, d), nil
}

// checkParents validates both routes as permutations of the same length.
func checkParents(a, b []int) error {
	if err := ValidatePermutation(a, len(a)); err != nil {
		return fmt.Errorf("parent A: %w", err)
	}
	if err := ValidatePermutation(b, len(a)); err != nil {
		return fmt.Errorf("parent B: %w", err)
	}
	return nil
}

// checkCuts enforces 0 ≤ first ≤ second ≤ n.
func checkCuts(n, first, second int) error {
	if first < 0 || second < first || second > n {
		return fmt.Errorf("cuts [%d,%d) over %d: %w", first, second, n, ErrCutOutOfRange)
	}
	return nil
}

// positions returns the inverse permutation: pos[route[i]] = i.
func positions(route []int) []int {
	pos := make([]int, len(route))
	for i, v := range route {
		pos[v] = i
	}
	return pos
}

// PartiallyMapped performs PMX over the window [first, second).
//
// Child C starts as a copy of a; for each i in the window, in increasing order,
// the value b[i] is swapped into position i from wherever it currently sits in
// C. Child D mirrors with the parents exchanged.
func PartiallyMapped(a, b []int, first, second int) ([]int, []int, error) {
	if err := checkParents(a, b); err != nil {
		return nil, nil, err
	}
	if err := checkCuts(len(a), first, second); err != nil {
		return nil, nil, err
	}

	var (
		c    = append([]int(nil), a...)
		d    = append([]int(nil), b...)
		posC = positions(c)
		posD = positions(d)
		i    int
	)
	for i = first; i < second; i++ {
		pmxStep(c, posC, i, b[i])
		pmxStep(d, posD, i, a[i])
	}

	return c, d, nil
}

// pmxStep moves v into position i of child, relocating the displaced value to v's old slot.
func pmxStep(child, pos []int, i, v int) {
	j := pos[v]
	if j == i {
		return
	}
	w := child[i]
	child[i], child[j] = v, w
	pos[v], pos[w] = i, j
}

// Ordered performs OX over the window [first, second).
//
// Child C keeps a's window verbatim; the remaining positions, scanned left to
// right from position 0, receive b's values in b's order, skipping values
// already in the window. Child D mirrors.
func Ordered(a, b []int, first, second int) ([]int, []int, error) {
	if err := checkParents(a, b); err != nil {
		return nil, nil, err
	}
	if err := checkCuts(len(a), first, second); err != nil {
		return nil, nil, err
	}

	return orderedChild(a, b, first, second), orderedChild(b, a, first, second), nil
}

// orderedChild builds one OX child from the window donor keep and the order donor fill.
func orderedChild(keep, fill []int, first, second int) []int {
	var (
		n      = len(keep)
		child  = make([]int, n)
		inSeg  = make([]bool, n)
		i, pos int
	)
	for i = first; i < second; i++ {
		child[i] = keep[i]
		inSeg[keep[i]] = true
	}
	for _, v := range fill {
		if inSeg[v] {
			continue
		}
		if pos == first {
			pos = second
		}
		child[pos] = v
		pos++
	}

	return child
}

// CycleCross performs cycle crossover over the cycle that contains index 0.
//
// Starting at index 0, the next index is the position in a of b[index]; indices
// are marked until one repeats. C takes a's values at marked positions and b's
// elsewhere; D mirrors.
func CycleCross(a, b []int) ([]int, []int, error) {
	if err := checkParents(a, b); err != nil {
		return nil, nil, err
	}

	var (
		n      = len(a)
		posA   = positions(a)
		marked = make([]bool, n)
		c      = make([]int, n)
		d      = make([]int, n)
		idx, i int
	)
	for !marked[idx] {
		marked[idx] = true
		idx = posA[b[idx]]
	}
	for i = 0; i < n; i++ {
		if marked[i] {
			c[i], d[i] = a[i], b[i]
		} else {
			c[i], d[i] = b[i], a[i]
		}
	}

	return c, d, nil
}
