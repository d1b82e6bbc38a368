// Package tsp - sentinel errors and closed operator enumerations.
package tsp

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors (checked via errors.Is).
var (
	// ErrNilDistance is returned when a tour is requested over a nil distance table.
	ErrNilDistance = errors.New("tsp: nil distance matrix")

	// ErrNilTour is returned when an operator receives a nil tour.
	ErrNilTour = errors.New("tsp: nil tour")

	// ErrInvalidPermutation indicates that a route is not a permutation of [0, V):
	// wrong length, a duplicate, an omission or an out-of-range value.
	ErrInvalidPermutation = errors.New("tsp: route is not a permutation")

	// ErrDistanceMismatch indicates that two parents are defined over different tables.
	ErrDistanceMismatch = errors.New("tsp: parents use different distance matrices")

	// ErrCutOutOfRange indicates invalid crossover cut points (need 0 ≤ first ≤ second ≤ V).
	ErrCutOutOfRange = errors.New("tsp: crossover cut points out of range")

	// ErrUnknownOperator indicates an operator identifier outside the closed enumeration.
	ErrUnknownOperator = errors.New("tsp: unknown operator")
)

// CrossoverOperator selects the recombination rule.
type CrossoverOperator int

const (
	// PMX is Partially Mapped Crossover.
	PMX CrossoverOperator = iota
	// OX is Order Crossover.
	OX
	// Cycle is cycle crossover, labelled "Sequential Constructive Crossover (SCX)".
	Cycle
)

// MutationOperator selects the mutation rule.
type MutationOperator int

const (
	// SingleSwap exchanges two uniformly drawn positions.
	SingleSwap MutationOperator = iota
	// MultipleSwap chains a uniform [2, V] number of single swaps.
	MultipleSwap
	// Inversion reverses a random half-open window.
	Inversion
)

// operatorName pairs the canonical long label with the accepted short ids.
type operatorName struct {
	label string
	ids   []string
}

var crossoverNames = map[CrossoverOperator]operatorName{
	PMX:   {label: "Partially Mapped Crossover (PMX)", ids: []string{"pmx", "crossover-with-fix"}},
	OX:    {label: "Order Crossover (OX)", ids: []string{"ox", "order", "ordered"}},
	Cycle: {label: "Sequential Constructive Crossover (SCX)", ids: []string{"cycle", "cx", "scx"}},
}

var mutationNames = map[MutationOperator]operatorName{
	SingleSwap:   {label: "Single Swap Mutation", ids: []string{"single-swap", "single"}},
	MultipleSwap: {label: "Multiple Swap Mutation", ids: []string{"multiple-swap", "multi-swap", "multiple"}},
	Inversion:    {label: "Inversion", ids: []string{"inversion", "invert"}},
}

// CrossoverOperators lists every crossover operator in declaration order.
func CrossoverOperators() []CrossoverOperator { return []CrossoverOperator{PMX, OX, Cycle} }

// MutationOperators lists every mutation operator in declaration order.
func MutationOperators() []MutationOperator {
	return []MutationOperator{SingleSwap, MultipleSwap, Inversion}
}

// String returns the long label used in reports.
func (op CrossoverOperator) String() string {
	if n, ok := crossoverNames[op]; ok {
		return n.label
	}
	return fmt.Sprintf("CrossoverOperator(%d)", int(op))
}

// ID returns the short identifier (the first accepted id).
func (op CrossoverOperator) ID() string {
	if n, ok := crossoverNames[op]; ok {
		return n.ids[0]
	}
	return ""
}

// String returns the long label used in reports.
func (op MutationOperator) String() string {
	if n, ok := mutationNames[op]; ok {
		return n.label
	}
	return fmt.Sprintf("MutationOperator(%d)", int(op))
}

// ID returns the short identifier (the first accepted id).
func (op MutationOperator) ID() string {
	if n, ok := mutationNames[op]; ok {
		return n.ids[0]
	}
	return ""
}

// matchName reports whether s equals the label or one of the ids, ignoring case and surrounding space.
func matchName(n operatorName, s string) bool {
	if strings.EqualFold(s, n.label) {
		return true
	}
	for _, id := range n.ids {
		if strings.EqualFold(s, id) {
			return true
		}
	}
	return false
}

// ParseCrossover resolves a short id or long label to a CrossoverOperator.
func ParseCrossover(s string) (CrossoverOperator, error) {
	s = strings.TrimSpace(s)
	for _, op := range CrossoverOperators() {
		if matchName(crossoverNames[op], s) {
			return op, nil
		}
	}
	return 0, fmt.Errorf("crossover %q: %w", s, ErrUnknownOperator)
}

// ParseMutation resolves a short id or long label to a MutationOperator.
func ParseMutation(s string) (MutationOperator, error) {
	s = strings.TrimSpace(s)
	for _, op := range MutationOperators() {
		if matchName(mutationNames[op], s) {
			return op, nil
		}
	}
	return 0, fmt.Errorf("mutation %q: %w", s, ErrUnknownOperator)
}

// MarshalText implements encoding.TextMarshaler using the short id.
func (op CrossoverOperator) MarshalText() ([]byte, error) {
	if _, ok := crossoverNames[op]; !ok {
		return nil, fmt.Errorf("crossover %d: %w", int(op), ErrUnknownOperator)
	}
	return []byte(op.ID()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseCrossover.
func (op *CrossoverOperator) UnmarshalText(b []byte) error {
	v, err := ParseCrossover(string(b))
	if err != nil {
		return err
	}
	*op = v
	return nil
}

// MarshalText implements encoding.TextMarshaler using the short id.
func (op MutationOperator) MarshalText() ([]byte, error) {
	if _, ok := mutationNames[op]; !ok {
		return nil, fmt.Errorf("mutation %d: %w", int(op), ErrUnknownOperator)
	}
	return []byte(op.ID()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseMutation.
func (op *MutationOperator) UnmarshalText(b []byte) error {
	v, err := ParseMutation(string(b))
	if err != nil {
		return err
	}
	*op = v
	return nil
}
