// SPDX-License-Identifier: MIT

// Package matrix - Distance: immutable travel-cost table.
//
// Purpose:
//   - Hold the V×V cost table of one TSP instance for the lifetime of a run.
//   - Be shared by pointer with every tour; no method mutates it.
//
// Contract:
//   - Square, V >= 1, zero diagonal, finite non-negative costs.
//   - Symmetry is NOT required.
//   - Construction copies the source, so later writes to it are not observed.
//
// Complexity:
//   - NewDistance: O(V²). Cost: O(1). Row: O(V).

package matrix

import "fmt"

// Distance is a validated, read-only V×V cost table stored row-major.
type Distance struct {
	n    int
	data []float64
}

// NewDistance validates m (see ValidateDistance) and returns an immutable copy.
func NewDistance(m Matrix) (*Distance, error) {
	if err := ValidateDistance(m); err != nil {
		return nil, fmt.Errorf("NewDistance: %w", err)
	}

	var (
		n    = m.Rows()
		data = make([]float64, n*n)
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("NewDistance: %w", err)
			}
			data[i*n+j] = v
		}
	}

	return &Distance{n: n, data: data}, nil
}

// NewDistanceFromRows is a convenience wrapper over NewDenseFromRows + NewDistance.
func NewDistanceFromRows(rows [][]float64) (*Distance, error) {
	if err := ValidateRows(rows); err != nil {
		return nil, fmt.Errorf("NewDistanceFromRows: %w", err)
	}
	d, err := NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("NewDistanceFromRows: %w", err)
	}

	return NewDistance(d)
}

// N returns the vertex count V.
func (d *Distance) N() int { return d.n }

// Cost returns cost[i][j] without bounds checking beyond the slice's own.
// Callers guarantee 0 <= i, j < N().
func (d *Distance) Cost(i, j int) float64 {
	return d.data[i*d.n+j]
}

// At returns cost[i][j] or ErrOutOfRange.
func (d *Distance) At(i, j int) (float64, error) {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, fmt.Errorf("Distance.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return d.data[i*d.n+j], nil
}

// Row returns a copy of row i, or nil when i is out of range.
func (d *Distance) Row(i int) []float64 {
	if i < 0 || i >= d.n {
		return nil
	}
	out := make([]float64, d.n)
	copy(out, d.data[i*d.n:(i+1)*d.n])

	return out
}

// Rows returns a deep copy of the whole table as [][]float64.
func (d *Distance) Rows() [][]float64 {
	var (
		out = make([][]float64, d.n)
		i   int
	)
	for i = 0; i < d.n; i++ {
		out[i] = d.Row(i)
	}

	return out
}

// Symmetric reports whether cost[i][j] == cost[j][i] for every pair.
func (d *Distance) Symmetric() bool {
	var i, j int
	for i = 0; i < d.n; i++ {
		for j = i + 1; j < d.n; j++ {
			if d.data[i*d.n+j] != d.data[j*d.n+i] {
				return false
			}
		}
	}

	return true
}
