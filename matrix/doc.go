// SPDX-License-Identifier: MIT

// Package matrix provides the cost tables consumed by the evolutionary TSP solver.
//
// The package offers:
//
//   - Matrix: a small interface over two-dimensional float64 storage with
//     bounds-checked access (At/Set) and deep cloning.
//   - Dense: a row-major implementation of Matrix.
//   - Distance: an immutable, validated V×V travel-cost table. It is built once
//     from external input and then shared read-only by every tour and population
//     of a run.
//
// Distance validation is the only place where malformed static input is
// rejected (non-square, ragged rows, non-zero diagonal, negative or non-finite
// costs). Asymmetric tables are accepted.
//
// Complexity:
//   - NewDense: O(r*c); At/Set: O(1); Clone: O(r*c).
//   - NewDistance: O(V²) validation + copy; Cost: O(1).
package matrix
