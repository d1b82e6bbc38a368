// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape and value checks.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    still match them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols) and non-empty.
// Assumes m is not nil.
//
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}
	if m.Rows() <= 0 {
		return validatorErrorf("ValidateSquare", ErrInvalidDimensions)
	}

	return nil
}

// ValidateRows checks that rows is a non-empty square table without ragged rows.
//
// Complexity: O(n).
func ValidateRows(rows [][]float64) error {
	var n = len(rows)
	if n == 0 {
		return validatorErrorf("ValidateRows", ErrInvalidDimensions)
	}

	var i int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return validatorErrorf(fmt.Sprintf("ValidateRows: row %d", i), ErrDimensionMismatch)
		}
	}

	return nil
}

// ValidateDistance performs full distance-table validation on a square matrix:
//   - diagonal exactly 0,
//   - every entry finite (no NaN, no ±Inf),
//   - no negative off-diagonal cost.
//
// Symmetry is not required (asymmetric instances are legal).
//
// Complexity: O(n²).
func ValidateDistance(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateDistance", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateDistance", err)
	}

	var (
		n    = m.Rows()
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ { // rows
		for j = 0; j < n; j++ { // cols
			v, err = m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateDistance", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateDistance(%d,%d)", i, j), ErrNaNInf)
			}
			if i == j {
				if v != 0 {
					return validatorErrorf(fmt.Sprintf("ValidateDistance(%d,%d)", i, j), ErrNonZeroDiagonal)
				}
				continue
			}
			if v < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateDistance(%d,%d)", i, j), ErrNegativeWeight)
			}
		}
	}

	return nil
}
