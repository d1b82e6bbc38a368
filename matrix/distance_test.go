// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/dathd6/Evolutionary-Algorithm-TSP/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDistanceFromRows_Validation exercises every setup error of the table.
func TestNewDistanceFromRows_Validation(t *testing.T) {
	cases := []struct {
		name string
		rows [][]float64
		want error
	}{
		{"empty", nil, matrix.ErrInvalidDimensions},
		{"ragged", [][]float64{{0, 1}, {1}}, matrix.ErrDimensionMismatch},
		{"non-square", [][]float64{{0, 1, 2}, {1, 0, 2}}, matrix.ErrDimensionMismatch},
		{"diagonal", [][]float64{{0, 1}, {1, 2}}, matrix.ErrNonZeroDiagonal},
		{"negative", [][]float64{{0, -1}, {1, 0}}, matrix.ErrNegativeWeight},
		{"nan", [][]float64{{0, math.NaN()}, {1, 0}}, matrix.ErrNaNInf},
		{"inf", [][]float64{{0, 1}, {math.Inf(1), 0}}, matrix.ErrNaNInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.NewDistanceFromRows(tc.rows)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNewDistance_NilAndNonSquare checks the Matrix-based constructor's guards.
func TestNewDistance_NilAndNonSquare(t *testing.T) {
	_, err := matrix.NewDistance(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = matrix.NewDistance(m)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestDistance_Asymmetric ensures ATSP tables are accepted and read back verbatim.
func TestDistance_Asymmetric(t *testing.T) {
	d, err := matrix.NewDistanceFromRows([][]float64{
		{0, 1, 2},
		{5, 0, 3},
		{4, 7, 0},
	})
	require.NoError(t, err)
	require.Equal(t, 3, d.N())
	require.False(t, d.Symmetric())
	require.Equal(t, 5.0, d.Cost(1, 0))
	require.Equal(t, 1.0, d.Cost(0, 1))

	v, err := d.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)

	_, err = d.At(3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Nil(t, d.Row(-1))
}

// TestDistance_Immutable verifies the table is isolated from its source and its accessors.
func TestDistance_Immutable(t *testing.T) {
	rows := [][]float64{{0, 1}, {1, 0}}
	d, err := matrix.NewDistanceFromRows(rows)
	require.NoError(t, err)
	require.True(t, d.Symmetric())

	rows[0][1] = 42
	require.Equal(t, 1.0, d.Cost(0, 1))

	r := d.Row(0)
	r[1] = 42
	require.Equal(t, 1.0, d.Cost(0, 1))

	all := d.Rows()
	all[1][0] = 42
	require.Equal(t, 1.0, d.Cost(1, 0))

	m, err := matrix.NewDenseFromRows([][]float64{{0, 3}, {3, 0}})
	require.NoError(t, err)
	d2, err := matrix.NewDistance(m)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 9))
	require.Equal(t, 3.0, d2.Cost(0, 1))
}

// TestDistance_SingleVertex accepts the degenerate 1×1 table.
func TestDistance_SingleVertex(t *testing.T) {
	d, err := matrix.NewDistanceFromRows([][]float64{{0}})
	require.NoError(t, err)
	require.Equal(t, 1, d.N())
}

// TestValidateDistance_ErrorIsWrapped keeps the validator tag and the sentinel.
func TestValidateDistance_ErrorIsWrapped(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{0, 1}, {1, 1}})
	require.NoError(t, err)
	err = matrix.ValidateDistance(m)
	require.True(t, errors.Is(err, matrix.ErrNonZeroDiagonal))
	require.Contains(t, err.Error(), "ValidateDistance(1,1)")
}

// ExampleNewDistanceFromRows builds a small asymmetric instance.
func ExampleNewDistanceFromRows() {
	d, err := matrix.NewDistanceFromRows([][]float64{
		{0, 2, 9},
		{1, 0, 6},
		{15, 7, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(d.N(), d.Cost(0, 2), d.Cost(2, 0), d.Symmetric())
	// Output: 3 9 15 false
}
