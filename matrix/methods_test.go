// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/geoscatter/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fromRows builds a Dense from explicit row data (test helper).
func fromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// assertEqualMatrix compares two matrices element-wise exactly.
func assertEqualMatrix(t *testing.T, want, got matrix.Matrix) {
	t.Helper()
	require.Equal(t, want.Rows(), got.Rows())
	require.Equal(t, want.Cols(), got.Cols())
	for i := 0; i < want.Rows(); i++ {
		for j := 0; j < want.Cols(); j++ {
			wv, _ := want.At(i, j)
			gv, _ := got.At(i, j)
			assert.Equal(t, wv, gv, "mismatch at (%d,%d)", i, j)
		}
	}
}

// TestSub_Validation covers nil and shape-mismatch failures.
func TestSub_Validation(t *testing.T) {
	a := fromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := fromRows(t, [][]float64{{1, 2, 3}})

	_, err := matrix.Sub(nil, a)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Sub(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Sub(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestSub_Basic verifies element-wise difference.
func TestSub_Basic(t *testing.T) {
	a := fromRows(t, [][]float64{{5, 7}, {9, 11}})
	b := fromRows(t, [][]float64{{1, 2}, {3, 4}})

	res, err := matrix.Sub(a, b)
	require.NoError(t, err)
	assertEqualMatrix(t, fromRows(t, [][]float64{{4, 5}, {6, 7}}), res)
}

// TestMul_Basic verifies a hand-computed 2×2 product and inner-dimension checks.
func TestMul_Basic(t *testing.T) {
	a := fromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := fromRows(t, [][]float64{{5, 6}, {7, 8}})

	res, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assertEqualMatrix(t, fromRows(t, [][]float64{{19, 22}, {43, 50}}), res)

	// incompatible inner dimensions
	c := fromRows(t, [][]float64{{1, 2, 3}})
	_, err = matrix.Mul(a, c)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestScale_Basic verifies scalar multiplication.
func TestScale_Basic(t *testing.T) {
	a := fromRows(t, [][]float64{{1, -2}, {0, 4}})

	res, err := matrix.Scale(a, 0.5)
	require.NoError(t, err)
	assertEqualMatrix(t, fromRows(t, [][]float64{{0.5, -1}, {0, 2}}), res)

	_, err = matrix.Scale(nil, 2)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMatVec covers the product, a nil vector, and a length mismatch.
func TestMatVec(t *testing.T) {
	a := fromRows(t, [][]float64{{1, 2}, {3, 4}})

	y, err := matrix.MatVec(a, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 7}, y)

	_, err = matrix.MatVec(a, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.MatVec(a, []float64{1, 2, 3})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestPow covers the identity case, a cubic power, squareness, and the
// negative-exponent sentinel.
func TestPow(t *testing.T) {
	a := fromRows(t, [][]float64{{1, 1}, {0, 1}})

	// p = 0 → identity
	id, err := matrix.Pow(a, 0)
	require.NoError(t, err)
	want, err := matrix.Identity(2)
	require.NoError(t, err)
	assertEqualMatrix(t, want, id)

	// p = 3 equals a·a·a (shear matrix: top-right entry counts the power)
	cubed, err := matrix.Pow(a, 3)
	require.NoError(t, err)
	assertEqualMatrix(t, fromRows(t, [][]float64{{1, 3}, {0, 1}}), cubed)

	// non-square input
	rect := fromRows(t, [][]float64{{1, 2, 3}})
	_, err = matrix.Pow(rect, 2)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// negative exponent
	_, err = matrix.Pow(a, -1)
	assert.ErrorIs(t, err, matrix.ErrNegativePower)
}
