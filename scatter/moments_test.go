// SPDX-License-Identifier: MIT

// Internal tests: the moment blocks carry two intentional index-range quirks
// (zero-order powers run over the wavelet order, and the last wavelet never
// cascades). These tests pin both behaviors directly on the unexported
// aggregation routines.
package scatter

import (
	"math"
	"testing"

	"github.com/katalvlaran/geoscatter/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// denseOf builds a Dense from explicit row data (test helper).
func denseOf(t *testing.T, rows [][]float64) *matrix.Dense {
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

// nanFilter builds an n×n matrix of NaN — a poison pill that makes any
// accidental use of a filter visible in the output.
func nanFilter(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, math.NaN()))
		}
	}

	return m
}

// TestZeroOrder_PowerRangeUsesOrder verifies the block emits 3·order values
// with powers 1..order — the power range follows the wavelet order, not the
// moments bound.
func TestZeroOrder_PowerRangeUsesOrder(t *testing.T) {
	x := denseOf(t, [][]float64{
		{1, 0, 2},
		{2, 1, 2},
	})

	got := zeroOrderMoments(x, 3)
	want := []float64{
		3, 5, 9, // col 0: Σ|x|, Σx², Σx³ over [1,2]
		1, 1, 1, // col 1: over [0,1]
		4, 8, 16, // col 2: over [2,2]
	}
	assert.Equal(t, want, got)
	assert.Len(t, got, featureColumns*3, "3·order values, independent of moments")
}

// TestZeroOrder_Rectification verifies |x| is taken before any power.
func TestZeroOrder_Rectification(t *testing.T) {
	x := denseOf(t, [][]float64{
		{-1, 0, 0},
		{-2, 0, 0},
	})

	got := zeroOrderMoments(x, 2)
	assert.Equal(t, 3.0, got[0], "Σ|x| over [-1,-2]")
	assert.Equal(t, 5.0, got[1], "Σ|x|² over [-1,-2]")
}

// TestFirstOrder_UsesAllWavelets verifies every filter of the bank
// participates: poisoning the last one must surface NaN in the block.
func TestFirstOrder_UsesAllWavelets(t *testing.T) {
	x := denseOf(t, [][]float64{
		{1, 1, 1},
		{1, 1, 1},
	})
	id, err := matrix.Identity(2)
	require.NoError(t, err)
	psi := []matrix.Matrix{id, nanFilter(t, 2)}

	const moments = 2
	got, err := firstOrderMoments(psi, x, moments)
	require.NoError(t, err)
	// 3 columns × 2 wavelets × 1 power
	require.Len(t, got, 6)
	assert.Equal(t, 2.0, got[0], "identity filter preserves Σ|x|")
	assert.True(t, math.IsNaN(got[1]), "poisoned last wavelet must be consumed")
}

// TestSecondOrder_LastWaveletExcluded verifies the cascade draws pairs from
// the first `order` wavelets only: a NaN-poisoned Ψ_order never touches the
// output, while all emitted values stay finite.
func TestSecondOrder_LastWaveletExcluded(t *testing.T) {
	x := denseOf(t, [][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	id, err := matrix.Identity(2)
	require.NoError(t, err)

	const (
		order   = 2
		moments = 3
	)
	// Bank of order+1 filters; the last one is the poison pill.
	psi := []matrix.Matrix{id, id.Clone(), nanFilter(t, 2)}

	got, err := secondOrderMoments(psi, x, order, moments)
	require.NoError(t, err)
	// 3 columns × C(2,2)=1 pair × 2 powers
	require.Len(t, got, 6)
	for i, v := range got {
		assert.False(t, math.IsNaN(v), "entry %d must not observe Ψ_order", i)
	}
	// identity∘identity cascade reduces to plain column moments
	assert.Equal(t, 5.0, got[0], "Σ|x| of col 0")
	assert.Equal(t, 17.0, got[1], "Σ|x|² of col 0")
}

// TestSecondOrder_DegenerateOrders verifies order < 2 yields an empty block.
func TestSecondOrder_DegenerateOrders(t *testing.T) {
	x := denseOf(t, [][]float64{{1, 1, 1}})
	id, err := matrix.Identity(1)
	require.NoError(t, err)

	for _, order := range []int{0, 1} {
		psi := make([]matrix.Matrix, order+1)
		for k := range psi {
			psi[k] = id.Clone()
		}
		got, errM := secondOrderMoments(psi, x, order, 4)
		require.NoError(t, errM)
		assert.Empty(t, got, "order=%d has no scale pairs", order)
	}
}
