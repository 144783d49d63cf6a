// SPDX-License-Identifier: MIT

package scatter_test

import (
	"testing"

	"github.com/katalvlaran/geoscatter/graph"
	"github.com/katalvlaran/geoscatter/scatter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const floatTol = 1e-12

// TestNormalizedAdjacency_RowStochastic verifies Â = ½(I + D⁻¹A): every row
// of a graph with all degrees ≥ 1 sums to exactly ½ + ½ = 1, and the
// diagonal of a loop-free graph carries the ½ identity contribution.
func TestNormalizedAdjacency_RowStochastic(t *testing.T) {
	g, err := graph.Cycle(4)
	require.NoError(t, err)

	aHat, err := scatter.NormalizedAdjacency(g)
	require.NoError(t, err)

	n := g.NodeCount()
	require.Equal(t, n, aHat.Rows())
	require.Equal(t, n, aHat.Cols())
	for i := 0; i < n; i++ {
		rowSum := 0.0
		for j := 0; j < n; j++ {
			v, errAt := aHat.At(i, j)
			require.NoError(t, errAt)
			rowSum += v
		}
		assert.InDelta(t, 1.0, rowSum, floatTol, "row %d must sum to 1", i)

		diag, _ := aHat.At(i, i)
		assert.Equal(t, 0.5, diag, "diagonal carries the identity half")
	}
}

// TestNormalizedAdjacency_OffDiagonal pins the D⁻¹A half on a path graph,
// where end vertices (degree 1) spread ½ to their only neighbor and inner
// vertices (degree 2) spread ¼ to each side.
func TestNormalizedAdjacency_OffDiagonal(t *testing.T) {
	g, err := graph.Path(3)
	require.NoError(t, err)

	aHat, err := scatter.NormalizedAdjacency(g)
	require.NoError(t, err)

	v, _ := aHat.At(0, 1)
	assert.Equal(t, 0.5, v, "degree-1 end vertex")
	v, _ = aHat.At(1, 0)
	assert.Equal(t, 0.25, v, "degree-2 inner vertex")
	v, _ = aHat.At(1, 2)
	assert.Equal(t, 0.25, v)
	v, _ = aHat.At(0, 2)
	assert.Equal(t, 0.0, v, "non-adjacent pair stays zero")
}

// TestNormalizedAdjacency_DegreeZero ensures an isolated vertex is a hard stop.
func TestNormalizedAdjacency_DegreeZero(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1)) // vertex 2 stays isolated

	_, err = scatter.NormalizedAdjacency(g)
	assert.ErrorIs(t, err, scatter.ErrDegreeZero)
}

// TestNormalizedAdjacency_NilGraph covers the nil guard.
func TestNormalizedAdjacency_NilGraph(t *testing.T) {
	_, err := scatter.NormalizedAdjacency(nil)
	assert.ErrorIs(t, err, scatter.ErrGraphNil)
}
