// SPDX-License-Identifier: MIT

// Package scatter: normalized diffusion-operator construction.
package scatter

import (
	"fmt"

	"github.com/katalvlaran/geoscatter/graph"
	"github.com/katalvlaran/geoscatter/matrix"
)

// Lazy-walk mixing weight: Â = diffusionWeight·(I + D⁻¹A) keeps half the
// mass in place per step, which makes the operator's spectrum non-negative.
const diffusionWeight = 0.5

// NormalizedAdjacency builds the diffusion operator Â = ½(I + D⁻¹A) of g.
//
// The degree vector is computed over the same 0..n-1 range used by
// AdjacencyMatrix, so row i of A and the i-th inverse degree always refer to
// the same vertex — the alignment invariant the whole transform rests on.
//
// Stage 1 (Validate): nil guard; every vertex must have degree ≥ 1.
// Stage 2 (Prepare): materialize adjacency with explicit index order.
// Stage 3 (Execute): write ½(δ_ij + a_ij/deg(i)) row by row.
//
// Returns ErrGraphNil or ErrDegreeZero (wrapped with the offending vertex).
// Complexity: O(n²) time and memory.
func NormalizedAdjacency(g *graph.Graph) (*matrix.Dense, error) {
	// Stage 1: Validate graph and degrees
	if g == nil {
		return nil, fmt.Errorf("NormalizedAdjacency: %w", ErrGraphNil)
	}
	n := g.NodeCount()
	invDeg := make([]float64, n)
	for v := 0; v < n; v++ {
		d, err := g.Degree(v)
		if err != nil {
			return nil, fmt.Errorf("NormalizedAdjacency: Degree(%d): %w", v, err)
		}
		if d == 0 {
			return nil, fmt.Errorf("NormalizedAdjacency: vertex %d: %w", v, ErrDegreeZero)
		}
		invDeg[v] = 1.0 / float64(d)
	}

	// Stage 2: Materialize adjacency in explicit 0..n-1 order
	adj, err := g.AdjacencyMatrix()
	if err != nil {
		return nil, fmt.Errorf("NormalizedAdjacency: %w", err)
	}

	// Stage 3: Assemble Â = ½(I + D⁻¹A)
	aHat, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("NormalizedAdjacency: %w", err)
	}
	var aij float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			aij, _ = adj.At(i, j) // safe: same shape by construction
			v := diffusionWeight * aij * invDeg[i]
			if i == j {
				v += diffusionWeight // identity contribution on the diagonal
			}
			if v != 0 {
				_ = aHat.Set(i, j, v) // safe: within bounds
			}
		}
	}

	return aHat, nil
}
