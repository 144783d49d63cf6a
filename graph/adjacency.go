// SPDX-License-Identifier: MIT

// Package graph: dense adjacency export.
package graph

import (
	"fmt"

	"github.com/katalvlaran/geoscatter/matrix"
)

// adjacencyEdgeValue is the entry written for each present edge (binary
// adjacency; the transform never consumes weights).
const adjacencyEdgeValue = 1.0

// AdjacencyMatrix materializes the binary n×n adjacency matrix with rows and
// columns in the exact index order 0..n-1. That explicit ordering is the
// alignment contract shared with the inverse-degree diagonal and the
// node-feature rows built elsewhere; it is never inferred from iteration
// order of the underlying sets.
// Stage 1 (Validate): nil guard.
// Stage 2 (Prepare): allocate n×n Dense.
// Stage 3 (Execute): write 1.0 for each ordered pair (v,u) with u adjacent to v.
// Complexity: O(n²) allocation + O(E) writes.
func (g *Graph) AdjacencyMatrix() (*matrix.Dense, error) {
	if g == nil {
		return nil, fmt.Errorf("AdjacencyMatrix: %w", ErrGraphNil)
	}
	a, err := matrix.NewDense(g.n, g.n)
	if err != nil {
		return nil, fmt.Errorf("AdjacencyMatrix: %w", err)
	}
	for v := 0; v < g.n; v++ {
		for u := range g.adj[v] {
			// Symmetric counterpart is written when the loop reaches u.
			_ = a.Set(v, u, adjacencyEdgeValue) // safe: u,v validated at AddEdge time
		}
	}

	return a, nil
}
