// SPDX-License-Identifier: MIT

// Package graph: deterministic topology constructors.
//
// Contract (shared by all constructors):
//   - Vertices are the dense range 0..n-1.
//   - Edges are emitted in a fixed ascending order, so two calls with the
//     same n produce identical graphs.
//   - Only sentinel errors are returned; constructors never panic.
package graph

import "fmt"

// Minimum vertex counts per topology (no magic numbers).
const (
	minCycleNodes    = 3 // a simple cycle needs at least a triangle
	minPathNodes     = 2 // a path needs at least one edge
	minCompleteNodes = 1 // K_1 is a single isolated vertex
	minStarNodes     = 2 // a star needs the hub plus one leaf
)

// Cycle builds the n-vertex simple cycle C_n: edges i—(i+1)%n for i=0..n-1.
// Returns ErrBadVertexCount if n < 3.
// Complexity: O(n).
func Cycle(n int) (*Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrBadVertexCount)
	}
	g, err := New(n)
	if err != nil {
		return nil, fmt.Errorf("Cycle: %w", err)
	}
	for i := 0; i < n; i++ {
		if err = g.AddEdge(i, (i+1)%n); err != nil {
			return nil, fmt.Errorf("Cycle: AddEdge(%d,%d): %w", i, (i+1)%n, err)
		}
	}

	return g, nil
}

// Path builds the n-vertex path P_n: edges i—(i+1) for i=0..n-2.
// Returns ErrBadVertexCount if n < 2.
// Complexity: O(n).
func Path(n int) (*Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrBadVertexCount)
	}
	g, err := New(n)
	if err != nil {
		return nil, fmt.Errorf("Path: %w", err)
	}
	for i := 0; i < n-1; i++ {
		if err = g.AddEdge(i, i+1); err != nil {
			return nil, fmt.Errorf("Path: AddEdge(%d,%d): %w", i, i+1, err)
		}
	}

	return g, nil
}

// Complete builds the complete graph K_n: every unordered pair is an edge.
// Returns ErrBadVertexCount if n < 1.
// Complexity: O(n²).
func Complete(n int) (*Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrBadVertexCount)
	}
	g, err := New(n)
	if err != nil {
		return nil, fmt.Errorf("Complete: %w", err)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = g.AddEdge(i, j); err != nil {
				return nil, fmt.Errorf("Complete: AddEdge(%d,%d): %w", i, j, err)
			}
		}
	}

	return g, nil
}

// Star builds the n-vertex star S_n with hub 0 and leaves 1..n-1.
// Returns ErrBadVertexCount if n < 2.
// Complexity: O(n).
func Star(n int) (*Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrBadVertexCount)
	}
	g, err := New(n)
	if err != nil {
		return nil, fmt.Errorf("Star: %w", err)
	}
	for leaf := 1; leaf < n; leaf++ {
		if err = g.AddEdge(0, leaf); err != nil {
			return nil, fmt.Errorf("Star: AddEdge(0,%d): %w", leaf, err)
		}
	}

	return g, nil
}
