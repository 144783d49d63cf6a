// SPDX-License-Identifier: MIT

// Package graph: the Graph type and its structural accessors.
package graph

import (
	"fmt"
	"sort"
)

// Graph is a simple undirected graph over the dense vertex range 0..n-1.
// Vertices exist implicitly from construction; only edges are mutable.
// Parallel edges are deduplicated (idempotent AddEdge), loops are rejected.
type Graph struct {
	n   int                // vertex count; indices are exactly 0..n-1
	adj []map[int]struct{} // adjacency sets, one per vertex
}

// New creates a graph with n isolated vertices indexed 0..n-1.
// Returns ErrBadVertexCount if n <= 0.
// Complexity: O(n).
func New(n int) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("New: n=%d: %w", n, ErrBadVertexCount)
	}
	adj := make([]map[int]struct{}, n)
	for i := range adj {
		adj[i] = make(map[int]struct{})
	}

	return &Graph{n: n, adj: adj}, nil
}

// NodeCount returns the number of vertices n. Complexity: O(1).
func (g *Graph) NodeCount() int { return g.n }

// checkVertex validates that v lies in 0..n-1.
func (g *Graph) checkVertex(method string, v int) error {
	if v < 0 || v >= g.n {
		return fmt.Errorf("%s: vertex %d outside [0,%d): %w", method, v, g.n, ErrVertexOutOfRange)
	}

	return nil
}

// AddEdge inserts the undirected edge {u, v}. Re-adding an existing edge is
// a no-op. Returns ErrVertexOutOfRange for endpoints outside 0..n-1 and
// ErrLoopEdge when u == v.
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int) error {
	if err := g.checkVertex("AddEdge", u); err != nil {
		return err
	}
	if err := g.checkVertex("AddEdge", v); err != nil {
		return err
	}
	if u == v {
		return fmt.Errorf("AddEdge: vertex %d: %w", u, ErrLoopEdge)
	}
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}

	return nil
}

// HasEdge reports whether the undirected edge {u, v} exists.
// Out-of-range endpoints report false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}
	_, ok := g.adj[u][v]

	return ok
}

// Degree returns the number of neighbors of v.
// Complexity: O(1).
func (g *Graph) Degree(v int) (int, error) {
	if err := g.checkVertex("Degree", v); err != nil {
		return 0, err
	}

	return len(g.adj[v]), nil
}

// Neighbors returns the neighbors of v in ascending index order.
// The ascending order is what makes every downstream traversal
// deterministic; callers must not rely on the slice being shared.
// Complexity: O(deg·log deg).
func (g *Graph) Neighbors(v int) ([]int, error) {
	if err := g.checkVertex("Neighbors", v); err != nil {
		return nil, err
	}
	out := make([]int, 0, len(g.adj[v]))
	for u := range g.adj[v] {
		out = append(out, u)
	}
	sort.Ints(out)

	return out, nil
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(n).
func (g *Graph) EdgeCount() int {
	total := 0
	for _, set := range g.adj {
		total += len(set)
	}

	return total / 2 // each undirected edge counted from both endpoints
}
