// SPDX-License-Identifier: MIT

// Package graph: structural per-vertex metrics (BFS eccentricity and local
// clustering coefficients) consumed by the node-feature extraction stage.
package graph

import "fmt"

// queueItem pairs a vertex with its BFS depth from the sweep origin.
type queueItem struct {
	v     int
	depth int
}

// eccentricityFrom runs one BFS sweep from start and returns the maximum
// depth reached plus the number of vertices visited. Neighbors are enqueued
// in ascending order, so the sweep is fully deterministic.
// Complexity: O(V + E) time, O(V) memory.
func (g *Graph) eccentricityFrom(start int) (maxDepth, visited int) {
	seen := make([]bool, g.n)
	queue := make([]queueItem, 0, g.n)
	queue = append(queue, queueItem{v: start, depth: 0})
	seen[start] = true
	visited = 1

	var item queueItem
	for len(queue) > 0 {
		item = queue[0]
		queue = queue[1:]
		if item.depth > maxDepth {
			maxDepth = item.depth
		}
		nbrs, _ := g.Neighbors(item.v) // safe: item.v originated inside 0..n-1
		for _, u := range nbrs {
			if seen[u] {
				continue
			}
			seen[u] = true
			visited++
			queue = append(queue, queueItem{v: u, depth: item.depth + 1})
		}
	}

	return maxDepth, visited
}

// Eccentricities returns, for each vertex in index order, the maximum
// unweighted shortest-path distance to any other vertex.
// Requires a connected graph: if any sweep misses a vertex the value is
// undefined and the call fails with ErrDisconnected (fail-fast, no partial
// slice). A single-vertex graph has eccentricity 0.
// Complexity: O(V·(V+E)) time, O(V) memory.
func (g *Graph) Eccentricities() ([]float64, error) {
	if g == nil {
		return nil, fmt.Errorf("Eccentricities: %w", ErrGraphNil)
	}
	ecc := make([]float64, g.n)
	for v := 0; v < g.n; v++ {
		depth, visited := g.eccentricityFrom(v)
		if visited != g.n {
			return nil, fmt.Errorf("Eccentricities: vertex %d reaches %d of %d: %w",
				v, visited, g.n, ErrDisconnected)
		}
		ecc[v] = float64(depth)
	}

	return ecc, nil
}

// ClusteringCoefficients returns, for each vertex in index order, the
// fraction of its neighbor pairs that are themselves adjacent, in [0,1].
// Vertices with degree < 2 have no neighbor pairs and score 0.
// Complexity: O(sum over v of deg(v)²) with O(1) pair lookups.
func (g *Graph) ClusteringCoefficients() ([]float64, error) {
	if g == nil {
		return nil, fmt.Errorf("ClusteringCoefficients: %w", ErrGraphNil)
	}
	coeff := make([]float64, g.n)
	for v := 0; v < g.n; v++ {
		nbrs, _ := g.Neighbors(v) // safe: v in range by loop bounds
		deg := len(nbrs)
		if deg < 2 {
			continue // no pairs → coefficient stays 0
		}
		links := 0
		for i := 0; i < deg; i++ {
			for j := i + 1; j < deg; j++ {
				if g.HasEdge(nbrs[i], nbrs[j]) {
					links++
				}
			}
		}
		pairs := deg * (deg - 1) / 2
		coeff[v] = float64(links) / float64(pairs)
	}

	return coeff, nil
}
