// SPDX-License-Identifier: MIT

// Package graph provides the int-indexed simple undirected graph consumed by
// the scattering transform, together with the structural metrics the
// transform reads from it.
//
// What
//
//   - Graph: n vertices addressed by the dense contiguous range 0..n-1.
//     This indexing is a hard contract, not a convention: adjacency rows,
//     the inverse-degree diagonal, and the node-feature rows must all align
//     on the same range, so the type makes gaps impossible by construction
//     (vertices exist implicitly; only edges are added).
//   - AdjacencyMatrix: binary n×n dense adjacency, rows/columns in exact
//     index order 0..n-1.
//   - Eccentricities: per-vertex maximum BFS depth; fails with
//     ErrDisconnected when any sweep cannot reach every vertex.
//   - ClusteringCoefficients: per-vertex fraction of connected neighbor
//     pairs, in [0,1]; vertices with degree < 2 score 0.
//   - Cycle / Path / Complete / Star: deterministic topology constructors
//     used by tests and examples.
//
// Determinism
//
//	Neighbors returns ascending vertex order, BFS enqueues in that order,
//	and constructors emit edges in a fixed sequence; every derived value is
//	reproducible bit-for-bit.
//
// Concurrency
//
//	A Graph is not safe for concurrent mutation. All read-only metrics may
//	be called concurrently once construction is complete.
//
// Errors
//
//   - ErrGraphNil          if a nil *Graph is passed.
//   - ErrBadVertexCount    if a constructor receives n below its minimum.
//   - ErrVertexOutOfRange  if an edge endpoint is outside 0..n-1.
//   - ErrLoopEdge          if u == v (simple graphs carry no loops).
//   - ErrDisconnected      if eccentricity is undefined for some vertex.
package graph
