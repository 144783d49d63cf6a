// SPDX-License-Identifier: MIT

// Package graph: sentinel errors. Callers branch with errors.Is; sentinels
// are wrapped with method context (%w) at the point of failure.
package graph

import "errors"

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("graph: graph is nil")

	// ErrBadVertexCount indicates a vertex count below the minimum required
	// by the requested constructor.
	ErrBadVertexCount = errors.New("graph: vertex count too small")

	// ErrVertexOutOfRange indicates an edge endpoint outside the dense
	// contiguous index range 0..n-1.
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrLoopEdge indicates a self-loop (u == v); simple graphs reject loops.
	ErrLoopEdge = errors.New("graph: self-loop not allowed")

	// ErrDisconnected indicates that a BFS sweep could not reach every
	// vertex, leaving eccentricity undefined.
	ErrDisconnected = errors.New("graph: graph is disconnected")
)
