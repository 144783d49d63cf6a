// SPDX-License-Identifier: MIT

// Package scatter: the GeoScattering batch estimator.
package scatter

import (
	"fmt"

	"github.com/katalvlaran/geoscatter/graph"
	"github.com/katalvlaran/geoscatter/matrix"
)

// GeoScattering computes geometric scattering embeddings for a collection of
// graphs. Hyperparameters are fixed at construction; Fit processes graphs
// strictly sequentially and Embedding exposes the stacked result afterwards.
//
// The zero value is not usable; construct with New.
type GeoScattering struct {
	opts Options       // immutable after New
	emb  *matrix.Dense // G×F embedding, set by a successful Fit
}

// New creates an estimator with the given functional options applied on top
// of DefaultOptions. Invalid options are latched and surfaced as
// ErrOptionViolation by Fit.
func New(opts ...Option) *GeoScattering {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &GeoScattering{opts: o}
}

// Dim returns the feature-vector length F implied by the configured order
// and moments:
//
//	F = 3·order + 3·(order+1)·(moments-1) + 3·C(order,2)·(moments-1)
//
// F is deterministic given the hyperparameters and independent of graph
// size. Degenerate configurations may yield 0.
// Complexity: O(1).
func (s *GeoScattering) Dim() int {
	order, moments := s.opts.Order, s.opts.Moments
	qRange := moments - 1
	if qRange < 0 {
		qRange = 0
	}
	pairs := order * (order - 1) / 2

	return featureColumns*order + featureColumns*(order+1)*qRange + featureColumns*pairs*qRange
}

// Fit runs the full transform on every graph in input order and stacks the
// per-graph feature rows into the G×F embedding matrix.
//
// Stage 1 (Validate): latched option errors, non-empty collection,
// non-degenerate F.
// Stage 2 (Execute): per graph — diffusion operator, wavelet bank, node
// features, three moment blocks, concatenation — then the progress hook.
// Stage 3 (Finalize): retain the embedding for Embedding().
//
// Fail-fast: the first failing graph aborts the batch and the estimator
// keeps no partial result. Only one graph's intermediates are live at a
// time; nothing is shared across graphs except the hyperparameters.
//
// Returns ErrOptionViolation, ErrNoGraphs, ErrDegenerateOptions,
// ErrGraphNil, ErrDegreeZero, or graph.ErrDisconnected.
func (s *GeoScattering) Fit(graphs []*graph.Graph) error {
	// Stage 1: Validate options and input shape
	if s.opts.err != nil {
		return fmt.Errorf("Fit: %w", s.opts.err)
	}
	if len(graphs) == 0 {
		return fmt.Errorf("Fit: %w", ErrNoGraphs)
	}
	dim := s.Dim()
	if dim == 0 {
		return fmt.Errorf("Fit: order=%d moments=%d: %w",
			s.opts.Order, s.opts.Moments, ErrDegenerateOptions)
	}

	// Stage 2: Sequential per-graph transform
	emb, err := matrix.NewDense(len(graphs), dim)
	if err != nil {
		return fmt.Errorf("Fit: %w", err)
	}
	total := len(graphs)
	for i, g := range graphs {
		row, err := s.transform(g)
		if err != nil {
			return fmt.Errorf("Fit: graph %d: %w", i, err)
		}
		for j, v := range row {
			_ = emb.Set(i, j, v) // safe: len(row) == dim by construction
		}
		s.opts.OnGraph(i+1, total)
	}

	// Stage 3: Retain result
	s.emb = emb

	return nil
}

// transform computes the feature row of a single graph: zero-, first-, and
// second-order moment blocks concatenated in that fixed order.
func (s *GeoScattering) transform(g *graph.Graph) ([]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	aHat, err := NormalizedAdjacency(g)
	if err != nil {
		return nil, err
	}
	psi, err := Wavelets(aHat, s.opts.Order)
	if err != nil {
		return nil, err
	}
	x, err := NodeFeatureMatrix(g)
	if err != nil {
		return nil, err
	}

	zero := zeroOrderMoments(x, s.opts.Order)
	first, err := firstOrderMoments(psi, x, s.opts.Moments)
	if err != nil {
		return nil, err
	}
	second, err := secondOrderMoments(psi, x, s.opts.Order, s.opts.Moments)
	if err != nil {
		return nil, err
	}

	row := make([]float64, 0, len(zero)+len(first)+len(second))
	row = append(row, zero...)
	row = append(row, first...)
	row = append(row, second...)

	return row, nil
}

// Embedding returns the G×F matrix produced by the last successful Fit,
// one row per input graph in input order. The matrix is owned by the
// estimator; treat it as read-only.
// Returns ErrNotFitted before a successful Fit.
// Complexity: O(1).
func (s *GeoScattering) Embedding() (*matrix.Dense, error) {
	if s.emb == nil {
		return nil, fmt.Errorf("Embedding: %w", ErrNotFitted)
	}

	return s.emb, nil
}
