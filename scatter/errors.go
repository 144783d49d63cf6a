// SPDX-License-Identifier: MIT

// Package scatter: sentinel errors. Callers branch with errors.Is; the
// pipeline wraps sentinels with method context (%w) at the point of failure.
package scatter

import "errors"

var (
	// ErrGraphNil is returned when a nil graph appears in the input.
	ErrGraphNil = errors.New("scatter: graph is nil")

	// ErrNoGraphs is returned when Fit receives a nil or empty collection.
	ErrNoGraphs = errors.New("scatter: empty graph collection")

	// ErrDegreeZero indicates a vertex of degree 0 during diffusion-operator
	// construction; its inverse degree is undefined. Unrecoverable for the
	// graph, aborts the batch.
	ErrDegreeZero = errors.New("scatter: vertex with degree zero")

	// ErrOptionViolation is returned when an invalid Option is supplied
	// (e.g. negative order or moments).
	ErrOptionViolation = errors.New("scatter: invalid option supplied")

	// ErrDegenerateOptions is returned by Fit when the configured order and
	// moments yield a zero-length feature vector (order=0 with moments≤1):
	// there is no row to build.
	ErrDegenerateOptions = errors.New("scatter: hyperparameters yield empty feature vector")

	// ErrNotFitted is returned by Embedding before a successful Fit.
	ErrNotFitted = errors.New("scatter: estimator not fitted")
)
