// SPDX-License-Identifier: MIT

// Package scatter: tunable options for the GeoScattering estimator.
package scatter

import "fmt"

// Documented defaults (single source of truth, mirrored by DefaultOptions).
const (
	// DefaultOrder is the default number of dyadic wavelet scales minus one.
	// It controls the zero-order power range and the second-order pair count.
	DefaultOrder = 4

	// DefaultMoments is the default exclusive upper bound on the moment
	// powers used by the first- and second-order blocks.
	DefaultMoments = 4
)

// Option configures the estimator via functional arguments.
// If an Option is invalid (e.g. negative order), the violation is recorded
// internally and surfaced as ErrOptionViolation when Fit is invoked.
type Option func(*Options)

// Options holds the hyperparameters and callbacks of the estimator.
// They are set once at construction and never mutated afterwards.
type Options struct {
	// Order is the number of dyadic wavelet scales minus one: the bank
	// holds Order+1 filters Ψ_0..Ψ_Order.
	Order int

	// Moments is the exclusive upper bound on the moment powers of the
	// first- and second-order blocks (powers run 1..Moments-1).
	Moments int

	// OnGraph is called once after each graph finishes processing, with the
	// number of completed graphs and the batch size. Purely informational;
	// it cannot alter computation order or results.
	OnGraph func(done, total int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the documented defaults:
// Order=4, Moments=4, no-op progress hook.
func DefaultOptions() Options {
	return Options{
		Order:   DefaultOrder,
		Moments: DefaultMoments,
		OnGraph: func(int, int) {},
		err:     nil,
	}
}

// WithOrder sets the wavelet scale count minus one.
//
//	k ≥ 0: use k (k == 0 degenerates the zero- and second-order blocks,
//	       which is accepted behavior)
//	k < 0: invalid option → ErrOptionViolation at Fit time
func WithOrder(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: Order cannot be negative (%d)", ErrOptionViolation, k)

			return
		}
		o.Order = k
	}
}

// WithMoments sets the exclusive upper bound on first/second-order moment
// powers.
//
//	m ≥ 0: use m (m ≤ 1 empties the first- and second-order blocks,
//	       which is accepted behavior)
//	m < 0: invalid option → ErrOptionViolation at Fit time
func WithMoments(m int) Option {
	return func(o *Options) {
		if m < 0 {
			o.err = fmt.Errorf("%w: Moments cannot be negative (%d)", ErrOptionViolation, m)

			return
		}
		o.Moments = m
	}
}

// WithOnGraph registers a progress hook fired once per completed graph.
// A nil fn is ignored (the no-op default stays in place).
func WithOnGraph(fn func(done, total int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGraph = fn
		}
	}
}
