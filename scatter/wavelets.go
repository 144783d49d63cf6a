// SPDX-License-Identifier: MIT

// Package scatter: dyadic diffusion-wavelet bank construction.
package scatter

import (
	"fmt"

	"github.com/katalvlaran/geoscatter/matrix"
)

// Wavelets derives the band-pass bank Ψ_k = Â^(2^k) − Â^(2^(k+1)) for
// k = 0..order from the diffusion operator aHat.
//
// The dyadic powers are built incrementally: the running power Â^(2^k) is
// squared once per scale, so the whole bank costs order+1 matrix
// multiplications instead of recomputing each power from scratch. Exponents
// grow as 2^k, which bounds practical order to small integers; numeric
// underflow on large order is not specially handled and propagates.
//
// Stage 1 (Validate): nil guard and squareness.
// Stage 2 (Execute): square-and-subtract per scale.
//
// Returns the order+1 filters in scale order (later indices are coarser).
// The filters are consumed read-only by the moment aggregation stages.
// Complexity: O((order+1)·n³) time, O((order+1)·n²) memory.
func Wavelets(aHat matrix.Matrix, order int) ([]matrix.Matrix, error) {
	// Stage 1: Validate operator
	if err := matrix.ValidateNotNil(aHat); err != nil {
		return nil, fmt.Errorf("Wavelets: %w", err)
	}
	if err := matrix.ValidateSquare(aHat); err != nil {
		return nil, fmt.Errorf("Wavelets: %w", err)
	}
	if order < 0 {
		return nil, fmt.Errorf("Wavelets: order=%d: %w", order, ErrOptionViolation)
	}

	// Stage 2: Incremental dyadic powers
	psi := make([]matrix.Matrix, 0, order+1)
	cur := aHat.Clone() // Â^(2^0) = Â
	var (
		next matrix.Matrix
		band matrix.Matrix
		err  error
	)
	for k := 0; k <= order; k++ {
		// next = Â^(2^(k+1)) via one squaring of the running power.
		if next, err = matrix.Mul(cur, cur); err != nil {
			return nil, fmt.Errorf("Wavelets: scale %d: %w", k, err)
		}
		// Ψ_k isolates the diffusion band between the two scales.
		if band, err = matrix.Sub(cur, next); err != nil {
			return nil, fmt.Errorf("Wavelets: scale %d: %w", k, err)
		}
		psi = append(psi, band)
		cur = next
	}

	return psi, nil
}
