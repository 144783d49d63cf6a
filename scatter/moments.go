// SPDX-License-Identifier: MIT

// Package scatter: zero/first/second-order moment aggregation.
//
// All three stages operate on |x| throughout: feature columns are taken by
// absolute value before any power or sum, and every filtered signal is
// rectified again before its moments. The columns produced by
// NodeFeatureMatrix are already non-negative, but the rectification keeps
// odd-order moments well-defined for any signed signal the cascade emits.
package scatter

import (
	"fmt"
	"math"

	"github.com/katalvlaran/geoscatter/matrix"
)

// firstMomentPower is the lowest power of every moment range (Σ|x|^1).
const firstMomentPower = 1

// absColumn extracts |column c| of X as a plain vector.
// Complexity: O(n).
func absColumn(x *matrix.Dense, c int) []float64 {
	n := x.Rows()
	out := make([]float64, n)
	var v float64
	for i := 0; i < n; i++ {
		v, _ = x.At(i, c) // safe: c < featureColumns, i < n
		out[i] = math.Abs(v)
	}

	return out
}

// absVec rectifies v in place and returns it.
func absVec(v []float64) []float64 {
	for i := range v {
		v[i] = math.Abs(v[i])
	}

	return v
}

// sumPower computes Σ_i |v_i|^q in fixed index order.
// Complexity: O(n) per call.
func sumPower(v []float64, q int) float64 {
	sum := 0.0
	for _, e := range v {
		sum += math.Pow(math.Abs(e), float64(q))
	}

	return sum
}

// zeroOrderMoments emits, for each feature column, Σ|x|^q for
// q = 1..order. The power range deliberately runs over the wavelet order,
// NOT the moments bound — a reference-transform quirk kept verbatim for
// embedding compatibility.
// Produces featureColumns·order values. Complexity: O(3·order·n).
func zeroOrderMoments(x *matrix.Dense, order int) []float64 {
	features := make([]float64, 0, featureColumns*order)
	for c := 0; c < featureColumns; c++ {
		col := absColumn(x, c)
		for q := firstMomentPower; q <= order; q++ {
			features = append(features, sumPower(col, q))
		}
	}

	return features
}

// firstOrderMoments emits, for each feature column and each wavelet Ψ_k,
// Σ|Ψ_k·x|^q for q = 1..moments-1. All order+1 filters participate.
// Produces featureColumns·(order+1)·(moments-1) values.
// Complexity: O(3·(order+1)·n²).
func firstOrderMoments(psi []matrix.Matrix, x *matrix.Dense, moments int) ([]float64, error) {
	qRange := moments - 1
	if qRange < 0 {
		qRange = 0 // moments ≤ 1 empties the block
	}
	features := make([]float64, 0, featureColumns*len(psi)*qRange)
	for c := 0; c < featureColumns; c++ {
		col := absColumn(x, c)
		for k, p := range psi {
			filtered, err := matrix.MatVec(p, col)
			if err != nil {
				return nil, fmt.Errorf("firstOrderMoments: wavelet %d: %w", k, err)
			}
			for q := firstMomentPower; q < moments; q++ {
				features = append(features, sumPower(filtered, q))
			}
		}
	}

	return features, nil
}

// secondOrderMoments emits, for each feature column and each ordered scale
// pair (i, j) with 0 ≤ i < j ≤ order-1, Σ|Ψ_j·|Ψ_i·x||^q for
// q = 1..moments-1 — the scattering cascade capturing cross-scale
// interaction. The pair loops draw from the first `order` wavelets only, so
// Ψ_order never cascades; kept verbatim from the reference transform.
// Produces featureColumns·C(order,2)·(moments-1) values.
// Complexity: O(3·order²·n²).
func secondOrderMoments(psi []matrix.Matrix, x *matrix.Dense, order, moments int) ([]float64, error) {
	pairs := order * (order - 1) / 2
	qRange := moments - 1
	if qRange < 0 {
		qRange = 0 // moments ≤ 1 empties the block
	}
	features := make([]float64, 0, featureColumns*pairs*qRange)
	for c := 0; c < featureColumns; c++ {
		col := absColumn(x, c)
		for i := 0; i < order-1; i++ {
			for j := i + 1; j < order; j++ {
				inner, err := matrix.MatVec(psi[i], col)
				if err != nil {
					return nil, fmt.Errorf("secondOrderMoments: wavelet %d: %w", i, err)
				}
				cascade, err := matrix.MatVec(psi[j], absVec(inner))
				if err != nil {
					return nil, fmt.Errorf("secondOrderMoments: wavelet %d: %w", j, err)
				}
				cascade = absVec(cascade)
				for q := firstMomentPower; q < moments; q++ {
					features = append(features, sumPower(cascade, q))
				}
			}
		}
	}

	return features, nil
}
