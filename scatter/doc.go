// SPDX-License-Identifier: MIT

// Package scatter implements the geometric scattering transform for whole
// graphs: a fixed-length numeric embedding built from diffusion wavelets and
// statistical moments, with no learned parameters.
//
// What
//
//   - NormalizedAdjacency: the diffusion operator Â = ½(I + D⁻¹A) of one
//     graph, where D is the degree diagonal and A the binary adjacency with
//     rows in exact 0..n-1 order. Every vertex must have degree ≥ 1, else
//     ErrDegreeZero.
//   - Wavelets: the dyadic band-pass bank Ψ_k = Â^(2^k) − Â^(2^(k+1)) for
//     k = 0..order, computed by repeated sparse-style self-multiplication.
//     Later indices capture coarser diffusion scales.
//   - NodeFeatureMatrix: the n×3 structural descriptor — log(degree+1),
//     BFS eccentricity, local clustering coefficient — row-aligned with Â.
//   - GeoScattering: the batch estimator. Fit runs the full pipeline per
//     graph, concatenates the zero-, first-, and second-order moment blocks
//     into one row, and stacks rows in input order; Embedding returns the
//     G×F result after the batch completes.
//
// Moment blocks (x is each |feature column|; q ranges are half-open)
//
//   - Zero order:   Σ|x|^q           for q = 1..order          → 3·order values
//   - First order:  Σ|Ψ_k·x|^q       for k = 0..order,
//     q = 1..moments-1                                         → 3·(order+1)·(moments-1)
//   - Second order: Σ|Ψ_j·|Ψ_i·x||^q for 0 ≤ i < j ≤ order-1,
//     q = 1..moments-1                                         → 3·order·(order-1)/2·(moments-1)
//
// Two index-range quirks are intentional and load-bearing for compatibility
// with the reference transform: the zero-order block powers run over `order`
// (not `moments`), and the second-order cascade draws pairs from the first
// `order` wavelets only, so Ψ_order never participates in a cascade. Tests
// pin both behaviors; do not "fix" them.
//
// Determinism
//
//	Strictly sequential, single-threaded, no randomness: identical inputs
//	and options produce bit-identical embeddings. Row i of the output
//	depends only on input graph i.
//
// Failure policy
//
//	Fail-fast: the first graph that triggers ErrDegreeZero (operator
//	construction) or graph.ErrDisconnected (eccentricity) aborts the whole
//	batch; no partial embedding is retained. Numeric degeneracy (NaN/±Inf
//	from extreme orders) is NOT caught and propagates into the output —
//	a documented limitation, not a handled error.
//
// Usage
//
//	est := scatter.New(
//	    scatter.WithOrder(4),
//	    scatter.WithMoments(4),
//	    scatter.WithOnGraph(func(done, total int) { /* progress */ }),
//	)
//	if err := est.Fit(graphs); err != nil {
//	    // ErrNoGraphs, ErrGraphNil, ErrOptionViolation,
//	    // ErrDegreeZero, graph.ErrDisconnected, ...
//	}
//	emb, _ := est.Embedding() // G×est.Dim() matrix
//
// Options
//
//   - WithOrder(k):    number of dyadic wavelet scales minus one (default 4).
//   - WithMoments(m):  exclusive upper bound on first/second-order moment
//     powers (default 4).
//   - WithOnGraph(fn): progress hook fired once per completed graph;
//     purely informational, never alters results.
package scatter
