// Package geoscatter computes fixed-length whole-graph embeddings via the
// geometric scattering transform — diffusion wavelets over a normalized
// adjacency operator, applied to structural node features and summarized by
// statistical moments. No learned parameters, no randomness, no I/O.
//
// 🚀 What is geoscatter?
//
//	A small, deterministic, pure-Go library that brings together:
//		• matrix/  — dense row-major float64 kernel (Mul, Sub, Scale, MatVec, dyadic Pow)
//		• graph/   — int-indexed simple undirected graphs with the dense 0..n-1
//		             contract, BFS eccentricity, clustering coefficients, and
//		             deterministic topology constructors (Cycle, Path, Complete, Star)
//		• scatter/ — the transform itself: normalized diffusion operator,
//		             dyadic wavelet bank, node feature extraction, zero/first/
//		             second-order moment aggregation, and the GeoScattering
//		             batch estimator (Fit → Embedding)
//
// ✨ Why choose geoscatter?
//
//   - Deterministic – bit-identical output for identical input; no hidden RNG
//   - Fail-fast – sentinel errors, errors.Is-friendly, no panics on user input
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – progress hooks (WithOnGraph) for long batches
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	a 4-cycle: every node has degree 2, eccentricity 2, clustering 0.
//
//	g, _ := graph.Cycle(4)
//	est := scatter.New(scatter.WithOrder(4), scatter.WithMoments(4))
//	if err := est.Fit([]*graph.Graph{g}); err != nil { ... }
//	emb := est.Embedding() // 1×est.Dim() matrix
//
// Dive into scatter/doc.go for the full transform walkthrough.
package geoscatter
