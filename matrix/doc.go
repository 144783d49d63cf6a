// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra kernel used by the
// scattering transform: a row-major float64 Matrix with bounds-checked
// accessors, plus the handful of operations the transform exercises —
// element-wise subtraction, matrix multiplication, scalar scaling,
// matrix-vector products, identity construction, and integer matrix powers.
//
// What
//
//   - Dense: concrete row-major implementation backed by a flat []float64,
//     chosen for cache friendliness and a fast path in every kernel.
//   - Mul / Sub / Scale / MatVec / Pow / Identity: allocating operations that
//     never mutate their inputs; algorithm pipelines can treat every produced
//     matrix as immutable.
//   - Validators: one canonical source of truth for nil/shape/length guards,
//     so kernels stay minimal and error tagging stays uniform.
//
// Determinism
//
//	All loops run in fixed row-major order; identical inputs produce
//	bit-identical outputs. There is no parallelism and no randomness.
//
// Errors
//
//	Package-level sentinels only (ErrNilMatrix, ErrBadShape, ErrOutOfRange,
//	ErrDimensionMismatch). Kernels wrap them with an operation tag via
//	fmt.Errorf("%s: %w", ...); callers branch with errors.Is.
//
// Complexity (n×m operands)
//
//   - At/Set: O(1) with bounds checks.
//   - Sub/Scale/MatVec: O(n·m).
//   - Mul: O(n·k·m) triple loop with a zero-skip fast path.
//   - Pow: O(log p) multiplications via binary exponentiation.
package matrix
