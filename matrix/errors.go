// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. Kernels return these
// sentinels (wrapped with an operation tag via %w) and tests match them with
// errors.Is. No kernel panics on user-triggered conditions.
package matrix

import "errors"

var (
	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0).
	// Creation paths must validate before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Sub on different shapes, Mul where a.Cols != b.Rows, or a vector
	// whose length does not match the matrix dimension.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNegativePower is returned by Pow for a negative exponent; inverse
	// powers are intentionally unsupported.
	ErrNegativePower = errors.New("matrix: negative power")
)
