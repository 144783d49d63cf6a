// SPDX-License-Identifier: MIT

// Package matrix: allocating kernels over any Matrix implementation.
// Every function performs strict fail-fast validation, never mutates its
// inputs, and detects *Dense operands for a flat-slice fast path.
package matrix

// Operation name constants for unified error wrapping (no magic strings).
const (
	opSub    = "Sub"
	opMul    = "Mul"
	opScale  = "Scale"
	opMatVec = "MatVec"
	opPow    = "Pow"
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(tag string, err error) error {
	return validatorErrorf(tag, err)
}

// Sub returns a new Matrix containing the element-wise difference a - b.
// Stage 1 (Validate): nil-checks and shape match.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): fast-path for *Dense or fallback to interface.
// Complexity: O(r·c) time and memory.
func Sub(a, b Matrix) (Matrix, error) {
	// Stage 1: Validate inputs non-nil and same shape
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	// Stage 2: Allocate result Dense
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	// Stage 3: Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := 0; idx < rows*cols; idx++ {
				res.data[idx] = da.data[idx] - db.data[idx]
			}

			return res, nil
		}
	}

	// Fallback: generic interface loop
	var av, bv float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, _ = a.At(i, j)       // safe: bounds ensured
			bv, _ = b.At(i, j)       // safe: same shape
			_ = res.Set(i, j, av-bv) // safe: within bounds
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication of a and b (a × b).
// Stage 1 (Validate): nil-check and inner-dimension match.
// Stage 2 (Prepare): allocate result Dense.
// Stage 3 (Execute): triple loop, with a zero-skip fast-path for *Dense.
// Complexity: O(r·n·c) time and O(r·c) memory.
func Mul(a, b Matrix) (Matrix, error) {
	// Stage 1: Validate compatibility
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Stage 2: Allocate result Dense
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int
		av, bv  float64
	)
	// Stage 3: Fast-path for two Dense matrices (row-major ikj order)
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var offA, offB, offR int
			for i = 0; i < aRows; i++ {
				offA = i * aCols
				offR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[offA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					offB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[offR+j] += av * db.data[offB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: generic interface triple-loop
	var sum float64
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			sum = 0.0
			for k = 0; k < aCols; k++ {
				av, _ = a.At(i, k)
				if av == 0 {
					continue
				}
				bv, _ = b.At(k, j)
				sum += av * bv
			}
			_ = res.Set(i, j, sum)
		}
	}

	return res, nil
}

// Scale returns a new Matrix where each element of m is multiplied by alpha.
// Complexity: O(r·c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	// Stage 1: Validate input non-nil
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Stage 2: Allocate result Dense
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	// Stage 3: Fast-path for Dense
	if dm, ok := m.(*Dense); ok {
		for idx := 0; idx < rows*cols; idx++ {
			res.data[idx] = dm.data[idx] * alpha
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, _ = m.At(i, j)
			_ = res.Set(i, j, v*alpha)
		}
	}

	return res, nil
}

// MatVec computes the matrix-vector product y = m·x.
// Stage 1 (Validate): nil-check and len(x) == m.Cols().
// Stage 2 (Execute): row-wise dot products, fast-path for *Dense.
// Complexity: O(r·c) time, O(r) memory.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	// Stage 1: Validate input and vector length
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, cols); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	// Stage 2: Row-wise accumulation
	y := make([]float64, rows)
	if dm, ok := m.(*Dense); ok {
		var off int
		var sum float64
		for i := 0; i < rows; i++ {
			off = i * cols
			sum = 0.0
			for j := 0; j < cols; j++ {
				sum += dm.data[off+j] * x[j]
			}
			y[i] = sum
		}

		return y, nil
	}

	// Fallback: generic interface loop
	var v, sum float64
	for i := 0; i < rows; i++ {
		sum = 0.0
		for j := 0; j < cols; j++ {
			v, _ = m.At(i, j)
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// Pow raises the square matrix m to the integer power p by binary
// exponentiation. Pow(m, 0) is the identity; negative p is rejected.
// Stage 1 (Validate): nil-check, squareness, p ≥ 0.
// Stage 2 (Execute): square-and-multiply over the bits of p.
// Complexity: O(log p) multiplications, each O(n³).
func Pow(m Matrix, p int) (Matrix, error) {
	// Stage 1: Validate input
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if p < 0 {
		return nil, matrixErrorf(opPow, ErrNegativePower)
	}

	// Stage 2: Square-and-multiply
	res, err := Identity(m.Rows())
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	var acc Matrix = res
	base := m.Clone()
	for p > 0 {
		if p&1 == 1 {
			if acc, err = Mul(acc, base); err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
		p >>= 1
		if p == 0 {
			break // avoid one redundant squaring
		}
		if base, err = Mul(base, base); err != nil {
			return nil, matrixErrorf(opPow, err)
		}
	}

	return acc, nil
}
