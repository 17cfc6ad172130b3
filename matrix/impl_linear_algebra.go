// SPDX-License-Identifier: MIT
// Package matrix provides whole-matrix arithmetic: element-wise addition and
// subtraction, the matrix product, scalar scaling, the Hadamard product and
// transpose. Every kernel validates before touching storage and returns a
// sentinel wrapped with its operation tag on failure.
//
// Purpose:
//   - Copy-producing kernels (Add, Sub, Mul, Scale, ...) never mutate operands.
//   - In-place methods (AddInPlace, SubInPlace, MulInPlace, ScaleInPlace) mutate
//     the receiver and return it so calls chain.
//
// Notes:
//   - All loops walk the flat row-major buffers directly with fixed orders.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opScale      = "Scale"
	opHadamard   = "Hadamard"
	opTranspose  = "Transpose"
	opAddInPlace = "AddInPlace"
	opSubInPlace = "SubInPlace"
	opMulInPlace = "MulInPlace"
)

// addSub computes element-wise out = a + b (sub=false) or a - b (sub=true).
// Inputs must have identical shapes. A fresh Matrix is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: single flat loop 0..n-1 over both buffers.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (wrapped with opTag).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub[T Number](a, b *Matrix[T], sub bool, opTag string) (*Matrix[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if a.Empty() {
		return &Matrix[T]{}, nil
	}

	res := &Matrix[T]{rows: a.rows, cols: a.cols, data: make([]T, len(a.data))}
	if sub {
		for idx := range res.data {
			res.data[idx] = a.data[idx] - b.data[idx]
		}
	} else {
		for idx := range res.data {
			res.data[idx] = a.data[idx] + b.data[idx]
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return addSub(a, b, true, opSub) }

// mul is the product kernel shared by Mul and MulInPlace.
// Row-major i→k→j loop: C[i,:] += A[i,k] * B[k,:].
// Zero A[i,k] are not skipped: 0*Inf and 0*NaN must still reach the sum.
func mul[T Number](a, b *Matrix[T]) *Matrix[T] {
	aRows, aCols, bCols := a.rows, a.cols, b.cols
	if aRows == 0 || bCols == 0 {
		return &Matrix[T]{}
	}
	res := &Matrix[T]{rows: aRows, cols: bCols, data: make([]T, aRows*bCols)}

	var (
		i, j, k                            int
		av                                 T
		rowOffsetA, rowOffsetB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowOffsetA+k]
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * b.data[rowOffsetB+j]
			}
		}
	}

	return res
}

// Mul performs the matrix product C = A × B, where A is m×k and B is k×n,
// yielding an m×n result with C[i][j] = Σ_t A[i][t]*B[t][j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrShapeMismatch (A.Cols() != B.Rows()).
//
// Complexity:
//   - Time O(m*k*n), Space O(m*n).
func Mul[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return mul(a, b), nil
}

// Scale returns a fresh matrix with every element of m multiplied by alpha (m * alpha).
// There is no shape constraint.
func Scale[T Number](m *Matrix[T], alpha T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := m.Clone()
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}

// ScaleBy returns alpha * m, multiplying from the left.
func ScaleBy[T Number](alpha T, m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := m.Clone()
	for idx := range res.data {
		res.data[idx] = alpha * res.data[idx]
	}

	return res, nil
}

// Hadamard computes the element-wise product (a ⊙ b) into a fresh matrix.
// Hadamard ≠ matrix multiplication; use Mul for A×B.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch.
func Hadamard[T Number](a, b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	res := a.Clone()
	for idx := range res.data {
		res.data[idx] *= b.data[idx]
	}

	return res, nil
}

// Transpose returns mᵀ as a fresh cols×rows matrix.
// The read side walks each source column with a column cursor.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if m.Empty() {
		return &Matrix[T]{}, nil
	}

	res := &Matrix[T]{rows: m.cols, cols: m.rows, data: make([]T, len(m.data))}
	var j, base int
	for j = 0; j < m.cols; j++ {
		col, err := m.Col(j)
		if err != nil {
			return nil, matrixErrorf(opTranspose, fmt.Errorf("Col(%d): %w", j, err))
		}
		base = j * res.cols
		for i, v := range col.All() {
			res.data[base+i] = v
		}
	}

	return res, nil
}

// ---------- in-place forms ----------

// AddInPlace performs m += b element-wise and returns m for chaining.
// Shapes are validated before any element is written.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (m unchanged).
func (m *Matrix[T]) AddInPlace(b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return m, matrixErrorf(opAddInPlace, err)
	}
	for idx := range m.data {
		m.data[idx] += b.data[idx]
	}

	return m, nil
}

// SubInPlace performs m -= b element-wise and returns m for chaining.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (m unchanged).
func (m *Matrix[T]) SubInPlace(b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateBinarySameShape(m, b); err != nil {
		return m, matrixErrorf(opSubInPlace, err)
	}
	for idx := range m.data {
		m.data[idx] -= b.data[idx]
	}

	return m, nil
}

// MulInPlace performs m = m × b and returns m for chaining.
// MAIN DESCRIPTION:
//   - Each output element depends on a whole row of m and a whole column of b,
//     so the product is computed into a fresh buffer and then swapped in.
//
// Behavior highlights:
//   - The shape of m becomes m.Rows()×b.Cols().
//   - m.MulInPlace(m) is safe for square m.
//   - Outstanding cursors and views over m are invalidated on success.
//
// Errors:
//   - ErrNilMatrix, ErrShapeMismatch (m unchanged).
//
// Complexity:
//   - Time O(m*k*n), Space O(m*n).
func (m *Matrix[T]) MulInPlace(b *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateMulCompatible(m, b); err != nil {
		return m, matrixErrorf(opMulInPlace, err)
	}
	m.swap(mul(m, b))

	return m, nil
}

// ScaleInPlace multiplies every element by alpha (m *= alpha) and returns m.
// There is no failure path, so calls chain directly: m.ScaleInPlace(5).ScaleInPlace(2).
func (m *Matrix[T]) ScaleInPlace(alpha T) *Matrix[T] {
	for idx := range m.data {
		m.data[idx] *= alpha
	}

	return m
}
