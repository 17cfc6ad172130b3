// SPDX-License-Identifier: MIT
// Package matrix - public API facades.
//
// Purpose:
//   - Provide thin, intention-revealing entry points over the canonical kernels.
//   - Each facade delegates to exactly one implementation.

package matrix

// ---------- Constructors & Utilities ----------

// NewZeros is New under an intention-revealing name.
func NewZeros[T Number](rows, cols int) (*Matrix[T], error) { return New[T](rows, cols) }

// ZerosLike returns a zero matrix with the shape of m.
func ZerosLike[T Number](m *Matrix[T]) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return New[T](m.rows, m.cols)
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Identity(0) is the empty matrix; negative n yields ErrBadShape.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func Identity[T Number](n int) (*Matrix[T], error) {
	id, err := New[T](n, n)
	if err != nil {
		return nil, matrixErrorf("Identity", err)
	}
	// Walk the diagonal: stride n+1 in the flat buffer.
	for i := 0; i < len(id.data); i += n + 1 {
		id.data[i] = 1
	}

	return id, nil
}

// Equal reports whether a and b have the same shape and equal elements.
func Equal[T Number](a, b *Matrix[T]) bool { return a.Equal(b) }

// ---------- Arithmetic aliases ----------

// Sum is an alias for Add: element-wise a + b.
func Sum[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return Add(a, b) }

// Diff is an alias for Sub: element-wise a − b.
func Diff[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return Sub(a, b) }

// Product is an alias for Mul: matrix product a × b.
func Product[T Number](a, b *Matrix[T]) (*Matrix[T], error) { return Mul(a, b) }

// T is an alias for Transpose.
func T[E Number](m *Matrix[E]) (*Matrix[E], error) { return Transpose(m) }
