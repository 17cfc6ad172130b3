// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Broadcast kernels that combine a matrix with one factor per row or per
//     column, and the matching row/column reductions.
//   - Every kernel walks the matrix through its row or column views, so the
//     strided column path is the same code the views expose.
//
// Determinism & Performance:
//   - Fixed loop orders (row by row, or column by column top to bottom).
//   - Copy-producing kernels allocate exactly one result; reductions one slice.

package matrix

import "fmt"

const (
	opScaleRows = "ScaleRows"
	opScaleCols = "ScaleCols"
	opRowSums   = "RowSums"
	opColSums   = "ColSums"
)

// ScaleRows returns out[i,j] = m[i,j] * factors[i].
// Errors: ErrNilMatrix, ErrShapeMismatch (len(factors) != rows).
// Complexity: Time O(r*c), Space O(r*c).
func ScaleRows[T Number](m *Matrix[T], factors []T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	if len(factors) != m.rows {
		return nil, matrixErrorf(opScaleRows,
			fmt.Errorf("%d factors for %d rows: %w", len(factors), m.rows, ErrShapeMismatch))
	}

	out := m.Clone()
	for i, f := range factors {
		row, err := out.Row(i)
		if err != nil {
			return nil, matrixErrorf(opScaleRows, err)
		}
		row.Scale(f)
	}

	return out, nil
}

// ScaleCols returns out[i,j] = m[i,j] * factors[j].
// Errors: ErrNilMatrix, ErrShapeMismatch (len(factors) != cols).
// Complexity: Time O(r*c), Space O(r*c).
func ScaleCols[T Number](m *Matrix[T], factors []T) (*Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	if len(factors) != m.cols {
		return nil, matrixErrorf(opScaleCols,
			fmt.Errorf("%d factors for %d cols: %w", len(factors), m.cols, ErrShapeMismatch))
	}

	out := m.Clone()
	for j, f := range factors {
		col, err := out.Col(j)
		if err != nil {
			return nil, matrixErrorf(opScaleCols, err)
		}
		col.Scale(f)
	}

	return out, nil
}

// RowSums returns the sum of every row; len == rows.
// Errors: ErrNilMatrix.
func RowSums[T Number](m *Matrix[T]) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	sums := make([]T, m.rows)
	for i := range sums {
		row, err := m.ConstRow(i)
		if err != nil {
			return nil, matrixErrorf(opRowSums, err)
		}
		for v := range row.Values() {
			sums[i] += v
		}
	}

	return sums, nil
}

// ColSums returns the sum of every column; len == cols.
// Errors: ErrNilMatrix.
func ColSums[T Number](m *Matrix[T]) ([]T, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}

	sums := make([]T, m.cols)
	for j := range sums {
		col, err := m.ConstCol(j)
		if err != nil {
			return nil, matrixErrorf(opColSums, err)
		}
		for v := range col.Values() {
			sums[j] += v
		}
	}

	return sums, nil
}
