// SPDX-License-Identifier: MIT

// Package matrix - Matrix storage (row-major) & safe accessors.
//
// Purpose:
//   - Own a single contiguous buffer of rows*cols elements with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Ref return errors instead of panicking.
//   - Normalize every zero-area shape to the canonical empty matrix (0×0, nil buffer).
//   - Provide deep copy (Clone) and copy assignment (CopyFrom) with build-then-swap semantics.
//
// Complexity quicksheet:
//   - New: O(r*c) zero-init; At/Set/Ref: O(1); Clone/CopyFrom/Equal: O(r*c).

package matrix

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a dense row-major container of Number elements.
//   - rows, cols hold the shape; both are zero whenever either would be.
//   - data is a flat buffer of length rows*cols (offset = i*cols + j), nil when empty.
//
// The zero value is a ready-to-use empty matrix.
type Matrix[T Number] struct {
	rows, cols int // shape; (0,0) for every empty matrix
	data       []T // contiguous row-major storage (len == rows*cols)
}

// Compile-time assertions.
var (
	_ fmt.Stringer = (*Matrix[float64])(nil)
)

// Empty returns a 0×0 matrix. It never allocates a buffer.
func Empty[T Number]() *Matrix[T] { return &Matrix[T]{} }

// New creates a rows×cols matrix with every element set to the zero value of T.
// MAIN DESCRIPTION:
//   - Public constructor with shape validation.
//
// Implementation:
//   - Stage 1: reject negative dimensions, or rows*cols beyond int, with ErrBadShape.
//   - Stage 2: collapse rows==0 || cols==0 into the empty matrix (no allocation).
//   - Stage 3: allocate a zero-filled buffer of exactly rows*cols elements.
//
// Behavior highlights:
//   - New(10, 0) and New(0, 10) both report Rows()==0 and Cols()==0.
//
// Errors:
//   - ErrBadShape for negative dimensions or an element count that overflows int.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func New[T Number](rows, cols int) (*Matrix[T], error) {
	if !validShape(rows, cols) {
		return nil, denseErrorf(ctxNew, rows, cols, ErrBadShape)
	}
	if rows == 0 || cols == 0 {
		return &Matrix[T]{}, nil
	}

	// make() zero-fills, which is the additive identity for every Number.
	return &Matrix[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// validShape reports whether rows×cols is non-negative and rows*cols fits in int.
func validShape(rows, cols int) bool {
	if rows < 0 || cols < 0 {
		return false
	}

	return rows == 0 || cols <= math.MaxInt/rows
}

// FromRows builds a matrix from a literal list of rows.
// MAIN DESCRIPTION:
//   - rows = len(values), cols = len(values[0]); values are copied in row-major order.
//
// Implementation:
//   - Stage 1: verify every inner row has the length of the first one.
//   - Stage 2: collapse zero rows or zero columns into the empty matrix.
//   - Stage 3: copy each row into its slot of a fresh buffer.
//
// Behavior highlights:
//   - The input slices are never aliased; later changes to values do not leak in.
//
// Errors:
//   - ErrInvalidLiteral when inner rows have unequal lengths.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T Number](values [][]T) (*Matrix[T], error) {
	if len(values) == 0 {
		return &Matrix[T]{}, nil
	}
	cols := len(values[0])
	for i, row := range values {
		if len(row) != cols {
			return nil, fmt.Errorf("%s: row %d has %d elements, want %d: %w",
				ctxFromRS, i, len(row), cols, ErrInvalidLiteral)
		}
	}
	if cols == 0 {
		return &Matrix[T]{}, nil
	}

	rows := len(values)
	buf := make([]T, rows*cols)
	for i, row := range values {
		copy(buf[i*cols:(i+1)*cols], row)
	}

	return &Matrix[T]{rows: rows, cols: cols, data: buf}, nil
}

// FromSlice builds a rows×cols matrix from a flat row-major literal.
// The slice is copied. len(flat) must equal rows*cols.
//
// Errors: ErrBadShape (negative dimension or overflowing rows*cols),
// ErrInvalidLiteral (length mismatch).
// Complexity: O(r*c).
func FromSlice[T Number](rows, cols int, flat []T) (*Matrix[T], error) {
	if !validShape(rows, cols) {
		return nil, denseErrorf(ctxFromSL, rows, cols, ErrBadShape)
	}
	if len(flat) != rows*cols {
		return nil, fmt.Errorf("%s: got %d elements for %dx%d: %w",
			ctxFromSL, len(flat), rows, cols, ErrInvalidLiteral)
	}
	if rows == 0 || cols == 0 {
		return &Matrix[T]{}, nil
	}
	buf := make([]T, len(flat))
	copy(buf, flat)

	return &Matrix[T]{rows: rows, cols: cols, data: buf}, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the column count. Complexity: O(1).
func (m *Matrix[T]) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix[T]) Shape() (rows, cols int) { return m.rows, m.cols }

// Size returns Rows()*Cols(), which is always len(Data()).
func (m *Matrix[T]) Size() int { return len(m.data) }

// Empty reports whether Size() == 0.
func (m *Matrix[T]) Empty() bool { return len(m.data) == 0 }

// Data exposes the backing buffer in row-major order. Writes go straight into
// the matrix. It returns nil for an empty matrix.
func (m *Matrix[T]) Data() []T { return m.data }

// indexOf computes the row-major offset or returns ErrIndexOutOfRange.
// MAIN DESCRIPTION:
//   - Bounds-check (row,col) and compute the flat offset.
//
// Returns:
//   - (offset, nil) on success; (0, ErrIndexOutOfRange) otherwise.
//
// Notes:
//   - Returns the bare sentinel; public accessors wrap it with method and coordinates.
func (m *Matrix[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.rows {
		return 0, ErrIndexOutOfRange
	}
	if col < 0 || col >= m.cols {
		return 0, ErrIndexOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.cols + col, nil
}

// At returns the element at (row, col) or ErrIndexOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrIndexOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Ref returns a pointer to the element at (row, col), the mutable reference
// form of element access. The pointer aliases the buffer and is invalidated
// together with every cursor when the buffer is replaced.
func (m *Matrix[T]) Ref(row, col int) (*T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxRef, row, col, err)
	}

	return &m.data[off], nil
}

// Clone returns a deep copy with independent storage.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Matrix[T]) Clone() *Matrix[T] {
	if len(m.data) == 0 {
		return &Matrix[T]{}
	}
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Matrix[T]{rows: m.rows, cols: m.cols, data: cp}
}

// CopyFrom replaces the receiver's shape and contents with a deep copy of src
// and returns the receiver, mirroring copy assignment.
// MAIN DESCRIPTION:
//   - Copy assignment with build-then-swap semantics.
//
// Implementation:
//   - Stage 1: a receiver assigned to itself keeps its buffer untouched.
//   - Stage 2: build a complete copy of src first.
//   - Stage 3: swap it in; the old buffer is simply dropped.
//
// Behavior highlights:
//   - A nil src assigns the empty matrix.
//   - All cursors and views over the previous buffer become invalid.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Matrix[T]) CopyFrom(src *Matrix[T]) *Matrix[T] {
	if m == src {
		return m
	}
	if src == nil {
		m.swap(&Matrix[T]{})
		return m
	}
	m.swap(src.Clone())

	return m
}

// swap moves the shape and buffer of fresh into m.
func (m *Matrix[T]) swap(fresh *Matrix[T]) {
	m.rows, m.cols, m.data = fresh.rows, fresh.cols, fresh.data
}

// Equal reports whether m and other have the same shape and equal elements.
// Different shapes are never equal, even with the same element count.
// Two nil matrices are equal; nil never equals a non-nil matrix.
// Complexity: O(r*c).
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.rows != other.rows || m.cols != other.cols {
		return false
	}
	for i := range m.data {
		if m.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// Fill sets every element to v and returns the receiver.
func (m *Matrix[T]) Fill(v T) *Matrix[T] {
	for i := range m.data {
		m.data[i] = v
	}

	return m
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only with respect to the matrix.
// Complexity: Time O(r*c), Space O(1).
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.rows; i++ {
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, in row-major order,
// and returns the receiver.
// Complexity: Time O(r*c), Space O(1).
func (m *Matrix[T]) Apply(f func(i, j int, v T) T) *Matrix[T] {
	var i, j, base int
	for i = 0; i < m.rows; i++ {
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}

	return m
}

// All yields (linear offset, value) pairs in storage order.
func (m *Matrix[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range m.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values yields every element in storage order.
func (m *Matrix[T]) Values() iter.Seq[T] {
	return Range(m.Begin(), m.End())
}

// ToRows returns a freshly allocated [][]T copy, one inner slice per row.
// An empty matrix yields an empty, non-nil outer slice.
func (m *Matrix[T]) ToRows() [][]T {
	out := make([][]T, m.rows)
	for i := 0; i < m.rows; i++ {
		row := make([]T, m.cols)
		copy(row, m.data[i*m.cols:(i+1)*m.cols])
		out[i] = row
	}

	return out
}

// String renders the matrix rows as lines of comma-separated values.
// Intended for diagnostics; not for hot paths.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.rows; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.cols
		for j = 0; j < m.cols; j++ {
			fmt.Fprintf(&b, "%v", m.data[base+j])
			if j+1 < m.cols {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
