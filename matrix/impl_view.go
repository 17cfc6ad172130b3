// SPDX-License-Identifier: MIT

// Package matrix - row and column views.
//
// Purpose:
//   - Alias exactly one row (stride-1 cursor pair) or one column (stride-cols
//     cursor pair) of a live Matrix without copying.
//   - Support iteration and in-place arithmetic that behaves exactly as if
//     applied element by element through the matrix.
//
// Behavior highlights:
//   - Writes through a mutable view are immediately visible through the matrix
//     and every other view or cursor over it; the matrix is the single source of truth.
//   - Scale returns the view itself, so v.Scale(a).Scale(b) composes left to right.
//   - Element-wise arithmetic validates lengths before touching any element.
//   - A view shares the lifetime rules of cursors: CopyFrom/MulInPlace on the
//     owner invalidate it.

package matrix

import (
	"fmt"
	"iter"
)

// Compile-time assertions: every view is a Sequence.
var (
	_ Sequence[int] = RowView[int]{}
	_ Sequence[int] = ColView[int]{}
	_ Sequence[int] = ConstRowView[int]{}
	_ Sequence[int] = ConstColView[int]{}
)

// span is the shared body of mutable views: a [begin, end) cursor pair.
type span[T Number] struct {
	begin, end Cursor[T]
	owner      string // "RowView" / "ColView" for error context
}

// Begin returns the cursor at the first element of the view.
func (s span[T]) Begin() Cursor[T] { return s.begin }

// End returns the cursor one past the last element of the view.
func (s span[T]) End() Cursor[T] { return s.end }

// Len returns the number of elements reachable through the view.
func (s span[T]) Len() int { return s.end.Distance(s.begin) }

// At returns the k-th element of the view or ErrIndexOutOfRange.
func (s span[T]) At(k int) (T, error) {
	if k < 0 || k >= s.Len() {
		var zero T
		return zero, indexErrorf(s.owner, ctxAt, k, ErrIndexOutOfRange)
	}

	return s.begin.At(k), nil
}

// Set stores v at the k-th element of the view or returns ErrIndexOutOfRange.
func (s span[T]) Set(k int, v T) error {
	if k < 0 || k >= s.Len() {
		return indexErrorf(s.owner, ctxSet, k, ErrIndexOutOfRange)
	}
	*s.begin.PtrAt(k) = v

	return nil
}

// Values yields the elements of the view in order.
func (s span[T]) Values() iter.Seq[T] { return Range(s.begin, s.end) }

// All yields (index, value) pairs in order.
func (s span[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		k := 0
		for it := s.begin; it.Less(s.end); it.Inc() {
			if !yield(k, it.Get()) {
				return
			}
			k++
		}
	}
}

// Refs yields (index, pointer) pairs; writes through the pointers mutate the matrix.
func (s span[T]) Refs() iter.Seq2[int, *T] { return RangeRefs(s.begin, s.end) }

// Slice copies the elements of the view into a fresh slice.
func (s span[T]) Slice() []T {
	out := make([]T, 0, s.Len())
	for v := range s.Values() {
		out = append(out, v)
	}

	return out
}

func (s span[T]) scale(a T) {
	for it := s.begin; it.Less(s.end); it.Inc() {
		*it.Ptr() *= a
	}
}

func (s span[T]) fill(v T) {
	for it := s.begin; it.Less(s.end); it.Inc() {
		it.Set(v)
	}
}

// Element-wise operation selectors.
const (
	ewAdd = iota
	ewSub
	ewMul
)

// elementwise applies dst[k] (op)= src[k] for every k.
// Implementation:
//   - Stage 1: lengths must match, else ErrShapeMismatch (nothing written).
//   - Stage 2: snapshot src so an overlapping source (e.g. a column crossing
//     this row) reads its original values.
//   - Stage 3: write through the cursors.
func (s span[T]) elementwise(tag string, src Sequence[T], op int) error {
	if src == nil {
		return matrixErrorf(tag, ErrNilMatrix)
	}
	n := s.Len()
	if src.Len() != n {
		return matrixErrorf(tag, fmt.Errorf("len %d vs %d: %w", n, src.Len(), ErrShapeMismatch))
	}
	vals := make([]T, n)
	var err error
	for k := 0; k < n; k++ {
		if vals[k], err = src.At(k); err != nil {
			return matrixErrorf(tag, err)
		}
	}

	it := s.begin
	for k := 0; k < n; k++ {
		p := it.Ptr()
		switch op {
		case ewAdd:
			*p += vals[k]
		case ewSub:
			*p -= vals[k]
		case ewMul:
			*p *= vals[k]
		}
		it.Inc()
	}

	return nil
}

// constSpan is the shared body of read-only views.
type constSpan[T Number] struct {
	s span[T]
}

// Begin returns the read-only cursor at the first element.
func (c constSpan[T]) Begin() ConstCursor[T] { return c.s.begin.Const() }

// End returns the read-only cursor one past the last element.
func (c constSpan[T]) End() ConstCursor[T] { return c.s.end.Const() }

// Len returns the number of elements in the view.
func (c constSpan[T]) Len() int { return c.s.Len() }

// At returns the k-th element or ErrIndexOutOfRange.
func (c constSpan[T]) At(k int) (T, error) { return c.s.At(k) }

// Values yields the elements in order.
func (c constSpan[T]) Values() iter.Seq[T] { return c.s.Values() }

// All yields (index, value) pairs in order.
func (c constSpan[T]) All() iter.Seq2[int, T] { return c.s.All() }

// Slice copies the elements into a fresh slice.
func (c constSpan[T]) Slice() []T { return c.s.Slice() }

// ---------- RowView ----------

// RowView is a mutable, non-owning alias onto one matrix row.
type RowView[T Number] struct{ span[T] }

// ConstRowView is the read-only form of RowView.
type ConstRowView[T Number] struct{ constSpan[T] }

// Scale multiplies every element of the row by a in place (row *= a) and
// returns the view for chaining.
func (v RowView[T]) Scale(a T) RowView[T] {
	v.scale(a)
	return v
}

// Fill sets every element of the row to x and returns the view.
func (v RowView[T]) Fill(x T) RowView[T] {
	v.fill(x)
	return v
}

// AddFrom adds src element-wise into the row (row += src).
func (v RowView[T]) AddFrom(src Sequence[T]) (RowView[T], error) {
	return v, v.elementwise("RowView.AddFrom", src, ewAdd)
}

// SubFrom subtracts src element-wise from the row (row -= src).
func (v RowView[T]) SubFrom(src Sequence[T]) (RowView[T], error) {
	return v, v.elementwise("RowView.SubFrom", src, ewSub)
}

// MulFrom multiplies the row element-wise by src.
func (v RowView[T]) MulFrom(src Sequence[T]) (RowView[T], error) {
	return v, v.elementwise("RowView.MulFrom", src, ewMul)
}

// Const returns the read-only form of the view.
func (v RowView[T]) Const() ConstRowView[T] { return ConstRowView[T]{constSpan[T]{s: v.span}} }

// ---------- ColView ----------

// ColView is a mutable, non-owning alias onto one matrix column.
// Its cursors step by the row length of the matrix.
type ColView[T Number] struct{ span[T] }

// ConstColView is the read-only form of ColView.
type ConstColView[T Number] struct{ constSpan[T] }

// Scale multiplies every element of the column by a in place (col *= a) and
// returns the view for chaining.
func (v ColView[T]) Scale(a T) ColView[T] {
	v.scale(a)
	return v
}

// Fill sets every element of the column to x and returns the view.
func (v ColView[T]) Fill(x T) ColView[T] {
	v.fill(x)
	return v
}

// AddFrom adds src element-wise into the column (col += src).
func (v ColView[T]) AddFrom(src Sequence[T]) (ColView[T], error) {
	return v, v.elementwise("ColView.AddFrom", src, ewAdd)
}

// SubFrom subtracts src element-wise from the column (col -= src).
func (v ColView[T]) SubFrom(src Sequence[T]) (ColView[T], error) {
	return v, v.elementwise("ColView.SubFrom", src, ewSub)
}

// MulFrom multiplies the column element-wise by src.
func (v ColView[T]) MulFrom(src Sequence[T]) (ColView[T], error) {
	return v, v.elementwise("ColView.MulFrom", src, ewMul)
}

// Const returns the read-only form of the view.
func (v ColView[T]) Const() ConstColView[T] { return ConstColView[T]{constSpan[T]{s: v.span}} }

// ---------- view acquisition on Matrix ----------

// Row returns a mutable view of row i, or ErrIndexOutOfRange.
// Complexity: O(1); nothing is copied.
func (m *Matrix[T]) Row(i int) (RowView[T], error) {
	begin, err := m.RowBegin(i)
	if err != nil {
		return RowView[T]{}, indexErrorf("Matrix", ctxRow, i, ErrIndexOutOfRange)
	}
	end := begin.Add(m.cols)

	return RowView[T]{span[T]{begin: begin, end: end, owner: "RowView"}}, nil
}

// Col returns a mutable view of column j, or ErrIndexOutOfRange.
// Complexity: O(1); nothing is copied.
func (m *Matrix[T]) Col(j int) (ColView[T], error) {
	begin, err := m.ColBegin(j)
	if err != nil {
		return ColView[T]{}, indexErrorf("Matrix", ctxCol, j, ErrIndexOutOfRange)
	}
	end := begin.Add(m.rows)

	return ColView[T]{span[T]{begin: begin, end: end, owner: "ColView"}}, nil
}

// ConstRow returns a read-only view of row i, or ErrIndexOutOfRange.
func (m *Matrix[T]) ConstRow(i int) (ConstRowView[T], error) {
	v, err := m.Row(i)
	if err != nil {
		return ConstRowView[T]{}, err
	}

	return v.Const(), nil
}

// ConstCol returns a read-only view of column j, or ErrIndexOutOfRange.
func (m *Matrix[T]) ConstCol(j int) (ConstColView[T], error) {
	v, err := m.Col(j)
	if err != nil {
		return ConstColView[T]{}, err
	}

	return v.Const(), nil
}
