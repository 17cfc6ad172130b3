// SPDX-License-Identifier: MIT

// Package matrix - random-access cursors over a Matrix buffer.
//
// Purpose:
//   - One cursor type serves all three flavours; only the stride differs:
//     linear and row cursors step by 1, column cursors step by cols.
//   - Every operation works in LOGICAL positions: Add(n) moves n elements along
//     the sequence, Distance counts elements, ordering follows the sequence.
//
// Contract (unchecked):
//   - A cursor is valid only while the buffer it was issued from is alive and
//     has not been replaced (CopyFrom, MulInPlace).
//   - Valid positions are [begin, end]; end is never dereferenced. Stepping
//     outside that range is the caller's responsibility. Dereferencing outside
//     the buffer hits the runtime slice bounds check.
//   - Distance and ordering are meaningful only between cursors over the same
//     sequence.
//
// Complexity: every operation is O(1) and allocation-free.

package matrix

import "iter"

// Cursor is a mutable random-access position inside a Matrix buffer.
// The zero value is unbound: it equals only another unbound cursor
// (or a cursor over an empty matrix, which has no buffer either).
type Cursor[T Number] struct {
	buf    []T // whole backing buffer of the matrix (non-owning)
	pos    int // linear offset into buf
	stride int // buffer slots between logically adjacent elements
}

// ConstCursor is the read-only twin of Cursor. Obtain one from the Const*
// accessors or by converting a Cursor with Const.
type ConstCursor[T Number] struct {
	c Cursor[T]
}

// sameBuffer reports whether a and b reference the same backing array.
// Two empty buffers are treated as the same (null) buffer.
func sameBuffer[T Number](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return len(a) == len(b)
	}

	return &a[0] == &b[0]
}

// ---------- Cursor: dereference ----------

// Get returns the element under the cursor.
func (c Cursor[T]) Get() T { return c.buf[c.pos] }

// Set stores v under the cursor.
func (c Cursor[T]) Set(v T) { c.buf[c.pos] = v }

// Ptr returns a pointer to the element under the cursor.
func (c Cursor[T]) Ptr() *T { return &c.buf[c.pos] }

// At is the subscript c[n], equivalent to c.Add(n).Get(); n may be negative.
func (c Cursor[T]) At(n int) T { return c.buf[c.pos+n*c.stride] }

// PtrAt is &c[n].
func (c Cursor[T]) PtrAt(n int) *T { return &c.buf[c.pos+n*c.stride] }

// Pos returns the linear buffer offset of the cursor (i*cols + j for (i,j)).
func (c Cursor[T]) Pos() int { return c.pos }

// Stride returns the buffer distance between logically adjacent elements.
func (c Cursor[T]) Stride() int { return c.stride }

// Const converts the cursor into its read-only twin at the same position.
func (c Cursor[T]) Const() ConstCursor[T] { return ConstCursor[T]{c: c} }

// ---------- Cursor: arithmetic ----------

// Add returns the cursor n logical positions further (c + n). Negative n moves back.
func (c Cursor[T]) Add(n int) Cursor[T] {
	c.pos += n * c.stride
	return c
}

// Sub returns the cursor n logical positions back (c - n).
func (c Cursor[T]) Sub(n int) Cursor[T] {
	c.pos -= n * c.stride
	return c
}

// Advance moves the cursor n logical positions in place (c += n).
func (c *Cursor[T]) Advance(n int) { c.pos += n * c.stride }

// Retreat moves the cursor n logical positions back in place (c -= n).
func (c *Cursor[T]) Retreat(n int) { c.pos -= n * c.stride }

// Inc steps forward one position and returns the updated cursor (++c).
func (c *Cursor[T]) Inc() Cursor[T] {
	c.pos += c.stride
	return *c
}

// PostInc steps forward one position and returns the cursor as it was (c++).
func (c *Cursor[T]) PostInc() Cursor[T] {
	old := *c
	c.pos += c.stride

	return old
}

// Dec steps back one position and returns the updated cursor (--c).
func (c *Cursor[T]) Dec() Cursor[T] {
	c.pos -= c.stride
	return *c
}

// PostDec steps back one position and returns the cursor as it was (c--).
func (c *Cursor[T]) PostDec() Cursor[T] {
	old := *c
	c.pos -= c.stride

	return old
}

// Distance returns c - o in logical positions: (c.Pos() - o.Pos()) / stride.
// Both cursors must walk the same sequence.
func (c Cursor[T]) Distance(o Cursor[T]) int {
	return distance(c.pos, o.pos, c.stride, o.stride)
}

// distance divides a raw offset difference by the shared stride. Unbound
// cursors carry stride 0; two of them are zero apart.
func distance(posA, posB, strideA, strideB int) int {
	s := strideA
	if s == 0 {
		s = strideB
	}
	if s == 0 {
		return 0
	}

	return (posA - posB) / s
}

// ---------- Cursor: comparison ----------

// Equal reports whether c and o reference the same position of the same buffer.
func (c Cursor[T]) Equal(o Cursor[T]) bool {
	return c.pos == o.pos && sameBuffer(c.buf, o.buf)
}

// Compare returns -1, 0 or +1 as c is before, at, or after o along the sequence.
// Ordering compares positions only; it is defined for cursors over the same
// sequence, where Compare(o) == 0 exactly when Equal(o). Use Equal to tell
// cursors from different buffers apart.
func (c Cursor[T]) Compare(o Cursor[T]) int {
	switch {
	case c.pos < o.pos:
		return -1
	case c.pos > o.pos:
		return 1
	default:
		return 0
	}
}

// Less reports c < o. The same-sequence rule of Compare applies to every ordering method.
func (c Cursor[T]) Less(o Cursor[T]) bool { return c.pos < o.pos }

// LessEq reports c <= o.
func (c Cursor[T]) LessEq(o Cursor[T]) bool { return c.pos <= o.pos }

// Greater reports c > o.
func (c Cursor[T]) Greater(o Cursor[T]) bool { return c.pos > o.pos }

// GreaterEq reports c >= o.
func (c Cursor[T]) GreaterEq(o Cursor[T]) bool { return c.pos >= o.pos }

// Offset is the n + c form of Add; it exists so both operand orders read naturally.
func Offset[T Number](n int, c Cursor[T]) Cursor[T] { return c.Add(n) }

// ---------- ConstCursor ----------

// Get returns the element under the cursor.
func (c ConstCursor[T]) Get() T { return c.c.Get() }

// At is the subscript c[n]; n may be negative.
func (c ConstCursor[T]) At(n int) T { return c.c.At(n) }

// Pos returns the linear buffer offset of the cursor.
func (c ConstCursor[T]) Pos() int { return c.c.pos }

// Stride returns the buffer distance between logically adjacent elements.
func (c ConstCursor[T]) Stride() int { return c.c.stride }

// Add returns c + n.
func (c ConstCursor[T]) Add(n int) ConstCursor[T] { return ConstCursor[T]{c: c.c.Add(n)} }

// Sub returns c - n.
func (c ConstCursor[T]) Sub(n int) ConstCursor[T] { return ConstCursor[T]{c: c.c.Sub(n)} }

// Advance is c += n.
func (c *ConstCursor[T]) Advance(n int) { c.c.Advance(n) }

// Retreat is c -= n.
func (c *ConstCursor[T]) Retreat(n int) { c.c.Retreat(n) }

// Inc is ++c.
func (c *ConstCursor[T]) Inc() ConstCursor[T] { return ConstCursor[T]{c: c.c.Inc()} }

// PostInc is c++.
func (c *ConstCursor[T]) PostInc() ConstCursor[T] { return ConstCursor[T]{c: c.c.PostInc()} }

// Dec is --c.
func (c *ConstCursor[T]) Dec() ConstCursor[T] { return ConstCursor[T]{c: c.c.Dec()} }

// PostDec is c--.
func (c *ConstCursor[T]) PostDec() ConstCursor[T] { return ConstCursor[T]{c: c.c.PostDec()} }

// Distance returns c - o in logical positions.
func (c ConstCursor[T]) Distance(o ConstCursor[T]) int { return c.c.Distance(o.c) }

// Equal reports whether c and o reference the same position of the same buffer.
func (c ConstCursor[T]) Equal(o ConstCursor[T]) bool { return c.c.Equal(o.c) }

// Compare returns -1, 0 or +1 along the sequence.
func (c ConstCursor[T]) Compare(o ConstCursor[T]) int { return c.c.Compare(o.c) }

// Less reports c < o.
func (c ConstCursor[T]) Less(o ConstCursor[T]) bool { return c.c.Less(o.c) }

// LessEq reports c <= o.
func (c ConstCursor[T]) LessEq(o ConstCursor[T]) bool { return c.c.LessEq(o.c) }

// Greater reports c > o.
func (c ConstCursor[T]) Greater(o ConstCursor[T]) bool { return c.c.Greater(o.c) }

// GreaterEq reports c >= o.
func (c ConstCursor[T]) GreaterEq(o ConstCursor[T]) bool { return c.c.GreaterEq(o.c) }

// ---------- iteration ----------

// Range yields the elements in [begin, end).
func Range[T Number](begin, end Cursor[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := begin; it.Less(end); it.Inc() {
			if !yield(it.Get()) {
				return
			}
		}
	}
}

// RangeRefs yields (logical index, element pointer) pairs in [begin, end);
// writes through the pointers land in the matrix.
func RangeRefs[T Number](begin, end Cursor[T]) iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		k := 0
		for it := begin; it.Less(end); it.Inc() {
			if !yield(k, it.Ptr()) {
				return
			}
			k++
		}
	}
}

// ConstRange yields the elements in [begin, end) of a read-only cursor pair.
func ConstRange[T Number](begin, end ConstCursor[T]) iter.Seq[T] {
	return Range(begin.c, end.c)
}

// ---------- cursor acquisition on Matrix ----------

// Begin returns a linear cursor at the first element in storage order.
func (m *Matrix[T]) Begin() Cursor[T] { return Cursor[T]{buf: m.data, pos: 0, stride: 1} }

// End returns a linear cursor one past the last element in storage order.
func (m *Matrix[T]) End() Cursor[T] { return Cursor[T]{buf: m.data, pos: len(m.data), stride: 1} }

// ConstBegin is the read-only form of Begin.
func (m *Matrix[T]) ConstBegin() ConstCursor[T] { return m.Begin().Const() }

// ConstEnd is the read-only form of End.
func (m *Matrix[T]) ConstEnd() ConstCursor[T] { return m.End().Const() }

// RowBegin returns a stride-1 cursor at (row, 0), or ErrIndexOutOfRange.
func (m *Matrix[T]) RowBegin(row int) (Cursor[T], error) {
	if row < 0 || row >= m.rows {
		return Cursor[T]{}, indexErrorf("Matrix", "RowBegin", row, ErrIndexOutOfRange)
	}

	return Cursor[T]{buf: m.data, pos: row * m.cols, stride: 1}, nil
}

// RowEnd returns a stride-1 cursor one past (row, cols-1), or ErrIndexOutOfRange.
func (m *Matrix[T]) RowEnd(row int) (Cursor[T], error) {
	if row < 0 || row >= m.rows {
		return Cursor[T]{}, indexErrorf("Matrix", "RowEnd", row, ErrIndexOutOfRange)
	}

	return Cursor[T]{buf: m.data, pos: (row + 1) * m.cols, stride: 1}, nil
}

// ColBegin returns a stride-cols cursor at (0, col), or ErrIndexOutOfRange.
func (m *Matrix[T]) ColBegin(col int) (Cursor[T], error) {
	if col < 0 || col >= m.cols {
		return Cursor[T]{}, indexErrorf("Matrix", "ColBegin", col, ErrIndexOutOfRange)
	}

	return Cursor[T]{buf: m.data, pos: col, stride: m.cols}, nil
}

// ColEnd returns a stride-cols cursor one logical position past (rows-1, col),
// i.e. at linear offset rows*cols + col, or ErrIndexOutOfRange.
func (m *Matrix[T]) ColEnd(col int) (Cursor[T], error) {
	if col < 0 || col >= m.cols {
		return Cursor[T]{}, indexErrorf("Matrix", "ColEnd", col, ErrIndexOutOfRange)
	}

	return Cursor[T]{buf: m.data, pos: m.rows*m.cols + col, stride: m.cols}, nil
}

// ConstRowBegin is the read-only form of RowBegin.
func (m *Matrix[T]) ConstRowBegin(row int) (ConstCursor[T], error) {
	c, err := m.RowBegin(row)
	return c.Const(), err
}

// ConstRowEnd is the read-only form of RowEnd.
func (m *Matrix[T]) ConstRowEnd(row int) (ConstCursor[T], error) {
	c, err := m.RowEnd(row)
	return c.Const(), err
}

// ConstColBegin is the read-only form of ColBegin.
func (m *Matrix[T]) ConstColBegin(col int) (ConstCursor[T], error) {
	c, err := m.ColBegin(col)
	return c.Const(), err
}

// ConstColEnd is the read-only form of ColEnd.
func (m *Matrix[T]) ConstColEnd(col int) (ConstCursor[T], error) {
	c, err := m.ColEnd(col)
	return c.Const(), err
}
