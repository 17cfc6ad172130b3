// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for linear, row and column cursors.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/rowmajor/matrix"
	"github.com/stretchr/testify/require"
)

// cursorFixture is a 4×3 matrix: column cursors step by 3 buffer slots.
func cursorFixture(t *testing.T) *matrix.Matrix[int] {
	t.Helper()
	return mustFromRows(t, [][]int{
		{1, 2, 3},
		{4, 5, 6},
		{11, 12, 13},
		{14, 15, 16},
	})
}

// linearAdvance steps one position at a time; the reference for Add/Sub.
func linearAdvance(it matrix.Cursor[int], n int) matrix.Cursor[int] {
	for ; n > 0; n-- {
		it.Inc()
	}
	for ; n < 0; n++ {
		it.Dec()
	}

	return it
}

func mustColBegin(t *testing.T, m *matrix.Matrix[int], j int) matrix.Cursor[int] {
	t.Helper()
	it, err := m.ColBegin(j)
	require.NoError(t, err)

	return it
}

func mustColEnd(t *testing.T, m *matrix.Matrix[int], j int) matrix.Cursor[int] {
	t.Helper()
	it, err := m.ColEnd(j)
	require.NoError(t, err)

	return it
}

func mustRef(t *testing.T, m *matrix.Matrix[int], i, j int) *int {
	t.Helper()
	p, err := m.Ref(i, j)
	require.NoError(t, err)

	return p
}

// TestColCursorToConst ensures mutable cursors convert to equal read-only cursors.
func TestColCursorToConst(t *testing.T) {
	m := cursorFixture(t)

	begin := mustColBegin(t, m, 1)
	cv, err := m.ConstCol(1)
	require.NoError(t, err)
	require.True(t, cv.Begin().Equal(begin.Const()))

	end := mustColEnd(t, m, 1)
	require.True(t, cv.End().Equal(end.Const()))
}

// TestColCursorCopy ensures cursors are values: copies advance independently.
func TestColCursorCopy(t *testing.T) {
	m := cursorFixture(t)
	it1 := mustColBegin(t, m, 1)
	it2 := it1
	require.True(t, it1.Equal(it2))

	it2.Inc()
	require.False(t, it1.Equal(it2))
}

// TestCursorZeroValue covers unbound cursors.
func TestCursorZeroValue(t *testing.T) {
	m := cursorFixture(t)

	var unbound, other matrix.Cursor[int]
	require.True(t, unbound.Equal(other))
	require.False(t, unbound.Equal(mustColBegin(t, m, 0)))
	require.Zero(t, unbound.Distance(other))

	// An unbound cursor can be assigned a bound one.
	unbound = mustColBegin(t, m, 1)
	var cunbound matrix.ConstCursor[int]
	cunbound = unbound.Const()
	require.True(t, cunbound.Equal(mustColBegin(t, m, 1).Const()))
}

// TestColCursorIndirection reads and writes through a column cursor.
func TestColCursorIndirection(t *testing.T) {
	m := cursorFixture(t)
	it := mustColBegin(t, m, 1)
	end := mustColEnd(t, m, 1)

	for i := 0; i < m.Rows(); i++ {
		require.False(t, it.Equal(end))
		require.Equal(t, mustAt(t, m, i, 1), it.Get())
		it.Set(42)
		it.Inc()
	}
	require.True(t, it.Equal(end))

	for v := range matrix.Range(mustColBegin(t, m, 1), end) {
		require.Equal(t, 42, v)
	}
	require.Equal(t, 1, mustAt(t, m, 0, 0), "neighbouring column untouched")
}

// TestColCursorIncrement covers ++it and it++.
func TestColCursorIncrement(t *testing.T) {
	m := cursorFixture(t)
	it := mustColBegin(t, m, 1)

	require.Same(t, mustRef(t, m, 1, 1), it.Inc().Ptr())
	require.Same(t, mustRef(t, m, 1, 1), it.Ptr())

	require.Same(t, mustRef(t, m, 1, 1), it.PostInc().Ptr())
	require.Same(t, mustRef(t, m, 2, 1), it.Ptr())
}

// TestColCursorDecrement covers --it and it-- starting from end.
func TestColCursorDecrement(t *testing.T) {
	m := cursorFixture(t)
	it := mustColEnd(t, m, 1)

	require.Same(t, mustRef(t, m, 3, 1), it.Dec().Ptr())
	require.Same(t, mustRef(t, m, 3, 1), it.Ptr())

	require.Same(t, mustRef(t, m, 3, 1), it.PostDec().Ptr())
	require.Same(t, mustRef(t, m, 2, 1), it.Ptr())
}

// TestColCursorAdd covers it + n, n + it and it += n for n in [0, rows].
func TestColCursorAdd(t *testing.T) {
	m := cursorFixture(t)
	it := mustColBegin(t, m, 1)

	require.True(t, mustColEnd(t, m, 1).Equal(it.Add(m.Rows())))

	for n := 0; n <= m.Rows(); n++ {
		want := linearAdvance(it, n)
		require.True(t, want.Equal(it.Add(n)), "it + %d", n)
		require.True(t, want.Equal(matrix.Offset(n, it)), "%d + it", n)

		it2 := it
		it2.Advance(n)
		require.True(t, want.Equal(it2), "it += %d", n)
	}
}

// TestColCursorSub covers it - n and it -= n walking back from end.
func TestColCursorSub(t *testing.T) {
	m := cursorFixture(t)
	it := mustColEnd(t, m, 1)

	require.True(t, mustColBegin(t, m, 1).Equal(it.Sub(m.Rows())))

	for n := 0; n <= m.Rows(); n++ {
		want := linearAdvance(it, -n)
		require.True(t, want.Equal(it.Sub(n)), "it - %d", n)

		it2 := it
		it2.Retreat(n)
		require.True(t, want.Equal(it2), "it -= %d", n)
	}
}

// TestColCursorNegativeOffsets covers it + (-n), (-n) + it, it - (-n).
func TestColCursorNegativeOffsets(t *testing.T) {
	m := cursorFixture(t)
	end := mustColEnd(t, m, 1)
	begin := mustColBegin(t, m, 1)

	require.True(t, begin.Equal(end.Add(-m.Rows())))
	require.True(t, end.Equal(begin.Sub(-m.Rows())))

	for n := 0; n <= m.Rows(); n++ {
		require.True(t, linearAdvance(end, -n).Equal(end.Add(-n)))
		require.True(t, linearAdvance(end, -n).Equal(matrix.Offset(-n, end)))
		require.True(t, linearAdvance(begin, n).Equal(begin.Sub(-n)))

		it := end
		it.Advance(-n)
		require.True(t, linearAdvance(end, -n).Equal(it))

		it = begin
		it.Retreat(-n)
		require.True(t, linearAdvance(begin, n).Equal(it))
	}
}

// TestColCursorDistance covers p - q in logical positions.
func TestColCursorDistance(t *testing.T) {
	m := cursorFixture(t)
	it := mustColBegin(t, m, 1)
	end := mustColEnd(t, m, 1)

	require.Zero(t, it.Distance(it))
	require.Zero(t, end.Distance(end))
	require.Equal(t, m.Rows(), end.Distance(it))
	require.Equal(t, -m.Rows(), it.Distance(end))

	it.Inc()
	end.Dec()
	require.Equal(t, m.Rows()-2, end.Distance(it))
	require.Equal(t, -(m.Rows() - 2), it.Distance(end))
}

// TestColCursorSubscript covers it[n] including negative n.
func TestColCursorSubscript(t *testing.T) {
	m := cursorFixture(t)
	it := mustColBegin(t, m, 1)

	require.Equal(t, mustAt(t, m, 0, 1), it.At(0))
	require.Equal(t, mustAt(t, m, 1, 1), it.At(1))
	require.Same(t, mustRef(t, m, 0, 1), it.PtrAt(0))
	require.Same(t, mustRef(t, m, 1, 1), it.PtrAt(1))

	it.Inc()
	require.Equal(t, mustAt(t, m, 0, 1), it.At(-1))
	require.Equal(t, mustAt(t, m, 1, 1), it.At(0))
	require.Equal(t, mustAt(t, m, 2, 1), it.At(1))

	cit := it.Const()
	require.Equal(t, mustAt(t, m, 0, 1), cit.At(-1))
	require.Equal(t, mustAt(t, m, 2, 1), cit.At(1))
}

// TestColCursorOrdering covers the full comparison set.
func TestColCursorOrdering(t *testing.T) {
	m := cursorFixture(t)
	a := mustColBegin(t, m, 1)
	b := a.Add(2)

	require.True(t, a.Less(b))
	require.True(t, a.LessEq(b))
	require.True(t, a.LessEq(a))
	require.False(t, a.Greater(b))
	require.True(t, b.Greater(a))
	require.True(t, b.GreaterEq(a))
	require.True(t, b.GreaterEq(b))
	require.False(t, a.Equal(b))
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, 0, a.Compare(a.Add(0)))

	ca, cb := a.Const(), b.Const()
	require.True(t, ca.Less(cb))
	require.True(t, cb.Greater(ca))
	require.True(t, ca.LessEq(ca))
	require.True(t, cb.GreaterEq(ca))
	require.Equal(t, -1, ca.Compare(cb))
	require.Equal(t, 2, cb.Distance(ca))
}

// TestCursorCompareAgreesWithEqual walks one column: Compare is zero exactly at equal cursors.
func TestCursorCompareAgreesWithEqual(t *testing.T) {
	m := cursorFixture(t)
	begin := mustColBegin(t, m, 2)
	for p := 0; p <= m.Rows(); p++ {
		for q := 0; q <= m.Rows(); q++ {
			a, b := begin.Add(p), begin.Add(q)
			require.Equal(t, a.Equal(b), a.Compare(b) == 0, "p=%d q=%d", p, q)
			require.Equal(t, a.Less(b), p < q)
			require.Equal(t, a.GreaterEq(b), p >= q)
		}
	}
}

// TestColCursorStride pins the stride law: one logical step is cols buffer slots.
func TestColCursorStride(t *testing.T) {
	m := cursorFixture(t)
	for j := 0; j < m.Cols(); j++ {
		it := mustColBegin(t, m, j)
		require.Equal(t, m.Cols(), it.Stride())
		require.Equal(t, j, it.Pos())
		require.Equal(t, j+m.Cols(), it.Add(1).Pos())
		require.Equal(t, m.Rows()*m.Cols()+j, mustColEnd(t, m, j).Pos())
	}
}

// TestRowCursors covers stride-1 row cursors and their bounds.
func TestRowCursors(t *testing.T) {
	m := cursorFixture(t)
	begin, err := m.RowBegin(2)
	require.NoError(t, err)
	end, err := m.RowEnd(2)
	require.NoError(t, err)

	require.Equal(t, 1, begin.Stride())
	require.Equal(t, m.Cols(), end.Distance(begin))
	require.Same(t, mustRef(t, m, 2, 0), begin.Ptr())
	require.Same(t, mustRef(t, m, 2, 2), end.Sub(1).Ptr())

	var got []int
	for v := range matrix.Range(begin, end) {
		got = append(got, v)
	}
	require.Equal(t, []int{11, 12, 13}, got)

	// Row end coincides with the next row's begin.
	next, err := m.RowBegin(3)
	require.NoError(t, err)
	require.True(t, end.Equal(next))
}

// TestLinearCursors covers Begin/End over the whole buffer.
func TestLinearCursors(t *testing.T) {
	m := cursorFixture(t)
	begin, end := m.Begin(), m.End()

	require.Equal(t, m.Size(), end.Distance(begin))
	require.Same(t, &m.Data()[0], begin.Ptr())
	require.Equal(t, 16, end.At(-1))

	for k, p := range matrix.RangeRefs(begin, end) {
		require.Same(t, &m.Data()[k], p)
		*p += 1
	}
	require.Equal(t, 2, mustAt(t, m, 0, 0))
	require.Equal(t, 17, mustAt(t, m, 3, 2))

	cb, ce := m.ConstBegin(), m.ConstEnd()
	n := 0
	for range matrix.ConstRange(cb, ce) {
		n++
	}
	require.Equal(t, m.Size(), n)
}

// TestConstCursorStepping covers the read-only stepping operators.
func TestConstCursorStepping(t *testing.T) {
	m := cursorFixture(t)
	cv, err := m.ConstCol(2)
	require.NoError(t, err)

	it := cv.Begin()
	require.Equal(t, 3, it.Get())
	require.Equal(t, 6, it.Inc().Get())
	require.Equal(t, 6, it.PostInc().Get())
	require.Equal(t, 13, it.Get())
	require.Equal(t, 6, it.Dec().Get())
	require.Equal(t, 6, it.PostDec().Get())
	require.Equal(t, 3, it.Get())

	it.Advance(3)
	require.Equal(t, 16, it.Get())
	it.Retreat(2)
	require.Equal(t, 6, it.Get())
	require.Equal(t, 16, it.Add(2).Get())
	require.Equal(t, 3, it.Sub(1).Get())
	require.Equal(t, m.Cols(), it.Stride())
	require.Equal(t, 5, it.Pos())
	require.True(t, cv.End().Equal(it.Add(3)))
}

// TestCursorAcquisitionOutOfRange ensures row/col cursor acquisition is checked.
func TestCursorAcquisitionOutOfRange(t *testing.T) {
	m := cursorFixture(t)

	_, err := m.RowBegin(4)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
	_, err = m.RowEnd(-1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
	_, err = m.ColBegin(3)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
	_, err = m.ColEnd(-1)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
}

// TestEmptyMatrixCursors ensures begin == end and nothing is yielded.
func TestEmptyMatrixCursors(t *testing.T) {
	var m matrix.Matrix[int]
	require.True(t, m.Begin().Equal(m.End()))
	require.Zero(t, m.End().Distance(m.Begin()))

	for range m.Values() {
		t.Fatal("empty matrix yielded an element")
	}
}

// TestCursorsAcrossMatrices ensures cursors over different buffers never compare equal.
func TestCursorsAcrossMatrices(t *testing.T) {
	a := cursorFixture(t)
	b := a.Clone()
	require.False(t, a.Begin().Equal(b.Begin()))
}

// TestConstRowColCursors covers the read-only acquisition forms.
func TestConstRowColCursors(t *testing.T) {
	m := cursorFixture(t)

	rb, err := m.ConstRowBegin(1)
	require.NoError(t, err)
	re, err := m.ConstRowEnd(1)
	require.NoError(t, err)
	var row []int
	for v := range matrix.ConstRange(rb, re) {
		row = append(row, v)
	}
	require.Equal(t, []int{4, 5, 6}, row)

	cb, err := m.ConstColBegin(0)
	require.NoError(t, err)
	ce, err := m.ConstColEnd(0)
	require.NoError(t, err)
	require.Equal(t, m.Rows(), ce.Distance(cb))
	require.Equal(t, 14, ce.At(-1))

	_, err = m.ConstRowBegin(4)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
	_, err = m.ConstColEnd(3)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)
}
