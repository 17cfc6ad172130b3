// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by all matrix tests.
//   • Keep element values distinct per cell so aliasing bugs show up as wrong values.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/rowmajor/matrix"
	"github.com/stretchr/testify/require"
)

// Shape of the large fixtures: wide enough that a row and a column never coincide.
const (
	fixtureRows = 40
	fixtureCols = 100
)

// elem is the deterministic fixture value of cell (i, j).
// Distinct for every cell of the 40×100 fixture.
func elem(i, j int) int { return i*101 + j*7 }

// fill writes elem(i,j) into every cell of m.
func fill(t testing.TB, m *matrix.Matrix[int]) {
	t.Helper()
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			require.NoError(t, m.Set(i, j, elem(i, j)))
		}
	}
}

// mustNew ALLOCATES an r×c zero matrix or fails the test.
func mustNew[T matrix.Number](t testing.TB, r, c int) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.New[T](r, c)
	require.NoError(t, err, "New(%d,%d)", r, c)

	return m
}

// mustFilled returns the 40×100 fixture filled with elem(i,j).
func mustFilled(t testing.TB) *matrix.Matrix[int] {
	t.Helper()
	m := mustNew[int](t, fixtureRows, fixtureCols)
	fill(t, m)

	return m
}

// mustFromRows BUILDS a matrix from a row literal or fails the test.
func mustFromRows[T matrix.Number](t testing.TB, rows [][]T) *matrix.Matrix[T] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// mustAt reads (i,j) or fails the test.
func mustAt[T matrix.Number](t testing.TB, m *matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// requireEmpty asserts the canonical empty-matrix state.
func requireEmpty[T matrix.Number](t testing.TB, m *matrix.Matrix[T]) {
	t.Helper()
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
	require.Equal(t, 0, m.Size())
	require.True(t, m.Empty())
	require.Nil(t, m.Data())
}

// requireMatrix asserts that m equals the row literal want, shape included.
func requireMatrix[T matrix.Number](t testing.TB, want [][]T, m *matrix.Matrix[T]) {
	t.Helper()
	require.Equal(t, want, m.ToRows())
	require.True(t, mustFromRows(t, want).Equal(m), "Equal disagrees with ToRows for\n%s", m)
}

// example2x3 is the [[1,2,3],[4,5,6]] matrix used throughout the end-to-end tests.
func example2x3(t testing.TB) *matrix.Matrix[int] {
	t.Helper()
	return mustFromRows(t, [][]int{
		{1, 2, 3},
		{4, 5, 6},
	})
}
