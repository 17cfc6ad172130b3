// Package rowmajor is a dense, generic, row-major matrix toolkit for Go.
//
// What you get:
//
//	matrix/        Matrix[T], strided cursors, row/column views, arithmetic
//	codec/         JSON and YAML documents for matrices
//	cmd/matx/      command-line front end over files
//
// The storage model is one flat buffer per matrix: element (i, j) lives at
// offset i*cols + j. Rows are contiguous; a column is the same buffer walked
// with stride cols. Views and cursors alias that buffer and never copy.
//
// Quick start:
//
//	m, _ := matrix.FromRows([][]int{{1, 2, 3}, {4, 5, 6}})
//	m.ScaleInPlace(10)
//	col, _ := m.Col(1)
//	col.Scale(5) // m is now [[10 100 30] [40 250 60]]
package rowmajor
